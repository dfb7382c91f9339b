// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package decorate

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/albertocavalcante/mdagen/internal/naming"
	"github.com/albertocavalcante/mdagen/model"
	"github.com/albertocavalcante/mdagen/resolve"
)

// Field decorates an entity field.
type Field struct {
	f   *model.Field
	svc *resolve.Service

	resolution func() (resolve.Resolution, error)
}

// NewField wraps f. The type of a non-external field must be declared in
// the current application; external fields without a project search every
// loaded project.
func NewField(f *model.Field, svc *resolve.Service) *Field {
	d := &Field{f: f, svc: svc}
	d.resolution = sync.OnceValues(func() (resolve.Resolution, error) {
		lookup := svc.ResolveLocal
		if f.External && f.Project == "" {
			lookup = svc.Resolve
		}
		r, err := lookup(d.Owner(), f.Type)
		if err != nil {
			return r, fmt.Errorf("field %s: %w", f.Name, err)
		}
		return r, nil
	})
	return d
}

// Fields decorates every field of e.
func Fields(e *model.Entity, svc *resolve.Service) []*Field {
	out := make([]*Field, len(e.Fields))
	for i, f := range e.Fields {
		out[i] = NewField(f, svc)
	}
	return out
}

// Name returns the field name.
func (d *Field) Name() string { return d.f.Name }

// Documentation returns the field documentation.
func (d *Field) Documentation() string { return d.f.Documentation }

// Type returns the declared semantic type.
func (d *Field) Type() string { return d.f.Type }

// Column returns the storage column name.
func (d *Field) Column() string { return d.f.Column }

// Label returns the display label.
func (d *Field) Label() string { return d.f.Label }

// IsRequired reports whether a value is mandatory.
func (d *Field) IsRequired() bool { return d.f.Required }

// Generator returns the value generator directive.
func (d *Field) Generator() string { return d.f.Generator }

// Format returns the name of the referenced format.
func (d *Field) Format() string { return d.f.Format }

// Project returns the declared project of an external field.
func (d *Field) Project() string { return d.f.Project }

// IsExternal reports whether the type is declared in another project.
func (d *Field) IsExternal() bool { return d.f.External }

// MinLength returns the minimum length constraint.
func (d *Field) MinLength() string { return d.f.MinLength }

// MaxLength returns the maximum length constraint.
func (d *Field) MaxLength() string { return d.f.MaxLength }

// MinValue returns the minimum value constraint.
func (d *Field) MinValue() string { return d.f.MinValue }

// MaxValue returns the maximum value constraint.
func (d *Field) MaxValue() string { return d.f.MaxValue }

// Scale returns the numeric scale.
func (d *Field) Scale() string { return d.f.Scale }

// HasColumn reports whether a column name is set.
func (d *Field) HasColumn() bool { return d.f.Column != "" }

// HasLabel reports whether a label is set.
func (d *Field) HasLabel() bool { return d.f.Label != "" }

// HasGenerator reports whether a generator directive is set.
func (d *Field) HasGenerator() bool { return d.f.Generator != "" }

// HasFormat reports whether a format is referenced.
func (d *Field) HasFormat() bool { return d.f.Format != "" }

// HasMinLength reports whether a minimum length is set.
func (d *Field) HasMinLength() bool { return d.f.MinLength != "" }

// HasMaxLength reports whether a maximum length is set.
func (d *Field) HasMaxLength() bool { return d.f.MaxLength != "" }

// HasMinValue reports whether a minimum value is set.
func (d *Field) HasMinValue() bool { return d.f.MinValue != "" }

// HasMaxValue reports whether a maximum value is set.
func (d *Field) HasMaxValue() bool { return d.f.MaxValue != "" }

// HasScale reports whether a scale is set.
func (d *Field) HasScale() bool { return d.f.Scale != "" }

// CapitalizedName returns the name with its first letter in upper case.
func (d *Field) CapitalizedName() string { return naming.Capitalize(d.f.Name) }

// UppercasedName returns the name in upper case.
func (d *Field) UppercasedName() string { return naming.Upper(d.f.Name) }

// UppercasedType returns the declared type in upper case.
func (d *Field) UppercasedType() string { return naming.Upper(d.f.Type) }

// UppercasedGenerator returns the generator directive in upper case.
func (d *Field) UppercasedGenerator() string { return naming.Upper(d.f.Generator) }

// Owner returns the project the field type is resolved from. External
// fields use their declared project; all others use the current
// application.
func (d *Field) Owner() string {
	if d.f.External && d.f.Project != "" {
		return d.f.Project
	}
	return d.svc.ApplicationName()
}

// Resolution returns the resolved field type.
func (d *Field) Resolution() (resolve.Resolution, error) { return d.resolution() }

// IsSimpleType reports whether the type is a primitive.
func (d *Field) IsSimpleType() (bool, error) {
	r, err := d.resolution()
	return err == nil && r.Kind == resolve.Simple, err
}

// IsEntity reports whether the type is an entity.
func (d *Field) IsEntity() (bool, error) {
	r, err := d.resolution()
	return err == nil && r.Kind == resolve.Entity, err
}

// IsEnumerationType reports whether the type is an enumeration.
func (d *Field) IsEnumerationType() (bool, error) {
	r, err := d.resolution()
	return err == nil && r.Kind == resolve.Enumeration, err
}

// IsGeospatialType reports whether the type is a geospatial primitive.
func (d *Field) IsGeospatialType() bool { return model.IsGeospatial(d.f.Type) }

// Enumeration returns the decorated enumeration the field refers to, or
// nil when the type is not an enumeration.
func (d *Field) Enumeration() (*Enumeration, error) {
	r, err := d.resolution()
	if err != nil || r.Kind != resolve.Enumeration {
		return nil, err
	}
	return NewEnumeration(d.svc.Repository().Enumeration(r.Project, d.f.Type), d.svc), nil
}

// TargetType returns the target-language type.
func (d *Field) TargetType() (string, error) {
	r, err := d.resolution()
	return r.TypeName, err
}

// Import returns the import needed by the type, or "".
func (d *Field) Import() (string, error) {
	r, err := d.resolution()
	return r.Import, err
}

// Patterns returns the validation patterns of the referenced format as
// quoted string literals. A field without a format has none.
func (d *Field) Patterns() ([]string, error) {
	if d.f.Format == "" {
		return nil, nil
	}
	f := d.svc.Repository().Format(d.f.Format)
	if f == nil {
		return nil, fmt.Errorf("field %s: unknown format %q", d.f.Name, d.f.Format)
	}
	out := make([]string, len(f.Patterns))
	for i, p := range f.Patterns {
		out[i] = strconv.Quote(p)
	}
	return out, nil
}
