// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package decorate

import (
	"fmt"
	"sync"

	"github.com/albertocavalcante/mdagen/internal/naming"
	"github.com/albertocavalcante/mdagen/model"
	"github.com/albertocavalcante/mdagen/resolve"
)

// Parameter decorates an operation parameter.
type Parameter struct {
	p   *model.Parameter
	svc *resolve.Service

	resolution func() (resolve.Resolution, error)
}

// NewParameter wraps p.
func NewParameter(p *model.Parameter, svc *resolve.Service) *Parameter {
	d := &Parameter{p: p, svc: svc}
	d.resolution = sync.OnceValues(func() (resolve.Resolution, error) {
		r, err := svc.Resolve(d.Project(), p.Type)
		if err != nil {
			return r, fmt.Errorf("parameter %s: %w", p.Name, err)
		}
		return r, nil
	})
	return d
}

// Name returns the parameter name.
func (d *Parameter) Name() string { return d.p.Name }

// Documentation returns the parameter documentation.
func (d *Parameter) Documentation() string { return d.p.Documentation }

// Type returns the semantic type.
func (d *Parameter) Type() string { return d.p.Type }

// IsMany reports collection semantics.
func (d *Parameter) IsMany() bool { return d.p.Many }

// ProjectValue returns the declared project, which may be empty.
func (d *Parameter) ProjectValue() string { return d.p.Project }

// Project returns the project the type is resolved from: the declared one
// or the current application.
func (d *Parameter) Project() string {
	if d.p.Project != "" {
		return d.p.Project
	}
	return d.svc.ApplicationName()
}

// CapitalizedName returns the name with its first letter in title case.
func (d *Parameter) CapitalizedName() string { return naming.Capitalize(d.p.Name) }

// Resolution returns the resolved element type.
func (d *Parameter) Resolution() (resolve.Resolution, error) { return d.resolution() }

// TargetType returns the target-language element type, never wrapped.
func (d *Parameter) TargetType() (string, error) {
	r, err := d.resolution()
	return r.TypeName, err
}

// DeclaredType returns the type used to declare the parameter: the element
// type, wrapped in the collection type when the parameter is many.
func (d *Parameter) DeclaredType() (string, error) {
	return d.declared("")
}

// TargetTypeAsBO returns the element type with the business object suffix
// when it is an entity.
func (d *Parameter) TargetTypeAsBO() (string, error) {
	r, err := d.resolution()
	if err != nil {
		return "", err
	}
	if r.Kind == resolve.Entity {
		return r.TypeName + BusinessObjectSuffix, nil
	}
	return r.TypeName, nil
}

// declared returns the declared type with suffix applied to entity types.
func (d *Parameter) declared(suffix string) (string, error) {
	r, err := d.resolution()
	if err != nil {
		return "", err
	}
	t := r.TypeName
	if r.Kind == resolve.Entity {
		t += suffix
	}
	if d.p.Many {
		t = d.svc.Language().Collection.Wrap(t)
	}
	return t, nil
}

// UncapitalizedTargetType returns the element type with a lower-case first
// letter.
func (d *Parameter) UncapitalizedTargetType() (string, error) {
	t, err := d.TargetType()
	return naming.Uncapitalize(t), err
}

// Import returns the import of the element type, or "".
func (d *Parameter) Import() (string, error) {
	r, err := d.resolution()
	return r.Import, err
}

// IsEntity reports whether the type is an entity.
func (d *Parameter) IsEntity() (bool, error) {
	r, err := d.resolution()
	return err == nil && r.Kind == resolve.Entity, err
}

// IsEnumeration reports whether the type is an enumeration.
func (d *Parameter) IsEnumeration() (bool, error) {
	r, err := d.resolution()
	return err == nil && r.Kind == resolve.Enumeration, err
}

// Enumeration returns the decorated enumeration the parameter refers to,
// or nil when the type is not an enumeration.
func (d *Parameter) Enumeration() (*Enumeration, error) {
	r, err := d.resolution()
	if err != nil || r.Kind != resolve.Enumeration {
		return nil, err
	}
	return NewEnumeration(d.svc.Repository().Enumeration(r.Project, d.p.Type), d.svc), nil
}

// BasePackage returns the base namespace of the parameter project.
func (d *Parameter) BasePackage() string {
	base, _ := d.svc.BasePackage(d.Project())
	return base
}

// SeparatedParameter is a parameter view carrying the separator that
// follows it in a declaration list. The last parameter has none.
type SeparatedParameter struct {
	*Parameter
	Separator string
}

// SignatureName returns the name followed by the separator.
func (s SeparatedParameter) SignatureName() string {
	return s.Name() + s.Separator
}
