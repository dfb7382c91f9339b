// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package decorate

import (
	"sync"

	"github.com/albertocavalcante/mdagen/internal/naming"
	"github.com/albertocavalcante/mdagen/model"
	"github.com/albertocavalcante/mdagen/resolve"
)

// Enumeration decorates an enumeration.
type Enumeration struct {
	e   *model.Enumeration
	svc *resolve.Service

	resolution func() (resolve.Resolution, error)
}

// NewEnumeration wraps e.
func NewEnumeration(e *model.Enumeration, svc *resolve.Service) *Enumeration {
	d := &Enumeration{e: e, svc: svc}
	d.resolution = sync.OnceValues(func() (resolve.Resolution, error) {
		return svc.ResolveLocal(e.Project, e.Name)
	})
	return d
}

// Name returns the enumeration name.
func (d *Enumeration) Name() string { return d.e.Name }

// Documentation returns the enumeration documentation.
func (d *Enumeration) Documentation() string { return d.e.Documentation }

// Project returns the project declaring the enumeration.
func (d *Enumeration) Project() string { return d.e.Project }

// Type returns the enumeration name; an enumeration is its own type.
func (d *Enumeration) Type() string { return d.e.Name }

// Enums returns the decorated literals in declaration order.
func (d *Enumeration) Enums() []*Enum {
	out := make([]*Enum, len(d.e.Enums))
	for i := range d.e.Enums {
		out[i] = &Enum{e: d.e.Enums[i]}
	}
	return out
}

// TargetType returns the target-language type name.
func (d *Enumeration) TargetType() (string, error) {
	r, err := d.resolution()
	return r.TypeName, err
}

// Import returns the import of the enumeration type.
func (d *Enumeration) Import() (string, error) {
	r, err := d.resolution()
	return r.Import, err
}

// BasePackage returns the base namespace of the owning project.
func (d *Enumeration) BasePackage() string {
	base, _ := d.svc.BasePackage(d.e.Project)
	return base
}

// Enum decorates an enumeration literal.
type Enum struct {
	e model.Enum
}

// Name returns the literal name.
func (d *Enum) Name() string { return d.e.Name }

// Documentation returns the literal documentation.
func (d *Enum) Documentation() string { return d.e.Documentation }

// UppercasedName returns the literal name in upper case.
func (d *Enum) UppercasedName() string { return naming.Upper(d.e.Name) }
