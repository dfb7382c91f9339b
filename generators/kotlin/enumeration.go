// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package kotlin

import (
	"context"

	"github.com/albertocavalcante/mdagen/decorate"
	"github.com/albertocavalcante/mdagen/generator"
)

type enumerationGenerator struct{}

// NewEnumerationGenerator returns the kotlin/enumeration generator.
func NewEnumerationGenerator() (generator.Generator, error) {
	return enumerationGenerator{}, nil
}

// enumerationUnit is the data of the enumeration template.
type enumerationUnit struct {
	unit
	*decorate.Enumeration
}

// Generate renders the enumeration template for every enumeration.
func (enumerationGenerator) Generate(ctx context.Context, gc *generator.Context) error {
	svc, err := gc.TypeService(LanguageName)
	if err != nil {
		return err
	}
	projects, err := gc.Projects()
	if err != nil {
		return err
	}
	for _, p := range projects {
		for _, e := range gc.Metadata.Enumerations(p) {
			if err := ctx.Err(); err != nil {
				return err
			}
			d := decorate.NewEnumeration(e, svc)
			ref, err := d.Import()
			if err != nil {
				return err
			}
			pkg := packageOf(ref)
			data := &enumerationUnit{
				unit:        newUnit(pkg, decorate.NewImportSet("kotlinx.serialization.SerialName", serializable)),
				Enumeration: d,
			}
			if err := emit(gc, EnumerationTemplate, pkg, e.Name, data); err != nil {
				return err
			}
		}
	}
	return nil
}
