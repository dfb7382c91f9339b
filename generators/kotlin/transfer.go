// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package kotlin

import (
	"context"
	"fmt"

	"github.com/albertocavalcante/mdagen/decorate"
	"github.com/albertocavalcante/mdagen/generator"
	"github.com/albertocavalcante/mdagen/model"
	"github.com/albertocavalcante/mdagen/resolve"
)

type transferGenerator struct{}

// NewTransferGenerator returns the kotlin/transfer generator.
func NewTransferGenerator() (generator.Generator, error) {
	return transferGenerator{}, nil
}

// transferUnit is the data of the transfer template.
type transferUnit struct {
	unit
	Name          string
	Documentation string
	Fields        []*decorate.Field

	// Constrained is set when at least one field needs an init check.
	Constrained bool
}

// Generate renders the transfer template for every entity.
func (transferGenerator) Generate(ctx context.Context, gc *generator.Context) error {
	svc, err := gc.TypeService(LanguageName)
	if err != nil {
		return err
	}
	projects, err := gc.Projects()
	if err != nil {
		return err
	}
	for _, p := range projects {
		for _, e := range gc.Metadata.Entities(p) {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := genTransfer(gc, svc, e); err != nil {
				return fmt.Errorf("entity %s: %w", e.Name, err)
			}
		}
	}
	return nil
}

func genTransfer(gc *generator.Context, svc *resolve.Service, e *model.Entity) error {
	self, err := svc.ResolveLocal(e.Project, e.Name)
	if err != nil {
		return err
	}
	pkg := packageOf(self.Import)
	fields := decorate.Fields(e, svc)

	imports := decorate.NewImportSet(serializable)
	constrained := false
	for _, f := range fields {
		ref, err := f.Import()
		if err != nil {
			return err
		}
		imports.Add(ref)
		if _, err := f.Patterns(); err != nil {
			return err
		}
		if f.HasMinLength() || f.HasMaxLength() || f.HasMinValue() || f.HasMaxValue() || f.HasFormat() {
			constrained = true
		}
	}

	data := &transferUnit{
		unit:          newUnit(pkg, imports),
		Name:          e.Name,
		Documentation: e.Documentation,
		Fields:        fields,
		Constrained:   constrained,
	}
	return emit(gc, TransferTemplate, pkg, e.Name, data)
}
