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

// ServicePackageOption names the sub package of generated service
// interfaces.
const ServicePackageOption = "kotlin_service_package"

// queryParam is the annotation type used by remote operations.
const queryParam = "jakarta.ws.rs.QueryParam"

type serviceGenerator struct{}

// NewServiceGenerator returns the kotlin/service generator.
func NewServiceGenerator() (generator.Generator, error) {
	return serviceGenerator{}, nil
}

// serviceUnit is the data of the service template.
type serviceUnit struct {
	unit
	Name          string
	Documentation string
	Operations    []*decorate.Operation
}

// Generate renders the service template for every service.
func (serviceGenerator) Generate(ctx context.Context, gc *generator.Context) error {
	svc, err := gc.TypeService(LanguageName)
	if err != nil {
		return err
	}
	projects, err := gc.Projects()
	if err != nil {
		return err
	}
	sub := gc.Option(ServicePackageOption, "service")
	for _, p := range projects {
		base, ok := svc.BasePackage(p)
		if !ok {
			return fmt.Errorf("no base package for project %s", p)
		}
		pkg := base + "." + sub
		for _, s := range gc.Metadata.Services(p) {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := genService(gc, svc, pkg, s); err != nil {
				return fmt.Errorf("service %s: %w", s.Name, err)
			}
		}
	}
	return nil
}

func genService(gc *generator.Context, svc *resolve.Service, pkg string, s *model.Service) error {
	ops := decorate.Operations(s, svc)
	imports := decorate.NewImportSet()
	for _, op := range ops {
		set, err := op.Imports()
		if err != nil {
			return fmt.Errorf("operation %s: %w", op.Name(), err)
		}
		imports.Merge(set)
		ref, err := op.ReturnImport()
		if err != nil {
			return err
		}
		imports.Add(ref)
		if op.IsRemote() && hasQueryParams(op) {
			imports.Add(queryParam)
		}
	}

	data := &serviceUnit{
		unit:          newUnit(pkg, imports),
		Name:          s.Name,
		Documentation: s.Documentation,
		Operations:    ops,
	}
	return emit(gc, ServiceTemplate, pkg, s.Name, data)
}

// hasQueryParams reports whether op has a non-entity parameter.
func hasQueryParams(op *decorate.Operation) bool {
	for _, p := range op.Parameters() {
		if ok, err := p.IsEntity(); err == nil && !ok {
			return true
		}
	}
	return false
}
