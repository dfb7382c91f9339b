// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package golang

import (
	"context"
	"fmt"
	"path"

	"github.com/dave/jennifer/jen"

	"github.com/albertocavalcante/mdagen/decorate"
	"github.com/albertocavalcante/mdagen/generator"
	"github.com/albertocavalcante/mdagen/internal/naming"
	"github.com/albertocavalcante/mdagen/model"
	"github.com/albertocavalcante/mdagen/resolve"
)

// ServiceImplPackageOption names the sub package of service
// implementation stubs.
const ServiceImplPackageOption = "go_service_impl_package"

type serviceImplGenerator struct{}

// NewServiceImplGenerator returns the go/serviceImpl generator. It writes
// one implementation stub per service below the main source directory.
// Stubs belong to the developer once written and are never overwritten.
func NewServiceImplGenerator() (generator.Generator, error) {
	return serviceImplGenerator{}, nil
}

// Generate records a stub for every service of the selected projects.
func (serviceImplGenerator) Generate(ctx context.Context, gc *generator.Context) error {
	svc, err := gc.TypeService(LanguageName)
	if err != nil {
		return err
	}
	projects, err := gc.Projects()
	if err != nil {
		return err
	}
	sub := gc.Option(ServicePackageOption, "service")
	implSub := gc.Option(ServiceImplPackageOption, "serviceimpl")
	for _, p := range projects {
		base, ok := svc.BasePackage(p)
		if !ok {
			return fmt.Errorf("no base package for project %s", p)
		}
		for _, s := range gc.Metadata.Services(p) {
			if err := ctx.Err(); err != nil {
				return err
			}
			err := genServiceImpl(gc, svc, path.Join(base, sub), path.Join(base, implSub), s)
			if err != nil {
				return fmt.Errorf("service %s: %w", s.Name, err)
			}
		}
	}
	return nil
}

func genServiceImpl(gc *generator.Context, svc *resolve.Service, ifacePath, importPath string, s *model.Service) error {
	name := naming.ExportName(s.Name)
	f := jen.NewFilePathName(importPath, path.Base(importPath))

	f.Commentf("%s implements %s.%s.", name, path.Base(ifacePath), name)
	f.Type().Id(name).Struct()
	f.Var().Id("_").Qual(ifacePath, name).Op("=").Parens(jen.Op("*").Id(name)).Parens(jen.Nil())

	for _, op := range decorate.Operations(s, svc) {
		params, result, err := signature(op)
		if err != nil {
			return fmt.Errorf("operation %s: %w", op.Name(), err)
		}
		notImpl := jen.Qual("errors", "New").Call(jen.Lit(name + "." + op.CapitalizedName() + ": not implemented"))

		f.Line()
		f.Commentf("%s is not implemented yet.", op.CapitalizedName())
		// Unnamed receiver and zero value leave every parameter name free.
		fn := f.Func().Params(jen.Op("*").Id(name)).Id(op.CapitalizedName()).Params(params...)
		if result == nil {
			fn.Error().Block(jen.Return(notImpl))
			continue
		}
		fn.Params(result.Clone(), jen.Error()).Block(
			jen.Return(jen.Op("*").New(result), notImpl),
		)
	}

	return emitOnce(gc, importPath, naming.CamelToSnake(s.Name)+".go", f)
}

// emitOnce renders f below the main source directory as a file that is
// only written when missing.
func emitOnce(gc *generator.Context, importPath, name string, f *jen.File) error {
	p := sourcePath(gc.MainSourceDir, gc.BasePackage, importPath, name)
	content, err := formatFile(p, f)
	if err != nil {
		return err
	}
	gc.Output.AddOnce(p, content)
	return nil
}
