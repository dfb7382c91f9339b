// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package golang

import (
	"context"

	"github.com/dave/jennifer/jen"

	"github.com/albertocavalcante/mdagen/decorate"
	"github.com/albertocavalcante/mdagen/generator"
	"github.com/albertocavalcante/mdagen/internal/naming"
)

type enumerationGenerator struct{}

// NewEnumerationGenerator returns the go/enumeration generator.
func NewEnumerationGenerator() (generator.Generator, error) {
	return enumerationGenerator{}, nil
}

// Generate records one file per enumeration of the selected projects.
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
			if err := genEnumeration(gc, decorate.NewEnumeration(e, svc)); err != nil {
				return err
			}
		}
	}
	return nil
}

func genEnumeration(gc *generator.Context, e *decorate.Enumeration) error {
	importPath, err := e.Import()
	if err != nil {
		return err
	}
	name := naming.ExportName(e.Name())
	f := newFile(importPath)

	docComment(f, e.Documentation(), name+" is the "+e.Name()+" enumeration.")
	f.Type().Id(name).String()

	var (
		defs []jen.Code
		ids  []jen.Code
	)
	for _, lit := range e.Enums() {
		id := name + naming.Pascal(lit.Name())
		ids = append(ids, jen.Id(id))
		def := jen.Id(id).Id(name).Op("=").Lit(lit.Name())
		if doc := lit.Documentation(); doc != "" {
			def.Comment(doc)
		}
		defs = append(defs, def)
	}
	if len(defs) > 0 {
		f.Const().Defs(defs...)
	}

	f.Commentf("%sValues returns every %s in declaration order.", name, name)
	f.Func().Id(name+"Values").Params().Index().Id(name).Block(
		jen.Return(jen.Index().Id(name).Values(ids...)),
	)

	f.Comment("IsValid reports whether the value is a declared literal.")
	f.Func().Params(jen.Id("e").Id(name)).Id("IsValid").Params().Bool().BlockFunc(func(g *jen.Group) {
		if len(ids) > 0 {
			g.Switch(jen.Id("e")).Block(
				jen.Case(ids...).Block(jen.Return(jen.True())),
			)
		}
		g.Return(jen.False())
	})

	f.Func().Params(jen.Id("e").Id(name)).Id("String").Params().String().Block(
		jen.Return(jen.String().Call(jen.Id("e"))),
	)

	return emit(gc, importPath, naming.CamelToSnake(e.Name())+".go", f)
}
