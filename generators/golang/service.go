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

// ServicePackageOption names the sub package of generated service
// interfaces.
const ServicePackageOption = "go_service_package"

type serviceGenerator struct{}

// NewServiceGenerator returns the go/service generator.
func NewServiceGenerator() (generator.Generator, error) {
	return serviceGenerator{}, nil
}

// Generate records one interface file per service of the selected projects.
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
		importPath := path.Join(base, sub)
		for _, s := range gc.Metadata.Services(p) {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := genService(gc, svc, importPath, s); err != nil {
				return fmt.Errorf("service %s: %w", s.Name, err)
			}
		}
	}
	return nil
}

func genService(gc *generator.Context, svc *resolve.Service, importPath string, s *model.Service) error {
	name := naming.ExportName(s.Name)
	f := newFile(importPath)

	var (
		methods []jen.Code
		txs     = jen.Dict{}
	)
	for _, op := range decorate.Operations(s, svc) {
		m, err := method(op)
		if err != nil {
			return fmt.Errorf("operation %s: %w", op.Name(), err)
		}
		if doc := op.Documentation(); doc != "" {
			methods = append(methods, jen.Comment(doc))
		}
		if op.IsAsynchronous() {
			methods = append(methods, jen.Comment(op.CapitalizedName()+" is invoked asynchronously."))
		}
		methods = append(methods, m)
		txs[jen.Lit(op.CapitalizedName())] = jen.Lit(op.TransactionAttribute())
	}

	docComment(f, s.Documentation, name+" is the "+s.Name+" service.")
	f.Type().Id(name).Interface(methods...)

	f.Commentf("%sTransactions maps each %s method to its transaction propagation.", name, name)
	f.Var().Id(name + "Transactions").Op("=").Map(jen.String()).String().Values(txs)

	return emit(gc, importPath, naming.CamelToSnake(s.Name)+".go", f)
}

// method returns the interface method of op. Every method takes a
// context and returns an error last.
func method(op *decorate.Operation) (jen.Code, error) {
	params, result, err := signature(op)
	if err != nil {
		return nil, err
	}
	sig := jen.Id(op.CapitalizedName()).Params(params...)
	if result == nil {
		return sig.Error(), nil
	}
	return sig.Params(result, jen.Error()), nil
}

// signature returns the parameters of op and its result type, which is
// nil for operations that only return an error.
func signature(op *decorate.Operation) (params []jen.Code, result *jen.Statement, err error) {
	params = []jen.Code{jen.Id("ctx").Qual("context", "Context")}
	for _, p := range op.Parameters() {
		r, err := p.Resolution()
		if err != nil {
			return nil, nil, err
		}
		typ := elemType(r)
		if p.IsMany() {
			typ = jen.Index().Add(typ)
		}
		params = append(params, jen.Id(naming.Uncapitalize(p.Name())).Add(typ))
	}

	switch op.ReturnState() {
	case decorate.ReturnSingle, decorate.ReturnMany:
		r, err := op.ReturnResolution()
		if err != nil {
			return nil, nil, err
		}
		result = elemType(r)
		if op.IsReturnTypeCollection() {
			result = jen.Index().Add(result)
		}
	}
	return params, result, nil
}

// elemType returns the Go type of a resolved element; entities are passed
// by pointer.
func elemType(r resolve.Resolution) *jen.Statement {
	typ := typeCode(r.TypeName, r.Import)
	if r.Kind == resolve.Entity {
		return jen.Op("*").Add(typ)
	}
	return typ
}
