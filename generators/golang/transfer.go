// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package golang

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dave/jennifer/jen"

	"github.com/albertocavalcante/mdagen/decorate"
	"github.com/albertocavalcante/mdagen/generator"
	"github.com/albertocavalcante/mdagen/internal/naming"
	"github.com/albertocavalcante/mdagen/model"
	"github.com/albertocavalcante/mdagen/resolve"
)

type transferGenerator struct{}

// NewTransferGenerator returns the go/transfer generator.
func NewTransferGenerator() (generator.Generator, error) {
	return transferGenerator{}, nil
}

// Generate records one struct file per entity of the selected projects.
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

// numeric primitives accept minValue and maxValue constraints.
var numeric = map[string]bool{
	model.TypeInteger: true,
	model.TypeLong:    true,
	model.TypeShort:   true,
	model.TypeFloat:   true,
	model.TypeDouble:  true,
}

func genTransfer(gc *generator.Context, svc *resolve.Service, e *model.Entity) error {
	self, err := svc.ResolveLocal(e.Project, e.Name)
	if err != nil {
		return err
	}
	name := naming.ExportName(e.Name)
	f := newFile(self.Import)

	var (
		members []jen.Code
		checks  []jen.Code
	)
	for _, fd := range decorate.Fields(e, svc) {
		r, err := fd.Resolution()
		if err != nil {
			return err
		}
		typ := typeCode(r.TypeName, r.Import)
		if r.Kind == resolve.Entity {
			typ = jen.Op("*").Add(typ)
		}
		tag := fd.Name()
		if !fd.IsRequired() {
			tag += ",omitempty"
		}
		if doc := fd.Documentation(); doc != "" {
			members = append(members, jen.Comment(doc))
		}
		members = append(members, jen.Id(naming.ExportName(fd.Name())).Add(typ).Tag(map[string]string{"json": tag}))

		c, err := fieldChecks(f, name, fd, r)
		if err != nil {
			return fmt.Errorf("field %s: %w", fd.Name(), err)
		}
		checks = append(checks, c...)
	}

	docComment(f, e.Documentation, name+" transfers "+e.Name+" values.")
	f.Type().Id(name).Struct(members...)

	f.Comment("Validate checks the declared field constraints.")
	f.Func().Params(jen.Id("o").Op("*").Id(name)).Id("Validate").Params().Error().BlockFunc(func(g *jen.Group) {
		if len(checks) == 0 {
			g.Return(jen.Nil())
			return
		}
		g.Var().Id("errs").Index().Error()
		for _, c := range checks {
			g.Add(c)
		}
		g.Return(jen.Qual("errors", "Join").Call(jen.Id("errs").Op("...")))
	})

	return emit(gc, self.Import, naming.CamelToSnake(e.Name)+".go", f)
}

// fieldChecks returns the Validate statements for one field. Pattern
// tables are declared on f.
func fieldChecks(f *jen.File, owner string, fd *decorate.Field, r resolve.Resolution) ([]jen.Code, error) {
	var (
		checks []jen.Code
		v      = jen.Id("o").Dot(naming.ExportName(fd.Name()))
		label  = fd.Name()
	)
	fail := func(format string, args ...jen.Code) jen.Code {
		msg := jen.Qual("errors", "New").Call(jen.Lit(label + ": " + format))
		if len(args) > 0 {
			msg = jen.Qual("fmt", "Errorf").Call(append([]jen.Code{jen.Lit(label + ": " + format)}, args...)...)
		}
		return jen.Id("errs").Op("=").Append(jen.Id("errs"), msg)
	}
	isString := r.Kind == resolve.Simple && fd.Type() == model.TypeString

	switch {
	case r.Kind == resolve.Entity:
		if fd.IsRequired() {
			checks = append(checks, jen.If(v.Clone().Op("==").Nil()).Block(fail("is required")))
		}
		checks = append(checks, jen.If(v.Clone().Op("!=").Nil()).Block(
			jen.If(jen.Err().Op(":=").Add(v.Clone()).Dot("Validate").Call(), jen.Err().Op("!=").Nil()).Block(
				fail("%w", jen.Err()),
			),
		))
	case r.Kind == resolve.Enumeration:
		if fd.IsRequired() {
			checks = append(checks, jen.If(v.Clone().Op("==").Lit("")).Block(fail("is required")))
		}
		checks = append(checks, jen.If(v.Clone().Op("!=").Lit("").Op("&&").Op("!").Add(v.Clone()).Dot("IsValid").Call()).Block(
			fail("invalid value %q", v.Clone()),
		))
	case isString:
		if fd.IsRequired() {
			checks = append(checks, jen.If(v.Clone().Op("==").Lit("")).Block(fail("is required")))
		}
		if fd.HasMinLength() {
			n, err := strconv.Atoi(fd.MinLength())
			if err != nil {
				return nil, fmt.Errorf("invalid minLength %q", fd.MinLength())
			}
			checks = append(checks, jen.If(
				jen.Id("n").Op(":=").Qual("unicode/utf8", "RuneCountInString").Call(v.Clone()),
				jen.Id("n").Op("<").Lit(n),
			).Block(fail("length %d is below %d", jen.Id("n"), jen.Lit(n))))
		}
		if fd.HasMaxLength() {
			n, err := strconv.Atoi(fd.MaxLength())
			if err != nil {
				return nil, fmt.Errorf("invalid maxLength %q", fd.MaxLength())
			}
			checks = append(checks, jen.If(
				jen.Id("n").Op(":=").Qual("unicode/utf8", "RuneCountInString").Call(v.Clone()),
				jen.Id("n").Op(">").Lit(n),
			).Block(fail("length %d exceeds %d", jen.Id("n"), jen.Lit(n))))
		}
		patterns, err := fd.Patterns()
		if err != nil {
			return nil, err
		}
		if len(patterns) > 0 {
			table := naming.Uncapitalize(owner) + naming.ExportName(fd.Name()) + "Patterns"
			f.Var().Id(table).Op("=").Index().Op("*").Qual("regexp", "Regexp").ValuesFunc(func(g *jen.Group) {
				for _, p := range patterns {
					g.Qual("regexp", "MustCompile").Call(jen.Id(p))
				}
			})
			match := jen.Func().Params(jen.Id("re").Op("*").Qual("regexp", "Regexp")).Bool().Block(
				jen.Return(jen.Id("re").Dot("MatchString").Call(v.Clone())),
			)
			checks = append(checks, jen.If(
				v.Clone().Op("!=").Lit("").Op("&&").Op("!").Qual("slices", "ContainsFunc").Call(jen.Id(table), match),
			).Block(fail("does not match format "+fd.Format())))
		}
	case numeric[fd.Type()]:
		if fd.HasMinValue() {
			if _, err := strconv.ParseFloat(fd.MinValue(), 64); err != nil {
				return nil, fmt.Errorf("invalid minValue %q", fd.MinValue())
			}
			checks = append(checks, jen.If(v.Clone().Op("<").Id(fd.MinValue())).Block(
				fail("%v is below "+fd.MinValue(), v.Clone()),
			))
		}
		if fd.HasMaxValue() {
			if _, err := strconv.ParseFloat(fd.MaxValue(), 64); err != nil {
				return nil, fmt.Errorf("invalid maxValue %q", fd.MaxValue())
			}
			checks = append(checks, jen.If(v.Clone().Op(">").Id(fd.MaxValue())).Block(
				fail("%v exceeds "+fd.MaxValue(), v.Clone()),
			))
		}
	}
	return checks, nil
}
