// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package golang generates Go sources from the model.
//
// Four generators are provided:
//
//	go/enumeration   a string type with constants per enumeration
//	go/transfer      a struct with a Validate method per entity
//	go/service       an interface per service
//	go/serviceImpl   a stub implementing each service, written once
//
// Code is built with jennifer and formatted with goimports.
package golang

import (
	"bytes"
	"embed"
	"fmt"
	"path"
	"strings"

	"github.com/dave/jennifer/jen"
	"golang.org/x/tools/imports"

	"github.com/albertocavalcante/mdagen/generator"
)

// Generator identifiers.
const (
	EnumerationGenerator = "go/enumeration"
	TransferGenerator    = "go/transfer"
	ServiceGenerator     = "go/service"
	ServiceImplGenerator = "go/serviceImpl"
)

// Descriptors holds the built-in targets.json and profiles.json.
//
//go:embed targets.json profiles.json
var Descriptors embed.FS

// Register adds the Go generators to r.
func Register(r *generator.Registry) {
	r.Register(EnumerationGenerator, NewEnumerationGenerator)
	r.Register(TransferGenerator, NewTransferGenerator)
	r.Register(ServiceGenerator, NewServiceGenerator)
	r.Register(ServiceImplGenerator, NewServiceImplGenerator)
}

const header = "Code generated by mdagen. DO NOT EDIT."

// newFile returns a jennifer file for the package at importPath.
func newFile(importPath string) *jen.File {
	f := jen.NewFilePathName(importPath, path.Base(importPath))
	f.HeaderComment(header)
	return f
}

// emit renders f, formats it, and records it under the generated source
// directory.
func emit(gc *generator.Context, importPath, name string, f *jen.File) error {
	p := sourcePath(gc.GeneratedSourceDir, gc.BasePackage, importPath, name)
	content, err := formatFile(p, f)
	if err != nil {
		return err
	}
	gc.Output.Add(p, content)
	return nil
}

// formatFile renders f and runs goimports on the result.
func formatFile(p string, f *jen.File) ([]byte, error) {
	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, fmt.Errorf("rendering %s: %w", p, err)
	}
	formatted, err := imports.Process(p, buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("formatting %s: %w", p, err)
	}
	return formatted, nil
}

// sourcePath places a file of package importPath under dir. Packages
// below the application base package keep their relative directory;
// others keep their full import path.
func sourcePath(dir, basePackage, importPath, name string) string {
	rel := importPath
	if basePackage != "" {
		if r, ok := strings.CutPrefix(importPath, basePackage+"/"); ok {
			rel = r
		}
	}
	return path.Join(dir, rel, name)
}

// typeCode returns the jennifer code for a Go type spelled name and
// provided by the package at importPath.
func typeCode(name, importPath string) *jen.Statement {
	switch {
	case strings.HasPrefix(name, "*"):
		return jen.Op("*").Add(typeCode(name[1:], importPath))
	case strings.HasPrefix(name, "[]"):
		return jen.Index().Add(typeCode(name[2:], importPath))
	case importPath == "":
		return jen.Id(name)
	}
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return jen.Qual(importPath, name)
}

// docComment adds doc as line comments, or fallback when doc is blank.
func docComment(f *jen.File, doc, fallback string) {
	doc = strings.TrimSpace(doc)
	if doc == "" {
		doc = fallback
	}
	for _, line := range strings.Split(doc, "\n") {
		f.Comment(strings.TrimRight(line, " \t\r"))
	}
}
