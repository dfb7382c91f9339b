// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package kotlin generates Kotlin sources from the model through the
// template engine.
//
// The generated code uses idiomatic Kotlin patterns:
//   - enum class with @SerialName values for enumerations
//   - data class with init-block validation for entities
//   - interface per service, suspend functions for asynchronous operations
//   - kotlinx.serialization annotations for JSON round-tripping
//
// The built-in templates live under templates/kotlin and are named
// "kotlin/<kind>.kt.tmpl"; a project may override any of them.
package kotlin

import (
	"bytes"
	"embed"
	"io/fs"
	"path"
	"strings"

	"github.com/albertocavalcante/mdagen/decorate"
	"github.com/albertocavalcante/mdagen/generator"
	"github.com/albertocavalcante/mdagen/internal/naming"
)

// Generator identifiers.
const (
	EnumerationGenerator = "kotlin/enumeration"
	TransferGenerator    = "kotlin/transfer"
	ServiceGenerator     = "kotlin/service"
)

// Template names.
const (
	EnumerationTemplate = "kotlin/enumeration.kt.tmpl"
	TransferTemplate    = "kotlin/transfer.kt.tmpl"
	ServiceTemplate     = "kotlin/service.kt.tmpl"
)

// Descriptors holds the built-in targets.json and profiles.json.
//
//go:embed targets.json profiles.json
var Descriptors embed.FS

//go:embed templates
var templates embed.FS

// Templates returns the built-in templates.
func Templates() fs.FS {
	sub, err := fs.Sub(templates, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}

// Register adds the Kotlin generators to r.
func Register(r *generator.Registry) {
	r.Register(EnumerationGenerator, NewEnumerationGenerator)
	r.Register(TransferGenerator, NewTransferGenerator)
	r.Register(ServiceGenerator, NewServiceGenerator)
}

const header = "Code generated by mdagen. DO NOT EDIT."

const serializable = "kotlinx.serialization.Serializable"

// unit is the data shared by every template.
type unit struct {
	Header  string
	Package string
	Imports []string
}

func newUnit(pkg string, imports decorate.ImportSet) unit {
	var refs []string
	for _, ref := range imports.Sorted() {
		if packageOf(ref) != pkg {
			refs = append(refs, ref)
		}
	}
	return unit{Header: header, Package: pkg, Imports: refs}
}

// packageOf returns the package part of a type import.
func packageOf(ref string) string {
	i := strings.LastIndex(ref, ".")
	if i < 0 {
		return ""
	}
	return ref[:i]
}

// emit renders tmpl and records the result as <Type>.kt in the package
// directory below the generated source directory.
func emit(gc *generator.Context, tmpl, pkg, typeName string, data any) error {
	if gc.Engine == nil {
		return &generator.ContextError{Field: "engine", Value: ""}
	}
	var buf bytes.Buffer
	if err := gc.Engine.Render(&buf, tmpl, data); err != nil {
		return err
	}
	gc.Output.Add(path.Join(gc.GeneratedSourceDir, naming.PackagePath(pkg), typeName+".kt"), buf.Bytes())
	return nil
}
