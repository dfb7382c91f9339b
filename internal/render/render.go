// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package render is the text/template engine used by template-driven
// generators.
package render

import (
	"fmt"
	"io"
	"io/fs"
	"slices"
	"strings"
	"text/template"

	"github.com/albertocavalcante/mdagen/internal/naming"
)

// Extension marks template files inside a source.
const Extension = ".tmpl"

// Engine holds a set of named templates.
//
// Templates are named by their path inside the source they were loaded
// from, e.g. "kotlin/transfer.kt.tmpl". A later source may redefine a
// template of an earlier one; this is how projects override built-in
// templates.
type Engine struct {
	root  *template.Template
	names []string
}

// New parses every template file of sources, in order.
func New(sources ...fs.FS) (*Engine, error) {
	e := &Engine{
		root: template.New("").Funcs(Funcs()).Option("missingkey=error"),
	}
	for _, src := range sources {
		if err := e.load(src); err != nil {
			return nil, err
		}
	}
	return e, nil
}

func (e *Engine) load(src fs.FS) error {
	return fs.WalkDir(src, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, Extension) {
			return nil
		}
		data, err := fs.ReadFile(src, path)
		if err != nil {
			return fmt.Errorf("reading template %s: %w", path, err)
		}
		if _, err := e.root.New(path).Parse(string(data)); err != nil {
			return fmt.Errorf("parsing template %s: %w", path, err)
		}
		if !slices.Contains(e.names, path) {
			e.names = append(e.names, path)
		}
		return nil
	})
}

// Render executes the named template with data.
func (e *Engine) Render(w io.Writer, name string, data any) error {
	t := e.root.Lookup(name)
	if t == nil {
		return fmt.Errorf("template %q not found", name)
	}
	if err := t.Execute(w, data); err != nil {
		return fmt.Errorf("rendering %s: %w", name, err)
	}
	return nil
}

// Names returns the loaded template names in load order.
func (e *Engine) Names() []string {
	return slices.Clone(e.names)
}

// Funcs returns the helper functions available to every template.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"capitalize":   naming.Capitalize,
		"uncapitalize": naming.Uncapitalize,
		"upper":        naming.Upper,
		"lower":        strings.ToLower,
		"snake":        naming.CamelToSnake,
		"screaming":    naming.CamelToScreamingSnake,
		"join":         strings.Join,
		"packagePath":  naming.PackagePath,
		"last": func(i, n int) bool {
			return i == n-1
		},
	}
}
