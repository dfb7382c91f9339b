// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package generator defines the generator contract and runs profiles.
//
// A generator is bound to a target by an identifier such as
// "kotlin/transfer". Identifiers are mapped to factories in a [Registry];
// the [Orchestrator] expands a profile into its targets and invokes one
// freshly created generator per target with its own [Context].
package generator

import (
	"context"
	"io"
)

// Generator produces the files of one target.
type Generator interface {
	// Generate writes its files to gc.Output. Any error aborts the run.
	Generate(ctx context.Context, gc *Context) error
}

// Factory creates a generator instance.
type Factory func() (Generator, error)

// Func adapts an ordinary function to the [Generator] interface.
type Func func(ctx context.Context, gc *Context) error

// Generate calls f(ctx, gc).
func (f Func) Generate(ctx context.Context, gc *Context) error {
	return f(ctx, gc)
}

// Engine renders named templates.
type Engine interface {
	Render(w io.Writer, name string, data any) error
}
