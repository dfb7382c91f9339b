// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/albertocavalcante/mdagen/profile"
	"github.com/albertocavalcante/mdagen/resolve"
)

// Result holds the outputs of a profile run in target order.
type Result struct {
	Profile string
	Targets []TargetResult
	Elapsed time.Duration
}

// TargetResult is the output of one target.
type TargetResult struct {
	Target profile.Target
	Output *Output
}

// Files returns the files of every target in target order.
func (r *Result) Files() []File {
	var out []File
	for _, t := range r.Targets {
		out = append(out, t.Output.Files()...)
	}
	return out
}

// Orchestrator runs the targets of a profile.
type Orchestrator struct {
	catalog     *profile.Catalog
	registry    *Registry
	base        Context
	logger      *zap.Logger
	parallelism int
}

// OrchestratorOption configures an [Orchestrator].
type OrchestratorOption func(*Orchestrator)

// WithRegistry sets the generator registry. The default registry is used
// otherwise.
func WithRegistry(r *Registry) OrchestratorOption {
	return func(o *Orchestrator) { o.registry = r }
}

// WithLogger sets the orchestrator logger.
func WithLogger(l *zap.Logger) OrchestratorOption {
	return func(o *Orchestrator) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithParallelism runs up to n targets at once. Values below 2 keep the
// sequential behavior.
func WithParallelism(n int) OrchestratorOption {
	return func(o *Orchestrator) { o.parallelism = n }
}

// NewOrchestrator returns an orchestrator for the profiles of catalog.
// Every target context starts as a copy of base.
func NewOrchestrator(catalog *profile.Catalog, base Context, opts ...OrchestratorOption) *Orchestrator {
	o := &Orchestrator{
		catalog:  catalog,
		registry: defaultRegistry,
		base:     base,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Generate runs every target of the named profile.
//
// Targets run in profile order and the first failure aborts the run. In
// parallel mode all generators are created before any of them runs, and
// the failure of the earliest target in profile order is reported.
func (o *Orchestrator) Generate(ctx context.Context, name string) (*Result, error) {
	start := time.Now()

	if _, ok := o.catalog.Profile(name); !ok {
		known := o.catalog.ProfileNames()
		slices.Sort(known)
		return nil, &UnknownProfileError{Name: name, Known: known}
	}
	expanded, err := o.catalog.Expand()
	if err != nil {
		return nil, fmt.Errorf("expanding profiles: %w", err)
	}
	p := expanded[name]

	o.logger.Info("generating profile",
		zap.String("profile", name),
		zap.Int("targets", len(p.Targets)),
	)

	res := &Result{Profile: name, Targets: make([]TargetResult, len(p.Targets))}
	if o.parallelism > 1 {
		err = o.runParallel(ctx, p, res)
	} else {
		err = o.runSequential(ctx, p, res)
	}
	if err != nil {
		return nil, err
	}

	res.Elapsed = time.Since(start)
	o.logger.Info("profile generated",
		zap.String("profile", name),
		zap.Duration("elapsed", res.Elapsed),
	)
	return res, nil
}

func (o *Orchestrator) runSequential(ctx context.Context, p *profile.Expanded, res *Result) error {
	for i, t := range p.Targets {
		if err := ctx.Err(); err != nil {
			return err
		}
		g, err := o.instantiate(p.Name, t)
		if err != nil {
			return err
		}
		out, err := o.run(ctx, p.Name, t, g)
		if err != nil {
			return err
		}
		res.Targets[i] = TargetResult{Target: t, Output: out}
	}
	return nil
}

func (o *Orchestrator) runParallel(ctx context.Context, p *profile.Expanded, res *Result) error {
	gens := make([]Generator, len(p.Targets))
	for i, t := range p.Targets {
		g, err := o.instantiate(p.Name, t)
		if err != nil {
			return err
		}
		gens[i] = g
	}

	errs := make([]error, len(p.Targets))
	var eg errgroup.Group
	eg.SetLimit(o.parallelism)
	for i, t := range p.Targets {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return nil
			}
			out, err := o.run(ctx, p.Name, t, gens[i])
			if err != nil {
				errs[i] = err
				return nil
			}
			res.Targets[i] = TargetResult{Target: t, Output: out}
			return nil
		})
	}
	_ = eg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func (o *Orchestrator) instantiate(profileName string, t profile.Target) (Generator, error) {
	factory, ok := o.registry.Lookup(t.Generator)
	if !ok {
		return nil, &GenerationError{
			Profile:   profileName,
			Target:    t.Name,
			Generator: t.Generator,
			Phase:     PhaseLookup,
			Cause:     ErrUnknownGenerator,
		}
	}
	g, err := factory()
	if err != nil {
		return nil, &GenerationError{
			Profile:   profileName,
			Target:    t.Name,
			Generator: t.Generator,
			Phase:     PhaseInstantiate,
			Cause:     err,
		}
	}
	return g, nil
}

func (o *Orchestrator) run(ctx context.Context, profileName string, t profile.Target, g Generator) (*Output, error) {
	gc := o.newContext(t)
	o.logger.Debug("generating target",
		zap.String("profile", profileName),
		zap.String("target", t.Name),
		zap.String("generator", t.Generator),
		zap.String("metadataContext", t.MetadataContext),
	)
	if err := g.Generate(ctx, gc); err != nil {
		return nil, &GenerationError{
			Profile:   profileName,
			Target:    t.Name,
			Generator: t.Generator,
			Phase:     PhaseGenerate,
			Cause:     err,
		}
	}
	return gc.Output, nil
}

// newContext returns a fresh context for t. Options and languages are
// copied so a generator cannot leak settings into later targets.
func (o *Orchestrator) newContext(t profile.Target) *Context {
	gc := o.base
	gc.Options = maps.Clone(o.base.Options)
	if gc.Options == nil {
		gc.Options = make(map[string]string)
	}
	if o.base.Languages != nil {
		gc.Languages = make(map[string]*resolve.Language, len(o.base.Languages))
		for name, l := range o.base.Languages {
			gc.Languages[name] = l.Override(nil)
		}
	}
	gc.Target = t
	gc.MetadataContext = t.MetadataContext
	gc.Output = NewOutput()
	gc.Logger = o.logger.With(zap.String("target", t.Name))
	return &gc
}
