// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package namespace maps project names to their base namespace.
package namespace

// Resolver maps a project name to its base package. It is filled once
// while the run is set up and only read afterwards.
type Resolver struct {
	bases map[string]string
	order []string
}

// New returns an empty resolver.
func New() *Resolver {
	return &Resolver{bases: make(map[string]string)}
}

// Add records base as the namespace of project. A later call for the same
// project replaces the earlier mapping.
func (r *Resolver) Add(project, base string) {
	if _, ok := r.bases[project]; !ok {
		r.order = append(r.order, project)
	}
	r.bases[project] = base
}

// BasePackage returns the base namespace of project.
func (r *Resolver) BasePackage(project string) (string, bool) {
	base, ok := r.bases[project]
	return base, ok
}

// Projects returns the mapped projects in registration order.
func (r *Resolver) Projects() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}
