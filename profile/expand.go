// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package profile

import (
	"maps"
	"slices"
)

// Expand flattens every profile of c.
//
// Each expanded target list holds the expansions of the parent profiles in
// declaration order followed by the profile's own targets. A target
// reached more than once keeps its first position. Unknown references and
// extension cycles are errors; nothing is silently dropped.
func Expand(c *Catalog) (map[string]*Expanded, error) {
	x := newExpander(c)
	for _, name := range c.profileOrder {
		if _, err := x.expand(name, ""); err != nil {
			return nil, err
		}
	}
	return x.done, nil
}

// Expand flattens every profile of the catalog. See [Expand].
func (c *Catalog) Expand() (map[string]*Expanded, error) {
	return Expand(c)
}

// ExpandProfile flattens a single profile and the profiles it extends.
func (c *Catalog) ExpandProfile(name string) (*Expanded, error) {
	return newExpander(c).expand(name, "")
}

type expander struct {
	c    *Catalog
	done map[string]*Expanded

	// chain holds the profiles currently being expanded, outermost first.
	chain []string
}

func newExpander(c *Catalog) *expander {
	return &expander{c: c, done: make(map[string]*Expanded)}
}

func (x *expander) expand(name, referrer string) (*Expanded, error) {
	if e, ok := x.done[name]; ok {
		return e, nil
	}
	if i := slices.Index(x.chain, name); i >= 0 {
		chain := append(slices.Clone(x.chain[i:]), name)
		return nil, &CycleError{Chain: chain}
	}
	p, ok := x.c.profiles[name]
	if !ok {
		re := &ReferenceError{Kind: "profile", Name: name, ReferencedBy: referrer}
		if referrer == "" {
			re.Known = slices.Sorted(maps.Keys(x.c.profiles))
		}
		return nil, re
	}

	x.chain = append(x.chain, name)
	defer func() { x.chain = x.chain[:len(x.chain)-1] }()

	var (
		targets []Target
		seen    = make(map[string]bool)
	)
	add := func(t Target) {
		if !seen[t.Name] {
			seen[t.Name] = true
			targets = append(targets, t)
		}
	}

	for _, parent := range p.Extends {
		pe, err := x.expand(parent, name)
		if err != nil {
			return nil, err
		}
		for _, t := range pe.Targets {
			add(t)
		}
	}
	for _, tn := range p.Targets {
		t, ok := x.c.targets[tn]
		if !ok {
			return nil, &ReferenceError{Kind: "target", Name: tn, ReferencedBy: name}
		}
		add(t)
	}

	e := &Expanded{Name: name, Targets: targets}
	x.done[name] = e
	return e, nil
}
