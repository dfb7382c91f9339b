// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package decorate wraps model elements with target-language views.
//
// A decorator holds one model element and the [resolve.Service] of the
// language being generated. Derived values (resolved types, signatures,
// import sets) are computed on first use and kept for the life of the
// decorator, so a decorator should not outlive the generation pass that
// created it. Accessors that resolve types return an error instead of
// silently producing an empty type.
//
// Decorators are meant to be handed to templates and code builders.
// Methods returning (value, error) work directly with text/template.
package decorate

import (
	"maps"
	"slices"
)

// BusinessObjectSuffix is appended to entity type names in business
// object signatures.
const BusinessObjectSuffix = "BO"

// Element is the view shared by every decorated model element.
type Element interface {
	Name() string
	Documentation() string
	Type() string
}

// ImportSet is a de-duplicated set of import references.
type ImportSet map[string]struct{}

// NewImportSet returns a set holding refs.
func NewImportSet(refs ...string) ImportSet {
	s := make(ImportSet, len(refs))
	s.Add(refs...)
	return s
}

// Add inserts refs, ignoring empty ones.
func (s ImportSet) Add(refs ...string) {
	for _, r := range refs {
		if r != "" {
			s[r] = struct{}{}
		}
	}
}

// Merge inserts every reference of o.
func (s ImportSet) Merge(o ImportSet) {
	maps.Copy(s, o)
}

// Has reports whether ref is in the set.
func (s ImportSet) Has(ref string) bool {
	_, ok := s[ref]
	return ok
}

// Len returns the number of references.
func (s ImportSet) Len() int { return len(s) }

// Sorted returns the references in lexical order.
func (s ImportSet) Sorted() []string {
	return slices.Sorted(maps.Keys(s))
}
