// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package resolve

import (
	"errors"
	"strings"
)

// Sentinel errors for resolution failures.
var (
	// ErrUnresolvedType indicates a semantic type that maps to nothing.
	ErrUnresolvedType = errors.New("mdagen: unresolved type")
	// ErrIncompleteMapping indicates a type-mapping table that does not
	// cover every primitive.
	ErrIncompleteMapping = errors.New("mdagen: incomplete type mapping")
)

// TypeError reports a semantic type the service could not resolve.
type TypeError struct {
	Project string // Owner project the lookup started from
	Type    string // Semantic type name
	Reason  string
}

// Error implements the error interface.
func (e *TypeError) Error() string {
	var b strings.Builder
	b.WriteString("mdagen: cannot resolve type ")
	b.WriteString(e.Type)
	if e.Project != "" {
		b.WriteString(" from project ")
		b.WriteString(e.Project)
	}
	if e.Reason != "" {
		b.WriteString(": ")
		b.WriteString(e.Reason)
	}
	return b.String()
}

// Is reports whether target is [ErrUnresolvedType].
func (e *TypeError) Is(target error) bool {
	return target == ErrUnresolvedType
}

// MappingError reports primitives a language table leaves unmapped.
type MappingError struct {
	Language string
	Missing  []string
}

// Error implements the error interface.
func (e *MappingError) Error() string {
	return "mdagen: language " + e.Language + " does not map " + strings.Join(e.Missing, ", ")
}

// Is reports whether target is [ErrIncompleteMapping].
func (e *MappingError) Is(target error) bool {
	return target == ErrIncompleteMapping
}
