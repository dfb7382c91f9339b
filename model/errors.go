// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package model

import (
	"errors"
	"strings"
)

// ErrInvalidModel indicates metadata that cannot be indexed.
var ErrInvalidModel = errors.New("mdagen: invalid model")

// ValidationError describes a metadata problem found while building a
// [Repository].
type ValidationError struct {
	Project string // Owning project
	Element string // Element kind ("entity", "operation", ...)
	Name    string // Element name
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("mdagen: invalid model")
	if e.Project != "" {
		b.WriteString(" in project ")
		b.WriteString(e.Project)
	}
	if e.Element != "" {
		b.WriteString(" on ")
		b.WriteString(e.Element)
	}
	if e.Name != "" {
		b.WriteString(" ")
		b.WriteString(e.Name)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

// Is reports whether target is [ErrInvalidModel].
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidModel
}
