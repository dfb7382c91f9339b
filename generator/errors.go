// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for orchestration failures.
var (
	// ErrUnknownProfile indicates a profile name missing from the catalog.
	ErrUnknownProfile = errors.New("mdagen: unknown profile")
	// ErrGenerationFailed indicates a target that could not be generated.
	ErrGenerationFailed = errors.New("mdagen: generation failed")
	// ErrUnknownGenerator indicates a generator identifier with no factory.
	ErrUnknownGenerator = errors.New("mdagen: unknown generator")
	// ErrInvalidContext indicates a malformed generation context.
	ErrInvalidContext = errors.New("mdagen: invalid generation context")
)

// Phases of target generation reported by [GenerationError].
const (
	PhaseLookup      = "lookup"
	PhaseInstantiate = "instantiate"
	PhaseGenerate    = "generate"
)

// UnknownProfileError reports a profile name that is not defined.
type UnknownProfileError struct {
	Name  string
	Known []string // Sorted names of every defined profile
}

// Error implements the error interface.
func (e *UnknownProfileError) Error() string {
	var b strings.Builder
	b.WriteString("mdagen: unknown profile ")
	b.WriteString(e.Name)
	if len(e.Known) == 0 {
		b.WriteString(": no profiles are defined")
	} else {
		b.WriteString("; known profiles: ")
		b.WriteString(strings.Join(e.Known, ", "))
	}
	return b.String()
}

// Is reports whether target is [ErrUnknownProfile].
func (e *UnknownProfileError) Is(target error) bool {
	return target == ErrUnknownProfile
}

// GenerationError reports the target whose generation failed.
type GenerationError struct {
	Profile   string
	Target    string
	Generator string
	Phase     string
	Cause     error
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	var b strings.Builder
	b.WriteString("mdagen: profile ")
	b.WriteString(e.Profile)
	b.WriteString(": target ")
	b.WriteString(e.Target)
	b.WriteString(" (")
	b.WriteString(e.Generator)
	b.WriteString(")")
	if e.Phase != "" {
		b.WriteString(": ")
		b.WriteString(e.Phase)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is [ErrGenerationFailed].
func (e *GenerationError) Is(target error) bool {
	return target == ErrGenerationFailed
}

// ContextError reports an invalid value in a generation context.
type ContextError struct {
	Field string
	Value string
}

// Error implements the error interface.
func (e *ContextError) Error() string {
	return fmt.Sprintf("mdagen: invalid %s %q", e.Field, e.Value)
}

// Is reports whether target is [ErrInvalidContext].
func (e *ContextError) Is(target error) bool {
	return target == ErrInvalidContext
}
