// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package profile

import (
	"errors"
	"strings"
)

// ErrInvalidProfile indicates a profile graph that cannot be expanded.
var ErrInvalidProfile = errors.New("mdagen: invalid profile")

// ReferenceError reports a reference to an undefined profile or target.
// An empty ReferencedBy means the name was requested directly.
type ReferenceError struct {
	Kind         string // "profile" or "target"
	Name         string
	ReferencedBy string   // Profile holding the reference
	Known        []string // Sorted known names, set for direct requests
}

// Error implements the error interface.
func (e *ReferenceError) Error() string {
	if e.ReferencedBy == "" {
		msg := "mdagen: unknown " + e.Kind + " " + e.Name
		if len(e.Known) > 0 {
			msg += "; known " + e.Kind + "s: " + strings.Join(e.Known, ", ")
		}
		return msg
	}
	return "mdagen: profile " + e.ReferencedBy + " references unknown " + e.Kind + " " + e.Name
}

// Is reports whether target is [ErrInvalidProfile].
func (e *ReferenceError) Is(target error) bool {
	return target == ErrInvalidProfile
}

// CycleError reports a cyclic chain of profile extensions.
type CycleError struct {
	// Chain lists the profiles in extension order, starting and ending
	// with the same profile.
	Chain []string
}

// Error implements the error interface.
func (e *CycleError) Error() string {
	return "mdagen: cyclic profile extension: " + strings.Join(e.Chain, " -> ")
}

// Is reports whether target is [ErrInvalidProfile].
func (e *CycleError) Is(target error) bool {
	return target == ErrInvalidProfile
}
