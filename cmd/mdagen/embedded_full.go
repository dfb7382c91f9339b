// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

//go:build mdagen_full

package main

import (
	"github.com/albertocavalcante/mdagen/generators/kotlin"
)

func init() {
	// Full build: all generator families embedded
	bundles = append(bundles, goBundle(), bundle{
		register:    kotlin.Register,
		descriptors: kotlin.Descriptors,
		templates:   kotlin.Templates(),
		language:    kotlin.Language,
	})
}
