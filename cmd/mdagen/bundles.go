// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"io/fs"

	"github.com/albertocavalcante/mdagen/generator"
	"github.com/albertocavalcante/mdagen/generators/golang"
	"github.com/albertocavalcante/mdagen/resolve"
)

// bundle is a built-in generator family.
type bundle struct {
	// register adds the family's generators.
	register func(*generator.Registry)

	// descriptors holds targets.json and profiles.json.
	descriptors fs.FS

	// templates is nil for families that build code without templates.
	templates fs.FS

	language func() *resolve.Language
}

// bundles lists the families compiled into this binary. It is filled by
// the embedded_*.go files.
var bundles []bundle

func goBundle() bundle {
	return bundle{
		register:    golang.Register,
		descriptors: golang.Descriptors,
		language:    golang.Language,
	}
}
