// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

//go:build !mdagen_full

package main

func init() {
	// Default build: only Go generators embedded
	bundles = append(bundles, goBundle())
}
