// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Command mdagen generates application sources from model metadata.
//
// Usage:
//
//	mdagen generate [flags]
//	mdagen profiles
//	mdagen targets
//	mdagen version
//
// Flags:
//
//	-c, --config       Configuration file (default: <dir>/mdagen.yaml)
//	-C, --dir          Project directory (default: .)
//	-p, --profile      Profile to generate
//	--parallelism      Number of targets generated at once
//	--dry-run          List the files without writing them
//	-v, --verbose      Verbose output
//	--no-color         Disable colored output
//
// Settings not given as flags are read from mdagen.yaml and MDAGEN_*
// environment variables.
package main

import (
	"os"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}
