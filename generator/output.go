// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// File is one generated file.
type File struct {
	// Path is relative to the project base directory.
	Path    string
	Content []byte

	// Overwrite is false for files that are generated once and then
	// owned by the developer.
	Overwrite bool
}

// Output collects the files produced by one target, in production order.
type Output struct {
	files []File
	index map[string]int
}

// NewOutput creates a new Output.
func NewOutput() *Output {
	return &Output{index: make(map[string]int)}
}

// Add records a file that is regenerated on every run. Adding the same
// path again replaces the content.
func (o *Output) Add(path string, content []byte) {
	o.add(File{Path: path, Content: content, Overwrite: true})
}

// AddOnce records a file that is only written when it does not exist yet.
func (o *Output) AddOnce(path string, content []byte) {
	o.add(File{Path: path, Content: content})
}

func (o *Output) add(f File) {
	f.Path = filepath.ToSlash(filepath.Clean(f.Path))
	if i, ok := o.index[f.Path]; ok {
		o.files[i] = f
		return
	}
	o.index[f.Path] = len(o.files)
	o.files = append(o.files, f)
}

// Files returns the recorded files in production order.
func (o *Output) Files() []File {
	return append([]File(nil), o.files...)
}

// Len returns the number of recorded files.
func (o *Output) Len() int { return len(o.files) }

// Get returns the content recorded for path.
func (o *Output) Get(path string) ([]byte, bool) {
	i, ok := o.index[filepath.ToSlash(filepath.Clean(path))]
	if !ok {
		return nil, false
	}
	return o.files[i].Content, true
}

// Write stores every file below root. It returns the paths actually
// written; files added with AddOnce that already exist are skipped.
func (o *Output) Write(root string) ([]string, error) {
	var written []string
	for _, f := range o.files {
		dst := filepath.Join(root, filepath.FromSlash(f.Path))
		if !f.Overwrite {
			if _, err := os.Stat(dst); err == nil {
				continue
			} else if !errors.Is(err, fs.ErrNotExist) {
				return written, fmt.Errorf("checking %s: %w", dst, err)
			}
		}
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return written, fmt.Errorf("creating directory for %s: %w", f.Path, err)
		}
		if err := os.WriteFile(dst, f.Content, 0o644); err != nil {
			return written, fmt.Errorf("writing %s: %w", f.Path, err)
		}
		written = append(written, f.Path)
	}
	return written, nil
}
