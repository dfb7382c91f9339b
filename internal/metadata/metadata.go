// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package metadata loads model documents from project directories.
package metadata

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/albertocavalcante/mdagen/internal/namespace"
	"github.com/albertocavalcante/mdagen/model"
)

// Extensions lists the file extensions read as metadata documents.
var Extensions = []string{".json", ".yaml", ".yml"}

// Source describes where one project's metadata lives.
type Source struct {
	// Dir holds the project's documents. Subdirectories are read too.
	Dir string

	// Name is the project name. If empty, the documents must name it.
	Name string

	// BasePackage overrides the base namespace declared by the documents.
	BasePackage string
}

// Result contains the loaded metadata.
type Result struct {
	// Repository indexes the application and its dependencies.
	Repository *model.Repository

	// Namespaces maps every loaded project to its base namespace.
	Namespaces *namespace.Resolver

	// Files lists the documents read, in load order.
	Files []string
}

// Load reads the application and its dependencies. Every project
// contributes its namespace mapping.
func Load(ctx context.Context, logger *zap.Logger, app Source, deps ...Source) (*Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	res := &Result{Namespaces: namespace.New()}

	var projects []*model.Project
	for _, src := range append([]Source{app}, deps...) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		p, files, err := LoadProject(src)
		if err != nil {
			return nil, err
		}
		if p.BasePackage == "" {
			return nil, fmt.Errorf("project %s: no base package", p.Name)
		}
		res.Namespaces.Add(p.Name, p.BasePackage)
		res.Files = append(res.Files, files...)
		projects = append(projects, p)
		logger.Debug("loaded project",
			zap.String("project", p.Name),
			zap.String("basePackage", p.BasePackage),
			zap.Int("documents", len(files)),
		)
	}

	repo, err := model.NewRepository(projects[0], projects[1:]...)
	if err != nil {
		return nil, err
	}
	res.Repository = repo
	return res, nil
}

// LoadProject reads and merges every document below src.Dir. It returns
// the project and the files read, in lexical order.
func LoadProject(src Source) (*model.Project, []string, error) {
	files, err := documents(src.Dir)
	if err != nil {
		return nil, nil, err
	}
	if len(files) == 0 {
		return nil, nil, fmt.Errorf("no metadata documents in %s", src.Dir)
	}

	p := &model.Project{Name: src.Name, BasePackage: src.BasePackage}
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, nil, fmt.Errorf("read file: %w", err)
		}
		d, err := Parse(path, data)
		if err != nil {
			return nil, nil, fmt.Errorf("parse %s: %w", path, err)
		}
		switch {
		case p.Name == "":
			p.Name = d.Project
		case d.Project != "" && d.Project != p.Name:
			return nil, nil, fmt.Errorf("%s: document of project %q in %q", path, d.Project, p.Name)
		}
		p.Merge(d)
	}
	if p.Name == "" {
		return nil, nil, fmt.Errorf("no project name for %s", src.Dir)
	}
	return p, files, nil
}

// documents returns the metadata files below dir, sorted.
func documents(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !slices.Contains(Extensions, strings.ToLower(filepath.Ext(path))) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read metadata: %w", err)
	}
	slices.Sort(files)
	return files, nil
}

// Parse decodes one document. JSON and YAML are chosen by the extension
// of name; unknown keys are rejected.
func Parse(name string, data []byte) (*model.Document, error) {
	var d model.Document
	if strings.EqualFold(filepath.Ext(name), ".json") {
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&d); err != nil {
			return nil, err
		}
		return &d, nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return &d, nil
}
