// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import (
	"strings"

	"go.uber.org/zap"

	"github.com/albertocavalcante/mdagen/internal/namespace"
	"github.com/albertocavalcante/mdagen/model"
	"github.com/albertocavalcante/mdagen/profile"
	"github.com/albertocavalcante/mdagen/resolve"
)

// Metadata contexts understood by [Context.Projects].
const (
	MetadataLocal         = "local"
	MetadataAll           = "all"
	MetadataProjectPrefix = "project:"
)

// ProjectInfo identifies the project being generated.
type ProjectInfo struct {
	Name       string
	GroupID    string
	ArtifactID string
	Version    string
}

// Context is everything a generator may use. The orchestrator builds one
// per target; it is never shared between targets.
type Context struct {
	// BasePackage is the base namespace of the current application.
	BasePackage string

	// Output directories, relative to Basedir.
	GeneratedSourceDir string
	MainSourceDir      string
	Basedir            string

	Engine  Engine
	Project ProjectInfo

	Target          profile.Target
	MetadataContext string

	Metadata   *model.Repository
	Namespaces *namespace.Resolver
	Languages  map[string]*resolve.Language

	// Options holds free-form generator settings.
	Options map[string]string

	Logger *zap.Logger
	Output *Output
}

// Option returns a generator option with default.
func (c *Context) Option(key, defaultValue string) string {
	if v, ok := c.Options[key]; ok {
		return v
	}
	return defaultValue
}

// TypeService returns a new type resolution service for language.
func (c *Context) TypeService(language string) (*resolve.Service, error) {
	lang, ok := c.Languages[language]
	if !ok {
		return nil, &ContextError{Field: "language", Value: language}
	}
	return resolve.New(c.Metadata, c.Namespaces, lang, resolve.WithLogger(c.Logger))
}

// Projects returns the projects the metadata context selects:
//
//	local            the current application
//	all              every loaded project, in load order
//	project:<name>   the named project
func (c *Context) Projects() ([]string, error) {
	switch mc := c.MetadataContext; {
	case mc == MetadataLocal:
		return []string{c.Metadata.ApplicationName()}, nil
	case mc == MetadataAll:
		return c.Metadata.Projects(), nil
	case strings.HasPrefix(mc, MetadataProjectPrefix):
		name := strings.TrimPrefix(mc, MetadataProjectPrefix)
		if c.Metadata.Project(name) == nil {
			return nil, &ContextError{Field: "metadata context", Value: mc}
		}
		return []string{name}, nil
	default:
		return nil, &ContextError{Field: "metadata context", Value: mc}
	}
}
