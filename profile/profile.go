// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package profile resolves generation profiles into ordered target lists.
//
// A target is one atomic generation step: a generator identifier paired
// with a metadata context. A profile names a list of targets and may
// extend other profiles. Expansion flattens the extension graph so that
// every profile yields its parents' targets (in declaration order)
// followed by its own, each target appearing once.
package profile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Target is an atomic generation step.
type Target struct {
	Name            string `json:"name" yaml:"name"`
	Generator       string `json:"generator" yaml:"generator"`
	MetadataContext string `json:"metadataContext" yaml:"metadataContext"`
}

// Profile is a named, composable list of targets.
type Profile struct {
	Name    string   `json:"name" yaml:"name"`
	Extends []string `json:"extends,omitempty" yaml:"extends,omitempty"`
	Targets []string `json:"targets,omitempty" yaml:"targets,omitempty"`
}

// Expanded is a profile with its extension graph flattened.
type Expanded struct {
	Name    string
	Targets []Target
}

// TargetNames returns the names of the expanded targets in order.
func (e *Expanded) TargetNames() []string {
	out := make([]string, len(e.Targets))
	for i, t := range e.Targets {
		out[i] = t.Name
	}
	return out
}

// Catalog collects target and profile definitions.
//
// Definitions are added in source order. A later definition with the same
// name replaces the earlier one, which lets a project override built-in
// descriptors.
type Catalog struct {
	targets      map[string]Target
	targetOrder  []string
	profiles     map[string]Profile
	profileOrder []string

	logger *zap.Logger
}

// Option configures a [Catalog].
type Option func(*Catalog)

// WithLogger sets the logger used for catalog diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(c *Catalog) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewCatalog returns an empty catalog.
func NewCatalog(opts ...Option) *Catalog {
	c := &Catalog{
		targets:  make(map[string]Target),
		profiles: make(map[string]Profile),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AddTarget registers t.
func (c *Catalog) AddTarget(t Target) {
	if _, ok := c.targets[t.Name]; ok {
		c.logger.Debug("replacing target", zap.String("target", t.Name))
	} else {
		c.targetOrder = append(c.targetOrder, t.Name)
	}
	c.targets[t.Name] = t
	c.logger.Debug("added target",
		zap.String("target", t.Name),
		zap.String("generator", t.Generator),
		zap.String("metadataContext", t.MetadataContext),
	)
}

// AddProfile registers p.
func (c *Catalog) AddProfile(p Profile) {
	if _, ok := c.profiles[p.Name]; ok {
		c.logger.Debug("replacing profile", zap.String("profile", p.Name))
	} else {
		c.profileOrder = append(c.profileOrder, p.Name)
	}
	c.profiles[p.Name] = p
}

// Target returns the named target.
func (c *Catalog) Target(name string) (Target, bool) {
	t, ok := c.targets[name]
	return t, ok
}

// Profile returns the named profile.
func (c *Catalog) Profile(name string) (Profile, bool) {
	p, ok := c.profiles[name]
	return p, ok
}

// TargetNames returns the target names in insertion order.
func (c *Catalog) TargetNames() []string {
	return append([]string(nil), c.targetOrder...)
}

// ProfileNames returns the profile names in insertion order.
func (c *Catalog) ProfileNames() []string {
	return append([]string(nil), c.profileOrder...)
}

// LoadTargets decodes a target descriptor list and adds every target.
// JSON and YAML are both accepted. Unknown keys are rejected.
func (c *Catalog) LoadTargets(data []byte) error {
	ts, err := decodeList[Target](data)
	if err != nil {
		return fmt.Errorf("parsing targets: %w", err)
	}
	for i, t := range ts {
		if t.Name == "" {
			return fmt.Errorf("parsing targets: target %d has no name", i)
		}
		if t.Generator == "" {
			return fmt.Errorf("parsing targets: target %s has no generator", t.Name)
		}
	}
	for _, t := range ts {
		c.AddTarget(t)
	}
	return nil
}

// LoadProfiles decodes a profile descriptor list and adds every profile.
// JSON and YAML are both accepted. Unknown keys are rejected.
func (c *Catalog) LoadProfiles(data []byte) error {
	ps, err := decodeList[Profile](data)
	if err != nil {
		return fmt.Errorf("parsing profiles: %w", err)
	}
	for i, p := range ps {
		if p.Name == "" {
			return fmt.Errorf("parsing profiles: profile %d has no name", i)
		}
	}
	for _, p := range ps {
		c.AddProfile(p)
	}
	return nil
}

// decodeList decodes a descriptor list. An empty document is an empty list.
func decodeList[T any](data []byte) ([]T, error) {
	var out []T
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&out); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return out, nil
}

// LoadTargetsFile reads a target descriptor file.
func (c *Catalog) LoadTargetsFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading targets: %w", err)
	}
	if err := c.LoadTargets(data); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// LoadProfilesFile reads a profile descriptor file.
func (c *Catalog) LoadProfilesFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading profiles: %w", err)
	}
	if err := c.LoadProfiles(data); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
