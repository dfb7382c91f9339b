// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"slices"

	"go.uber.org/zap"

	"github.com/albertocavalcante/mdagen/generator"
	"github.com/albertocavalcante/mdagen/internal/config"
	"github.com/albertocavalcante/mdagen/internal/logging"
	"github.com/albertocavalcante/mdagen/internal/metadata"
	"github.com/albertocavalcante/mdagen/internal/render"
	"github.com/albertocavalcante/mdagen/profile"
	"github.com/albertocavalcante/mdagen/resolve"
)

// session is the state shared by the commands of one invocation.
type session struct {
	cfg      *config.Config
	logger   *zap.Logger
	registry *generator.Registry
	catalog  *profile.Catalog
}

// newSession loads the configuration and the generator catalog.
func newSession(opts *options) (*session, error) {
	cfg, err := config.Load(opts.v, opts.configFile, opts.dir)
	if err != nil {
		return nil, err
	}

	level := cfg.Log.Level
	if opts.verbose {
		level = "debug"
	}
	logger, err := logging.New(level, cfg.Log.Format)
	if err != nil {
		return nil, err
	}

	s := &session{
		cfg:      cfg,
		logger:   logger,
		registry: generator.NewRegistry(),
		catalog:  profile.NewCatalog(profile.WithLogger(logger)),
	}
	for _, b := range bundles {
		b.register(s.registry)
		if err := loadDescriptors(s.catalog, b.descriptors); err != nil {
			return nil, err
		}
	}
	for _, path := range cfg.Descriptors.Targets {
		if err := s.catalog.LoadTargetsFile(cfg.Path(path)); err != nil {
			return nil, err
		}
	}
	for _, path := range cfg.Descriptors.Profiles {
		if err := s.catalog.LoadProfilesFile(cfg.Path(path)); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// loadDescriptors adds the targets.json and profiles.json of fsys.
func loadDescriptors(c *profile.Catalog, fsys fs.FS) error {
	data, err := fs.ReadFile(fsys, "targets.json")
	if err != nil {
		return fmt.Errorf("reading built-in targets: %w", err)
	}
	if err := c.LoadTargets(data); err != nil {
		return err
	}
	data, err = fs.ReadFile(fsys, "profiles.json")
	if err != nil {
		return fmt.Errorf("reading built-in profiles: %w", err)
	}
	return c.LoadProfiles(data)
}

// metadata loads the application and dependency projects.
func (s *session) metadata(ctx context.Context) (*metadata.Result, error) {
	app := metadata.Source{
		Dir:         s.cfg.Path(s.cfg.Paths.Metadata),
		Name:        s.cfg.Application.Name,
		BasePackage: s.cfg.BasePackage,
	}
	deps := make([]metadata.Source, len(s.cfg.Dependencies))
	for i, d := range s.cfg.Dependencies {
		deps[i] = metadata.Source{
			Dir:         s.cfg.Path(d.Metadata),
			Name:        d.Name,
			BasePackage: d.BasePackage,
		}
	}
	return metadata.Load(ctx, s.logger, app, deps...)
}

// engine builds the template engine from the built-in templates and the
// project's override directory.
func (s *session) engine() (*render.Engine, error) {
	var sources []fs.FS
	for _, b := range bundles {
		if b.templates != nil {
			sources = append(sources, b.templates)
		}
	}
	if s.cfg.Templates != "" {
		dir := s.cfg.Path(s.cfg.Templates)
		if _, err := os.Stat(dir); err != nil {
			return nil, fmt.Errorf("templates: %w", err)
		}
		sources = append(sources, os.DirFS(dir))
	}
	return render.New(sources...)
}

// languages returns the type-mapping tables with the project overrides
// applied.
func (s *session) languages() (map[string]*resolve.Language, error) {
	langs := make(map[string]*resolve.Language, len(bundles))
	for _, b := range bundles {
		l := b.language()
		langs[l.Name] = l
	}
	for name, path := range s.cfg.TypeMappings {
		base, ok := langs[name]
		if !ok {
			known := make([]string, 0, len(langs))
			for k := range langs {
				known = append(known, k)
			}
			slices.Sort(known)
			return nil, fmt.Errorf("typeMappings: unknown language %q (known: %v)", name, known)
		}
		o, err := resolve.LoadLanguage(s.cfg.Path(path))
		if err != nil {
			return nil, err
		}
		l := base.Override(o)
		if err := l.Validate(); err != nil {
			return nil, err
		}
		langs[name] = l
	}
	return langs, nil
}
