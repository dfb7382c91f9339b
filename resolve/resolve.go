// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package resolve maps semantic model types to target-language types.
//
// A [Service] answers one question: given the project a reference is made
// from and a semantic type name, is it an entity, an enumeration or a
// primitive, which project owns it, and how is it spelled and imported in
// the target language.
package resolve

import (
	"go.uber.org/zap"

	"github.com/albertocavalcante/mdagen/internal/namespace"
	"github.com/albertocavalcante/mdagen/model"
)

// Kind classifies a resolved type.
type Kind int

// Resolution kinds.
const (
	Simple Kind = iota
	Entity
	Enumeration
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case Entity:
		return "entity"
	case Enumeration:
		return "enumeration"
	default:
		return "simple"
	}
}

// Resolution is the outcome of resolving one semantic type.
type Resolution struct {
	Kind Kind

	// Project owns the entity or enumeration. Empty for simple types.
	Project string

	// TypeName is the target-language spelling of the element type.
	TypeName string

	// Import is the reference needed to use TypeName, or empty.
	Import string
}

// Service resolves semantic types against a metadata repository.
// It holds no mutable state and may be shared.
type Service struct {
	repo   *model.Repository
	ns     *namespace.Resolver
	lang   *Language
	logger *zap.Logger
}

// Option configures a [Service].
type Option func(*Service)

// WithLogger sets the logger used for resolution diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New returns a service for lang. The language table must map every
// primitive.
func New(repo *model.Repository, ns *namespace.Resolver, lang *Language, opts ...Option) (*Service, error) {
	if err := lang.Validate(); err != nil {
		return nil, err
	}
	s := &Service{
		repo:   repo,
		ns:     ns,
		lang:   lang,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Resolve classifies semanticType as seen from the owner project.
//
// Entities are searched first, then enumerations; each search visits the
// owner project and then every other loaded project in load order. Names
// that match neither are looked up in the primitive table. An empty owner
// means the current application.
func (s *Service) Resolve(owner, semanticType string) (Resolution, error) {
	if owner == "" {
		owner = s.repo.ApplicationName()
	}
	return s.resolve(owner, semanticType, s.scope(owner))
}

// ResolveLocal is like [Service.Resolve] but only searches the owner
// project for entities and enumerations.
func (s *Service) ResolveLocal(owner, semanticType string) (Resolution, error) {
	if owner == "" {
		owner = s.repo.ApplicationName()
	}
	return s.resolve(owner, semanticType, []string{owner})
}

func (s *Service) resolve(owner, semanticType string, scope []string) (Resolution, error) {
	for _, p := range scope {
		if e := s.repo.Entity(p, semanticType); e != nil {
			return s.element(owner, p, e.Name, Entity, s.lang.Entity)
		}
	}
	for _, p := range scope {
		if e := s.repo.Enumeration(p, semanticType); e != nil {
			return s.element(owner, p, e.Name, Enumeration, s.lang.Enumeration)
		}
	}

	m, ok := s.lang.Primitives[semanticType]
	if !ok {
		return Resolution{}, &TypeError{
			Project: owner,
			Type:    semanticType,
			Reason:  "not an entity, enumeration or " + s.lang.Name + " primitive",
		}
	}
	return Resolution{Kind: Simple, TypeName: m.Type, Import: m.Import}, nil
}

func (s *Service) element(owner, project, name string, kind Kind, layout Layout) (Resolution, error) {
	base, ok := s.ns.BasePackage(project)
	if !ok {
		return Resolution{}, &TypeError{
			Project: owner,
			Type:    name,
			Reason:  "no namespace for project " + project,
		}
	}
	if project != owner {
		s.logger.Debug("resolved type in another project",
			zap.String("type", name),
			zap.String("owner", owner),
			zap.String("project", project),
		)
	}
	return Resolution{
		Kind:     kind,
		Project:  project,
		TypeName: layout.TypeName(base, name),
		Import:   layout.Import(base, name),
	}, nil
}

// scope returns owner followed by the other loaded projects.
func (s *Service) scope(owner string) []string {
	projects := s.repo.Projects()
	out := make([]string, 0, len(projects)+1)
	out = append(out, owner)
	for _, p := range projects {
		if p != owner {
			out = append(out, p)
		}
	}
	return out
}

// BasePackage returns the base namespace of project.
func (s *Service) BasePackage(project string) (string, bool) {
	return s.ns.BasePackage(project)
}

// ApplicationName returns the current application.
func (s *Service) ApplicationName() string { return s.repo.ApplicationName() }

// Language returns the type-mapping table in use.
func (s *Service) Language() *Language { return s.lang }

// Repository returns the metadata repository.
func (s *Service) Repository() *model.Repository { return s.repo }

// Namespaces returns the namespace resolver.
func (s *Service) Namespaces() *namespace.Resolver { return s.ns }

// Logger returns the service logger.
func (s *Service) Logger() *zap.Logger { return s.logger }
