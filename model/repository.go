// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package model

import "fmt"

// Repository is the read-only metadata store for one generation run.
//
// It is built once from the current application and its dependencies and
// never changes afterwards, so it is safe to share between goroutines.
type Repository struct {
	application string
	order       []string
	projects    map[string]*Project

	entities     map[key]*Entity
	enumerations map[key]*Enumeration
	formats      map[string]*Format
}

type key struct {
	project string
	name    string
}

// NewRepository indexes application followed by its dependencies.
// The load order is kept: lookups that scan several projects visit them in
// that order, application first.
//
// Elements with an empty Project are assigned to the project that holds
// them. Operations inherit the project of their service.
func NewRepository(application *Project, dependencies ...*Project) (*Repository, error) {
	if application == nil || application.Name == "" {
		return nil, &ValidationError{Element: "project", Message: "application name is required"}
	}

	r := &Repository{
		application:  application.Name,
		projects:     make(map[string]*Project),
		entities:     make(map[key]*Entity),
		enumerations: make(map[key]*Enumeration),
		formats:      make(map[string]*Format),
	}

	for _, p := range append([]*Project{application}, dependencies...) {
		if err := r.add(p); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Repository) add(p *Project) error {
	if p == nil || p.Name == "" {
		return &ValidationError{Element: "project", Message: "name is required"}
	}
	if _, ok := r.projects[p.Name]; ok {
		return &ValidationError{Element: "project", Name: p.Name, Message: "loaded more than once"}
	}
	r.projects[p.Name] = p
	r.order = append(r.order, p.Name)

	for _, e := range p.Entities {
		if e.Project == "" {
			e.Project = p.Name
		}
		k := key{p.Name, e.Name}
		if _, ok := r.entities[k]; ok {
			return &ValidationError{Project: p.Name, Element: "entity", Name: e.Name, Message: "duplicate definition"}
		}
		r.entities[k] = e
	}

	for _, e := range p.Enumerations {
		if e.Project == "" {
			e.Project = p.Name
		}
		k := key{p.Name, e.Name}
		if _, ok := r.enumerations[k]; ok {
			return &ValidationError{Project: p.Name, Element: "enumeration", Name: e.Name, Message: "duplicate definition"}
		}
		seen := make(map[string]bool, len(e.Enums))
		for _, lit := range e.Enums {
			if seen[lit.Name] {
				return &ValidationError{
					Project: p.Name,
					Element: "enumeration",
					Name:    e.Name,
					Message: fmt.Sprintf("duplicate literal %q", lit.Name),
				}
			}
			seen[lit.Name] = true
		}
		r.enumerations[k] = e
	}

	services := make(map[string]bool, len(p.Services))
	for _, s := range p.Services {
		if s.Project == "" {
			s.Project = p.Name
		}
		if services[s.Name] {
			return &ValidationError{Project: p.Name, Element: "service", Name: s.Name, Message: "duplicate definition"}
		}
		services[s.Name] = true
		for _, op := range s.Operations {
			op.Project = s.Project
			if op.ReturnType != "" && op.ReturnManyType != "" {
				return &ValidationError{
					Project: p.Name,
					Element: "operation",
					Name:    s.Name + "." + op.Name,
					Message: "returnType and returnManyType are mutually exclusive",
				}
			}
		}
	}

	for _, f := range p.Formats {
		if _, ok := r.formats[f.Name]; ok {
			continue
		}
		r.formats[f.Name] = f
	}
	return nil
}

// ApplicationName returns the name of the current application.
func (r *Repository) ApplicationName() string {
	return r.application
}

// Projects returns every loaded project name in load order.
func (r *Repository) Projects() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Project returns the named project, or nil.
func (r *Repository) Project(name string) *Project {
	return r.projects[name]
}

// Entity returns the entity named name in project, or nil.
func (r *Repository) Entity(project, name string) *Entity {
	return r.entities[key{project, name}]
}

// Enumeration returns the enumeration named name in project, or nil.
func (r *Repository) Enumeration(project, name string) *Enumeration {
	return r.enumerations[key{project, name}]
}

// Format returns the named validation format, or nil. When several projects
// define the same format, the first one in load order wins.
func (r *Repository) Format(name string) *Format {
	return r.formats[name]
}

// Entities returns the entities of project in declaration order.
func (r *Repository) Entities(project string) []*Entity {
	if p := r.projects[project]; p != nil {
		return p.Entities
	}
	return nil
}

// Enumerations returns the enumerations of project in declaration order.
func (r *Repository) Enumerations(project string) []*Enumeration {
	if p := r.projects[project]; p != nil {
		return p.Enumerations
	}
	return nil
}

// Services returns the services of project in declaration order.
func (r *Repository) Services(project string) []*Service {
	if p := r.projects[project]; p != nil {
		return p.Services
	}
	return nil
}
