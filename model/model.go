// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package model defines the platform-independent description of a software
// model: entities with fields, enumerations, and services exposing
// operations with parameters.
//
// Elements are grouped by project (application). A [Repository] indexes the
// elements of every project loaded for one generation run and answers the
// lookups the type resolution service needs.
//
// The types map directly to the metadata documents, which may be written in
// JSON or YAML.
package model

// Document is one metadata file. A project may be split across any number
// of documents; they are merged by project name.
type Document struct {
	// Project is the owning project (application) name.
	Project string `json:"project" yaml:"project"`

	// BasePackage is the project's base namespace (e.g. "com.example.app").
	BasePackage string `json:"basePackage,omitempty" yaml:"basePackage,omitempty"`

	Entities     []*Entity      `json:"entities,omitempty" yaml:"entities,omitempty"`
	Enumerations []*Enumeration `json:"enumerations,omitempty" yaml:"enumerations,omitempty"`
	Services     []*Service     `json:"services,omitempty" yaml:"services,omitempty"`
	Formats      []*Format      `json:"formats,omitempty" yaml:"formats,omitempty"`
}

// Project groups every element owned by one application.
type Project struct {
	Name        string
	BasePackage string

	Entities     []*Entity
	Enumerations []*Enumeration
	Services     []*Service
	Formats      []*Format
}

// Merge appends the elements of d to p.
func (p *Project) Merge(d *Document) {
	if p.BasePackage == "" {
		p.BasePackage = d.BasePackage
	}
	p.Entities = append(p.Entities, d.Entities...)
	p.Enumerations = append(p.Enumerations, d.Enumerations...)
	p.Services = append(p.Services, d.Services...)
	p.Formats = append(p.Formats, d.Formats...)
}

// Entity is a named business object type.
type Entity struct {
	Name          string `json:"name" yaml:"name"`
	Documentation string `json:"documentation,omitempty" yaml:"documentation,omitempty"`

	// Project is filled in by the repository when left empty.
	Project string `json:"project,omitempty" yaml:"project,omitempty"`

	Fields []*Field `json:"fields,omitempty" yaml:"fields,omitempty"`
}

// Field is an attribute of an entity.
//
// Type holds a semantic type: a primitive keyword, an entity name or an
// enumeration name. Which one applies is decided by lookup, never stored.
type Field struct {
	Name          string `json:"name" yaml:"name"`
	Documentation string `json:"documentation,omitempty" yaml:"documentation,omitempty"`
	Type          string `json:"type" yaml:"type"`

	Column    string `json:"column,omitempty" yaml:"column,omitempty"`
	Label     string `json:"label,omitempty" yaml:"label,omitempty"`
	Required  bool   `json:"required,omitempty" yaml:"required,omitempty"`
	Generator string `json:"generator,omitempty" yaml:"generator,omitempty"`
	Format    string `json:"format,omitempty" yaml:"format,omitempty"`

	// Project declares where Type lives when External is set.
	Project  string `json:"project,omitempty" yaml:"project,omitempty"`
	External bool   `json:"external,omitempty" yaml:"external,omitempty"`

	MinLength string `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	MaxLength string `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	MinValue  string `json:"minValue,omitempty" yaml:"minValue,omitempty"`
	MaxValue  string `json:"maxValue,omitempty" yaml:"maxValue,omitempty"`
	Scale     string `json:"scale,omitempty" yaml:"scale,omitempty"`
}

// Enumeration is an ordered set of literal values.
type Enumeration struct {
	Name          string `json:"name" yaml:"name"`
	Documentation string `json:"documentation,omitempty" yaml:"documentation,omitempty"`
	Project       string `json:"project,omitempty" yaml:"project,omitempty"`
	Enums         []Enum `json:"enums,omitempty" yaml:"enums,omitempty"`
}

// Enum is a single enumeration literal.
type Enum struct {
	Name          string `json:"name" yaml:"name"`
	Documentation string `json:"documentation,omitempty" yaml:"documentation,omitempty"`
}

// Service is the container of operations.
type Service struct {
	Name          string       `json:"name" yaml:"name"`
	Documentation string       `json:"documentation,omitempty" yaml:"documentation,omitempty"`
	Project       string       `json:"project,omitempty" yaml:"project,omitempty"`
	Operations    []*Operation `json:"operations,omitempty" yaml:"operations,omitempty"`
}

// ViewType tells which clients may call an operation.
type ViewType string

// View types.
const (
	ViewLocal  ViewType = "LOCAL"
	ViewRemote ViewType = "REMOTE"
	ViewBoth   ViewType = "BOTH"
)

// TransmissionMethod tells how an operation is invoked.
type TransmissionMethod string

// Transmission methods.
const (
	TransmissionSync  TransmissionMethod = "SYNC"
	TransmissionAsync TransmissionMethod = "ASYNC"
)

// Transaction attribute values as written in metadata.
const (
	TransactionRequired     = "Required"
	TransactionRequiresNew  = "RequiresNew"
	TransactionMandatory    = "Mandatory"
	TransactionNotSupported = "NotSupported"
	TransactionSupports     = "Supports"
	TransactionNever        = "Never"
)

// Operation is a callable member of a service.
//
// At most one of ReturnType and ReturnManyType is set. When both are empty
// the operation has no declared return, which is not the same as returning
// [Void].
type Operation struct {
	Name          string       `json:"name" yaml:"name"`
	Documentation string       `json:"documentation,omitempty" yaml:"documentation,omitempty"`
	Parameters    []*Parameter `json:"parameters,omitempty" yaml:"parameters,omitempty"`

	ReturnType     string `json:"returnType,omitempty" yaml:"returnType,omitempty"`
	ReturnManyType string `json:"returnManyType,omitempty" yaml:"returnManyType,omitempty"`

	ViewType             ViewType           `json:"viewType,omitempty" yaml:"viewType,omitempty"`
	TransmissionMethod   TransmissionMethod `json:"transmissionMethod,omitempty" yaml:"transmissionMethod,omitempty"`
	TransactionAttribute string             `json:"transactionAttribute,omitempty" yaml:"transactionAttribute,omitempty"`

	// Project is copied from the owning service by the repository.
	Project string `json:"-" yaml:"-"`
}

// Parameter is an argument of an operation.
type Parameter struct {
	Name          string `json:"name" yaml:"name"`
	Documentation string `json:"documentation,omitempty" yaml:"documentation,omitempty"`
	Type          string `json:"type" yaml:"type"`

	// Project is optional; an empty value means the current application.
	Project string `json:"project,omitempty" yaml:"project,omitempty"`

	// Many marks collection semantics.
	Many bool `json:"many,omitempty" yaml:"many,omitempty"`
}

// Format is a named list of validation patterns a field may reference.
type Format struct {
	Name     string   `json:"name" yaml:"name"`
	Patterns []string `json:"patterns" yaml:"patterns"`
}
