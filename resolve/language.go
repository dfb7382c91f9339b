// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package resolve

import (
	"fmt"
	"maps"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/albertocavalcante/mdagen/model"
)

// Mapping is the target-language spelling of one primitive.
type Mapping struct {
	Type   string `json:"type" yaml:"type"`
	Import string `json:"import,omitempty" yaml:"import,omitempty"`
}

// Collection describes how a type is wrapped when it is declared many.
type Collection struct {
	// Format is a fmt pattern with a single %s for the element type.
	Format string `json:"format" yaml:"format"`
	Import string `json:"import,omitempty" yaml:"import,omitempty"`
}

// Wrap returns elem wrapped in the collection type.
func (c Collection) Wrap(elem string) string {
	if c.Format == "" {
		return elem
	}
	return fmt.Sprintf(c.Format, elem)
}

// Layout places generated entity or enumeration types relative to the
// base namespace of the project that owns them.
type Layout struct {
	// Package is appended to the project base namespace.
	Package   string `json:"package,omitempty" yaml:"package,omitempty"`
	Separator string `json:"separator,omitempty" yaml:"separator,omitempty"`

	// PerType appends the type name to the import (one import per type).
	PerType bool `json:"perType,omitempty" yaml:"perType,omitempty"`

	// Qualify prefixes the type name with the last package element.
	Qualify bool `json:"qualify,omitempty" yaml:"qualify,omitempty"`
}

func (l Layout) sep() string {
	if l.Separator == "" {
		return "."
	}
	return l.Separator
}

// Import returns the import reference of name under base.
func (l Layout) Import(base, name string) string {
	sep := l.sep()
	ref := base
	if l.Package != "" {
		ref += sep + l.Package
	}
	if l.PerType {
		ref += sep + name
	}
	return ref
}

// TypeName returns the spelling of name as seen from other packages.
func (l Layout) TypeName(base, name string) string {
	if !l.Qualify {
		return name
	}
	pkg := l.Package
	if pkg == "" {
		pkg = base
	}
	if i := strings.LastIndex(pkg, l.sep()); i >= 0 {
		pkg = pkg[i+len(l.sep()):]
	}
	return pkg + "." + name
}

// Language is the type-mapping table of one target language.
type Language struct {
	Name        string             `json:"name" yaml:"name"`
	Primitives  map[string]Mapping `json:"primitives" yaml:"primitives"`
	Collection  Collection         `json:"collection" yaml:"collection"`
	Entity      Layout             `json:"entity" yaml:"entity"`
	Enumeration Layout             `json:"enumeration" yaml:"enumeration"`

	// Void is the spelling of the void return type.
	Void string `json:"void,omitempty" yaml:"void,omitempty"`

	// NameFirst writes signatures as "name type" instead of "type name".
	// Nil means unset, so an override can turn the setting off.
	NameFirst *bool `json:"nameFirst,omitempty" yaml:"nameFirst,omitempty"`

	// Delimiter separates name and type in a name-first declaration.
	// Empty means a single space.
	Delimiter string `json:"delimiter,omitempty" yaml:"delimiter,omitempty"`

	// QueryParam is a fmt pattern taking the parameter name. It is put in
	// front of non-entity parameters in query-parameter signatures.
	QueryParam string `json:"queryParam,omitempty" yaml:"queryParam,omitempty"`
}

// Validate checks that every primitive keyword is mapped.
func (l *Language) Validate() error {
	var missing []string
	for _, p := range model.Primitives {
		if m, ok := l.Primitives[p]; !ok || m.Type == "" {
			missing = append(missing, p)
		}
	}
	if len(missing) > 0 {
		return &MappingError{Language: l.Name, Missing: missing}
	}
	return nil
}

// Override returns a copy of l with every non-zero setting of o applied
// on top. Primitive mappings are merged key by key.
func (l *Language) Override(o *Language) *Language {
	out := *l
	out.Primitives = maps.Clone(l.Primitives)
	if out.Primitives == nil {
		out.Primitives = make(map[string]Mapping)
	}
	if o == nil {
		return &out
	}
	maps.Copy(out.Primitives, o.Primitives)
	if o.Collection.Format != "" {
		out.Collection = o.Collection
	}
	if o.Entity != (Layout{}) {
		out.Entity = o.Entity
	}
	if o.Enumeration != (Layout{}) {
		out.Enumeration = o.Enumeration
	}
	if o.Void != "" {
		out.Void = o.Void
	}
	if o.QueryParam != "" {
		out.QueryParam = o.QueryParam
	}
	if o.Delimiter != "" {
		out.Delimiter = o.Delimiter
	}
	if o.NameFirst != nil {
		out.NameFirst = Bool(*o.NameFirst)
	}
	return &out
}

// IsNameFirst reports whether declarations put the name before the type.
func (l *Language) IsNameFirst() bool { return l.NameFirst != nil && *l.NameFirst }

// Bool returns a pointer to v.
func Bool(v bool) *bool { return &v }

// ParseLanguage decodes a type-mapping table. YAML and JSON are both
// accepted.
func ParseLanguage(data []byte) (*Language, error) {
	var l Language
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("parsing type mapping: %w", err)
	}
	return &l, nil
}

// LoadLanguage reads a type-mapping table from path.
func LoadLanguage(path string) (*Language, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading type mapping: %w", err)
	}
	l, err := ParseLanguage(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}
