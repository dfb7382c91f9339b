// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package naming provides the name transformations shared by the decorators
// and the target generators.
package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Capitalize returns name with its first rune in title case.
// Returns empty string for empty input.
func Capitalize(name string) string {
	if name == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToTitle(r)) + name[size:]
}

// Uncapitalize returns name with its first rune lowercased.
// Returns empty string for empty input.
func Uncapitalize(name string) string {
	if name == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToLower(r)) + name[size:]
}

// Upper uppercases name using full Unicode case mapping ("ß" becomes "SS").
func Upper(name string) string {
	// Casers carry state, so one is built per call.
	return cases.Upper(language.Und).String(name)
}

// ExportName returns a Go-safe exported identifier for the given model name.
// Names starting with "_" are prefixed with "X" (e.g., "_foo" -> "Xfoo").
// Snake-case names are joined ("order_item" -> "OrderItem").
func ExportName(name string) string {
	if name == "" {
		return ""
	}
	if name[0] == '_' {
		return "X" + name[1:]
	}
	if !strings.Contains(name, "_") {
		return Capitalize(name)
	}
	var b strings.Builder
	for _, part := range strings.Split(name, "_") {
		b.WriteString(Capitalize(part))
	}
	return b.String()
}

// Pascal returns name in PascalCase. Snake-case parts are joined and
// fully uppercase parts are lowered first ("IN_PROGRESS" -> "InProgress").
func Pascal(name string) string {
	var b strings.Builder
	for _, part := range strings.Split(name, "_") {
		if part == "" {
			continue
		}
		if isAllUpper(part) {
			part = strings.ToLower(part)
		}
		b.WriteString(Capitalize(part))
	}
	return b.String()
}

// CamelToSnake converts a CamelCase name to snake_case.
// Fully uppercase names (like "URI") are lowered as a single word.
func CamelToSnake(name string) string {
	if isAllUpper(name) {
		return strings.ToLower(name)
	}

	var result strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				result.WriteRune('_')
			}
			result.WriteRune(unicode.ToLower(r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// CamelToScreamingSnake converts a CamelCase name to SCREAMING_SNAKE_CASE.
// Fully uppercase names (like "URI") are returned as-is.
func CamelToScreamingSnake(name string) string {
	if isAllUpper(name) {
		return strings.ToUpper(name)
	}

	var result strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) && i > 0 {
			result.WriteRune('_')
		}
		result.WriteRune(unicode.ToUpper(r))
	}
	return result.String()
}

// PackagePath turns a dotted namespace ("com.example.app") into a
// slash-separated directory path ("com/example/app").
func PackagePath(namespace string) string {
	return strings.ReplaceAll(namespace, ".", "/")
}

func isAllUpper(name string) bool {
	for _, r := range name {
		if !unicode.IsUpper(r) && unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
