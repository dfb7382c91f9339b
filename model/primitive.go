// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package model

import "strings"

// Semantic primitive type keywords.
const (
	TypeString          = "string"
	TypeInteger         = "integer"
	TypeLong            = "long"
	TypeShort           = "short"
	TypeBoolean         = "boolean"
	TypeCharacter       = "character"
	TypeFloat           = "float"
	TypeDouble          = "double"
	TypeBigDecimal      = "big_decimal"
	TypeBigInteger      = "big_integer"
	TypeDate            = "date"
	TypeTimestamp       = "timestamp"
	TypeUUID            = "uuid"
	TypeBlob            = "blob"
	TypeGeospatialPoint = "geospatial_point"
)

// Void is the return type sentinel for operations that return nothing.
// It is compared case-insensitively.
const Void = "void"

// geospatialPrefix marks the geospatial family of primitives.
const geospatialPrefix = "geospatial_"

// Primitives lists every semantic primitive keyword. A type-mapping table
// for a target language must cover all of them.
var Primitives = []string{
	TypeString,
	TypeInteger,
	TypeLong,
	TypeShort,
	TypeBoolean,
	TypeCharacter,
	TypeFloat,
	TypeDouble,
	TypeBigDecimal,
	TypeBigInteger,
	TypeDate,
	TypeTimestamp,
	TypeUUID,
	TypeBlob,
	TypeGeospatialPoint,
}

var primitives = func() map[string]bool {
	m := make(map[string]bool, len(Primitives))
	for _, p := range Primitives {
		m[p] = true
	}
	return m
}()

// IsPrimitive reports whether name is a semantic primitive keyword.
func IsPrimitive(name string) bool {
	return primitives[name]
}

// IsGeospatial reports whether name belongs to the geospatial primitives.
func IsGeospatial(name string) bool {
	return strings.HasPrefix(name, geospatialPrefix)
}

// IsVoid reports whether typeName is the void sentinel.
func IsVoid(typeName string) bool {
	return strings.EqualFold(typeName, Void)
}
