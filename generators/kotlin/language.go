// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package kotlin

import (
	"maps"

	"github.com/albertocavalcante/mdagen/model"
	"github.com/albertocavalcante/mdagen/resolve"
)

// LanguageName identifies the Kotlin type-mapping table.
const LanguageName = "kotlin"

// DefaultMappings maps semantic primitives to Kotlin types.
var DefaultMappings = map[string]resolve.Mapping{
	model.TypeString:          {Type: "String"},
	model.TypeInteger:         {Type: "Int"},
	model.TypeLong:            {Type: "Long"},
	model.TypeShort:           {Type: "Short"},
	model.TypeBoolean:         {Type: "Boolean"},
	model.TypeCharacter:       {Type: "Char"},
	model.TypeFloat:           {Type: "Float"},
	model.TypeDouble:          {Type: "Double"},
	model.TypeBigDecimal:      {Type: "BigDecimal", Import: "java.math.BigDecimal"},
	model.TypeBigInteger:      {Type: "BigInteger", Import: "java.math.BigInteger"},
	model.TypeDate:            {Type: "LocalDate", Import: "java.time.LocalDate"},
	model.TypeTimestamp:       {Type: "Instant", Import: "java.time.Instant"},
	model.TypeUUID:            {Type: "UUID", Import: "java.util.UUID"},
	model.TypeBlob:            {Type: "ByteArray"},
	model.TypeGeospatialPoint: {Type: "DoubleArray"},
}

// Language returns the built-in Kotlin type-mapping table. Entities and
// enumerations get one file each, so their import names the type.
func Language() *resolve.Language {
	return &resolve.Language{
		Name:        LanguageName,
		Primitives:  maps.Clone(DefaultMappings),
		Collection:  resolve.Collection{Format: "List<%s>"},
		Entity:      resolve.Layout{Package: "transfer", PerType: true},
		Enumeration: resolve.Layout{Package: "enumeration", PerType: true},
		Void:        "Unit",
		NameFirst:   resolve.Bool(true),
		Delimiter:   ": ",
		QueryParam:  `@QueryParam("%s")`,
	}
}
