// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package golang

import (
	"github.com/albertocavalcante/mdagen/model"
	"github.com/albertocavalcante/mdagen/resolve"
)

// LanguageName identifies the Go type-mapping table.
const LanguageName = "go"

// DefaultMappings maps semantic primitives to Go types.
var DefaultMappings = map[string]resolve.Mapping{
	model.TypeString:          {Type: "string"},
	model.TypeInteger:         {Type: "int32"},
	model.TypeLong:            {Type: "int64"},
	model.TypeShort:           {Type: "int16"},
	model.TypeBoolean:         {Type: "bool"},
	model.TypeCharacter:       {Type: "rune"},
	model.TypeFloat:           {Type: "float32"},
	model.TypeDouble:          {Type: "float64"},
	model.TypeBigDecimal:      {Type: "decimal.Decimal", Import: "github.com/shopspring/decimal"},
	model.TypeBigInteger:      {Type: "*big.Int", Import: "math/big"},
	model.TypeDate:            {Type: "time.Time", Import: "time"},
	model.TypeTimestamp:       {Type: "time.Time", Import: "time"},
	model.TypeUUID:            {Type: "uuid.UUID", Import: "github.com/google/uuid"},
	model.TypeBlob:            {Type: "[]byte"},
	model.TypeGeospatialPoint: {Type: "[2]float64"},
}

// Language returns the built-in Go type-mapping table.
func Language() *resolve.Language {
	prims := make(map[string]resolve.Mapping, len(DefaultMappings))
	for k, v := range DefaultMappings {
		prims[k] = v
	}
	return &resolve.Language{
		Name:        LanguageName,
		Primitives:  prims,
		Collection:  resolve.Collection{Format: "[]%s"},
		Entity:      resolve.Layout{Package: "transfer", Separator: "/", Qualify: true},
		Enumeration: resolve.Layout{Package: "enumeration", Separator: "/", Qualify: true},
		NameFirst:   resolve.Bool(true),
	}
}
