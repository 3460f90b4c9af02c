// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines Field, the set of spec fields that carry entity references.
package catalog

import "github.com/vk/bsv/internal/entityref"

// Field identifies a reference-bearing spec field.
type Field int

const (
	FieldOwner Field = iota
	FieldSystem
	FieldDomain
	FieldDependsOn
	FieldProvidesAPIs
	FieldConsumesAPIs
	FieldParent
	FieldMemberOf
	FieldChildren
)

type fieldInfo struct {
	name        string
	defaultKind entityref.Kind
	multi       bool
}

var fieldInfos = [...]fieldInfo{
	FieldOwner:        {"owner", entityref.KindGroup, false},
	FieldSystem:       {"system", entityref.KindSystem, false},
	FieldDomain:       {"domain", entityref.KindDomain, false},
	FieldDependsOn:    {"dependsOn", entityref.KindComponent, true},
	FieldProvidesAPIs: {"providesApis", entityref.KindAPI, true},
	FieldConsumesAPIs: {"consumesApis", entityref.KindAPI, true},
	FieldParent:       {"parent", entityref.KindGroup, false},
	FieldMemberOf:     {"memberOf", entityref.KindGroup, true},
	FieldChildren:     {"children", entityref.KindGroup, true},
}

// Fields returns every reference field in relationship label order.
func Fields() []Field {
	out := make([]Field, len(fieldInfos))
	for i := range fieldInfos {
		out[i] = Field(i)
	}
	return out
}

// Name is the YAML key of the field under spec.
func (f Field) Name() string { return fieldInfos[f].name }

// DefaultKind is the kind assumed when a reference in this field omits one.
func (f Field) DefaultKind() entityref.Kind { return fieldInfos[f].defaultKind }

// Multi reports whether the field holds a list.
func (f Field) Multi() bool { return fieldInfos[f].multi }

func (f Field) String() string { return f.Name() }
