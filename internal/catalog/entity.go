// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the Entity structure and its metadata and spec blocks.
package catalog

import "github.com/vk/bsv/internal/entityref"

// Link is one entry of metadata.links.
type Link struct {
	URL   string `json:"url"`
	Title string `json:"title,omitempty"`
	Icon  string `json:"icon,omitempty"`
	Type  string `json:"type,omitempty"`
}

// Metadata is the metadata block shared by every kind.
type Metadata struct {
	Name        string
	Title       string
	Namespace   string
	Description string
	Labels      map[string]string
	Annotations map[string]string
	Tags        []string
	Links       []Link
}

// Profile is the spec.profile block of groups and users.
type Profile struct {
	DisplayName string
	Email       string
	Picture     string
}

// Spec holds the kind-specific fields. Single-valued references are nil when
// absent; list-valued ones are empty.
type Spec struct {
	Type      string
	Lifecycle string

	Owner  *entityref.Ref
	System *entityref.Ref
	Domain *entityref.Ref
	Parent *entityref.Ref

	DependsOn    []entityref.Ref
	ProvidesAPIs []entityref.Ref
	ConsumesAPIs []entityref.Ref
	Children     []entityref.Ref
	MemberOf     []entityref.Ref

	// Definition is the API definition, kept as decoded.
	Definition any
	Profile    *Profile

	// Location targets are paths or URLs, not entity references.
	Target  string
	Targets []string
}

// Entity is a single catalog entry.
type Entity struct {
	APIVersion string
	Kind       entityref.Kind
	Metadata   Metadata
	Spec       Spec
}

// Namespace returns the entity's namespace. Build always fills it in.
func (e *Entity) Namespace() string {
	if e.Metadata.Namespace == "" {
		return entityref.DefaultNamespace
	}
	return e.Metadata.Namespace
}

// Ref returns the fully explicit reference that identifies e.
func (e *Entity) Ref() entityref.Ref {
	return entityref.Ref{
		Kind:              e.Kind,
		Namespace:         e.Namespace(),
		Name:              e.Metadata.Name,
		ExplicitKind:      true,
		ExplicitNamespace: true,
	}
}

// DisplayName is the title when set, else the name.
func (e *Entity) DisplayName() string {
	if e.Metadata.Title != "" {
		return e.Metadata.Title
	}
	return e.Metadata.Name
}

// Refs returns the references stored under f, in document order.
func (e *Entity) Refs(f Field) []entityref.Ref {
	s := &e.Spec
	single := func(r *entityref.Ref) []entityref.Ref {
		if r == nil {
			return nil
		}
		return []entityref.Ref{*r}
	}
	switch f {
	case FieldOwner:
		return single(s.Owner)
	case FieldSystem:
		return single(s.System)
	case FieldDomain:
		return single(s.Domain)
	case FieldParent:
		return single(s.Parent)
	case FieldDependsOn:
		return s.DependsOn
	case FieldProvidesAPIs:
		return s.ProvidesAPIs
	case FieldConsumesAPIs:
		return s.ConsumesAPIs
	case FieldChildren:
		return s.Children
	case FieldMemberOf:
		return s.MemberOf
	}
	return nil
}

// Issue is a non-fatal finding about an entity's shape.
type Issue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// EntityWithSource pairs an entity with where it was read from.
type EntityWithSource struct {
	Entity
	SourcePath string
	Document   int
	Issues     []Issue
}
