// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file turns a decoded YAML document into an EntityWithSource.
package catalog

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/vk/bsv/internal/entityref"
)

// ParseError reports a record that cannot become an entity at all.
type ParseError struct {
	File     string
	Document int
	Field    string
	Reason   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: document %d: %s: %s", e.File, e.Document, e.Field, e.Reason)
}

// Build constructs an entity from a raw record. doc is the zero-based index of
// the document within sourcePath.
func Build(record map[string]any, sourcePath string, doc int) (*EntityWithSource, error) {
	fail := func(field, reason string) error {
		return &ParseError{File: sourcePath, Document: doc, Field: field, Reason: reason}
	}

	kind, ok := scalar(record["kind"])
	if !ok || kind == "" {
		return nil, fail("kind", "required field is missing")
	}

	metaRaw, present := record["metadata"]
	if !present || metaRaw == nil {
		return nil, fail("metadata.name", "required field is missing")
	}
	meta, ok := asMap(metaRaw)
	if !ok {
		return nil, fail("metadata", "must be a mapping")
	}
	name, ok := scalar(meta["name"])
	if !ok || name == "" {
		return nil, fail("metadata.name", "required field is missing")
	}

	b := &builder{}
	e := &EntityWithSource{
		SourcePath: sourcePath,
		Document:   doc,
	}
	e.Kind = entityref.ParseKind(kind)
	e.APIVersion = b.str(record, "apiVersion", "apiVersion")
	e.Metadata = b.metadata(meta, name)

	if specRaw, ok := record["spec"]; ok && specRaw != nil {
		spec, ok := asMap(specRaw)
		if ok {
			e.Spec = b.spec(spec, e.Namespace())
		} else {
			b.issue("spec", "must be a mapping")
		}
	}

	e.Issues = b.issues
	return e, nil
}

// builder accumulates issues while reading optional fields.
type builder struct {
	issues []Issue
}

func (b *builder) issue(path, format string, args ...any) {
	b.issues = append(b.issues, Issue{Path: path, Message: fmt.Sprintf(format, args...)})
}

func (b *builder) metadata(m map[string]any, name string) Metadata {
	md := Metadata{
		Name:        name,
		Title:       b.str(m, "title", "metadata.title"),
		Namespace:   b.str(m, "namespace", "metadata.namespace"),
		Description: b.str(m, "description", "metadata.description"),
		Labels:      b.strMap(m, "labels", "metadata.labels"),
		Annotations: b.strMap(m, "annotations", "metadata.annotations"),
		Tags:        b.strList(m, "tags", "metadata.tags"),
	}
	if md.Namespace == "" {
		md.Namespace = entityref.DefaultNamespace
	}

	if raw, ok := m["links"]; ok && raw != nil {
		items, ok := raw.([]any)
		if !ok {
			b.issue("metadata.links", "must be a list")
			return md
		}
		for i, item := range items {
			path := "metadata.links[" + strconv.Itoa(i) + "]"
			lm, ok := asMap(item)
			if !ok {
				b.issue(path, "must be a mapping")
				continue
			}
			md.Links = append(md.Links, Link{
				URL:   b.str(lm, "url", path+".url"),
				Title: b.str(lm, "title", path+".title"),
				Icon:  b.str(lm, "icon", path+".icon"),
				Type:  b.str(lm, "type", path+".type"),
			})
		}
	}
	return md
}

func (b *builder) spec(m map[string]any, namespace string) Spec {
	s := Spec{
		Type:       b.str(m, "type", "spec.type"),
		Lifecycle:  b.str(m, "lifecycle", "spec.lifecycle"),
		Definition: m["definition"],
		Target:     b.str(m, "target", "spec.target"),
		Targets:    b.strList(m, "targets", "spec.targets"),
	}

	s.Owner = b.ref(m, FieldOwner, namespace)
	s.System = b.ref(m, FieldSystem, namespace)
	s.Domain = b.ref(m, FieldDomain, namespace)
	s.Parent = b.ref(m, FieldParent, namespace)
	s.DependsOn = b.refs(m, FieldDependsOn, namespace)
	s.ProvidesAPIs = b.refs(m, FieldProvidesAPIs, namespace)
	s.ConsumesAPIs = b.refs(m, FieldConsumesAPIs, namespace)
	s.Children = b.refs(m, FieldChildren, namespace)
	s.MemberOf = b.refs(m, FieldMemberOf, namespace)

	if raw, ok := m["profile"]; ok && raw != nil {
		pm, ok := asMap(raw)
		if ok {
			s.Profile = &Profile{
				DisplayName: b.str(pm, "displayName", "spec.profile.displayName"),
				Email:       b.str(pm, "email", "spec.profile.email"),
				Picture:     b.str(pm, "picture", "spec.profile.picture"),
			}
		} else {
			b.issue("spec.profile", "must be a mapping")
		}
	}
	return s
}

func (b *builder) ref(m map[string]any, f Field, namespace string) *entityref.Ref {
	raw, ok := m[f.Name()]
	if !ok || raw == nil {
		return nil
	}
	text, ok := scalar(raw)
	if !ok {
		b.issue("spec."+f.Name(), "must be a single entity reference")
		return nil
	}
	if text == "" {
		return nil
	}
	r := entityref.Parse(text, entityref.Context{DefaultKind: f.DefaultKind(), DefaultNamespace: namespace})
	return &r
}

func (b *builder) refs(m map[string]any, f Field, namespace string) []entityref.Ref {
	path := "spec." + f.Name()
	raw, ok := m[f.Name()]
	if !ok || raw == nil {
		return nil
	}

	var items []any
	switch v := raw.(type) {
	case []any:
		items = v
	default:
		if _, ok := scalar(v); !ok {
			b.issue(path, "must be a list of entity references")
			return nil
		}
		b.issue(path, "should be a list, got a single value")
		items = []any{v}
	}

	ctx := entityref.Context{DefaultKind: f.DefaultKind(), DefaultNamespace: namespace}
	out := make([]entityref.Ref, 0, len(items))
	for i, item := range items {
		text, ok := scalar(item)
		if !ok {
			b.issue(path+"["+strconv.Itoa(i)+"]", "must be an entity reference")
			continue
		}
		if text == "" {
			continue
		}
		out = append(out, entityref.Parse(text, ctx))
	}
	return out
}

func (b *builder) str(m map[string]any, key, path string) string {
	raw, ok := m[key]
	if !ok || raw == nil {
		return ""
	}
	s, ok := scalar(raw)
	if !ok {
		b.issue(path, "must be a string")
		return ""
	}
	return s
}

func (b *builder) strList(m map[string]any, key, path string) []string {
	raw, ok := m[key]
	if !ok || raw == nil {
		return nil
	}
	items, ok := raw.([]any)
	if !ok {
		b.issue(path, "must be a list")
		return nil
	}
	out := make([]string, 0, len(items))
	for i, item := range items {
		s, ok := scalar(item)
		if !ok {
			b.issue(path+"["+strconv.Itoa(i)+"]", "must be a string")
			continue
		}
		out = append(out, s)
	}
	return out
}

func (b *builder) strMap(m map[string]any, key, path string) map[string]string {
	raw, ok := m[key]
	if !ok || raw == nil {
		return nil
	}
	mm, ok := asMap(raw)
	if !ok {
		b.issue(path, "must be a mapping")
		return nil
	}
	keys := make([]string, 0, len(mm))
	for k := range mm {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(map[string]string, len(mm))
	for _, k := range keys {
		s, ok := scalar(mm[k])
		if !ok {
			b.issue(path+"."+k, "must be a string")
			continue
		}
		out[k] = s
	}
	return out
}

// scalar renders YAML scalars as text. Mappings and sequences are not scalars.
func scalar(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case int, int64, uint64, float64, bool:
		return fmt.Sprint(t), true
	case nil:
		return "", true
	}
	return "", false
}

// asMap accepts both map shapes yaml.v3 can produce.
func asMap(v any) (map[string]any, bool) {
	switch t := v.(type) {
	case map[string]any:
		return t, true
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = val
		}
		return out, true
	}
	return nil, false
}
