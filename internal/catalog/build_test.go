// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/bsv/internal/entityref"
	"github.com/vk/bsv/internal/source"
)

func TestBuild_Component(t *testing.T) {
	record := map[string]any{
		"apiVersion": "backstage.io/v1alpha1",
		"kind":       "Component",
		"metadata": map[string]any{
			"name":        "checkout",
			"namespace":   "shop",
			"title":       "Checkout Service",
			"description": "Takes the money.",
			"tags":        []any{"go", "payments"},
			"labels":      map[string]any{"tier": "1"},
			"annotations": map[string]any{"backstage.io/techdocs-ref": "dir:."},
			"links": []any{
				map[string]any{"url": "https://example.com", "title": "Home", "icon": "web"},
			},
		},
		"spec": map[string]any{
			"type":         "service",
			"lifecycle":    "production",
			"owner":        "team-a",
			"system":       "system:default/commerce",
			"dependsOn":    []any{"resource:orders-db", "cart"},
			"providesApis": []any{"checkout-api"},
		},
	}

	e, err := Build(record, "svc/catalog-info.yaml", 0)
	require.NoError(t, err)

	assert.Equal(t, entityref.KindComponent, e.Kind)
	assert.Equal(t, "backstage.io/v1alpha1", e.APIVersion)
	assert.Equal(t, "shop", e.Namespace())
	assert.Equal(t, "Checkout Service", e.DisplayName())
	assert.Equal(t, []string{"go", "payments"}, e.Metadata.Tags)
	assert.Equal(t, map[string]string{"tier": "1"}, e.Metadata.Labels)
	assert.Equal(t, []Link{{URL: "https://example.com", Title: "Home", Icon: "web"}}, e.Metadata.Links)
	assert.Equal(t, "svc/catalog-info.yaml", e.SourcePath)
	assert.Empty(t, e.Issues)

	require.NotNil(t, e.Spec.Owner)
	assert.Equal(t, entityref.Ref{Kind: entityref.KindGroup, Namespace: "shop", Name: "team-a"}, *e.Spec.Owner)

	require.NotNil(t, e.Spec.System)
	assert.Equal(t, "default", e.Spec.System.Namespace)
	assert.True(t, e.Spec.System.ExplicitNamespace)

	require.Len(t, e.Spec.DependsOn, 2)
	assert.Equal(t, entityref.KindResource, e.Spec.DependsOn[0].Kind)
	assert.Equal(t, entityref.KindComponent, e.Spec.DependsOn[1].Kind)
	assert.Equal(t, "shop", e.Spec.DependsOn[1].Namespace)

	require.Len(t, e.Spec.ProvidesAPIs, 1)
	assert.Equal(t, entityref.KindAPI, e.Spec.ProvidesAPIs[0].Kind)
}

func TestBuild_Defaults(t *testing.T) {
	e, err := Build(map[string]any{
		"kind":     "group",
		"metadata": map[string]any{"name": "team-a"},
	}, "catalog-info.yaml", 2)
	require.NoError(t, err)

	assert.Equal(t, entityref.KindGroup, e.Kind)
	assert.Equal(t, entityref.DefaultNamespace, e.Namespace())
	assert.Equal(t, "team-a", e.DisplayName())
	assert.Equal(t, "", e.Spec.Type)
	assert.Equal(t, "", e.Spec.Lifecycle)
	assert.Nil(t, e.Spec.Parent)
	assert.Equal(t, 2, e.Document)
}

func TestBuild_UnknownKind(t *testing.T) {
	e, err := Build(map[string]any{
		"kind":     "Widget",
		"metadata": map[string]any{"name": "w"},
	}, "catalog-info.yaml", 0)
	require.NoError(t, err)
	assert.Equal(t, entityref.Kind("Widget"), e.Kind)
	assert.Equal(t, "Widget", e.Kind.Title())
	assert.False(t, e.Kind.Known())
}

func TestBuild_NumberLikeTextFromYAML(t *testing.T) {
	testCases := []struct {
		name string
		yaml string
		ref  func(e *EntityWithSource) string
		want string
	}{
		{
			name: "date-like name",
			yaml: "kind: Component\nmetadata: {name: 2024-01-01}\n",
			ref:  func(e *EntityWithSource) string { return e.Metadata.Name },
			want: "2024-01-01",
		},
		{
			name: "float-like name",
			yaml: "kind: Component\nmetadata: {name: 1.10}\n",
			ref:  func(e *EntityWithSource) string { return e.Metadata.Name },
			want: "1.10",
		},
		{
			name: "float-like dependency",
			yaml: "kind: Component\nmetadata: {name: x}\nspec: {dependsOn: [1.10]}\n",
			ref:  func(e *EntityWithSource) string { return entityref.Format(e.Spec.DependsOn[0]) },
			want: "component:default/1.10",
		},
		{
			name: "hex-like owner",
			yaml: "kind: Component\nmetadata: {name: x}\nspec: {owner: 0x1F}\n",
			ref:  func(e *EntityWithSource) string { return entityref.Format(*e.Spec.Owner) },
			want: "group:default/0x1F",
		},
		{
			name: "date-like system",
			yaml: "kind: Component\nmetadata: {name: x}\nspec: {system: 2024-01-01}\n",
			ref:  func(e *EntityWithSource) string { return entityref.Format(*e.Spec.System) },
			want: "system:default/2024-01-01",
		},
		{
			name: "numeric label value",
			yaml: "kind: Component\nmetadata: {name: x, labels: {tier: 1.0}}\n",
			ref:  func(e *EntityWithSource) string { return e.Metadata.Labels["tier"] },
			want: "1.0",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			docs, errs := source.Decode("catalog-info.yaml", []byte(tc.yaml))
			require.Empty(t, errs)
			require.Len(t, docs, 1)

			e, err := Build(docs[0].Record, docs[0].File, docs[0].Index)
			require.NoError(t, err)
			assert.Empty(t, e.Issues)
			assert.Equal(t, tc.want, tc.ref(e))
		})
	}
}

func TestBuild_MissingRequired(t *testing.T) {
	testCases := []struct {
		name   string
		record map[string]any
		field  string
	}{
		{
			name:   "no kind",
			record: map[string]any{"metadata": map[string]any{"name": "x"}},
			field:  "kind",
		},
		{
			name:   "no metadata",
			record: map[string]any{"kind": "Component"},
			field:  "metadata.name",
		},
		{
			name:   "no name",
			record: map[string]any{"kind": "Component", "metadata": map[string]any{"title": "X"}},
			field:  "metadata.name",
		},
		{
			name:   "metadata is a list",
			record: map[string]any{"kind": "Component", "metadata": []any{"x"}},
			field:  "metadata",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e, err := Build(tc.record, "a/catalog-info.yaml", 3)
			require.Error(t, err)
			assert.Nil(t, e)

			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, "a/catalog-info.yaml", perr.File)
			assert.Equal(t, 3, perr.Document)
			assert.Equal(t, tc.field, perr.Field)
			assert.Contains(t, err.Error(), "a/catalog-info.yaml")
			assert.Contains(t, err.Error(), "document 3")
			assert.Contains(t, err.Error(), tc.field)
		})
	}
}

func TestBuild_WrongTypesBecomeIssues(t *testing.T) {
	e, err := Build(map[string]any{
		"kind": "Component",
		"metadata": map[string]any{
			"name": "x",
			"tags": "not-a-list",
		},
		"spec": map[string]any{
			"owner":     []any{"a", "b"},
			"dependsOn": "single",
			"consumesApis": []any{
				"ok",
				map[string]any{"nested": true},
			},
		},
	}, "catalog-info.yaml", 0)
	require.NoError(t, err)

	paths := make([]string, 0, len(e.Issues))
	for _, is := range e.Issues {
		paths = append(paths, is.Path)
	}
	assert.ElementsMatch(t, []string{
		"metadata.tags",
		"spec.owner",
		"spec.dependsOn",
		"spec.consumesApis[1]",
	}, paths)

	assert.Nil(t, e.Spec.Owner)
	require.Len(t, e.Spec.DependsOn, 1)
	assert.Equal(t, "single", e.Spec.DependsOn[0].Name)
	require.Len(t, e.Spec.ConsumesAPIs, 1)
}

func TestEntity_Refs(t *testing.T) {
	owner := entityref.Ref{Kind: entityref.KindGroup, Namespace: "default", Name: "a"}
	e := Entity{Spec: Spec{
		Owner:     &owner,
		DependsOn: []entityref.Ref{{Kind: entityref.KindComponent, Namespace: "default", Name: "b"}},
	}}

	assert.Equal(t, []entityref.Ref{owner}, e.Refs(FieldOwner))
	assert.Len(t, e.Refs(FieldDependsOn), 1)
	assert.Nil(t, e.Refs(FieldSystem))
	assert.Nil(t, e.Refs(FieldMemberOf))
}

func TestFields_Order(t *testing.T) {
	names := make([]string, 0)
	for _, f := range Fields() {
		names = append(names, f.Name())
	}
	assert.Equal(t, []string{
		"owner", "system", "domain", "dependsOn", "providesApis",
		"consumesApis", "parent", "memberOf", "children",
	}, names)
	assert.Equal(t, entityref.KindAPI, FieldConsumesAPIs.DefaultKind())
	assert.True(t, FieldMemberOf.Multi())
	assert.False(t, FieldParent.Multi())
}
