// internal/entityref/format_test.go
package entityref

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	testCases := []struct {
		name     string
		ref      Ref
		expected string
	}{
		{
			name:     "inferred segments are written out",
			ref:      Ref{Kind: KindComponent, Namespace: "default", Name: "svc"},
			expected: "component:default/svc",
		},
		{
			name:     "separators are escaped",
			ref:      Ref{Kind: KindComponent, Namespace: "a/b", Name: "c:d"},
			expected: `component:a\/b/c\:d`,
		},
		{
			name:     "missing kind is left out",
			ref:      Ref{Namespace: "default", Name: "svc"},
			expected: "default/svc",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Format(tc.ref))
			assert.Equal(t, tc.expected, tc.ref.String())
		})
	}
}

func TestDisplay(t *testing.T) {
	testCases := []struct {
		name     string
		ref      Ref
		expected string
	}{
		{
			name:     "all explicit",
			ref:      Ref{Kind: KindAPI, Namespace: "shop", Name: "orders", ExplicitKind: true, ExplicitNamespace: true},
			expected: "api:shop/orders",
		},
		{
			name:     "inferred kind",
			ref:      Ref{Kind: KindGroup, Namespace: "shop", Name: "team", ExplicitNamespace: true},
			expected: "[group]:shop/team",
		},
		{
			name:     "inferred namespace",
			ref:      Ref{Kind: KindSystem, Namespace: "default", Name: "core", ExplicitKind: true},
			expected: "system:[default]/core",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Display(tc.ref))
		})
	}
}

func TestRef_Equal(t *testing.T) {
	explicit := Ref{Kind: KindAPI, Namespace: "default", Name: "x", ExplicitKind: true, ExplicitNamespace: true}
	inferred := Ref{Kind: KindAPI, Namespace: "default", Name: "x"}
	other := Ref{Kind: KindComponent, Namespace: "default", Name: "x"}

	assert.True(t, explicit.Equal(inferred), "presentation flags must not affect equality")
	assert.Equal(t, explicit.Key(), inferred.Key())
	assert.False(t, explicit.Equal(other))
}

func TestKind(t *testing.T) {
	assert.True(t, KindAPI.Known())
	assert.Equal(t, "API", KindAPI.Title())
	assert.Equal(t, KindLocation, ParseKind("Location"))
	assert.False(t, Kind("widget").Known())
	assert.Equal(t, "widget", Kind("widget").Title())
	assert.Len(t, KnownKinds(), 8)
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		input string
		want  Kind
	}{
		{input: "component", want: KindComponent},
		{input: "COMPONENT", want: KindComponent},
		{input: "Api", want: KindAPI},
		{input: "widget", want: Kind("widget")},
		{input: "Widget", want: Kind("Widget")},
		{input: "MyKind", want: Kind("MyKind")},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseKind(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.Known(), got.Known())
		})
	}
	assert.Equal(t, "MyKind:default/x", Format(Ref{Kind: ParseKind("MyKind"), Namespace: "default", Name: "x"}))
}
