package testutil

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/bsv/internal/catalog"
	"gopkg.in/yaml.v3"
)

// Entities decodes a multi-document YAML string and builds one entity per
// document, failing the test on any error. Every entity gets the source path
// "catalog-info.yaml".
func Entities(t *testing.T, src string) []catalog.EntityWithSource {
	t.Helper()

	dec := yaml.NewDecoder(strings.NewReader(src))
	var out []catalog.EntityWithSource
	for doc := 0; ; doc++ {
		var record map[string]any
		err := dec.Decode(&record)
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err, "document %d", doc)
		if record == nil {
			continue
		}
		e, err := catalog.Build(record, "catalog-info.yaml", doc)
		require.NoError(t, err, "document %d", doc)
		out = append(out, *e)
	}
	return out
}

// IDOf returns the position of the entity with the given kind and name.
func IDOf(t *testing.T, entities []catalog.EntityWithSource, kind, name string) int {
	t.Helper()
	for i := range entities {
		if string(entities[i].Kind) == kind && entities[i].Metadata.Name == name {
			return i
		}
	}
	require.FailNow(t, "entity not found", "%s:%s", kind, name)
	return -1
}
