package source

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/bsv/internal/testutil"
)

func TestFSLoader_Load(t *testing.T) {
	root := t.TempDir()
	testutil.WriteTree(t, root, map[string]string{
		"catalog-info.yaml":                   "kind: Domain\nmetadata: {name: d}\n",
		"svc/catalog-info.yml":                "kind: System\nmetadata: {name: s}\n---\nkind: Component\nmetadata: {name: c}\n",
		"svc/broken/catalog-info.yaml":        "kind: [\n",
		"node_modules/x/catalog-info.yaml":    "kind: Component\nmetadata: {name: hidden}\n",
		".github/catalog-info.yaml":           "kind: Component\nmetadata: {name: hidden}\n",
		"extra/team.catalog.yaml":             "kind: Group\nmetadata: {name: g}\n",
		"generated/skip-me/catalog-info.yaml": "kind: Group\nmetadata: {name: g}\n",
	})

	l := NewLoader(Options{Exclude: []string{"generated/**"}})
	res, err := l.Load(testutil.Context(nil), root)
	require.NoError(t, err)

	assert.Len(t, res.Files, 3)
	require.Len(t, res.Documents, 3)
	assert.Equal(t, "Domain", res.Documents[0].Record["kind"])
	assert.Equal(t, filepath.Join(root, "svc", "catalog-info.yml"), res.Documents[1].File)

	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0].Error(), filepath.Join("svc", "broken", "catalog-info.yaml"))
}

func TestFSLoader_CustomNames(t *testing.T) {
	root := t.TempDir()
	testutil.WriteTree(t, root, map[string]string{
		"a/team.catalog.yaml": "kind: Group\nmetadata: {name: g}\n",
		"catalog-info.yaml":   "kind: Group\nmetadata: {name: h}\n",
	})

	res, err := NewLoader(Options{FileNames: []string{"*.catalog.yaml"}}).Load(testutil.Context(nil), root)
	require.NoError(t, err)
	require.Len(t, res.Documents, 1)
	assert.Equal(t, "Group", res.Documents[0].Record["kind"])
}

func TestFSLoader_SingleFile(t *testing.T) {
	root := t.TempDir()
	testutil.WriteTree(t, root, map[string]string{
		"one.yaml":          "kind: Group\nmetadata: {name: g}\n",
		"catalog-info.yaml": "kind: Group\nmetadata: {name: h}\n",
	})

	res, err := NewLoader(Options{}).Load(testutil.Context(nil), filepath.Join(root, "one.yaml"))
	require.NoError(t, err)
	require.Len(t, res.Documents, 1)
	assert.Equal(t, map[string]any{"name": "g"}, res.Documents[0].Record["metadata"])
}

func TestFSLoader_MissingRoot(t *testing.T) {
	_, err := NewLoader(Options{}).Load(testutil.Context(nil), filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.True(t, IsDiscoveryError(err))
}
