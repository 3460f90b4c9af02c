package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, root string, rels ...string) {
	t.Helper()
	for _, rel := range rels {
		p := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, nil, 0o600))
	}
}

func TestFindFiles(t *testing.T) {
	root := t.TempDir()
	touch(t, root,
		"catalog-info.yaml",
		"svc/a/catalog-info.yml",
		"svc/b/catalog-info.yaml",
		"svc/b/other.yaml",
		"node_modules/pkg/catalog-info.yaml",
		".git/catalog-info.yaml",
		"bazel-out/catalog-info.yaml",
	)

	files, err := FindFiles(root, FindOptions{
		Names:   []string{"catalog-info.yaml", "catalog-info.yml"},
		Exclude: []string{"**/node_modules", "**/.*", "**/bazel-*"},
	})
	require.NoError(t, err)

	var rels []string
	for _, f := range files {
		rel, err := filepath.Rel(root, f)
		require.NoError(t, err)
		rels = append(rels, filepath.ToSlash(rel))
	}
	assert.Equal(t, []string{
		"catalog-info.yaml",
		"svc/a/catalog-info.yml",
		"svc/b/catalog-info.yaml",
	}, rels)
}

func TestFindFiles_SingleFile(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "custom.yaml")

	files, err := FindFiles(filepath.Join(root, "custom.yaml"), FindOptions{Names: []string{"catalog-info.yaml"}})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "custom.yaml")}, files)
}

func TestFindFiles_Errors(t *testing.T) {
	_, err := FindFiles(filepath.Join(t.TempDir(), "missing"), FindOptions{Names: []string{"*.yaml"}})
	assert.Error(t, err)

	_, err = FindFiles(t.TempDir(), FindOptions{Names: []string{"[bad"}})
	assert.ErrorContains(t, err, "invalid pattern")

	assert.Panics(t, func() {
		_, _ = FindFiles(t.TempDir(), FindOptions{})
	})
}
