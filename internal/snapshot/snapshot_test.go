package snapshot

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/bsv/internal/catalog"
	"github.com/vk/bsv/internal/source"
	"github.com/vk/bsv/internal/testutil"
)

const domainYAML = `kind: Domain
metadata: {name: d1}
spec: {owner: team-a}
`

const systemYAML = `kind: System
metadata: {name: s1}
spec: {owner: team-a, domain: d1}
---
kind: Component
metadata: {name: c1}
spec: {type: service, lifecycle: production, owner: team-a, system: s1}
`

func newRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	testutil.WriteTree(t, root, map[string]string{
		"catalog-info.yaml":     domainYAML,
		"svc/catalog-info.yaml": systemYAML,
	})
	return root
}

func TestBuild(t *testing.T) {
	root := newRoot(t)
	testutil.WriteTree(t, root, map[string]string{
		"bad/catalog-info.yaml": "kind: Component\nmetadata: {title: nameless}\n---\nkind: [\n",
	})

	snap, err := Build(testutil.Context(nil), source.NewLoader(source.Options{}), root)
	require.NoError(t, err)

	assert.Len(t, snap.Entities, 3)
	assert.Len(t, snap.Files, 3)
	assert.Equal(t, 3, snap.Index.Len())
	assert.NotZero(t, snap.ID)
	assert.NotEqual(t, [32]byte{}, snap.Fingerprint)

	require.Len(t, snap.Problems, 2)
	var perr *catalog.ParseError
	var derr *source.DocumentError
	assert.True(t, errors.As(snap.Problems[0], &derr) || errors.As(snap.Problems[1], &derr))
	assert.True(t, errors.As(snap.Problems[0], &perr) || errors.As(snap.Problems[1], &perr))

	// Schema findings are attached to entities, not reported as problems.
	assert.Equal(t, 0, snap.IssueCount())
}

func TestBuild_SchemaIssuesAttached(t *testing.T) {
	root := t.TempDir()
	testutil.WriteTree(t, root, map[string]string{
		"catalog-info.yaml": "kind: Component\nmetadata: {name: c}\n",
	})
	snap, err := Build(testutil.Context(nil), source.NewLoader(source.Options{}), root)
	require.NoError(t, err)
	require.Len(t, snap.Entities, 1)
	assert.Len(t, snap.Entities[0].Issues, 3)
	assert.Equal(t, 3, snap.IssueCount())
}

func TestBuild_DiscoveryError(t *testing.T) {
	_, err := Build(testutil.Context(nil), source.NewLoader(source.Options{}), filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.True(t, source.IsDiscoveryError(err))
}

func TestSnapshot_Find(t *testing.T) {
	snap, err := Build(testutil.Context(nil), source.NewLoader(source.Options{}), newRoot(t))
	require.NoError(t, err)

	id, err := snap.Find("c1")
	require.NoError(t, err)
	assert.Equal(t, "c1", snap.Entity(id).Metadata.Name)

	id, err = snap.Find("d1")
	require.NoError(t, err, "kind-less text falls back to namespace/name")
	assert.Equal(t, "d1", snap.Entity(id).Metadata.Name)

	id, err = snap.Find("system:default/s1")
	require.NoError(t, err)
	assert.Equal(t, "s1", snap.Entity(id).Metadata.Name)

	_, err = snap.Find("api:d1")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Nil(t, snap.Entity(99))
}

func TestFingerprint_ChangesWithContent(t *testing.T) {
	root := newRoot(t)
	loader := source.NewLoader(source.Options{})

	first, err := Build(testutil.Context(nil), loader, root)
	require.NoError(t, err)
	second, err := Build(testutil.Context(nil), loader, root)
	require.NoError(t, err)
	assert.Equal(t, first.Fingerprint, second.Fingerprint)
	assert.NotEqual(t, first.ID, second.ID)

	require.NoError(t, os.WriteFile(filepath.Join(root, "catalog-info.yaml"), []byte(domainYAML+"# edited\n"), 0o600))
	third, err := Build(testutil.Context(nil), loader, root)
	require.NoError(t, err)
	assert.NotEqual(t, first.Fingerprint, third.Fingerprint)
}
