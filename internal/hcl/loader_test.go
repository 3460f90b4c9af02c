package hcl

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/bsv/internal/config"
	"github.com/vk/bsv/internal/testutil"
)

func writeSettings(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	testutil.WriteTree(t, dir, files)
	return dir
}

func TestLoader_Load(t *testing.T) {
	dir := writeSettings(t, map[string]string{
		DefaultFileName: `
catalog {
  root       = lookup(env, "CATALOG_ROOT", "fallback")
  file_names = concat(["catalog-info.yaml"], ["*.catalog.yaml"])
  exclude    = ["vendor/**"]
}

log {
  level  = upper(env.LEVEL)
  format = "json"
}
`,
		".env": "LEVEL=debug\nCATALOG_ROOT=from-dotenv\n",
	})

	l := NewLoader()
	l.environ = func() []string { return []string{"CATALOG_ROOT=services"} }

	s, err := l.Load(testutil.Context(nil), filepath.Join(dir, DefaultFileName), config.Defaults())
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "services"), s.Catalog.Root, "process env wins over .env")
	assert.Equal(t, []string{"catalog-info.yaml", "*.catalog.yaml"}, s.Catalog.FileNames)
	assert.Equal(t, []string{"vendor/**"}, s.Catalog.Exclude)
	assert.Equal(t, "debug", s.Log.Level)
	assert.Equal(t, "json", s.Log.Format)
	assert.NoError(t, s.Validate())
}

func TestLoader_PartialFileKeepsBase(t *testing.T) {
	dir := writeSettings(t, map[string]string{
		DefaultFileName: "log {\n  format = \"json\"\n}\n",
	})
	l := NewLoader()
	l.environ = func() []string { return nil }

	base := config.Defaults()
	base.Catalog.Root = "/srv/catalog"
	s, err := l.Load(testutil.Context(nil), filepath.Join(dir, DefaultFileName), base)
	require.NoError(t, err)

	assert.Equal(t, "/srv/catalog", s.Catalog.Root)
	assert.Equal(t, "warn", s.Log.Level)
	assert.Equal(t, "json", s.Log.Format)
	assert.Equal(t, "text", base.Log.Format, "base is not modified")
}

func TestLoader_Errors(t *testing.T) {
	testCases := []struct {
		name      string
		content   string
		expectErr string
	}{
		{
			name:      "syntax error",
			content:   "catalog {\n",
			expectErr: "failed to parse settings file",
		},
		{
			name:      "unknown block",
			content:   "server {}\n",
			expectErr: "failed to decode settings file",
		},
		{
			name:      "missing env attribute",
			content:   "log {\n  level = env.NOT_SET\n}\n",
			expectErr: `references unset environment variable "NOT_SET"`,
		},
		{
			name:      "unknown function",
			content:   "catalog {\n  root = trimspace(\" x \")\n}\n",
			expectErr: `calls unknown function "trimspace"; available: coalesce, concat, lookup, lower, upper`,
		},
		{
			name:      "wrong type",
			content:   "catalog {\n  exclude = \"vendor\"\n}\n",
			expectErr: "failed to decode settings file",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dir := writeSettings(t, map[string]string{DefaultFileName: tc.content})
			l := NewLoader()
			l.environ = func() []string { return nil }

			_, err := l.Load(testutil.Context(nil), filepath.Join(dir, DefaultFileName), config.Defaults())
			assert.ErrorContains(t, err, tc.expectErr)
		})
	}
}

func TestAnalyzeExpressions(t *testing.T) {
	src := []byte(`
catalog {
  root    = lookup(env, "ROOT", env.HOME)
  exclude = concat([lower(env.A)], [env.HOME])
}
`)
	file, diags := hclsyntax.ParseConfig(src, "test.hcl", hcl.Pos{Line: 1, Column: 1})
	require.False(t, diags.HasErrors(), diags.Error())

	envVars, functions := analyzeExpressions(bodyExpressions(file.Body))
	assert.Equal(t, []string{"A", "HOME"}, envVars)
	assert.Equal(t, []string{"concat", "lookup", "lower"}, functions)
}

func TestFind(t *testing.T) {
	dir := writeSettings(t, map[string]string{DefaultFileName: ""})

	got, err := Find("", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, DefaultFileName), got)

	got, err = Find("", t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, got)

	explicit := filepath.Join(dir, "custom.hcl")
	require.NoError(t, os.WriteFile(explicit, nil, 0o600))
	got, err = Find(explicit, dir)
	require.NoError(t, err)
	assert.Equal(t, explicit, got)

	_, err = Find(filepath.Join(dir, "missing.hcl"), dir)
	assert.Error(t, err)
}
