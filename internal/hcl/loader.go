package hcl

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/joho/godotenv"
	"github.com/vk/bsv/internal/config"
	"github.com/vk/bsv/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// DefaultFileName is looked for in the working directory when no settings
// file is given explicitly.
const DefaultFileName = ".bsv.hcl"

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	// environ returns the process environment; replaced in tests.
	environ func() []string
}

var _ config.Loader = (*Loader)(nil)

// NewLoader creates a new HCL settings loader.
func NewLoader() *Loader {
	return &Loader{environ: os.Environ}
}

// fileRoot is the top-level structure of a settings file.
type fileRoot struct {
	Catalog *catalogBlock `hcl:"catalog,block"`
	Log     *logBlock     `hcl:"log,block"`
}

type catalogBlock struct {
	Root      *string  `hcl:"root,optional"`
	FileNames []string `hcl:"file_names,optional"`
	Exclude   []string `hcl:"exclude,optional"`
}

type logBlock struct {
	Level  *string `hcl:"level,optional"`
	Format *string `hcl:"format,optional"`
}

// Load parses the settings file at path and overlays it on base.
func (l *Loader) Load(ctx context.Context, path string, base *config.Settings) (*config.Settings, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL settings loader started.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse settings file %s: %w", path, diags)
	}

	evalCtx, err := l.evalContext(filepath.Dir(path))
	if err != nil {
		return nil, err
	}

	if err := checkExpressions(ctx, path, file.Body, evalCtx); err != nil {
		return nil, err
	}

	var root fileRoot
	diags = gohcl.DecodeBody(file.Body, evalCtx, &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode settings file %s: %w", path, diags)
	}

	out := *base
	if c := root.Catalog; c != nil {
		if c.Root != nil {
			out.Catalog.Root = *c.Root
			if !filepath.IsAbs(out.Catalog.Root) {
				out.Catalog.Root = filepath.Join(filepath.Dir(path), out.Catalog.Root)
			}
		}
		if c.FileNames != nil {
			out.Catalog.FileNames = c.FileNames
		}
		if c.Exclude != nil {
			out.Catalog.Exclude = c.Exclude
		}
	}
	if lb := root.Log; lb != nil {
		if lb.Level != nil {
			out.Log.Level = strings.ToLower(*lb.Level)
		}
		if lb.Format != nil {
			out.Log.Format = strings.ToLower(*lb.Format)
		}
	}

	logger.Debug("HCL settings loaded.", "root", out.Catalog.Root, "log_level", out.Log.Level)
	return &out, nil
}

// evalContext exposes environment variables as `env` and a few string and
// collection functions.
func (l *Loader) evalContext(dir string) (*hcl.EvalContext, error) {
	vars := make(map[string]cty.Value)

	dotenv, err := godotenv.Read(filepath.Join(dir, ".env"))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Join(dir, ".env"), err)
	}
	for k, v := range dotenv {
		vars[k] = cty.StringVal(v)
	}
	for _, kv := range l.environ() {
		if k, v, ok := strings.Cut(kv, "="); ok && k != "" {
			vars[k] = cty.StringVal(v)
		}
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(vars),
		},
		Functions: map[string]function.Function{
			"coalesce": stdlib.CoalesceFunc,
			"concat":   stdlib.ConcatFunc,
			"lookup":   stdlib.LookupFunc,
			"lower":    stdlib.LowerFunc,
			"upper":    stdlib.UpperFunc,
		},
	}, nil
}

// checkExpressions rejects unknown functions and unset environment variables
// with a message naming them, before decoding reports them as type errors.
func checkExpressions(ctx context.Context, path string, body hcl.Body, evalCtx *hcl.EvalContext) error {
	envVars, functions := analyzeExpressions(bodyExpressions(body))
	ctxlog.FromContext(ctx).Debug("Settings file expressions analyzed.", "env", envVars, "functions", functions)

	for _, name := range functions {
		if _, ok := evalCtx.Functions[name]; !ok {
			available := slices.Sorted(maps.Keys(evalCtx.Functions))
			return fmt.Errorf("settings file %s calls unknown function %q; available: %s", path, name, strings.Join(available, ", "))
		}
	}
	env := evalCtx.Variables["env"]
	for _, name := range envVars {
		if !env.Type().HasAttribute(name) {
			return fmt.Errorf("settings file %s references unset environment variable %q; use lookup(env, %q, default) for optional values", path, name, name)
		}
	}
	return nil
}

// Find returns the settings file to use: explicit when set, otherwise
// DefaultFileName inside dir if it exists. It returns "" when there is none.
func Find(explicit, dir string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("settings file: %w", err)
		}
		return explicit, nil
	}
	candidate := filepath.Join(dir, DefaultFileName)
	if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
		return candidate, nil
	}
	return "", nil
}
