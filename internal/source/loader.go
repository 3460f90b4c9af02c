package source

import (
	"context"
	"errors"
	"os"

	"github.com/vk/bsv/internal/ctxlog"
	"github.com/vk/bsv/internal/fsutil"
)

// DefaultFileNames are the catalog file names looked for under a directory root.
var DefaultFileNames = []string{"catalog-info.yaml", "catalog-info.yml"}

// DefaultExclude are the paths never descended into.
var DefaultExclude = []string{
	"**/.*",
	"**/bazel-*",
	"**/target",
	"**/node_modules",
	"**/__pycache__",
	"**/venv",
	"**/build",
	"**/bin",
	"**/obj",
	"**/dist",
	"**/out",
	"**/coverage",
}

// File is a catalog file as read from disk.
type File struct {
	Path    string
	Content []byte
}

// Document is one decoded YAML document.
type Document struct {
	File   string
	Index  int
	Line   int
	Record map[string]any
}

// Result is everything read from a root.
type Result struct {
	Files     []File
	Documents []Document
	// Errors holds a *DocumentError for every file or document skipped.
	Errors []error
}

// Loader reads a catalog root.
type Loader interface {
	Load(ctx context.Context, root string) (*Result, error)
}

// Options configures FSLoader. Zero values select the defaults.
type Options struct {
	FileNames []string
	// Exclude patterns are added to DefaultExclude.
	Exclude []string
}

// FSLoader reads catalog files from the local file system.
type FSLoader struct {
	names   []string
	exclude []string
}

var _ Loader = (*FSLoader)(nil)

// NewLoader creates a file system loader.
func NewLoader(opts Options) *FSLoader {
	names := opts.FileNames
	if len(names) == 0 {
		names = DefaultFileNames
	}
	exclude := append(append([]string{}, DefaultExclude...), opts.Exclude...)
	return &FSLoader{names: names, exclude: exclude}
}

// Load discovers and decodes every catalog file under root. The returned
// error is always a *DiscoveryError.
func (l *FSLoader) Load(ctx context.Context, root string) (*Result, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Catalog discovery started.", "root", root)

	paths, err := fsutil.FindFiles(root, fsutil.FindOptions{Names: l.names, Exclude: l.exclude})
	if err != nil {
		return nil, &DiscoveryError{Root: root, Err: err}
	}
	logger.Debug("Discovered catalog files.", "count", len(paths))

	res := &Result{}
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, &DiscoveryError{Root: root, Err: err}
		}

		content, err := os.ReadFile(path)
		if err != nil {
			res.Errors = append(res.Errors, &DocumentError{File: path, Document: -1, Err: err})
			continue
		}
		res.Files = append(res.Files, File{Path: path, Content: content})

		docs, errs := Decode(path, content)
		res.Documents = append(res.Documents, docs...)
		res.Errors = append(res.Errors, errs...)
		if len(errs) > 0 {
			logger.Warn("Skipped malformed documents.", "file", path, "count", len(errs))
		}
	}

	logger.Debug("Catalog decoding complete.", "files", len(res.Files), "documents", len(res.Documents), "errors", len(res.Errors))
	return res, nil
}

// IsDiscoveryError reports whether err is, or wraps, a *DiscoveryError.
func IsDiscoveryError(err error) bool {
	var de *DiscoveryError
	return errors.As(err, &de)
}
