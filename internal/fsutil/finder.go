// Package fsutil provides file system utility functions.
package fsutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// FindOptions controls FindFiles.
type FindOptions struct {
	// Names are doublestar patterns matched against a file's base name.
	Names []string
	// Exclude are doublestar patterns matched against the slash-separated
	// path relative to the root. A matching directory is not descended into.
	Exclude []string
}

// FindFiles recursively searches rootPath for files whose base name matches
// one of opts.Names, skipping excluded paths. Results are in lexical walk
// order. If rootPath is a regular file it is returned as the only result,
// whatever its name.
func FindFiles(rootPath string, opts FindOptions) ([]string, error) {
	if len(opts.Names) == 0 {
		panic("names must not be empty")
	}
	for _, p := range append(append([]string{}, opts.Names...), opts.Exclude...) {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid pattern %q", p)
		}
	}

	info, err := os.Stat(rootPath)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{rootPath}, nil
	}

	var files []string
	err = filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == rootPath {
			return nil
		}

		rel, err := filepath.Rel(rootPath, path)
		if err != nil {
			return err
		}
		if matchAny(opts.Exclude, filepath.ToSlash(rel)) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.Type().IsRegular() && matchAny(opts.Names, d.Name()) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

func matchAny(patterns []string, name string) bool {
	for _, p := range patterns {
		if ok, _ := doublestar.Match(p, name); ok {
			return true
		}
	}
	return false
}
