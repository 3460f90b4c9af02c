// Package source discovers catalog files on disk and decodes them into raw
// per-document records.
//
// A directory root is walked for files named catalog-info.yaml or
// catalog-info.yml, skipping build output, dependency caches, bazel-*
// directories and dot-directories. A file root is read on its own.
//
// Each file may hold several YAML documents separated by `---`. A document
// that fails to parse becomes a DocumentError and its siblings are still
// read. Only a root that cannot be read at all is a DiscoveryError.
package source
