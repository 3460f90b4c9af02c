// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package catalog provides the Go struct representation of catalog entities
// read from `catalog-info.yaml` documents.
//
// # Core Concepts
//
//   - Entity: one catalog entry. It has a kind, a metadata block and a spec
//     block whose reference fields are parsed into entityref.Ref values at
//     construction time, never later.
//
//   - EntityWithSource: an Entity together with the file and document it was
//     read from, plus any non-fatal findings about its shape. The source is set
//     once and never changes.
//
//   - Field: the fixed set of reference-bearing spec fields (owner, system,
//     dependsOn, ...). Each field knows the kind its references default to.
//
// Build is the only constructor. A record without `kind` or `metadata.name`
// is rejected with a *ParseError naming the file, the document index and the
// missing field; every other irregularity is recorded as an Issue on the entity.
package catalog
