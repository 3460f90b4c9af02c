// Package index provides an immutable lookup structure over a snapshot of
// catalog entities.
//
// Entities are identified by their position in the slice the index was
// built from. The index answers two questions in constant time: which
// entity a reference points to, and whether a reference resolves at all.
// It never holds copies of entities; callers keep the slice alongside it.
//
// # Lookup rules
//
//   - Exact: (kind, namespace, name) must match an entity.
//   - Fallback: when the reference's kind is unknown or empty, the first
//     entity with the same namespace and name is returned, in slice order.
//   - Duplicates: when two entities share a key the first one wins.
package index
