// Package tree arranges a catalog snapshot into the hierarchy shown in the
// navigator: fixed top-level categories, systems nested under their domain,
// components and APIs nested under their system, and groups nested under
// their parent group.
//
// The tree is an arena. Nodes live in a slice and refer to each other by
// index; ids are assigned once, in preorder, so the same input always yields
// the same ids. Selection, expansion and filtering are not part of the tree:
// Visible computes what to show from the tree plus caller-owned state.
package tree
