// Package graph extracts the relationships around a single entity.
//
// Outgoing edges come from the subject's own reference fields, in a fixed
// label order, each paired with its resolution against the index. Incoming
// edges are found by scanning every other entity's reference fields for
// references that resolve to the subject. The catalog stores no reverse
// links, so the scan is the only source of incoming edges.
package graph
