package tree

import "strings"

// Visible returns the ids of the nodes to display, in display order.
//
// A node is visible when every ancestor is in expanded and, if filter is not
// empty, the node or one of its descendants is an entity whose display name
// contains filter (case-insensitive). Category nodes only match through
// their descendants.
func Visible(t *Tree, expanded map[int]bool, filter string) []int {
	matches := matchSet(t, filter)

	var out []int
	var walk func(ids []int)
	walk = func(ids []int) {
		for _, id := range ids {
			if matches != nil && !matches[id] {
				continue
			}
			out = append(out, id)
			if expanded[id] {
				walk(t.Nodes[id].Children)
			}
		}
	}
	walk(t.Roots)
	return out
}

// matchSet marks every node that matches filter or has a matching
// descendant. It returns nil when filter is empty.
func matchSet(t *Tree, filter string) map[int]bool {
	if filter == "" {
		return nil
	}
	needle := strings.ToLower(filter)

	matches := make(map[int]bool)
	// Ids are assigned in preorder, so children always have larger ids
	// than their parent.
	for id := len(t.Nodes) - 1; id >= 0; id-- {
		n := &t.Nodes[id]
		if n.Kind == NodeEntity && strings.Contains(strings.ToLower(n.Label), needle) {
			matches[id] = true
		}
		if matches[id] && n.Parent != NoID {
			matches[n.Parent] = true
		}
	}
	return matches
}

// Expandable returns the ids of all nodes that have children.
func Expandable(t *Tree) []int {
	var out []int
	for i := range t.Nodes {
		if len(t.Nodes[i].Children) > 0 {
			out = append(out, i)
		}
	}
	return out
}
