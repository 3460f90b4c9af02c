package snapshot

import (
	"github.com/vk/bsv/internal/tree"
)

// View is the presentation state of the navigator. It refers to tree nodes
// by id and is never stored inside the tree.
type View struct {
	Selected int
	Expanded map[int]bool
	Filter   string
}

// DefaultView expands the top-level categories and selects the first one.
func DefaultView(t *tree.Tree) View {
	v := View{Selected: tree.NoID, Expanded: make(map[int]bool)}
	for _, id := range t.Roots {
		v.Expanded[id] = true
	}
	if len(t.Roots) > 0 {
		v.Selected = t.Roots[0]
	}
	return v
}

// Visible lists the node ids to display.
func (v *View) Visible(t *tree.Tree) []int {
	return tree.Visible(t, v.Expanded, v.Filter)
}

// Toggle flips the expansion of id.
func (v *View) Toggle(id int) {
	if v.Expanded[id] {
		delete(v.Expanded, id)
		return
	}
	v.Expanded[id] = true
}

// ExpandAll expands every node with children.
func (v *View) ExpandAll(t *tree.Tree) {
	for _, id := range tree.Expandable(t) {
		v.Expanded[id] = true
	}
}

// CollapseAll collapses every node.
func (v *View) CollapseAll() {
	clear(v.Expanded)
}

// Reveal expands every ancestor of id and selects it.
func (v *View) Reveal(t *tree.Tree, id int) {
	path := t.Path(id)
	for _, ancestor := range path[:max(len(path)-1, 0)] {
		v.Expanded[ancestor] = true
	}
	v.Selected = id
}

// Move shifts the selection by delta rows within the visible list, clamping
// at both ends. A selection that is not visible moves to the first row.
func (v *View) Move(t *tree.Tree, delta int) {
	visible := v.Visible(t)
	if len(visible) == 0 {
		v.Selected = tree.NoID
		return
	}
	pos := -1
	for i, id := range visible {
		if id == v.Selected {
			pos = i
			break
		}
	}
	if pos < 0 {
		v.Selected = visible[0]
		return
	}
	pos = min(max(pos+delta, 0), len(visible)-1)
	v.Selected = visible[pos]
}
