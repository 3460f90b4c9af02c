package dag

import (
	"fmt"
	"slices"
)

// New creates and returns an initialized, empty Graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[int]*node),
	}
}

// AddNode adds a node with the given id. Adding an existing id does nothing.
func (g *Graph) AddNode(id int) {
	if _, ok := g.nodes[id]; ok {
		return
	}
	g.nodes[id] = &node{id: id}
	g.order = append(g.order, id)
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.order)
}

// AddEdge creates a directed edge from `fromID` to `toID`. Self edges are
// allowed and count as a cycle. Adding an existing edge does nothing.
func (g *Graph) AddEdge(fromID, toID int) error {
	from, ok := g.nodes[fromID]
	if !ok {
		return fmt.Errorf("source node not found: %d", fromID)
	}
	to, ok := g.nodes[toID]
	if !ok {
		return fmt.Errorf("destination node not found: %d", toID)
	}
	if slices.Contains(from.out, toID) {
		return nil
	}
	from.out = append(from.out, toID)
	to.in = append(to.in, fromID)
	return nil
}

// Successors returns the targets of edges leaving id.
func (g *Graph) Successors(id int) ([]int, error) {
	n, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("node not found: %d", id)
	}
	return slices.Clone(n.out), nil
}

// Predecessors returns the sources of edges entering id.
func (g *Graph) Predecessors(id int) ([]int, error) {
	n, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("node not found: %d", id)
	}
	return slices.Clone(n.in), nil
}

// DetectCycles returns a non-nil error naming the first node found on a
// cycle, or nil if the graph is acyclic.
func (g *Graph) DetectCycles() error {
	cycles := g.Cycles()
	if len(cycles) == 0 {
		return nil
	}
	return fmt.Errorf("cycle detected involving node '%d'", cycles[0][0])
}

// Cycles returns the strongly connected components that contain a cycle:
// components of two or more nodes, and single nodes with a self edge.
// Members of each component are in node insertion order, and components are
// ordered by their first member.
func (g *Graph) Cycles() [][]int {
	t := &tarjan{
		g:       g,
		index:   make(map[int]int, len(g.order)),
		lowlink: make(map[int]int, len(g.order)),
		onStack: make(map[int]bool, len(g.order)),
	}
	for _, id := range g.order {
		if _, seen := t.index[id]; !seen {
			t.visit(id)
		}
	}

	position := make(map[int]int, len(g.order))
	for i, id := range g.order {
		position[id] = i
	}

	var out [][]int
	for _, comp := range t.components {
		if len(comp) == 1 && !slices.Contains(g.nodes[comp[0]].out, comp[0]) {
			continue
		}
		slices.SortFunc(comp, func(a, b int) int { return position[a] - position[b] })
		out = append(out, comp)
	}
	slices.SortFunc(out, func(a, b []int) int { return position[a[0]] - position[b[0]] })
	return out
}

// OnCycle returns the set of nodes that lie on any cycle.
func (g *Graph) OnCycle() map[int]bool {
	members := make(map[int]bool)
	for _, comp := range g.Cycles() {
		for _, id := range comp {
			members[id] = true
		}
	}
	return members
}

// tarjan is the state of one run of Tarjan's strongly connected components
// algorithm.
type tarjan struct {
	g          *Graph
	counter    int
	index      map[int]int
	lowlink    map[int]int
	stack      []int
	onStack    map[int]bool
	components [][]int
}

func (t *tarjan) visit(id int) {
	t.index[id] = t.counter
	t.lowlink[id] = t.counter
	t.counter++
	t.stack = append(t.stack, id)
	t.onStack[id] = true

	for _, next := range t.g.nodes[id].out {
		if _, seen := t.index[next]; !seen {
			t.visit(next)
			t.lowlink[id] = min(t.lowlink[id], t.lowlink[next])
		} else if t.onStack[next] {
			t.lowlink[id] = min(t.lowlink[id], t.index[next])
		}
	}

	if t.lowlink[id] != t.index[id] {
		return
	}
	var comp []int
	for {
		top := t.stack[len(t.stack)-1]
		t.stack = t.stack[:len(t.stack)-1]
		t.onStack[top] = false
		comp = append(comp, top)
		if top == id {
			break
		}
	}
	t.components = append(t.components, comp)
}
