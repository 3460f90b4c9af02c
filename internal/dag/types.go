package dag

// Graph is a collection of nodes and directed edges. It is not safe for
// concurrent mutation.
type Graph struct {
	// order lists node ids in insertion order.
	order []int
	// nodes stores all nodes in the graph, keyed by id.
	nodes map[int]*node
}

// node represents a single vertex in the graph.
type node struct {
	id int
	// out holds the targets of edges leaving this node, in insertion order.
	out []int
	// in holds the sources of edges entering this node, in insertion order.
	in []int
}
