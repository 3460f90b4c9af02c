package tree

// Category identifies a grouping node.
type Category int

const (
	CategoryDomains Category = iota
	CategorySystems
	CategoryComponents
	CategoryAPIs
	CategoryResources
	CategoryGroups
	CategoryUsers
	CategoryOther
)

// TopLevel lists the root categories in display order.
var TopLevel = []Category{
	CategoryDomains,
	CategorySystems,
	CategoryComponents,
	CategoryAPIs,
	CategoryResources,
	CategoryGroups,
	CategoryUsers,
	CategoryOther,
}

var categoryLabels = map[Category]string{
	CategoryDomains:    "Domains",
	CategorySystems:    "Systems",
	CategoryComponents: "Components",
	CategoryAPIs:       "APIs",
	CategoryResources:  "Resources",
	CategoryGroups:     "Groups",
	CategoryUsers:      "Users",
	CategoryOther:      "Other",
}

// Label is the display text of the category.
func (c Category) Label() string {
	return categoryLabels[c]
}

// NodeKind distinguishes grouping nodes from entity nodes.
type NodeKind int

const (
	NodeCategory NodeKind = iota
	NodeEntity
)

// NoID marks an absent parent or entity.
const NoID = -1

// Node is one entry of the arena.
type Node struct {
	ID       int
	Parent   int
	Children []int
	Depth    int

	Kind     NodeKind
	Category Category
	// Entity is the entity id for entity nodes and NoID otherwise.
	Entity int
	Label  string
	// Cycle marks a group whose parent chain loops back to itself.
	Cycle bool
}

// IsCategory reports whether n is a grouping node.
func (n *Node) IsCategory() bool {
	return n.Kind == NodeCategory
}

// Tree is the built hierarchy.
type Tree struct {
	Nodes []Node
	Roots []int

	byEntity map[int]int
}

// Len is the number of nodes.
func (t *Tree) Len() int {
	return len(t.Nodes)
}

// Node returns the node with the given id, or nil.
func (t *Tree) Node(id int) *Node {
	if id < 0 || id >= len(t.Nodes) {
		return nil
	}
	return &t.Nodes[id]
}

// NodeOfEntity returns the node that shows the given entity.
func (t *Tree) NodeOfEntity(entity int) (int, bool) {
	id, ok := t.byEntity[entity]
	return id, ok
}

// Path returns the ids from the root down to id, inclusive.
func (t *Tree) Path(id int) []int {
	var path []int
	for n := t.Node(id); n != nil; n = t.Node(n.Parent) {
		path = append([]int{n.ID}, path...)
	}
	return path
}
