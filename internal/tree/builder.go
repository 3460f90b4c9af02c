package tree

import (
	"github.com/vk/bsv/internal/catalog"
	"github.com/vk/bsv/internal/dag"
	"github.com/vk/bsv/internal/entityref"
	"github.com/vk/bsv/internal/index"
)

// placement records where an entity attaches: under a top-level category, or
// under another entity.
type placement struct {
	category Category
	parent   int
	cycle    bool
}

// builder carries the state of one Build call.
type builder struct {
	entities []catalog.EntityWithSource
	idx      *index.Index

	topLevel   map[Category][]int
	systems    map[int][]int
	components map[int][]int
	apis       map[int][]int
	subgroups  map[int][]int

	t *Tree
}

// Build arranges entities into a tree. idx must have been built from the same
// slice.
func Build(entities []catalog.EntityWithSource, idx *index.Index) *Tree {
	b := &builder{
		entities:   entities,
		idx:        idx,
		topLevel:   make(map[Category][]int),
		systems:    make(map[int][]int),
		components: make(map[int][]int),
		apis:       make(map[int][]int),
		subgroups:  make(map[int][]int),
		t:          &Tree{byEntity: make(map[int]int, len(entities))},
	}

	cyclic := b.groupCycles()
	cycleFlags := make(map[int]bool)
	for id := range entities {
		p := b.place(id, cyclic)
		if p.cycle {
			cycleFlags[id] = true
		}
		if p.parent == NoID {
			b.topLevel[p.category] = append(b.topLevel[p.category], id)
			continue
		}
		switch entities[id].Kind {
		case entityref.KindSystem:
			b.systems[p.parent] = append(b.systems[p.parent], id)
		case entityref.KindComponent:
			b.components[p.parent] = append(b.components[p.parent], id)
		case entityref.KindAPI:
			b.apis[p.parent] = append(b.apis[p.parent], id)
		case entityref.KindGroup:
			b.subgroups[p.parent] = append(b.subgroups[p.parent], id)
		}
	}

	for _, c := range TopLevel {
		root := b.addCategory(c, NoID, 0)
		b.t.Roots = append(b.t.Roots, root)
		for _, id := range b.topLevel[c] {
			b.addEntity(id, root, 1, cycleFlags)
		}
	}
	return b.t
}

// resolveTo returns the id ref points to when that entity has the wanted kind.
func (b *builder) resolveTo(ref *entityref.Ref, kind entityref.Kind) (int, bool) {
	if ref == nil {
		return NoID, false
	}
	id, ok := b.idx.Lookup(*ref)
	if !ok || b.entities[id].Kind != kind {
		return NoID, false
	}
	return id, true
}

// groupCycles returns the groups whose parent chain forms a loop.
func (b *builder) groupCycles() map[int]bool {
	g := dag.New()
	for id := range b.entities {
		if b.entities[id].Kind == entityref.KindGroup {
			g.AddNode(id)
		}
	}
	for id := range b.entities {
		e := &b.entities[id]
		if e.Kind != entityref.KindGroup {
			continue
		}
		if parent, ok := b.resolveTo(e.Spec.Parent, entityref.KindGroup); ok {
			// Both ends are groups, so both nodes exist.
			_ = g.AddEdge(id, parent)
		}
	}
	return g.OnCycle()
}

func (b *builder) place(id int, cyclic map[int]bool) placement {
	e := &b.entities[id]
	top := func(c Category) placement { return placement{category: c, parent: NoID} }

	switch e.Kind {
	case entityref.KindDomain:
		return top(CategoryDomains)
	case entityref.KindSystem:
		if d, ok := b.resolveTo(e.Spec.Domain, entityref.KindDomain); ok {
			return placement{parent: d}
		}
		return top(CategorySystems)
	case entityref.KindComponent:
		if s, ok := b.resolveTo(e.Spec.System, entityref.KindSystem); ok {
			return placement{parent: s}
		}
		return top(CategoryComponents)
	case entityref.KindAPI:
		if s, ok := b.resolveTo(e.Spec.System, entityref.KindSystem); ok {
			return placement{parent: s}
		}
		return top(CategoryAPIs)
	case entityref.KindResource:
		return top(CategoryResources)
	case entityref.KindGroup:
		if cyclic[id] {
			return placement{category: CategoryGroups, parent: NoID, cycle: true}
		}
		if p, ok := b.resolveTo(e.Spec.Parent, entityref.KindGroup); ok {
			return placement{parent: p}
		}
		return top(CategoryGroups)
	case entityref.KindUser:
		return top(CategoryUsers)
	}
	return top(CategoryOther)
}

func (b *builder) addNode(n Node) int {
	n.ID = len(b.t.Nodes)
	b.t.Nodes = append(b.t.Nodes, n)
	if n.Parent != NoID {
		parent := &b.t.Nodes[n.Parent]
		parent.Children = append(parent.Children, n.ID)
	}
	return n.ID
}

func (b *builder) addCategory(c Category, parent, depth int) int {
	return b.addNode(Node{
		Parent:   parent,
		Depth:    depth,
		Kind:     NodeCategory,
		Category: c,
		Entity:   NoID,
		Label:    c.Label(),
	})
}

func (b *builder) addEntity(id, parent, depth int, cycleFlags map[int]bool) {
	nodeID := b.addNode(Node{
		Parent: parent,
		Depth:  depth,
		Kind:   NodeEntity,
		Entity: id,
		Label:  b.entities[id].DisplayName(),
		Cycle:  cycleFlags[id],
	})
	b.t.byEntity[id] = nodeID

	for _, child := range b.systems[id] {
		b.addEntity(child, nodeID, depth+1, cycleFlags)
	}
	if children := b.components[id]; len(children) > 0 {
		sub := b.addCategory(CategoryComponents, nodeID, depth+1)
		for _, child := range children {
			b.addEntity(child, sub, depth+2, cycleFlags)
		}
	}
	if children := b.apis[id]; len(children) > 0 {
		sub := b.addCategory(CategoryAPIs, nodeID, depth+1)
		for _, child := range children {
			b.addEntity(child, sub, depth+2, cycleFlags)
		}
	}
	for _, child := range b.subgroups[id] {
		b.addEntity(child, nodeID, depth+1, cycleFlags)
	}
}
