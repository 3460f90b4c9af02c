package index

import (
	"github.com/vk/bsv/internal/catalog"
	"github.com/vk/bsv/internal/entityref"
)

// Status is the outcome of validating a reference.
type Status int

const (
	// NotFound means the reference is well-formed but no entity matches.
	NotFound Status = iota
	// Resolved means an entity matches.
	Resolved
	// UnknownKind means the reference names a kind outside the known set.
	UnknownKind
)

func (s Status) String() string {
	switch s {
	case Resolved:
		return "resolved"
	case UnknownKind:
		return "unknown-kind"
	default:
		return "not-found"
	}
}

// Resolution is the result of Validate. ID is meaningful only when Status is
// Resolved.
type Resolution struct {
	Status Status
	ID     int
}

type nsName struct {
	namespace string
	name      string
}

// Index maps references to entity ids.
type Index struct {
	exact    map[entityref.Key]int
	byNSName map[nsName]int
	kinds    map[entityref.Kind]struct{}
	size     int
}

// Build indexes entities in a single pass.
func Build(entities []catalog.EntityWithSource) *Index {
	idx := &Index{
		exact:    make(map[entityref.Key]int, len(entities)),
		byNSName: make(map[nsName]int, len(entities)),
		kinds:    make(map[entityref.Kind]struct{}),
		size:     len(entities),
	}

	for id := range entities {
		e := &entities[id]
		key := e.Ref().Key()
		if _, dup := idx.exact[key]; !dup {
			idx.exact[key] = id
		}
		nn := nsName{namespace: key.Namespace, name: key.Name}
		if _, dup := idx.byNSName[nn]; !dup {
			idx.byNSName[nn] = id
		}
		if e.Kind.Known() {
			idx.kinds[e.Kind] = struct{}{}
		}
	}
	return idx
}

// Len is the number of entities the index was built from.
func (idx *Index) Len() int {
	return idx.size
}

// Lookup returns the id of the entity ref points to.
func (idx *Index) Lookup(ref entityref.Ref) (int, bool) {
	if ref.Kind == "" || !ref.Kind.Known() {
		id, ok := idx.byNSName[nsName{namespace: ref.Namespace, name: ref.Name}]
		return id, ok
	}
	id, ok := idx.exact[ref.Key()]
	return id, ok
}

// Validate classifies ref. An unknown kind is reported before any lookup.
func (idx *Index) Validate(ref entityref.Ref) Resolution {
	if ref.Kind != "" && !ref.Kind.Known() {
		return Resolution{Status: UnknownKind, ID: -1}
	}
	if id, ok := idx.Lookup(ref); ok {
		return Resolution{Status: Resolved, ID: id}
	}
	return Resolution{Status: NotFound, ID: -1}
}

// Kinds returns the known kinds present in the catalog, in canonical order.
func (idx *Index) Kinds() []entityref.Kind {
	var out []entityref.Kind
	for _, k := range entityref.KnownKinds() {
		if _, ok := idx.kinds[k]; ok {
			out = append(out, k)
		}
	}
	return out
}
