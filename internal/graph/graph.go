package graph

import (
	"fmt"

	"github.com/vk/bsv/internal/catalog"
	"github.com/vk/bsv/internal/dag"
	"github.com/vk/bsv/internal/entityref"
	"github.com/vk/bsv/internal/index"
)

// OutEdge is a reference held by the subject.
type OutEdge struct {
	Relation   catalog.Field
	Target     entityref.Ref
	Resolution index.Resolution
}

// InEdge is a reference to the subject held by another entity.
type InEdge struct {
	Relation catalog.Field
	Source   int
}

// Graph is the neighbourhood of one entity.
type Graph struct {
	Subject  int
	Outgoing []OutEdge
	Incoming []InEdge
}

var inverseLabels = map[catalog.Field]string{
	catalog.FieldOwner:        "owns",
	catalog.FieldSystem:       "has part",
	catalog.FieldDomain:       "has system",
	catalog.FieldDependsOn:    "dependency of",
	catalog.FieldProvidesAPIs: "provided by",
	catalog.FieldConsumesAPIs: "consumed by",
	catalog.FieldParent:       "child",
	catalog.FieldMemberOf:     "has member",
	catalog.FieldChildren:     "parent",
}

// InverseLabel describes an incoming edge from the subject's point of view,
// e.g. "dependency of" for an incoming dependsOn.
func InverseLabel(f catalog.Field) string {
	return inverseLabels[f]
}

// Extract builds the graph around subject. idx must have been built from
// entities.
func Extract(subject int, entities []catalog.EntityWithSource, idx *index.Index) (*Graph, error) {
	if subject < 0 || subject >= len(entities) {
		return nil, fmt.Errorf("entity id %d out of range [0, %d)", subject, len(entities))
	}

	g := &Graph{Subject: subject}
	fields := catalog.Fields()

	self := &entities[subject]
	for _, f := range fields {
		for _, ref := range self.Refs(f) {
			g.Outgoing = append(g.Outgoing, OutEdge{
				Relation:   f,
				Target:     ref,
				Resolution: idx.Validate(ref),
			})
		}
	}

	for id := range entities {
		if id == subject {
			continue
		}
		e := &entities[id]
		for _, f := range fields {
			for _, ref := range e.Refs(f) {
				if target, ok := idx.Lookup(ref); ok && target == subject {
					g.Incoming = append(g.Incoming, InEdge{Relation: f, Source: id})
					break
				}
			}
		}
	}
	return g, nil
}

// DependencyCycles returns groups of entities whose dependsOn references
// form a cycle. Unresolved references are ignored.
func DependencyCycles(entities []catalog.EntityWithSource, idx *index.Index) [][]int {
	g := dag.New()
	for id := range entities {
		g.AddNode(id)
	}
	for id := range entities {
		for _, ref := range entities[id].Spec.DependsOn {
			if target, ok := idx.Lookup(ref); ok {
				// Both ids are in range, so the nodes exist.
				_ = g.AddEdge(id, target)
			}
		}
	}
	return g.Cycles()
}
