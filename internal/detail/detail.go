// Package detail projects one entity of a snapshot into the flat shape a
// detail pane or report shows: its metadata, spec and source, with every
// reference rendered next to its resolution status.
package detail

import (
	"fmt"

	"github.com/vk/bsv/internal/catalog"
	"github.com/vk/bsv/internal/entityref"
	"github.com/vk/bsv/internal/index"
	"github.com/vk/bsv/internal/snapshot"
)

// Reference is one reference field value.
type Reference struct {
	Field     string
	Display   string
	Canonical string
	Status    index.Status
	// Target is the resolved entity's display name, empty unless resolved.
	Target string
}

// Detail is the projection of one entity.
type Detail struct {
	ID          int
	Kind        entityref.Kind
	Ref         string
	DisplayName string
	Metadata    catalog.Metadata
	Spec        catalog.Spec
	SourcePath  string
	Document    int
	References  []Reference
	Issues      []catalog.Issue
}

// Project builds the detail of entity id.
func Project(id int, snap *snapshot.Snapshot) (*Detail, error) {
	e := snap.Entity(id)
	if e == nil {
		return nil, fmt.Errorf("entity id %d out of range [0, %d)", id, len(snap.Entities))
	}

	d := &Detail{
		ID:          id,
		Kind:        e.Kind,
		Ref:         entityref.Format(e.Ref()),
		DisplayName: e.DisplayName(),
		Metadata:    e.Metadata,
		Spec:        e.Spec,
		SourcePath:  e.SourcePath,
		Document:    e.Document,
		Issues:      e.Issues,
	}

	for _, f := range catalog.Fields() {
		for _, ref := range e.Refs(f) {
			res := snap.Index.Validate(ref)
			r := Reference{
				Field:     f.Name(),
				Display:   entityref.Display(ref),
				Canonical: entityref.Format(ref),
				Status:    res.Status,
			}
			if res.Status == index.Resolved {
				r.Target = snap.Entities[res.ID].DisplayName()
			}
			d.References = append(d.References, r)
		}
	}
	return d, nil
}
