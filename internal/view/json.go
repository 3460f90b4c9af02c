package view

import (
	"encoding/json"
	"time"

	"github.com/vk/bsv/internal/catalog"
	"github.com/vk/bsv/internal/detail"
	"github.com/vk/bsv/internal/entityref"
	"github.com/vk/bsv/internal/graph"
)

// JSONView renders one JSON object per result.
type JSONView struct {
	*Stream
}

type envelope struct {
	Type      string    `json:"type"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Snapshot  string    `json:"snapshot,omitempty"`
	Data      any       `json:"data"`
}

func (j *JSONView) emit(e envelope) {
	e.Timestamp = time.Now()
	if data, err := json.Marshal(e); err == nil {
		j.Println(string(data))
	}
}

type jsonTreeNode struct {
	ID       int    `json:"id"`
	Parent   int    `json:"parent"`
	Depth    int    `json:"depth"`
	Label    string `json:"label"`
	Category string `json:"category,omitempty"`
	Ref      string `json:"ref,omitempty"`
	Children int    `json:"children"`
	Cycle    bool   `json:"cycle,omitempty"`
}

func (j *JSONView) Tree(r TreeResult) {
	t := r.Snapshot.Tree
	nodes := make([]jsonTreeNode, 0, len(r.Visible))
	for _, id := range r.Visible {
		n := t.Node(id)
		out := jsonTreeNode{
			ID:       n.ID,
			Parent:   n.Parent,
			Depth:    n.Depth,
			Label:    treeLabel(r, n),
			Children: len(n.Children),
			Cycle:    n.Cycle,
		}
		if n.IsCategory() {
			out.Category = n.Category.Label()
		} else {
			out.Ref = entityref.Format(r.Snapshot.Entity(n.Entity).Ref())
		}
		nodes = append(nodes, out)
	}
	j.emit(envelope{Type: "tree", Status: "success", Snapshot: r.Snapshot.ID.String(), Data: nodes})
}

type jsonReference struct {
	Field     string `json:"field"`
	Display   string `json:"display"`
	Canonical string `json:"canonical"`
	Status    string `json:"status"`
	Target    string `json:"target,omitempty"`
}

type jsonDetail struct {
	Ref         string            `json:"ref"`
	Kind        string            `json:"kind"`
	Name        string            `json:"name"`
	Namespace   string            `json:"namespace"`
	Title       string            `json:"title,omitempty"`
	Description string            `json:"description,omitempty"`
	Labels      map[string]string `json:"labels,omitempty"`
	Annotations map[string]string `json:"annotations,omitempty"`
	Tags        []string          `json:"tags,omitempty"`
	Links       []catalog.Link    `json:"links,omitempty"`
	Type        string            `json:"type,omitempty"`
	Lifecycle   string            `json:"lifecycle,omitempty"`
	Definition  any               `json:"definition,omitempty"`
	Source      string            `json:"source"`
	Document    int               `json:"document"`
	References  []jsonReference   `json:"references"`
	Issues      []catalog.Issue   `json:"issues"`
}

func (j *JSONView) Detail(d *detail.Detail) {
	out := jsonDetail{
		Ref:         d.Ref,
		Kind:        string(d.Kind),
		Name:        d.Metadata.Name,
		Namespace:   d.Metadata.Namespace,
		Title:       d.Metadata.Title,
		Description: d.Metadata.Description,
		Labels:      d.Metadata.Labels,
		Annotations: d.Metadata.Annotations,
		Tags:        d.Metadata.Tags,
		Links:       d.Metadata.Links,
		Type:        d.Spec.Type,
		Lifecycle:   d.Spec.Lifecycle,
		Definition:  d.Spec.Definition,
		Source:      d.SourcePath,
		Document:    d.Document,
		References:  make([]jsonReference, 0, len(d.References)),
		Issues:      d.Issues,
	}
	if out.Namespace == "" {
		out.Namespace = entityref.DefaultNamespace
	}
	if out.Issues == nil {
		out.Issues = []catalog.Issue{}
	}
	for _, r := range d.References {
		out.References = append(out.References, jsonReference{
			Field:     r.Field,
			Display:   r.Display,
			Canonical: r.Canonical,
			Status:    r.Status.String(),
			Target:    r.Target,
		})
	}
	j.emit(envelope{Type: "detail", Status: "success", Data: out})
}

type jsonEdge struct {
	Relation string `json:"relation"`
	Label    string `json:"label"`
	Ref      string `json:"ref"`
	Status   string `json:"status"`
}

type jsonGraph struct {
	Subject  string     `json:"subject"`
	Outgoing []jsonEdge `json:"outgoing"`
	Incoming []jsonEdge `json:"incoming"`
}

func (j *JSONView) Graph(r GraphResult) {
	snap, g := r.Snapshot, r.Graph
	out := jsonGraph{
		Subject:  entityref.Format(snap.Entity(g.Subject).Ref()),
		Outgoing: make([]jsonEdge, 0, len(g.Outgoing)),
		Incoming: make([]jsonEdge, 0, len(g.Incoming)),
	}
	for _, e := range g.Outgoing {
		out.Outgoing = append(out.Outgoing, jsonEdge{
			Relation: e.Relation.Name(),
			Label:    e.Relation.Name(),
			Ref:      entityref.Format(e.Target),
			Status:   e.Resolution.Status.String(),
		})
	}
	for _, e := range g.Incoming {
		out.Incoming = append(out.Incoming, jsonEdge{
			Relation: e.Relation.Name(),
			Label:    graph.InverseLabel(e.Relation),
			Ref:      entityref.Format(snap.Entity(e.Source).Ref()),
			Status:   "resolved",
		})
	}
	j.emit(envelope{Type: "graph", Status: "success", Snapshot: snap.ID.String(), Data: out})
}

type jsonCheck struct {
	Files    int       `json:"files"`
	Entities int       `json:"entities"`
	Findings []Finding `json:"findings"`
}

func (j *JSONView) Check(r CheckResult) {
	status := "success"
	if r.HasErrors() {
		status = "error"
	}
	findings := r.Findings
	if findings == nil {
		findings = []Finding{}
	}
	j.emit(envelope{
		Type:   "check",
		Status: status,
		Data:   jsonCheck{Files: r.Files, Entities: r.Entities, Findings: findings},
	})
}
