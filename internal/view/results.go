package view

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/vk/bsv/internal/catalog"
	"github.com/vk/bsv/internal/entityref"
	"github.com/vk/bsv/internal/graph"
	"github.com/vk/bsv/internal/snapshot"
	"github.com/vk/bsv/internal/source"
)

// TreeResult is the visible part of a snapshot's tree.
type TreeResult struct {
	Snapshot *snapshot.Snapshot
	Visible  []int
}

// GraphResult is the neighbourhood of one entity.
type GraphResult struct {
	Snapshot *snapshot.Snapshot
	Graph    *graph.Graph
}

// Severity ranks a check finding.
type Severity string

const (
	SeverityError Severity = "error"
	SeverityIssue Severity = "issue"
	SeverityCycle Severity = "cycle"
)

// Finding is one row of a check report.
type Finding struct {
	Severity Severity `json:"severity"`
	Source   string   `json:"source"`
	Entity   string   `json:"entity,omitempty"`
	Message  string   `json:"message"`
}

// CheckResult summarises everything wrong with a snapshot.
type CheckResult struct {
	Files    int
	Entities int
	Findings []Finding
}

// HasErrors reports whether some document could not be loaded.
func (r CheckResult) HasErrors() bool {
	for _, f := range r.Findings {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}

// NewCheckResult collects load problems, entity issues and dependency cycles,
// in that order.
func NewCheckResult(snap *snapshot.Snapshot) CheckResult {
	r := CheckResult{Files: len(snap.Files), Entities: len(snap.Entities)}

	for _, p := range snap.Problems {
		file, msg := problemParts(p)
		r.Findings = append(r.Findings, Finding{
			Severity: SeverityError,
			Source:   file,
			Message:  msg,
		})
	}

	for i := range snap.Entities {
		e := &snap.Entities[i]
		for _, is := range e.Issues {
			r.Findings = append(r.Findings, Finding{
				Severity: SeverityIssue,
				Source:   e.SourcePath,
				Entity:   entityref.Format(e.Ref()),
				Message:  is.Path + ": " + is.Message,
			})
		}
	}

	for _, cycle := range graph.DependencyCycles(snap.Entities, snap.Index) {
		refs := make([]string, len(cycle))
		for i, id := range cycle {
			refs[i] = entityref.Format(snap.Entities[id].Ref())
		}
		slices.Sort(refs)
		first := &snap.Entities[cycle[0]]
		r.Findings = append(r.Findings, Finding{
			Severity: SeverityCycle,
			Source:   first.SourcePath,
			Entity:   entityref.Format(first.Ref()),
			Message:  "dependsOn cycle: " + strings.Join(refs, ", "),
		})
	}
	return r
}

// problemParts splits a load problem into the file it concerns and the rest
// of its message.
func problemParts(err error) (string, string) {
	var de *source.DocumentError
	if errors.As(err, &de) {
		switch {
		case de.Document < 0:
			return de.File, de.Err.Error()
		case de.Line > 0:
			return de.File, fmt.Sprintf("document %d (line %d): %v", de.Document, de.Line, de.Err)
		default:
			return de.File, fmt.Sprintf("document %d: %v", de.Document, de.Err)
		}
	}
	var pe *catalog.ParseError
	if errors.As(err, &pe) {
		return pe.File, fmt.Sprintf("document %d: %s: %s", pe.Document, pe.Field, pe.Reason)
	}
	return "", err.Error()
}
