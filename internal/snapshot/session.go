package snapshot

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/vk/bsv/internal/catalog"
	"github.com/vk/bsv/internal/ctxlog"
	"github.com/vk/bsv/internal/entityref"
	"github.com/vk/bsv/internal/graph"
	"github.com/vk/bsv/internal/source"
	"github.com/vk/bsv/internal/tree"
)

// ReloadError rejects a reload whose result has problems the current
// snapshot does not have.
type ReloadError struct {
	Problems []error
}

func (e *ReloadError) Error() string {
	if len(e.Problems) == 1 {
		return fmt.Sprintf("reload rejected: %v", e.Problems[0])
	}
	return fmt.Sprintf("reload rejected: %d new problems, first: %v", len(e.Problems), e.Problems[0])
}

// ReloadOutcome says what a successful Reload did.
type ReloadOutcome int

const (
	// Unchanged means the files on disk are identical to the current snapshot.
	Unchanged ReloadOutcome = iota
	// Replaced means a new snapshot is now current.
	Replaced
)

// Session owns the current snapshot and its view.
type Session struct {
	loader  source.Loader
	root    string
	current *Snapshot
	view    View
}

// NewSession performs the initial load. A discovery failure is returned as
// is; documents that fail to parse are kept in the snapshot's Problems.
func NewSession(ctx context.Context, loader source.Loader, root string) (*Session, error) {
	snap, err := Build(ctx, loader, root)
	if err != nil {
		return nil, err
	}
	return &Session{
		loader:  loader,
		root:    root,
		current: snap,
		view:    DefaultView(snap.Tree),
	}, nil
}

// Snapshot returns the current snapshot.
func (s *Session) Snapshot() *Snapshot {
	return s.current
}

// View returns the presentation state for in-place changes.
func (s *Session) View() *View {
	return &s.view
}

// Reload rebuilds the snapshot from disk. On any error the current snapshot
// and view are left exactly as they were.
func (s *Session) Reload(ctx context.Context) (ReloadOutcome, error) {
	logger := ctxlog.FromContext(ctx)

	next, err := Build(ctx, s.loader, s.root)
	if err != nil {
		logger.Warn("Reload failed; keeping previous snapshot.", "error", err)
		return Unchanged, err
	}

	if next.Fingerprint == s.current.Fingerprint {
		logger.Debug("Reload found no changes.", "id", s.current.ID)
		return Unchanged, nil
	}

	if fresh := newProblems(s.current.Problems, next.Problems); len(fresh) > 0 {
		logger.Warn("Reload rejected; keeping previous snapshot.", "new_problems", len(fresh))
		return Unchanged, &ReloadError{Problems: fresh}
	}

	s.view = carryView(s.current, &s.view, next)
	s.current = next
	logger.Info("Snapshot replaced.", "id", next.ID)
	return Replaced, nil
}

// SelectedEntity returns the entity id behind the selected node.
func (s *Session) SelectedEntity() (int, bool) {
	n := s.current.Tree.Node(s.view.Selected)
	if n == nil || n.IsCategory() {
		return tree.NoID, false
	}
	return n.Entity, true
}

// Select moves the selection to the node showing entity id and expands its
// ancestors.
func (s *Session) Select(id int) bool {
	nodeID, ok := s.current.Tree.NodeOfEntity(id)
	if !ok {
		return false
	}
	s.view.Reveal(s.current.Tree, nodeID)
	return true
}

// SelectedGraph extracts the relationship graph of the selected entity.
func (s *Session) SelectedGraph() (*graph.Graph, error) {
	id, ok := s.SelectedEntity()
	if !ok {
		return nil, fmt.Errorf("no entity selected")
	}
	return graph.Extract(id, s.current.Entities, s.current.Index)
}

func newProblems(before, after []error) []error {
	seen := make(map[string]struct{}, len(before))
	for _, err := range before {
		seen[problemKey(err)] = struct{}{}
	}
	var fresh []error
	for _, err := range after {
		if _, ok := seen[problemKey(err)]; !ok {
			fresh = append(fresh, err)
		}
	}
	return fresh
}

// problemKey identifies a problem by where it is, not by its message: line
// numbers and decoder wording move when unrelated lines of the file change.
func problemKey(err error) string {
	var derr *source.DocumentError
	if errors.As(err, &derr) {
		return fmt.Sprintf("document|%s|%d", derr.File, derr.Document)
	}
	var perr *catalog.ParseError
	if errors.As(err, &perr) {
		return fmt.Sprintf("parse|%s|%d|%s", perr.File, perr.Document, perr.Field)
	}
	return err.Error()
}

// carryView maps expansion and selection onto the new tree by node identity
// rather than by id, since ids shift when entities are added or removed.
func carryView(prev *Snapshot, v *View, next *Snapshot) View {
	prevKeys := nodeKeys(prev)
	nextKeys := nodeKeys(next)
	ids := make(map[string]int, len(nextKeys))
	for id, key := range nextKeys {
		ids[key] = id
	}
	lookup := func(id int) (int, bool) {
		if id < 0 || id >= len(prevKeys) {
			return tree.NoID, false
		}
		nid, ok := ids[prevKeys[id]]
		return nid, ok
	}

	out := View{Selected: tree.NoID, Expanded: make(map[int]bool, len(v.Expanded)), Filter: v.Filter}
	for id := range v.Expanded {
		if nid, ok := lookup(id); ok {
			out.Expanded[nid] = true
		}
	}
	if nid, ok := lookup(v.Selected); ok {
		out.Selected = nid
	} else if len(next.Tree.Roots) > 0 {
		out.Selected = next.Tree.Roots[0]
	}
	return out
}

// nodeKeys returns the identity of every node, indexed by id. Entities are
// keyed by reference and categories by their position under the parent's
// key. Nodes that would share a key, such as duplicate entities, are told
// apart by their order of appearance.
func nodeKeys(s *Snapshot) []string {
	keys := make([]string, s.Tree.Len())
	seen := make(map[string]int, len(keys))
	for id := range keys {
		key := nodeKey(s, id)
		if n := seen[key]; n > 0 {
			keys[id] = key + "@" + strconv.Itoa(n)
		} else {
			keys[id] = key
		}
		seen[key]++
	}
	return keys
}

func nodeKey(s *Snapshot, id int) string {
	n := s.Tree.Node(id)
	if n == nil {
		return ""
	}
	if !n.IsCategory() {
		return entityref.Format(s.Entities[n.Entity].Ref())
	}
	return nodeKey(s, n.Parent) + "#" + strconv.Itoa(int(n.Category))
}
