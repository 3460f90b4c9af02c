package snapshot

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vk/bsv/internal/catalog"
	"github.com/vk/bsv/internal/ctxlog"
	"github.com/vk/bsv/internal/entityref"
	"github.com/vk/bsv/internal/index"
	"github.com/vk/bsv/internal/schema"
	"github.com/vk/bsv/internal/source"
	"github.com/vk/bsv/internal/tree"
	"lukechampine.com/blake3"
)

// Snapshot is one immutable view of the catalog.
type Snapshot struct {
	ID          uuid.UUID
	Root        string
	Fingerprint [32]byte
	LoadedAt    time.Time
	// Files are the catalog files read, in discovery order.
	Files []string

	Entities []catalog.EntityWithSource
	Index    *index.Index
	Tree     *tree.Tree

	// Problems holds a *source.DocumentError or *catalog.ParseError for every
	// document that did not become an entity.
	Problems []error
}

// Build reads root through loader and assembles a snapshot. The only error
// it returns is the loader's *source.DiscoveryError.
func Build(ctx context.Context, loader source.Loader, root string) (*Snapshot, error) {
	logger := ctxlog.FromContext(ctx)

	res, err := loader.Load(ctx, root)
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{
		ID:          uuid.New(),
		Root:        root,
		Fingerprint: fingerprint(res.Files),
		LoadedAt:    time.Now(),
		Problems:    append([]error(nil), res.Errors...),
	}
	for _, f := range res.Files {
		snap.Files = append(snap.Files, f.Path)
	}

	for _, doc := range res.Documents {
		e, err := catalog.Build(doc.Record, doc.File, doc.Index)
		if err != nil {
			logger.Warn("Skipped invalid entity.", "error", err)
			snap.Problems = append(snap.Problems, err)
			continue
		}
		e.Issues = append(e.Issues, schema.Check(&e.Entity)...)
		snap.Entities = append(snap.Entities, *e)
	}

	snap.Index = index.Build(snap.Entities)
	snap.Tree = tree.Build(snap.Entities, snap.Index)

	logger.Info("Catalog snapshot built.",
		"id", snap.ID,
		"entities", len(snap.Entities),
		"nodes", snap.Tree.Len(),
		"problems", len(snap.Problems),
	)
	return snap, nil
}

// fingerprint hashes file paths and contents in discovery order.
func fingerprint(files []source.File) [32]byte {
	h := blake3.New(32, nil)
	var size [8]byte
	for _, f := range files {
		binary.LittleEndian.PutUint64(size[:], uint64(len(f.Path)))
		h.Write(size[:])
		h.Write([]byte(f.Path))
		binary.LittleEndian.PutUint64(size[:], uint64(len(f.Content)))
		h.Write(size[:])
		h.Write(f.Content)
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// Entity returns the entity with the given id, or nil.
func (s *Snapshot) Entity(id int) *catalog.EntityWithSource {
	if id < 0 || id >= len(s.Entities) {
		return nil
	}
	return &s.Entities[id]
}

// ErrNotFound is returned by Find when no entity matches.
var ErrNotFound = errors.New("entity not found")

// Find resolves reference text typed by a user. A missing kind defaults to
// component; a missing namespace to "default". When the kind is omitted and
// no component matches, the namespace/name fallback of the index is used.
func (s *Snapshot) Find(text string) (int, error) {
	ref := entityref.Parse(text, entityref.Context{DefaultKind: entityref.KindComponent})
	if id, ok := s.Index.Lookup(ref); ok {
		return id, nil
	}
	if !ref.ExplicitKind {
		ref.Kind = ""
		if id, ok := s.Index.Lookup(ref); ok {
			return id, nil
		}
	}
	return -1, fmt.Errorf("%w: %s", ErrNotFound, entityref.Display(ref))
}

// IssueCount is the number of non-fatal findings across all entities.
func (s *Snapshot) IssueCount() int {
	n := 0
	for i := range s.Entities {
		n += len(s.Entities[i].Issues)
	}
	return n
}
