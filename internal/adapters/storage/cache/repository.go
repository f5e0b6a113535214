// Package cache keeps recently read lists and blueprints in memory.
//
// Entries are deep copies. Callers receive their own clone on every hit so
// edits to a returned value never leak into the cache or into another
// request. Any write invalidates the affected entries before returning.
package cache

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/jsamuelsen11/go-checklist-service/internal/domain/checklist"
	"github.com/jsamuelsen11/go-checklist-service/internal/ports"
)

// Compile-time interface check.
var _ ports.ChecklistRepository = (*Repository)(nil)

// Repository is a read-through cache over another repository. Queries are
// not cached because their results depend on the filter and sort.
//
// gen counts invalidations. A miss records gen before reading from next and
// only fills the cache when no invalidation ran in between, so a read that
// raced a write never caches the pre-write snapshot.
type Repository struct {
	next       ports.ChecklistRepository
	lists      *lru.Cache[uuid.UUID, *checklist.List]
	blueprints *lru.Cache[uuid.UUID, *checklist.Blueprint]

	mu  sync.Mutex
	gen uint64
}

// New wraps next with caches holding up to size lists and size blueprints.
func New(next ports.ChecklistRepository, size int) (*Repository, error) {
	lists, err := lru.New[uuid.UUID, *checklist.List](size)
	if err != nil {
		return nil, fmt.Errorf("creating list cache: %w", err)
	}
	blueprints, err := lru.New[uuid.UUID, *checklist.Blueprint](size)
	if err != nil {
		return nil, fmt.Errorf("creating blueprint cache: %w", err)
	}
	return &Repository{next: next, lists: lists, blueprints: blueprints}, nil
}

// QueryLists passes through.
func (r *Repository) QueryLists(ctx context.Context, q ports.ListQuery) ([]checklist.List, error) {
	return r.next.QueryLists(ctx, q)
}

// QueryBlueprints passes through.
func (r *Repository) QueryBlueprints(ctx context.Context, q ports.BlueprintQuery) ([]checklist.Blueprint, error) {
	return r.next.QueryBlueprints(ctx, q)
}

// GetList serves from cache when possible.
func (r *Repository) GetList(ctx context.Context, id uuid.UUID) (*checklist.List, error) {
	if l, ok := r.lists.Get(id); ok {
		return l.Clone(), nil
	}
	gen := r.generation()
	l, err := r.next.GetList(ctx, id)
	if err != nil {
		return nil, err
	}
	r.fill(gen, func() { r.lists.Add(id, l.Clone()) })
	return l, nil
}

// GetBlueprint serves from cache when possible.
func (r *Repository) GetBlueprint(ctx context.Context, id uuid.UUID) (*checklist.Blueprint, error) {
	if bp, ok := r.blueprints.Get(id); ok {
		return bp.Clone(), nil
	}
	gen := r.generation()
	bp, err := r.next.GetBlueprint(ctx, id)
	if err != nil {
		return nil, err
	}
	r.fill(gen, func() { r.blueprints.Add(id, bp.Clone()) })
	return bp, nil
}

// Save invalidates every entry the batch touches, whether or not the write
// succeeded.
func (r *Repository) Save(ctx context.Context, b *ports.Batch) error {
	defer r.invalidate(b)
	return r.next.Save(ctx, b)
}

// Delete purges both caches because the id may name an item whose owner
// is cached.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	defer r.purge()
	return r.next.Delete(ctx, id)
}

// Close closes the underlying store when it supports it.
func (r *Repository) Close() error {
	r.purge()
	if c, ok := r.next.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (r *Repository) generation() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.gen
}

// fill runs add only if the generation still matches gen.
func (r *Repository) fill(gen uint64, add func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.gen == gen {
		add()
	}
}

func (r *Repository) invalidate(b *ports.Batch) {
	if b == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.gen++
	for _, m := range b.Mutations {
		switch m.Kind {
		case ports.MutationPutList:
			if m.List != nil {
				r.lists.Remove(m.List.ID)
			}
		case ports.MutationPutBlueprint:
			if m.Blueprint != nil {
				r.blueprints.Remove(m.Blueprint.ID)
			}
		case ports.MutationDelete:
			r.purgeLocked()
			return
		}
	}
}

func (r *Repository) purge() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.gen++
	r.purgeLocked()
}

func (r *Repository) purgeLocked() {
	r.lists.Purge()
	r.blueprints.Purge()
}
