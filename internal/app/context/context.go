// Package appctx provides the per-operation unit of work used by the
// application services.
//
// A UnitOfWork extends context.Context with memoized reads and a staged
// write batch. Every read goes through GetOrFetch so an operation never
// loads the same snapshot twice, and every write is staged into a single
// ports.Batch that Commit hands to the repository in one call:
//
//	uow := appctx.New(ctx)
//
//	// Stage 1: fetch snapshots with memoization
//	bp, err := appctx.GetOrFetch(uow, "blueprint:"+id.String(), fetchBlueprint)
//
//	// Stage 2: stage writes; later reads of the key see the staged entity
//	err = uow.Stage("blueprint:"+id.String(), bp, func(b *ports.Batch) { b.PutBlueprint(bp) })
//
//	// Stage 3: commit everything atomically
//	err = uow.Commit(ctx, repo)
//
// A UnitOfWork is created per service call and must not be shared between
// goroutines.
package appctx

import (
	"context"
	"errors"
	"fmt"

	"github.com/jsamuelsen11/go-checklist-service/internal/ports"
)

// ErrAlreadyCommitted is returned when Stage or Commit is called on a
// UnitOfWork that has already been committed.
var ErrAlreadyCommitted = errors.New("appctx: unit of work already committed")

// ErrNilMutation is returned when Stage receives a nil staging function.
var ErrNilMutation = errors.New("appctx: nil mutation")

// ErrTypeMismatch is returned by GetOrFetch when a cached value's type does
// not match the requested type T. This indicates a programming error where
// the same cache key is used with different types.
var ErrTypeMismatch = errors.New("appctx: cached value type mismatch")

// Committer persists a batch atomically. ports.ChecklistRepository
// satisfies it.
type Committer interface {
	Save(ctx context.Context, b *ports.Batch) error
}

// UnitOfWork is an operation-scoped context wrapper providing in-memory
// memoization and a staged write batch.
type UnitOfWork struct {
	context.Context
	cache     map[string]cacheEntry
	batch     ports.Batch
	committed bool
}

// cacheEntry stores the result of a GetOrFetch call, including any error.
type cacheEntry struct {
	value any
	err   error
}

// New creates a UnitOfWork wrapping ctx with an empty cache and batch.
func New(ctx context.Context) *UnitOfWork {
	return &UnitOfWork{
		Context: ctx,
		cache:   make(map[string]cacheEntry),
	}
}

// GetOrFetch returns a cached value for the given key, or calls fetchFn to
// fetch and cache it. Both successful results and errors are cached.
//
// The same key must always be used with the same type T. If a cached value
// exists but its type does not match T, GetOrFetch returns ErrTypeMismatch.
func GetOrFetch[T any](u *UnitOfWork, key string, fetchFn func(ctx context.Context) (T, error)) (T, error) {
	if entry, ok := u.cache[key]; ok {
		if entry.err != nil {
			var zero T
			return zero, entry.err
		}
		v, ok := entry.value.(T)
		if !ok {
			var zero T
			return zero, fmt.Errorf("%w: key %q holds %T, requested %T", ErrTypeMismatch, key, entry.value, zero)
		}
		return v, nil
	}

	val, err := fetchFn(u.Context)
	u.cache[key] = cacheEntry{value: val, err: err}
	return val, err
}

// DataProvider binds a cache key and fetch function together.
type DataProvider[T any] struct {
	key     string
	fetchFn func(ctx context.Context) (T, error)
}

// NewDataProvider creates a DataProvider with the given cache key and fetch
// function.
func NewDataProvider[T any](key string, fetchFn func(ctx context.Context) (T, error)) *DataProvider[T] {
	return &DataProvider[T]{key: key, fetchFn: fetchFn}
}

// Get returns the cached value or fetches it.
func (p *DataProvider[T]) Get(u *UnitOfWork) (T, error) {
	return GetOrFetch(u, p.key, p.fetchFn)
}

// Stage records entity under key for read-your-writes and lets stage add
// the matching mutations to the pending batch.
func (u *UnitOfWork) Stage(key string, entity any, stage func(b *ports.Batch)) error {
	if stage == nil {
		return ErrNilMutation
	}
	if u.committed {
		return ErrAlreadyCommitted
	}
	u.cache[key] = cacheEntry{value: entity}
	stage(&u.batch)
	return nil
}

// Forget drops a memoized entry so the next read fetches again.
func (u *UnitOfWork) Forget(key string) {
	delete(u.cache, key)
}

// Pending returns the number of staged mutations.
func (u *UnitOfWork) Pending() int {
	return u.batch.Len()
}
