package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/go-checklist-service/internal/domain/checklist"
)

// ListSort is a repository-level ordering hint for list queries.
type ListSort string

const (
	ListSortName    ListSort = "name"
	ListSortCreated ListSort = "created"
)

// BlueprintSort is a repository-level ordering hint for blueprint queries.
type BlueprintSort string

const (
	BlueprintSortName  BlueprintSort = "name"
	BlueprintSortUsage BlueprintSort = "usage"
)

// ListQuery selects lists. The zero value returns every list by name.
type ListQuery struct {
	Sort ListSort
	// NameContains filters by case-insensitive substring when non-empty.
	NameContains string
	// HeadersOnly skips loading items; returned lists have nil Items.
	HeadersOnly bool
}

// BlueprintQuery selects blueprints. The zero value returns every blueprint
// by name.
type BlueprintQuery struct {
	Sort         BlueprintSort
	NameContains string
	HeadersOnly  bool
}

// MutationKind identifies one entry of a Batch.
type MutationKind int

const (
	MutationPutList MutationKind = iota + 1
	MutationPutBlueprint
	MutationDelete
)

// Mutation is one staged write. Exactly one of List, Blueprint or ID is set,
// matching Kind.
type Mutation struct {
	Kind      MutationKind
	List      *checklist.List
	Blueprint *checklist.Blueprint
	ID        uuid.UUID
}

// Batch collects creates, updates and deletes that must commit together.
// A Put replaces the container row and its complete item set.
type Batch struct {
	Mutations []Mutation
}

// PutList stages an upsert of l and all of its items.
func (b *Batch) PutList(l *checklist.List) {
	b.Mutations = append(b.Mutations, Mutation{Kind: MutationPutList, List: l})
}

// PutBlueprint stages an upsert of bp and all of its items.
func (b *Batch) PutBlueprint(bp *checklist.Blueprint) {
	b.Mutations = append(b.Mutations, Mutation{Kind: MutationPutBlueprint, Blueprint: bp})
}

// Delete stages a cascading delete of a container or a single item.
func (b *Batch) Delete(id uuid.UUID) {
	b.Mutations = append(b.Mutations, Mutation{Kind: MutationDelete, ID: id})
}

// Len returns the number of staged mutations.
func (b *Batch) Len() int { return len(b.Mutations) }

// ChecklistRepository is the persistence port for lists and blueprints.
// Implementations return snapshots: callers own the returned values and
// mutations never reach storage until Save.
type ChecklistRepository interface {
	// QueryLists returns lists with their items, ordered by the query's sort
	// hint. Item order within a list is insertion order.
	QueryLists(ctx context.Context, q ListQuery) ([]checklist.List, error)

	// QueryBlueprints returns blueprints with their items.
	QueryBlueprints(ctx context.Context, q BlueprintQuery) ([]checklist.Blueprint, error)

	// GetList returns one list. Returns domain.ErrNotFound if absent.
	GetList(ctx context.Context, id uuid.UUID) (*checklist.List, error)

	// GetBlueprint returns one blueprint. Returns domain.ErrNotFound if absent.
	GetBlueprint(ctx context.Context, id uuid.UUID) (*checklist.Blueprint, error)

	// Save commits every mutation in b atomically: either all of them are
	// applied or none is. A name collision detected by the store is
	// reported as domain.ErrConflict; other failures wrap
	// domain.ErrPersistence.
	Save(ctx context.Context, b *Batch) error

	// Delete removes a container with all of its items, or a single item.
	// Returns domain.ErrNotFound when no entity has the id.
	Delete(ctx context.Context, id uuid.UUID) error
}
