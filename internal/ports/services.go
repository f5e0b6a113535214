package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/go-checklist-service/internal/domain/checklist"
)

// ListService defines the service port for list operations.
// Implemented by the application layer; called by inbound adapters (handlers).
type ListService interface {
	// QueryLists returns lists ordered by the query's sort hint.
	QueryLists(ctx context.Context, q ListQuery) ([]checklist.List, error)

	// GetList returns a single list with its items in storage order.
	// Returns domain.ErrNotFound if the list does not exist.
	GetList(ctx context.Context, id uuid.UUID) (*checklist.List, error)

	// CreateList creates an empty list.
	// Returns domain.ErrValidation for an empty or over-long name and
	// domain.ErrConflict if another list already uses the name.
	CreateList(ctx context.Context, name, details string) (*checklist.List, error)

	// UpdateList applies a partial header update.
	UpdateList(ctx context.Context, id uuid.UUID, patch HeaderPatch) (*checklist.List, error)

	// DeleteList deletes a list and all of its items.
	DeleteList(ctx context.Context, id uuid.UUID) error

	// AddItem appends an item. Returns domain.ErrConflict if a sibling
	// already uses the name.
	AddItem(ctx context.Context, listID uuid.UUID, name string, priority bool) (*checklist.ListItem, error)

	// UpdateItem applies a partial item update.
	UpdateItem(ctx context.Context, listID, itemID uuid.UUID, patch ItemPatch) (*checklist.ListItem, error)

	// RemoveItem deletes an item. Removing an absent item from an existing
	// list succeeds.
	RemoveItem(ctx context.Context, listID, itemID uuid.UUID) error

	// SetAllDone marks every item of the list done or not done.
	SetAllDone(ctx context.Context, id uuid.UUID, done bool) (*checklist.List, error)

	// RemoveDoneItems deletes the completed items of the list.
	RemoveDoneItems(ctx context.Context, id uuid.UUID) (*checklist.List, error)

	// Capture creates a new blueprint from the list.
	// Returns domain.ErrConflict if a blueprint already uses the list's name.
	Capture(ctx context.Context, id uuid.UUID) (*checklist.Blueprint, error)
}

// BlueprintService defines the service port for blueprint operations.
type BlueprintService interface {
	QueryBlueprints(ctx context.Context, q BlueprintQuery) ([]checklist.Blueprint, error)
	GetBlueprint(ctx context.Context, id uuid.UUID) (*checklist.Blueprint, error)
	CreateBlueprint(ctx context.Context, name, details string) (*checklist.Blueprint, error)
	UpdateBlueprint(ctx context.Context, id uuid.UUID, patch HeaderPatch) (*checklist.Blueprint, error)
	DeleteBlueprint(ctx context.Context, id uuid.UUID) error
	AddItem(ctx context.Context, blueprintID uuid.UUID, name string, priority bool) (*checklist.BlueprintItem, error)
	UpdateItem(ctx context.Context, blueprintID, itemID uuid.UUID, patch ItemPatch) (*checklist.BlueprintItem, error)
	RemoveItem(ctx context.Context, blueprintID, itemID uuid.UUID) error

	// Materialize creates a new list from the blueprint and increments the
	// blueprint's usage count in the same commit.
	// Returns domain.ErrConflict if a list already uses the blueprint's name.
	Materialize(ctx context.Context, id uuid.UUID) (*checklist.List, error)
}

// HeaderPatch is a partial update of a container's name and details.
// Nil fields are left unchanged.
type HeaderPatch struct {
	Name    *string
	Details *string
}

// ItemPatch is a partial item update. Done is ignored for blueprint items.
type ItemPatch struct {
	Name     *string
	Done     *bool
	Priority *bool
}
