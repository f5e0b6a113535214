package checklist

import (
	"github.com/google/uuid"

	"github.com/jsamuelsen11/go-checklist-service/internal/domain"
	"github.com/jsamuelsen11/go-checklist-service/internal/domain/naming"
)

// ListItem is a completable entry owned by exactly one List.
type ListItem struct {
	ID       uuid.UUID
	Name     string
	Done     bool
	Priority bool
}

// Entry returns the item as a uniqueness-scope entry.
func (i ListItem) Entry() naming.Entry {
	return naming.Entry{ID: i.ID, Name: i.Name}
}

// BlueprintItem is a template entry owned by exactly one Blueprint. It has
// no completion state.
type BlueprintItem struct {
	ID       uuid.UUID
	Name     string
	Priority bool
}

// Entry returns the item as a uniqueness-scope entry.
func (i BlueprintItem) Entry() naming.Entry {
	return naming.Entry{ID: i.ID, Name: i.Name}
}

type entryer interface {
	Entry() naming.Entry
}

func entries[T entryer](items []T) []naming.Entry {
	out := make([]naming.Entry, len(items))
	for i, it := range items {
		out[i] = it.Entry()
	}
	return out
}

func indexOf[T entryer](items []T, id uuid.UUID) int {
	for i, it := range items {
		if it.Entry().ID == id {
			return i
		}
	}
	return -1
}

// validateItemName checks a new or edited item name against its siblings.
// self is the item being renamed, or uuid.Nil for a new item.
func validateItemName(scope domain.NameScope, name string, siblings []naming.Entry, self uuid.UUID) (string, error) {
	n, err := naming.Validate("name", name)
	if err != nil {
		return "", err
	}
	if !naming.IsUnique(n, siblings, self) {
		return "", &domain.NameUnavailableError{Scope: scope, Name: n}
	}
	return n, nil
}
