package checklist

import (
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/go-checklist-service/internal/domain"
	"github.com/jsamuelsen11/go-checklist-service/internal/domain/naming"
)

// Blueprint is a reusable template from which Lists are materialized.
type Blueprint struct {
	ID uuid.UUID
	Header
	UsageCount int
	Items      []BlueprintItem
	State      State
}

// NewBlueprint builds a draft Blueprint whose name is unique among
// existingBlueprints.
func NewBlueprint(name, details string, existingBlueprints []naming.Entry) (*Blueprint, error) {
	h, err := NewHeader(domain.ScopeBlueprint, name, details, existingBlueprints)
	if err != nil {
		return nil, err
	}
	return &Blueprint{ID: uuid.New(), Header: h, State: StateDraft}, nil
}

// Entry returns the blueprint as a uniqueness-scope entry.
func (b *Blueprint) Entry() naming.Entry {
	return naming.Entry{ID: b.ID, Name: b.Name}
}

// Rename changes the blueprint name.
func (b *Blueprint) Rename(name string, otherBlueprints []naming.Entry) error {
	if err := ensureMutable(b.State); err != nil {
		return err
	}
	return b.rename(domain.ScopeBlueprint, b.ID, name, otherBlueprints)
}

// SetDetails replaces the free-text details.
func (b *Blueprint) SetDetails(details string) error {
	if err := ensureMutable(b.State); err != nil {
		return err
	}
	return b.setDetails(details)
}

// AddItem appends a new template item and returns its id.
func (b *Blueprint) AddItem(name string, priority bool) (uuid.UUID, error) {
	if err := ensureMutable(b.State); err != nil {
		return uuid.Nil, err
	}
	n, err := validateItemName(domain.ScopeBlueprintItem, name, entries(b.Items), uuid.Nil)
	if err != nil {
		return uuid.Nil, err
	}
	item := BlueprintItem{ID: uuid.New(), Name: n, Priority: priority}
	b.Items = append(b.Items, item)
	return item.ID, nil
}

// Item looks up an item by id.
func (b *Blueprint) Item(id uuid.UUID) (BlueprintItem, bool) {
	i := indexOf(b.Items, id)
	if i < 0 {
		return BlueprintItem{}, false
	}
	return b.Items[i], true
}

// RenameItem changes an item name, keeping it unique among its siblings.
func (b *Blueprint) RenameItem(id uuid.UUID, name string) error {
	i, err := b.locate(id)
	if err != nil {
		return err
	}
	n, err := validateItemName(domain.ScopeBlueprintItem, name, entries(b.Items), id)
	if err != nil {
		return err
	}
	b.Items[i].Name = n
	return nil
}

// SetItemPriority sets the priority flag of one item.
func (b *Blueprint) SetItemPriority(id uuid.UUID, priority bool) error {
	i, err := b.locate(id)
	if err != nil {
		return err
	}
	b.Items[i].Priority = priority
	return nil
}

// RemoveItem drops an item; absent items are ignored.
func (b *Blueprint) RemoveItem(id uuid.UUID) (bool, error) {
	if err := ensureMutable(b.State); err != nil {
		return false, err
	}
	i := indexOf(b.Items, id)
	if i < 0 {
		return false, nil
	}
	b.Items = slices.Delete(b.Items, i, i+1)
	return true, nil
}

// MarkPersisted records a successful commit.
func (b *Blueprint) MarkPersisted() error { return transition(&b.State, StatePersisted) }

// MarkDeleted records a successful delete.
func (b *Blueprint) MarkDeleted() error { return transition(&b.State, StateDeleted) }

// Clone returns a deep copy.
func (b *Blueprint) Clone() *Blueprint {
	c := *b
	c.Items = slices.Clone(b.Items)
	return &c
}

func (b *Blueprint) locate(id uuid.UUID) (int, error) {
	if err := ensureMutable(b.State); err != nil {
		return -1, err
	}
	i := indexOf(b.Items, id)
	if i < 0 {
		return -1, fmt.Errorf("blueprint item %s: %w", id, domain.ErrNotFound)
	}
	return i, nil
}

// BlueprintEntries converts blueprints into uniqueness-scope entries.
func BlueprintEntries(blueprints []Blueprint) []naming.Entry {
	out := make([]naming.Entry, len(blueprints))
	for i := range blueprints {
		out[i] = blueprints[i].Entry()
	}
	return out
}
