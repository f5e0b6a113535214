package checklist

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/go-checklist-service/internal/domain"
	"github.com/jsamuelsen11/go-checklist-service/internal/domain/naming"
)

// List is a named, ordered collection of completable items. Items keep
// insertion order; display order comes from SortListItems.
type List struct {
	ID uuid.UUID
	Header
	CreatedAt time.Time
	Items     []ListItem
	State     State
}

// NewList builds a draft List. existingLists is the current set of list
// names; the new name must not collide with any of them.
func NewList(name, details string, now time.Time, existingLists []naming.Entry) (*List, error) {
	h, err := NewHeader(domain.ScopeList, name, details, existingLists)
	if err != nil {
		return nil, err
	}
	return &List{
		ID:        uuid.New(),
		Header:    h,
		CreatedAt: now.UTC(),
		State:     StateDraft,
	}, nil
}

// Entry returns the list as a uniqueness-scope entry.
func (l *List) Entry() naming.Entry {
	return naming.Entry{ID: l.ID, Name: l.Name}
}

// Rename changes the list name. Renaming to the current name is a no-op and
// never conflicts with the list itself.
func (l *List) Rename(name string, otherLists []naming.Entry) error {
	if err := ensureMutable(l.State); err != nil {
		return err
	}
	return l.rename(domain.ScopeList, l.ID, name, otherLists)
}

// SetDetails replaces the free-text details.
func (l *List) SetDetails(details string) error {
	if err := ensureMutable(l.State); err != nil {
		return err
	}
	return l.setDetails(details)
}

// AddItem appends a new, not-done item and returns its id.
func (l *List) AddItem(name string, priority bool) (uuid.UUID, error) {
	if err := ensureMutable(l.State); err != nil {
		return uuid.Nil, err
	}
	n, err := validateItemName(domain.ScopeListItem, name, entries(l.Items), uuid.Nil)
	if err != nil {
		return uuid.Nil, err
	}
	item := ListItem{ID: uuid.New(), Name: n, Priority: priority}
	l.Items = append(l.Items, item)
	return item.ID, nil
}

// Item looks up an item by id.
func (l *List) Item(id uuid.UUID) (ListItem, bool) {
	i := indexOf(l.Items, id)
	if i < 0 {
		return ListItem{}, false
	}
	return l.Items[i], true
}

// RenameItem changes an item name, keeping it unique among its siblings.
func (l *List) RenameItem(id uuid.UUID, name string) error {
	i, err := l.locate(id)
	if err != nil {
		return err
	}
	n, err := validateItemName(domain.ScopeListItem, name, entries(l.Items), id)
	if err != nil {
		return err
	}
	l.Items[i].Name = n
	return nil
}

// SetItemDone sets the completion flag of one item.
func (l *List) SetItemDone(id uuid.UUID, done bool) error {
	i, err := l.locate(id)
	if err != nil {
		return err
	}
	l.Items[i].Done = done
	return nil
}

// SetItemPriority sets the priority flag of one item.
func (l *List) SetItemPriority(id uuid.UUID, priority bool) error {
	i, err := l.locate(id)
	if err != nil {
		return err
	}
	l.Items[i].Priority = priority
	return nil
}

// RemoveItem drops an item. Removing an absent item is not an error; the
// result reports whether anything was removed.
func (l *List) RemoveItem(id uuid.UUID) (bool, error) {
	if err := ensureMutable(l.State); err != nil {
		return false, err
	}
	i := indexOf(l.Items, id)
	if i < 0 {
		return false, nil
	}
	l.Items = slices.Delete(l.Items, i, i+1)
	return true, nil
}

// SetAllDone marks every item done or not done.
func (l *List) SetAllDone(done bool) error {
	if err := ensureMutable(l.State); err != nil {
		return err
	}
	for i := range l.Items {
		l.Items[i].Done = done
	}
	return nil
}

// RemoveDoneItems drops every completed item and returns how many went.
func (l *List) RemoveDoneItems() (int, error) {
	if err := ensureMutable(l.State); err != nil {
		return 0, err
	}
	before := len(l.Items)
	l.Items = slices.DeleteFunc(l.Items, func(it ListItem) bool { return it.Done })
	return before - len(l.Items), nil
}

// Completion is the fraction of done items, 0 for an empty list.
func (l *List) Completion() float64 {
	if len(l.Items) == 0 {
		return 0
	}
	return float64(l.DoneCount()) / float64(len(l.Items))
}

// DoneCount returns the number of completed items.
func (l *List) DoneCount() int {
	n := 0
	for _, it := range l.Items {
		if it.Done {
			n++
		}
	}
	return n
}

// IsDone reports whether the list has items and all of them are done.
func (l *List) IsDone() bool {
	return len(l.Items) > 0 && l.DoneCount() == len(l.Items)
}

// MarkPersisted records a successful commit.
func (l *List) MarkPersisted() error { return transition(&l.State, StatePersisted) }

// MarkDeleted records a successful delete.
func (l *List) MarkDeleted() error { return transition(&l.State, StateDeleted) }

// Clone returns a deep copy.
func (l *List) Clone() *List {
	c := *l
	c.Items = slices.Clone(l.Items)
	return &c
}

func (l *List) locate(id uuid.UUID) (int, error) {
	if err := ensureMutable(l.State); err != nil {
		return -1, err
	}
	i := indexOf(l.Items, id)
	if i < 0 {
		return -1, fmt.Errorf("list item %s: %w", id, domain.ErrNotFound)
	}
	return i, nil
}

// ListEntries converts lists into uniqueness-scope entries.
func ListEntries(lists []List) []naming.Entry {
	out := make([]naming.Entry, len(lists))
	for i := range lists {
		out[i] = lists[i].Entry()
	}
	return out
}
