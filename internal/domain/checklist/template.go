package checklist

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/go-checklist-service/internal/domain"
	"github.com/jsamuelsen11/go-checklist-service/internal/domain/naming"
)

// Materialize creates a draft List from bp and increments bp.UsageCount.
// existingLists holds every current list name; a collision fails with a
// *domain.NameUnavailableError before anything is changed. Items are copied
// in alphabetic order, not done, keeping name and priority. The new List
// and the updated bp must be committed together or both discarded.
func Materialize(bp *Blueprint, existingLists []naming.Entry, now time.Time) (*List, error) {
	if bp.State == StateDeleted {
		return nil, fmt.Errorf("%w: blueprint is deleted", domain.ErrInvalidState)
	}
	if !naming.IsUnique(bp.Name, existingLists, uuid.Nil) {
		return nil, &domain.NameUnavailableError{Scope: domain.ScopeList, Name: bp.Name}
	}

	l := &List{
		ID:        uuid.New(),
		Header:    bp.Header,
		CreatedAt: now.UTC(),
		State:     StateDraft,
	}
	src := SortBlueprintItems(bp.Items, Alphabetic)
	l.Items = make([]ListItem, 0, len(src))
	for _, it := range src {
		l.Items = append(l.Items, ListItem{ID: uuid.New(), Name: it.Name, Priority: it.Priority})
	}

	bp.UsageCount++
	return l, nil
}

// Capture creates a draft Blueprint from l. Done state is dropped and the
// usage count starts at zero. Items are copied in alphabetic order.
func Capture(l *List, existingBlueprints []naming.Entry) (*Blueprint, error) {
	if l.State == StateDeleted {
		return nil, fmt.Errorf("%w: list is deleted", domain.ErrInvalidState)
	}
	if !naming.IsUnique(l.Name, existingBlueprints, uuid.Nil) {
		return nil, &domain.NameUnavailableError{Scope: domain.ScopeBlueprint, Name: l.Name}
	}

	bp := &Blueprint{
		ID:     uuid.New(),
		Header: l.Header,
		State:  StateDraft,
	}
	src := SortListItems(l.Items, Alphabetic)
	bp.Items = make([]BlueprintItem, 0, len(src))
	for _, it := range src {
		bp.Items = append(bp.Items, BlueprintItem{ID: uuid.New(), Name: it.Name, Priority: it.Priority})
	}
	return bp, nil
}
