package checklist

import (
	"fmt"

	"github.com/jsamuelsen11/go-checklist-service/internal/domain"
)

// State is the lifecycle position of a container. Items share the state of
// the container that owns them.
type State int

const (
	// StateDraft is a container being composed that has never been committed.
	StateDraft State = iota
	// StatePersisted is a container that passed validation and was saved.
	StatePersisted
	// StateDeleted is terminal.
	StateDeleted
)

func (s State) String() string {
	switch s {
	case StateDraft:
		return "draft"
	case StatePersisted:
		return "persisted"
	case StateDeleted:
		return "deleted"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// CanTransition reports whether moving from s to next is allowed. Saving a
// persisted container again is a legal self-transition.
func (s State) CanTransition(next State) bool {
	switch s {
	case StateDraft:
		return next == StatePersisted
	case StatePersisted:
		return next == StatePersisted || next == StateDeleted
	default:
		return false
	}
}

func transition(current *State, next State) error {
	if !current.CanTransition(next) {
		return fmt.Errorf("%w: cannot move from %s to %s", domain.ErrInvalidState, *current, next)
	}
	*current = next
	return nil
}

func ensureMutable(s State) error {
	if s == StateDeleted {
		return fmt.Errorf("%w: container is deleted", domain.ErrInvalidState)
	}
	return nil
}
