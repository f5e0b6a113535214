package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation error")
	ErrConflict     = errors.New("conflict")
	ErrPersistence  = errors.New("persistence failure")
	ErrInvalidState = errors.New("invalid state")

	// ErrEmptyName marks the empty-name save gate. It is always delivered
	// inside a *ValidationError, so errors.Is(err, ErrValidation) holds too.
	ErrEmptyName = errors.New("name must not be empty")
)

// Validation messages shared by the domain packages and the HTTP DTOs.
const (
	MsgRequired = "is required"
	MsgTooLong  = "must be at most %d characters"
)

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details. Err optionally carries a more
// specific sentinel such as ErrEmptyName.
type ValidationError struct {
	Fields map[string]string
	Err    error
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		keys = append(keys, field)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, field := range keys {
		parts = append(parts, field+": "+e.Fields[field])
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrValidation, e.Err}
	}
	return []error{ErrValidation}
}

// NameScope identifies the collection a name must be unique within.
type NameScope string

const (
	ScopeList          NameScope = "list"
	ScopeBlueprint     NameScope = "blueprint"
	ScopeListItem      NameScope = "list item"
	ScopeBlueprintItem NameScope = "blueprint item"
)

// NameUnavailableError reports a name collision within a scope. It wraps
// ErrConflict and carries the conflicting name so callers can show it to
// the user.
type NameUnavailableError struct {
	Scope NameScope
	Name  string
}

func (e *NameUnavailableError) Error() string {
	return fmt.Sprintf("%s name %q is already taken", e.Scope, e.Name)
}

func (e *NameUnavailableError) Unwrap() error {
	return ErrConflict
}

// PersistenceError wraps a failure reported by the repository. The
// operation is retryable as a whole because every commit is atomic.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrPersistence.Error(), e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrPersistence}
	}
	return []error{ErrPersistence, e.Err}
}
