// Package naming canonicalizes display names and checks them for collisions.
//
// Every equality and uniqueness comparison between list, blueprint and item
// names goes through Key: the name with surrounding whitespace removed and
// Unicode case folding applied. Functions in this package are pure and never
// fail; rejecting empty or over-long names is Validate's job.
package naming

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/text/cases"

	"github.com/jsamuelsen11/go-checklist-service/internal/domain"
)

// Length limits, counted in runes after trimming.
const (
	MaxNameLength    = 64
	MaxDetailsLength = 128
)

// Entry is one existing name in a uniqueness scope.
type Entry struct {
	ID   uuid.UUID
	Name string
}

// Normalize removes leading and trailing whitespace.
func Normalize(s string) string {
	return strings.TrimSpace(s)
}

// Key returns the comparison form of s: normalized and case folded.
// A new Caser is created per call because cases.Caser is stateful.
func Key(s string) string {
	return cases.Fold().String(Normalize(s))
}

// Equal reports whether a and b are the same name ignoring case and
// surrounding whitespace.
func Equal(a, b string) bool {
	return Key(a) == Key(b)
}

// IsUnique reports whether candidate collides with none of existing. The
// entry whose ID equals excluding is skipped so an entity never conflicts
// with itself; pass uuid.Nil to compare against every entry.
func IsUnique(candidate string, existing []Entry, excluding uuid.UUID) bool {
	key := Key(candidate)
	for _, e := range existing {
		if excluding != uuid.Nil && e.ID == excluding {
			continue
		}
		if Key(e.Name) == key {
			return false
		}
	}
	return true
}

// Validate normalizes a name and enforces the non-empty and length rules.
// field names the offending field in the returned *domain.ValidationError.
func Validate(field, name string) (string, error) {
	n := Normalize(name)
	if n == "" {
		return "", &domain.ValidationError{
			Fields: map[string]string{field: domain.MsgRequired},
			Err:    domain.ErrEmptyName,
		}
	}
	if utf8.RuneCountInString(n) > MaxNameLength {
		return "", &domain.ValidationError{
			Fields: map[string]string{field: fmt.Sprintf(domain.MsgTooLong, MaxNameLength)},
		}
	}
	return n, nil
}

// ValidateDetails normalizes optional free text and enforces its length.
func ValidateDetails(field, details string) (string, error) {
	n := Normalize(details)
	if utf8.RuneCountInString(n) > MaxDetailsLength {
		return "", &domain.ValidationError{
			Fields: map[string]string{field: fmt.Sprintf(domain.MsgTooLong, MaxDetailsLength)},
		}
	}
	return n, nil
}
