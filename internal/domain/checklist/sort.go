package checklist

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jsamuelsen11/go-checklist-service/internal/domain"
	"github.com/jsamuelsen11/go-checklist-service/internal/domain/naming"
)

// Strategy names an item ordering.
type Strategy string

const (
	// DoneFirst puts completed items first, each group by name.
	DoneFirst Strategy = "done_first"
	// TodoFirst puts incomplete items first, each group by name.
	TodoFirst Strategy = "todo_first"
	// Alphabetic orders by normalized name only.
	Alphabetic Strategy = "alphabetic"
	// Priority puts marked items first, then done items, then orders by name.
	Priority Strategy = "priority"
)

// DoneLast is accepted by ParseStrategy as an alias of TodoFirst.
const DoneLast = "done_last"

// ParseStrategy converts a wire name into a Strategy. The empty string
// yields def.
func ParseStrategy(s string, def Strategy) (Strategy, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch v {
	case "":
		return def, nil
	case DoneLast:
		return TodoFirst, nil
	}
	if st := Strategy(v); st.Valid() {
		return st, nil
	}
	return "", &domain.ValidationError{
		Fields: map[string]string{"sort": fmt.Sprintf("unknown strategy %q", s)},
	}
}

// Valid reports whether s is one of the known strategies.
func (s Strategy) Valid() bool {
	switch s {
	case DoneFirst, TodoFirst, Alphabetic, Priority:
		return true
	}
	return false
}

type sortKey struct {
	name     string
	done     bool
	priority bool
}

// compareFunc returns the ordering for a strategy. Unknown strategies fall
// back to Alphabetic so sorting never fails.
func compareFunc(s Strategy) func(a, b sortKey) int {
	byName := func(a, b sortKey) int { return strings.Compare(a.name, b.name) }
	// flagFirst orders true before false.
	flagFirst := func(a, b bool) int {
		switch {
		case a == b:
			return 0
		case a:
			return -1
		default:
			return 1
		}
	}

	switch s {
	case DoneFirst:
		return func(a, b sortKey) int {
			if c := flagFirst(a.done, b.done); c != 0 {
				return c
			}
			return byName(a, b)
		}
	case TodoFirst:
		return func(a, b sortKey) int {
			if c := flagFirst(b.done, a.done); c != 0 {
				return c
			}
			return byName(a, b)
		}
	case Priority:
		return func(a, b sortKey) int {
			if c := flagFirst(a.priority, b.priority); c != 0 {
				return c
			}
			if c := flagFirst(a.done, b.done); c != 0 {
				return c
			}
			return byName(a, b)
		}
	default:
		return byName
	}
}

// sortBy computes keys once and stable-sorts a copy of items.
func sortBy[T any](items []T, s Strategy, key func(T) sortKey) []T {
	type keyed struct {
		k    sortKey
		item T
	}
	ks := make([]keyed, len(items))
	for i, it := range items {
		ks[i] = keyed{k: key(it), item: it}
	}
	cmp := compareFunc(s)
	slices.SortStableFunc(ks, func(a, b keyed) int { return cmp(a.k, b.k) })

	out := make([]T, len(ks))
	for i := range ks {
		out[i] = ks[i].item
	}
	return out
}

// SortListItems returns a new slice with items in display order. The input
// is not modified and items with equal keys keep their relative order.
func SortListItems(items []ListItem, s Strategy) []ListItem {
	return sortBy(items, s, func(it ListItem) sortKey {
		return sortKey{name: naming.Key(it.Name), done: it.Done, priority: it.Priority}
	})
}

// SortBlueprintItems orders template items. Blueprint items are never done,
// so DoneFirst and TodoFirst reduce to Alphabetic and Priority to
// priority-then-name.
func SortBlueprintItems(items []BlueprintItem, s Strategy) []BlueprintItem {
	return sortBy(items, s, func(it BlueprintItem) sortKey {
		return sortKey{name: naming.Key(it.Name), priority: it.Priority}
	})
}
