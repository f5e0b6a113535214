package checklist

import (
	"errors"
	"slices"
	"testing"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/go-checklist-service/internal/domain"
	"github.com/jsamuelsen11/go-checklist-service/internal/domain/naming"
)

func choresBlueprint(t *testing.T) *Blueprint {
	t.Helper()
	bp, err := NewBlueprint("Chores", "weekly", nil)
	if err != nil {
		t.Fatalf("NewBlueprint() error = %v", err)
	}
	if _, err := bp.AddItem("Laundry", false); err != nil {
		t.Fatalf("AddItem(Laundry) error = %v", err)
	}
	if _, err := bp.AddItem("Dishes", true); err != nil {
		t.Fatalf("AddItem(Dishes) error = %v", err)
	}
	return bp
}

func TestMaterialize_Chores(t *testing.T) {
	t.Parallel()

	bp := choresBlueprint(t)

	l, err := Materialize(bp, []naming.Entry{{ID: uuid.New(), Name: "Groceries"}}, fixedNow)
	if err != nil {
		t.Fatalf("Materialize() error = %v", err)
	}

	if l.Name != "Chores" || l.Details != "weekly" {
		t.Errorf("header = %+v, want Chores/weekly", l.Header)
	}
	if l.ID == bp.ID {
		t.Error("list reuses blueprint id")
	}
	if l.State != StateDraft {
		t.Errorf("State = %s, want draft", l.State)
	}
	if !l.CreatedAt.Equal(fixedNow) {
		t.Errorf("CreatedAt = %v, want %v", l.CreatedAt, fixedNow)
	}
	want := []ListItem{{Name: "Dishes", Priority: true}, {Name: "Laundry", Priority: false}}
	if len(l.Items) != len(want) {
		t.Fatalf("len(Items) = %d, want %d", len(l.Items), len(want))
	}
	for i, w := range want {
		got := l.Items[i]
		if got.Name != w.Name || got.Priority != w.Priority || got.Done {
			t.Errorf("Items[%d] = %+v, want name %q priority %v not done", i, got, w.Name, w.Priority)
		}
		if _, ok := bp.Item(got.ID); ok {
			t.Errorf("Items[%d] shares an id with a blueprint item", i)
		}
	}
	if bp.UsageCount != 1 {
		t.Errorf("UsageCount = %d, want 1", bp.UsageCount)
	}
}

func TestMaterialize_SecondCallFails(t *testing.T) {
	t.Parallel()

	bp := choresBlueprint(t)
	first, err := Materialize(bp, nil, fixedNow)
	if err != nil {
		t.Fatalf("first Materialize() error = %v", err)
	}

	_, err = Materialize(bp, []naming.Entry{first.Entry()}, fixedNow)

	var nerr *domain.NameUnavailableError
	if !errors.As(err, &nerr) || nerr.Scope != domain.ScopeList {
		t.Fatalf("second Materialize() error = %v, want list NameUnavailableError", err)
	}
	if bp.UsageCount != 1 {
		t.Errorf("UsageCount = %d after rejected call, want 1", bp.UsageCount)
	}
}

func TestMaterialize_SnapshotNotLink(t *testing.T) {
	t.Parallel()

	bp := choresBlueprint(t)
	l, err := Materialize(bp, nil, fixedNow)
	if err != nil {
		t.Fatalf("Materialize() error = %v", err)
	}

	if err := l.RenameItem(l.Items[0].ID, "Plates"); err != nil {
		t.Fatalf("RenameItem() error = %v", err)
	}
	if _, err := bp.AddItem("Vacuum", false); err != nil {
		t.Fatalf("AddItem() error = %v", err)
	}

	if got := names(SortBlueprintItems(bp.Items, Alphabetic)); !equalStrings(got, []string{"Dishes", "Laundry", "Vacuum"}) {
		t.Errorf("blueprint items = %v", got)
	}
	if len(l.Items) != 2 {
		t.Errorf("list picked up blueprint edit: %v", names(l.Items))
	}
}

func TestCapture(t *testing.T) {
	t.Parallel()

	l := mustList(t, "Packing", "toothbrush", "Passport")
	_ = l.SetItemDone(l.Items[0].ID, true)
	_ = l.SetItemPriority(l.Items[1].ID, true)

	bp, err := Capture(l, []naming.Entry{{ID: uuid.New(), Name: "Chores"}})
	if err != nil {
		t.Fatalf("Capture() error = %v", err)
	}

	if bp.Name != "Packing" || bp.UsageCount != 0 || bp.State != StateDraft {
		t.Errorf("blueprint = %+v", bp)
	}
	want := []BlueprintItem{{Name: "Passport", Priority: true}, {Name: "toothbrush"}}
	for i, w := range want {
		if bp.Items[i].Name != w.Name || bp.Items[i].Priority != w.Priority {
			t.Errorf("Items[%d] = %+v, want %+v", i, bp.Items[i], w)
		}
	}
}

func TestCapture_NameTaken(t *testing.T) {
	t.Parallel()

	l := mustList(t, "Packing")

	_, err := Capture(l, []naming.Entry{{ID: uuid.New(), Name: " packing"}})

	var nerr *domain.NameUnavailableError
	if !errors.As(err, &nerr) || nerr.Scope != domain.ScopeBlueprint || nerr.Name != "Packing" {
		t.Errorf("Capture() error = %v, want blueprint NameUnavailableError for Packing", err)
	}
}

func TestCaptureOfMaterializedRoundTrips(t *testing.T) {
	t.Parallel()

	bp := choresBlueprint(t)
	l, err := Materialize(bp, nil, fixedNow)
	if err != nil {
		t.Fatalf("Materialize() error = %v", err)
	}
	_ = l.SetAllDone(true)

	if err := l.Rename("Chores copy", nil); err != nil {
		t.Fatalf("Rename() error = %v", err)
	}
	back, err := Capture(l, []naming.Entry{bp.Entry()})
	if err != nil {
		t.Fatalf("Capture() error = %v", err)
	}

	type pair struct {
		name     string
		priority bool
	}
	collect := func(items []BlueprintItem) []pair {
		out := make([]pair, 0, len(items))
		for _, it := range SortBlueprintItems(items, Alphabetic) {
			out = append(out, pair{it.Name, it.Priority})
		}
		return out
	}
	if got, want := collect(back.Items), collect(bp.Items); !slices.Equal(got, want) {
		t.Errorf("round trip items = %v, want %v", got, want)
	}
}

func TestMaterialize_DeletedBlueprint(t *testing.T) {
	t.Parallel()

	bp := choresBlueprint(t)
	bp.State = StateDeleted

	if _, err := Materialize(bp, nil, fixedNow); !errors.Is(err, domain.ErrInvalidState) {
		t.Errorf("Materialize(deleted) error = %v, want ErrInvalidState", err)
	}
}
