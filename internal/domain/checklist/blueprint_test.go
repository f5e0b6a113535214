package checklist

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/go-checklist-service/internal/domain"
	"github.com/jsamuelsen11/go-checklist-service/internal/domain/naming"
)

func TestNewBlueprint_SharesNamesWithListsOnly(t *testing.T) {
	t.Parallel()

	lists := []naming.Entry{{ID: uuid.New(), Name: "Chores"}}
	if _, err := NewBlueprint("Chores", "", nil); err != nil {
		t.Errorf("NewBlueprint with a same-named list error = %v", err)
	}
	if _, err := NewBlueprint("chores", "", lists); !errors.Is(err, domain.ErrConflict) {
		t.Errorf("NewBlueprint against blueprint scope error = %v, want ErrConflict", err)
	}
}

func TestBlueprint_Items(t *testing.T) {
	t.Parallel()

	bp, err := NewBlueprint("Chores", "", nil)
	if err != nil {
		t.Fatalf("NewBlueprint() error = %v", err)
	}
	id, err := bp.AddItem(" Dishes", false)
	if err != nil {
		t.Fatalf("AddItem() error = %v", err)
	}
	if _, err := bp.AddItem("dishes", true); !errors.Is(err, domain.ErrConflict) {
		t.Errorf("AddItem duplicate error = %v, want ErrConflict", err)
	}
	if _, err := bp.AddItem("", false); !errors.Is(err, domain.ErrEmptyName) {
		t.Errorf("AddItem empty error = %v, want ErrEmptyName", err)
	}
	if err := bp.SetItemPriority(id, true); err != nil {
		t.Fatalf("SetItemPriority() error = %v", err)
	}
	if err := bp.RenameItem(id, "Wash up"); err != nil {
		t.Fatalf("RenameItem() error = %v", err)
	}
	if err := bp.RenameItem(uuid.New(), "x"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("RenameItem(unknown) error = %v, want ErrNotFound", err)
	}

	it, ok := bp.Item(id)
	if !ok || it.Name != "Wash up" || !it.Priority {
		t.Errorf("Item() = %+v, %v", it, ok)
	}

	if removed, _ := bp.RemoveItem(id); !removed {
		t.Error("RemoveItem() = false, want true")
	}
	if removed, err := bp.RemoveItem(id); removed || err != nil {
		t.Errorf("second RemoveItem() = %v, %v", removed, err)
	}
}

func TestBlueprint_SetDetailsTooLong(t *testing.T) {
	t.Parallel()

	bp, _ := NewBlueprint("Chores", "keep", nil)
	long := make([]rune, naming.MaxDetailsLength+1)
	for i := range long {
		long[i] = 'x'
	}

	if err := bp.SetDetails(string(long)); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("SetDetails() error = %v, want ErrValidation", err)
	}
	if bp.Details != "keep" {
		t.Errorf("Details = %q, want unchanged", bp.Details)
	}
}
