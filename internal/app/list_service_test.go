package app

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/go-checklist-service/internal/domain"
	"github.com/jsamuelsen11/go-checklist-service/internal/domain/checklist"
	"github.com/jsamuelsen11/go-checklist-service/internal/ports"
	"github.com/jsamuelsen11/go-checklist-service/mocks"
)

// --- NewListService ---

func TestNewListService_NilLogger(t *testing.T) {
	t.Parallel()

	svc := NewListService(mocks.NewMockChecklistRepository(t), nil, nil)
	if svc.logger == nil {
		t.Fatal("NewListService(nil logger) should create a no-op logger, got nil")
	}
}

// --- CreateList ---

func TestListService_CreateList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		listName string
		details  string
		wantName string
		wantErr  error
	}{
		{name: "trims name", listName: "  Weekend trip ", details: " tent ", wantName: "Weekend trip"},
		{name: "empty name", listName: "   ", wantErr: domain.ErrEmptyName},
		{name: "name too long", listName: strings.Repeat("x", 65), wantErr: domain.ErrValidation},
		{name: "details too long", listName: "Ok", details: strings.Repeat("d", 129), wantErr: domain.ErrValidation},
		{name: "name taken ignoring case", listName: "GROCERIES", wantErr: domain.ErrConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			lists, _ := newServices(t)
			ctx := context.Background()
			if _, err := lists.CreateList(ctx, "Groceries", ""); err != nil {
				t.Fatalf("seeding CreateList() error = %v", err)
			}

			got, err := lists.CreateList(ctx, tt.listName, tt.details)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("CreateList() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("CreateList() error = %v", err)
			}
			if got.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", got.Name, tt.wantName)
			}
			if got.State != checklist.StatePersisted {
				t.Errorf("State = %v, want persisted", got.State)
			}
			if !got.CreatedAt.Equal(fixedNow) {
				t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, fixedNow)
			}
		})
	}
}

func TestListService_CreateList_NameConflictCarriesName(t *testing.T) {
	t.Parallel()

	lists, _ := newServices(t)
	ctx := context.Background()
	if _, err := lists.CreateList(ctx, "Groceries", ""); err != nil {
		t.Fatalf("CreateList() error = %v", err)
	}

	_, err := lists.CreateList(ctx, "groceries ", "")
	var nameErr *domain.NameUnavailableError
	if !errors.As(err, &nameErr) {
		t.Fatalf("CreateList() error = %v, want *NameUnavailableError", err)
	}
	if nameErr.Scope != domain.ScopeList || nameErr.Name != "groceries" {
		t.Errorf("NameUnavailableError = %+v", nameErr)
	}
}

func TestListService_CreateList_ValidatesBeforeRepository(t *testing.T) {
	t.Parallel()

	// No expectations: any repository call fails the test.
	repo := mocks.NewMockChecklistRepository(t)
	svc := NewListService(repo, nil, discardLogger())

	_, err := svc.CreateList(context.Background(), "", "")
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("CreateList() error = %v, want ErrValidation", err)
	}
}

func TestListService_CreateList_PersistenceFailureSurfaces(t *testing.T) {
	t.Parallel()

	repo := mocks.NewMockChecklistRepository(t)
	repo.EXPECT().QueryLists(mock.Anything, ports.ListQuery{HeadersOnly: true}).Return(nil, nil).Once()
	repo.EXPECT().Save(mock.Anything, mock.Anything).
		Return(&domain.PersistenceError{Op: "Save", Err: errors.New("disk full")}).Once()

	svc := NewListService(repo, nil, discardLogger())
	_, err := svc.CreateList(context.Background(), "Groceries", "")
	if !errors.Is(err, domain.ErrPersistence) {
		t.Errorf("CreateList() error = %v, want ErrPersistence", err)
	}
}

// --- UpdateList ---

func TestListService_UpdateList(t *testing.T) {
	t.Parallel()

	lists, _ := newServices(t)
	ctx := context.Background()
	groceries, err := lists.CreateList(ctx, "Groceries", "")
	if err != nil {
		t.Fatalf("CreateList() error = %v", err)
	}
	if _, err := lists.CreateList(ctx, "Hardware", ""); err != nil {
		t.Fatalf("CreateList() error = %v", err)
	}

	if _, err := lists.UpdateList(ctx, groceries.ID, ports.HeaderPatch{Name: strPtr("hardware")}); !errors.Is(err, domain.ErrConflict) {
		t.Errorf("UpdateList(taken name) error = %v, want ErrConflict", err)
	}

	got, err := lists.UpdateList(ctx, groceries.ID, ports.HeaderPatch{Name: strPtr("GROCERIES"), Details: strPtr("market")})
	if err != nil {
		t.Fatalf("UpdateList() error = %v", err)
	}
	if got.Name != "GROCERIES" || got.Details != "market" {
		t.Errorf("UpdateList() = %+v", got.Header)
	}

	if _, err := lists.UpdateList(ctx, uuid.New(), ports.HeaderPatch{Details: strPtr("x")}); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("UpdateList(unknown) error = %v, want ErrNotFound", err)
	}
}

// --- Items ---

func TestListService_AddItem_SiblingCollision(t *testing.T) {
	t.Parallel()

	lists, _ := newServices(t)
	ctx := context.Background()
	l, err := lists.CreateList(ctx, "Groceries", "")
	if err != nil {
		t.Fatalf("CreateList() error = %v", err)
	}

	if _, err := lists.AddItem(ctx, l.ID, "milk", false); err != nil {
		t.Fatalf("AddItem(milk) error = %v", err)
	}
	_, err = lists.AddItem(ctx, l.ID, "Milk ", false)
	var nameErr *domain.NameUnavailableError
	if !errors.As(err, &nameErr) || nameErr.Scope != domain.ScopeListItem {
		t.Fatalf("AddItem(Milk ) error = %v, want list item NameUnavailableError", err)
	}

	got, err := lists.GetList(ctx, l.ID)
	if err != nil {
		t.Fatalf("GetList() error = %v", err)
	}
	if len(got.Items) != 1 {
		t.Errorf("items = %d, want 1", len(got.Items))
	}
}

func TestListService_UpdateItem(t *testing.T) {
	t.Parallel()

	lists, _ := newServices(t)
	ctx := context.Background()
	l, err := lists.CreateList(ctx, "Groceries", "")
	if err != nil {
		t.Fatalf("CreateList() error = %v", err)
	}
	milk, err := lists.AddItem(ctx, l.ID, "Milk", false)
	if err != nil {
		t.Fatalf("AddItem() error = %v", err)
	}
	if _, err := lists.AddItem(ctx, l.ID, "Bread", false); err != nil {
		t.Fatalf("AddItem() error = %v", err)
	}

	got, err := lists.UpdateItem(ctx, l.ID, milk.ID, ports.ItemPatch{
		Name:     strPtr("Oat milk"),
		Done:     boolPtr(true),
		Priority: boolPtr(true),
	})
	if err != nil {
		t.Fatalf("UpdateItem() error = %v", err)
	}
	want := checklist.ListItem{ID: milk.ID, Name: "Oat milk", Done: true, Priority: true}
	if *got != want {
		t.Errorf("UpdateItem() = %+v, want %+v", *got, want)
	}

	stored, err := lists.GetList(ctx, l.ID)
	if err != nil {
		t.Fatalf("GetList() error = %v", err)
	}
	if c := stored.Completion(); c != 0.5 {
		t.Errorf("Completion() = %v, want 0.5", c)
	}

	if _, err := lists.UpdateItem(ctx, l.ID, uuid.New(), ports.ItemPatch{Done: boolPtr(true)}); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("UpdateItem(unknown item) error = %v, want ErrNotFound", err)
	}
	if _, err := lists.UpdateItem(ctx, l.ID, milk.ID, ports.ItemPatch{Name: strPtr(" ")}); !errors.Is(err, domain.ErrEmptyName) {
		t.Errorf("UpdateItem(blank name) error = %v, want ErrEmptyName", err)
	}
}

func TestListService_RemoveItem_Idempotent(t *testing.T) {
	t.Parallel()

	lists, _ := newServices(t)
	ctx := context.Background()
	l, err := lists.CreateList(ctx, "Groceries", "")
	if err != nil {
		t.Fatalf("CreateList() error = %v", err)
	}
	it, err := lists.AddItem(ctx, l.ID, "Milk", false)
	if err != nil {
		t.Fatalf("AddItem() error = %v", err)
	}

	for range 2 {
		if err := lists.RemoveItem(ctx, l.ID, it.ID); err != nil {
			t.Fatalf("RemoveItem() error = %v", err)
		}
	}
	if err := lists.RemoveItem(ctx, uuid.New(), it.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("RemoveItem(unknown list) error = %v, want ErrNotFound", err)
	}
}

func TestListService_SetAllDoneAndRemoveDoneItems(t *testing.T) {
	t.Parallel()

	lists, _ := newServices(t)
	ctx := context.Background()
	l, err := lists.CreateList(ctx, "Packing", "")
	if err != nil {
		t.Fatalf("CreateList() error = %v", err)
	}
	for _, n := range []string{"Tent", "Stove", "Lamp"} {
		if _, err := lists.AddItem(ctx, l.ID, n, false); err != nil {
			t.Fatalf("AddItem(%q) error = %v", n, err)
		}
	}

	done, err := lists.SetAllDone(ctx, l.ID, true)
	if err != nil {
		t.Fatalf("SetAllDone() error = %v", err)
	}
	if !done.IsDone() {
		t.Error("IsDone() = false after SetAllDone(true)")
	}

	reset, err := lists.SetAllDone(ctx, l.ID, false)
	if err != nil {
		t.Fatalf("SetAllDone(false) error = %v", err)
	}
	if reset.DoneCount() != 0 {
		t.Errorf("DoneCount() = %d, want 0", reset.DoneCount())
	}

	if _, err := lists.UpdateItem(ctx, l.ID, reset.Items[0].ID, ports.ItemPatch{Done: boolPtr(true)}); err != nil {
		t.Fatalf("UpdateItem() error = %v", err)
	}
	cleared, err := lists.RemoveDoneItems(ctx, l.ID)
	if err != nil {
		t.Fatalf("RemoveDoneItems() error = %v", err)
	}
	if len(cleared.Items) != 2 {
		t.Errorf("items after RemoveDoneItems = %d, want 2", len(cleared.Items))
	}

	stored, err := lists.GetList(ctx, l.ID)
	if err != nil {
		t.Fatalf("GetList() error = %v", err)
	}
	if len(stored.Items) != 2 {
		t.Errorf("stored items = %d, want 2", len(stored.Items))
	}
}

// --- DeleteList ---

func TestListService_DeleteList_CascadesItems(t *testing.T) {
	t.Parallel()

	lists, _ := newServices(t)
	ctx := context.Background()
	l, err := lists.CreateList(ctx, "Groceries", "")
	if err != nil {
		t.Fatalf("CreateList() error = %v", err)
	}
	var itemIDs []uuid.UUID
	for _, n := range []string{"Milk", "Bread", "Eggs"} {
		it, err := lists.AddItem(ctx, l.ID, n, false)
		if err != nil {
			t.Fatalf("AddItem(%q) error = %v", n, err)
		}
		itemIDs = append(itemIDs, it.ID)
	}

	if err := lists.DeleteList(ctx, l.ID); err != nil {
		t.Fatalf("DeleteList() error = %v", err)
	}
	if _, err := lists.GetList(ctx, l.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("GetList() error = %v, want ErrNotFound", err)
	}
	if err := lists.repo.Delete(ctx, itemIDs[0]); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("item survived cascade: Delete(item) error = %v, want ErrNotFound", err)
	}

	if err := lists.DeleteList(ctx, l.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("second DeleteList() error = %v, want ErrNotFound", err)
	}
}

func TestListService_NameFreedAfterDelete(t *testing.T) {
	t.Parallel()

	lists, _ := newServices(t)
	ctx := context.Background()
	l, err := lists.CreateList(ctx, "Groceries", "")
	if err != nil {
		t.Fatalf("CreateList() error = %v", err)
	}
	if err := lists.DeleteList(ctx, l.ID); err != nil {
		t.Fatalf("DeleteList() error = %v", err)
	}
	if _, err := lists.CreateList(ctx, "Groceries", ""); err != nil {
		t.Errorf("CreateList() after delete error = %v", err)
	}
}

// --- Capture ---

func TestListService_Capture(t *testing.T) {
	t.Parallel()

	lists, blueprints := newServices(t)
	ctx := context.Background()
	l, err := lists.CreateList(ctx, "Packing", "")
	if err != nil {
		t.Fatalf("CreateList() error = %v", err)
	}
	tent, err := lists.AddItem(ctx, l.ID, "Tent", true)
	if err != nil {
		t.Fatalf("AddItem() error = %v", err)
	}
	if _, err := lists.AddItem(ctx, l.ID, "Lamp", false); err != nil {
		t.Fatalf("AddItem() error = %v", err)
	}
	if _, err := lists.UpdateItem(ctx, l.ID, tent.ID, ports.ItemPatch{Done: boolPtr(true)}); err != nil {
		t.Fatalf("UpdateItem() error = %v", err)
	}

	bp, err := lists.Capture(ctx, l.ID)
	if err != nil {
		t.Fatalf("Capture() error = %v", err)
	}
	if bp.Name != "Packing" || bp.UsageCount != 0 {
		t.Errorf("Capture() = %+v", bp)
	}

	stored, err := blueprints.GetBlueprint(ctx, bp.ID)
	if err != nil {
		t.Fatalf("GetBlueprint() error = %v", err)
	}
	want := []checklist.BlueprintItem{{Name: "Lamp"}, {Name: "Tent", Priority: true}}
	if len(stored.Items) != len(want) {
		t.Fatalf("items = %d, want %d", len(stored.Items), len(want))
	}
	for i, it := range stored.Items {
		if it.Name != want[i].Name || it.Priority != want[i].Priority {
			t.Errorf("item[%d] = %+v, want %+v", i, it, want[i])
		}
	}

	if _, err := lists.Capture(ctx, l.ID); !errors.Is(err, domain.ErrConflict) {
		t.Errorf("second Capture() error = %v, want ErrConflict", err)
	}
}
