package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"sitecheck/model"
	"sitecheck/store"
)

func TestChecklistGetRecordsView(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	owner := seedUser(t, st, "uid-1")
	cat := seedCategory(t, st, "Concrete")
	c, _ := seedChecklist(t, st, owner, cat, model.StatusNotStarted)

	svc := NewChecklistService(st)
	got, err := svc.Get(ctx, c.ChecklistID, owner.UserID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.LastViewedAt == nil {
		t.Error("LastViewedAt not recorded on read")
	}
	if len(got.Items) != 1 {
		t.Errorf("items = %d, want 1", len(got.Items))
	}
}

func TestChecklistGetForeignOwner(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	owner := seedUser(t, st, "uid-1")
	intruder := seedUser(t, st, "uid-2")
	cat := seedCategory(t, st, "Concrete")
	c, _ := seedChecklist(t, st, owner, cat, model.StatusNotStarted)

	svc := NewChecklistService(st)
	if _, err := svc.Get(ctx, c.ChecklistID, intruder.UserID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
	if _, err := svc.Get(ctx, 9999, owner.UserID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound for a missing checklist", err)
	}
}

func TestChecklistUpdateNoFields(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewChecklistService(st)
	_, err := svc.Update(context.Background(), 1, 1, ChecklistUpdate{})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want ValidationError for an empty update", err)
	}
}

func TestChecklistUpdatePartial(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	owner := seedUser(t, st, "uid-1")
	cat := seedCategory(t, st, "Concrete")
	c, _ := seedChecklist(t, st, owner, cat, model.StatusNotStarted)

	svc := NewChecklistService(st)
	name := "Revised pour"
	got, err := svc.Update(ctx, c.ChecklistID, owner.UserID, ChecklistUpdate{Name: &name})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if got.Name != name {
		t.Errorf("Name = %q, want %q", got.Name, name)
	}
	if got.SiteName != c.SiteName {
		t.Errorf("SiteName = %q, want untouched %q", got.SiteName, c.SiteName)
	}
}

func TestChecklistArchiveHidesFromActiveList(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	owner := seedUser(t, st, "uid-1")
	cat := seedCategory(t, st, "Concrete")
	c, _ := seedChecklist(t, st, owner, cat, model.StatusNotStarted)

	svc := NewChecklistService(st)
	archived, err := svc.Archive(ctx, c.ChecklistID, owner.UserID)
	if err != nil {
		t.Fatalf("Archive() error = %v", err)
	}
	if archived.ArchivedAt == nil {
		t.Fatal("ArchivedAt not set")
	}

	active, err := svc.List(ctx, owner.UserID, store.ChecklistFilter{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(active) != 0 {
		t.Errorf("active list has %d entries, want 0 after archiving", len(active))
	}

	hidden, err := svc.List(ctx, owner.UserID, store.ChecklistFilter{IsArchived: true})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(hidden) != 1 {
		t.Fatalf("archived list has %d entries, want 1", len(hidden))
	}

	restored, err := svc.Restore(ctx, c.ChecklistID, owner.UserID)
	if err != nil {
		t.Fatalf("Restore() error = %v", err)
	}
	if restored.ArchivedAt != nil {
		t.Error("ArchivedAt still set after restore")
	}
}

func TestChecklistDuplicateResetsProgress(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	owner := seedUser(t, st, "uid-1")
	cat := seedCategory(t, st, "Concrete")
	c, _ := seedChecklist(t, st, owner, cat, model.StatusCompleted, model.StatusPending)

	svc := NewChecklistService(st)
	copied, err := svc.Duplicate(ctx, c.ChecklistID, owner.UserID)
	if err != nil {
		t.Fatalf("Duplicate() error = %v", err)
	}
	if copied.ChecklistID == c.ChecklistID {
		t.Fatal("duplicate reused the original ID")
	}
	if copied.Name != c.Name+"(copy)" {
		t.Errorf("Name = %q, want %q", copied.Name, c.Name+"(copy)")
	}
	if !copied.IsTemplate {
		t.Error("duplicate is not a template")
	}
	if copied.Status != model.StatusNotStarted {
		t.Errorf("Status = %v, want NotStarted", copied.Status)
	}
	if len(copied.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(copied.Items))
	}
	for _, it := range copied.Items {
		if it.Status != model.StatusNotStarted || it.CompletedAt != nil {
			t.Errorf("copied item %d kept progress: status=%v", it.ItemID, it.Status)
		}
	}

	// The original is untouched.
	orig, _, _ := st.GetChecklist(ctx, c.ChecklistID, owner.UserID)
	if orig.Status != model.StatusPending {
		t.Errorf("original status = %v, want Pending", orig.Status)
	}
}

func TestChecklistCreateDefaultsStatus(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	owner := seedUser(t, st, "uid-1")

	svc := NewChecklistService(st)
	c, err := svc.Create(ctx, ChecklistInput{
		Name:     "Safety walk",
		SiteName: "East Yard",
		WorkDate: time.Now(),
	}, owner.UserID)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if c.Status != model.StatusNotStarted {
		t.Errorf("Status = %v, want NotStarted by default", c.Status)
	}
}

func TestChecklistDeleteCascades(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	owner := seedUser(t, st, "uid-1")
	cat := seedCategory(t, st, "Concrete")
	c, items := seedChecklist(t, st, owner, cat, model.StatusNotStarted)

	svc := NewChecklistService(st)
	if err := svc.Delete(ctx, c.ChecklistID, owner.UserID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, ok, _ := st.GetChecklist(ctx, c.ChecklistID, owner.UserID); ok {
		t.Error("checklist still present after delete")
	}
	if _, ok, _ := st.GetItem(ctx, c.ChecklistID, items[0].ItemID); ok {
		t.Error("item still present after checklist delete")
	}
	if err := svc.Delete(ctx, c.ChecklistID, owner.UserID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete error = %v, want ErrNotFound", err)
	}
}
