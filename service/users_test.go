package service

import (
	"context"
	"testing"

	"sitecheck/store"
)

func TestEnsureUserIsIdempotent(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	svc := NewUserService(st)

	first, err := svc.EnsureUser(ctx, "uid-1", "Alex")
	if err != nil {
		t.Fatalf("EnsureUser() error = %v", err)
	}
	second, err := svc.EnsureUser(ctx, "uid-1", "Alexandra")
	if err != nil {
		t.Fatalf("EnsureUser() error = %v", err)
	}
	if first.UserID != second.UserID {
		t.Errorf("two rows for one identity: %d vs %d", first.UserID, second.UserID)
	}
	if second.Name != "Alexandra" {
		t.Errorf("Name = %q, want refreshed to Alexandra", second.Name)
	}
}

func TestEnsureUserNameFallback(t *testing.T) {
	u, err := NewUserService(store.NewMemoryStore()).EnsureUser(context.Background(), "uid-1", "")
	if err != nil {
		t.Fatalf("EnsureUser() error = %v", err)
	}
	if u.Name != "Unknown" {
		t.Errorf("Name = %q, want Unknown", u.Name)
	}
}

func TestLookupDoesNotCreate(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	svc := NewUserService(st)

	if _, found, err := svc.Lookup(ctx, "uid-1"); err != nil || found {
		t.Fatalf("Lookup() = found=%v err=%v, want not found", found, err)
	}
	// Still absent afterward.
	if _, found, _ := st.GetUserByAuthUID(ctx, "uid-1"); found {
		t.Error("Lookup created a user row")
	}
}
