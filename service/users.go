package service

import (
	"context"

	"sitecheck/model"
	"sitecheck/store"
)

// UserService maps external identities onto internal user rows.
type UserService struct {
	store store.Store
}

func NewUserService(st store.Store) *UserService {
	return &UserService{store: st}
}

// EnsureUser upserts the row for an authenticated identity. Concurrent
// writers for the same identity converge on one row; whichever insert wins
// is authoritative.
func (s *UserService) EnsureUser(ctx context.Context, authUID, name string) (model.User, error) {
	if name == "" {
		name = "Unknown"
	}
	return s.store.UpsertUser(ctx, model.User{AuthUID: authUID, Name: name, Role: "user"})
}

// Lookup resolves an identity without creating a row; rows are only created
// lazily on authenticated writes.
func (s *UserService) Lookup(ctx context.Context, authUID string) (model.User, bool, error) {
	return s.store.GetUserByAuthUID(ctx, authUID)
}
