package service

import (
	"context"

	"sitecheck/model"
	"sitecheck/store"
)

// CategoryService handles category CRUD. Categories are global, read-only to
// the status logic, and referenced by items across all checklists.
type CategoryService struct {
	store store.Store
}

func NewCategoryService(st store.Store) *CategoryService {
	return &CategoryService{store: st}
}

// List returns all categories in display order.
func (s *CategoryService) List(ctx context.Context) ([]model.Category, error) {
	return s.store.ListCategories(ctx)
}

// CategoryInput is the validated payload for creating or updating a
// category.
type CategoryInput struct {
	Name         string
	Description  string
	DisplayOrder int
}

// Create stores a new category; names are unique.
func (s *CategoryService) Create(ctx context.Context, in CategoryInput) (model.Category, error) {
	if _, exists, err := s.store.GetCategoryByName(ctx, in.Name); err != nil {
		return model.Category{}, err
	} else if exists {
		return model.Category{}, Invalid("name", "a category with this name already exists")
	}
	cat := model.Category{
		Name:         in.Name,
		Description:  in.Description,
		DisplayOrder: in.DisplayOrder,
	}
	if err := s.store.CreateCategory(ctx, &cat); err != nil {
		return model.Category{}, err
	}
	return cat, nil
}

// Update saves a category's name, description and display order.
func (s *CategoryService) Update(ctx context.Context, categoryID int, in CategoryInput) (model.Category, error) {
	existing, ok, err := s.store.GetCategory(ctx, categoryID)
	if err != nil {
		return model.Category{}, err
	}
	if !ok {
		return model.Category{}, ErrNotFound
	}
	if other, exists, err := s.store.GetCategoryByName(ctx, in.Name); err != nil {
		return model.Category{}, err
	} else if exists && other.CategoryID != categoryID {
		return model.Category{}, Invalid("name", "a category with this name already exists")
	}
	existing.Name = in.Name
	existing.Description = in.Description
	existing.DisplayOrder = in.DisplayOrder
	if err := s.store.UpdateCategory(ctx, &existing); err != nil {
		return model.Category{}, err
	}
	return existing, nil
}

// Delete removes a category.
func (s *CategoryService) Delete(ctx context.Context, categoryID int) error {
	found, err := s.store.DeleteCategory(ctx, categoryID)
	if err != nil {
		return err
	}
	if !found {
		return ErrNotFound
	}
	return nil
}

// Reorder applies all display-order assignments atomically and returns the
// categories in their new order.
func (s *CategoryService) Reorder(ctx context.Context, orders []store.CategoryOrder) ([]model.Category, error) {
	if err := s.store.ReorderCategories(ctx, orders); err != nil {
		return nil, err
	}
	return s.store.ListCategories(ctx)
}
