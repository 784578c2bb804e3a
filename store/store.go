package store

import (
	"context"
	"time"

	"sitecheck/model"
)

// Store defines persistence operations for users, checklists, items,
// categories and notifications. Services receive an explicit handle instead
// of sharing a process-wide client.
type Store interface {
	// users
	UpsertUser(ctx context.Context, u model.User) (model.User, error)
	GetUserByAuthUID(ctx context.Context, authUID string) (model.User, bool, error)

	// checklists
	CreateChecklist(ctx context.Context, c *model.Checklist) error
	GetChecklist(ctx context.Context, checklistID, ownerID int) (model.Checklist, bool, error)
	ListChecklists(ctx context.Context, f ChecklistFilter) ([]ChecklistSummary, error)
	ListChecklistsForReminder(ctx context.Context, from, to time.Time) ([]model.Checklist, error)
	UpdateChecklistFields(ctx context.Context, checklistID, ownerID int, fields map[string]any) (model.Checklist, bool, error)
	UpdateChecklistStatus(ctx context.Context, checklistID int, status model.Status) error
	SetChecklistArchived(ctx context.Context, checklistID, ownerID int, archivedAt *time.Time) (model.Checklist, bool, error)
	TouchChecklistViewed(ctx context.Context, checklistID int, at time.Time) error
	DeleteChecklist(ctx context.Context, checklistID, ownerID int) (bool, error)

	// items
	CreateItem(ctx context.Context, it *model.Item) error
	GetItem(ctx context.Context, checklistID, itemID int) (model.Item, bool, error)
	ListItems(ctx context.Context, checklistID int) ([]model.Item, error)
	UpdateItemFields(ctx context.Context, checklistID, itemID int, fields map[string]any) (model.Item, bool, error)
	UpdateItemStatuses(ctx context.Context, checklistID, ownerID int, itemIDs []int, status model.Status, completedAt *time.Time) ([]model.Item, error)
	DeleteItem(ctx context.Context, checklistID, itemID, ownerID int) (bool, error)
	DeleteItems(ctx context.Context, checklistID, ownerID int) error

	// categories
	ListCategories(ctx context.Context) ([]model.Category, error)
	GetCategory(ctx context.Context, categoryID int) (model.Category, bool, error)
	GetCategoryByName(ctx context.Context, name string) (model.Category, bool, error)
	CreateCategory(ctx context.Context, cat *model.Category) error
	UpdateCategory(ctx context.Context, cat *model.Category) error
	DeleteCategory(ctx context.Context, categoryID int) (bool, error)
	ReorderCategories(ctx context.Context, orders []CategoryOrder) error

	// notifications
	CreateNotification(ctx context.Context, n *model.Notification) error
	ListNotifications(ctx context.Context, ownerID, limit int) ([]model.Notification, error)
	DeleteNotification(ctx context.Context, notificationID, ownerID int) (bool, error)

	// Transaction runs fn as one atomic unit. Any error rolls the whole unit
	// back; no partial state is observable afterward.
	Transaction(ctx context.Context, fn func(tx Store) error) error
}

// ChecklistSummary annotates a checklist with item counts computed from its
// item set at query time.
type ChecklistSummary struct {
	model.Checklist
	CompletedItems int `json:"completedItems"`
	TotalItems     int `json:"totalItems"`
}

// CategoryOrder is one display-order assignment in a reorder batch.
type CategoryOrder struct {
	CategoryID   int
	DisplayOrder int
}
