package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"sitecheck/model"
)

// GormStore implements Store using GORM + Postgres.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore opens the DB and runs auto-migrations.
func NewGormStore(dsn string) (*GormStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Checklist{},
		&model.Item{},
		&model.Notification{},
	); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}
	return &GormStore{db: db}, nil
}

// Transaction runs fn inside one database transaction. The callback receives
// a Store bound to the transaction handle.
func (s *GormStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}

// UpsertUser creates the user row for an external identity if absent. An
// existing row keeps its ID and role; the display name follows the provider.
func (s *GormStore) UpsertUser(ctx context.Context, u model.User) (model.User, error) {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "auth_uid"}},
		DoUpdates: clause.AssignmentColumns([]string{"name"}),
	}).Create(&u).Error
	if err != nil {
		return model.User{}, err
	}
	// Re-read so the caller always sees the authoritative row, including the
	// ID of a row another writer created first.
	var out model.User
	if err := s.db.WithContext(ctx).First(&out, "auth_uid = ?", u.AuthUID).Error; err != nil {
		return model.User{}, err
	}
	return out, nil
}

// GetUserByAuthUID looks up a user by external identity.
func (s *GormStore) GetUserByAuthUID(ctx context.Context, authUID string) (model.User, bool, error) {
	var u model.User
	if err := s.db.WithContext(ctx).First(&u, "auth_uid = ?", authUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.User{}, false, nil
		}
		return model.User{}, false, err
	}
	return u, true, nil
}

// CreateChecklist stores a new checklist.
func (s *GormStore) CreateChecklist(ctx context.Context, c *model.Checklist) error {
	return s.db.WithContext(ctx).Create(c).Error
}

// GetChecklist returns an owner's checklist with its items and their
// categories. A checklist belonging to someone else reads as absent.
func (s *GormStore) GetChecklist(ctx context.Context, checklistID, ownerID int) (model.Checklist, bool, error) {
	var c model.Checklist
	err := s.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("item_id ASC") }).
		Preload("Items.Category").
		First(&c, "checklist_id = ? AND user_id = ?", checklistID, ownerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Checklist{}, false, nil
		}
		return model.Checklist{}, false, err
	}
	return c, true, nil
}

// ListChecklists applies a bounded filter and annotates each result with
// completed/total item counts computed from the loaded item set.
func (s *GormStore) ListChecklists(ctx context.Context, f ChecklistFilter) ([]ChecklistSummary, error) {
	tx := s.db.WithContext(ctx).Model(&model.Checklist{}).Preload("Items")

	if f.OwnerID != 0 {
		tx = tx.Where("user_id = ?", f.OwnerID)
	}
	if f.IsArchived {
		tx = tx.Where("archived_at IS NOT NULL")
	} else {
		tx = tx.Where("archived_at IS NULL")
	}
	if f.IsTemplate != nil {
		tx = tx.Where("is_template = ?", *f.IsTemplate)
	}
	if f.Status != nil {
		tx = tx.Where("status = ?", *f.Status)
	}
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		tx = tx.Where(s.db.Where("name ILIKE ?", pattern).Or("site_name ILIKE ?", pattern))
	}
	if f.DateFrom != nil {
		tx = tx.Where("work_date >= ?", *f.DateFrom)
	}
	if f.DateTo != nil {
		tx = tx.Where("work_date < ?", *f.DateTo)
	}
	if f.ViewedSince != nil {
		tx = tx.Where("last_viewed_at >= ?", *f.ViewedSince)
	}

	// SortField.Column only ever yields a whitelisted column name, so the
	// interpolated ORDER BY cannot carry injected input.
	dir := "DESC"
	if f.SortOrder == SortAsc {
		dir = "ASC"
	}
	tx = tx.Order(fmt.Sprintf("%s %s", f.SortBy.Column(), dir))

	if f.Limit > 0 {
		tx = tx.Limit(f.Limit)
	}

	var checklists []model.Checklist
	if err := tx.Find(&checklists).Error; err != nil {
		return nil, err
	}
	return summarize(checklists), nil
}

func summarize(checklists []model.Checklist) []ChecklistSummary {
	res := make([]ChecklistSummary, 0, len(checklists))
	for _, c := range checklists {
		completed := 0
		for _, it := range c.Items {
			if it.Status == model.StatusCompleted {
				completed++
			}
		}
		total := len(c.Items)
		c.Items = nil
		res = append(res, ChecklistSummary{Checklist: c, CompletedItems: completed, TotalItems: total})
	}
	return res
}

// ListChecklistsForReminder returns every active, non-template checklist
// whose work date falls in [from, to), items and categories included.
func (s *GormStore) ListChecklistsForReminder(ctx context.Context, from, to time.Time) ([]model.Checklist, error) {
	var checklists []model.Checklist
	err := s.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("item_id ASC") }).
		Preload("Items.Category").
		Where("archived_at IS NULL AND is_template = ? AND work_date >= ? AND work_date < ?", false, from, to).
		Order("work_date ASC").
		Find(&checklists).Error
	if err != nil {
		return nil, err
	}
	return checklists, nil
}

// UpdateChecklistFields applies a partial column update to an owner's
// checklist and returns the refreshed row.
func (s *GormStore) UpdateChecklistFields(ctx context.Context, checklistID, ownerID int, fields map[string]any) (model.Checklist, bool, error) {
	result := s.db.WithContext(ctx).Model(&model.Checklist{}).
		Where("checklist_id = ? AND user_id = ?", checklistID, ownerID).
		Updates(fields)
	if result.Error != nil {
		return model.Checklist{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return model.Checklist{}, false, nil
	}
	var c model.Checklist
	if err := s.db.WithContext(ctx).First(&c, "checklist_id = ?", checklistID).Error; err != nil {
		return model.Checklist{}, false, err
	}
	return c, true, nil
}

// UpdateChecklistStatus persists the derived aggregate status.
func (s *GormStore) UpdateChecklistStatus(ctx context.Context, checklistID int, status model.Status) error {
	return s.db.WithContext(ctx).Model(&model.Checklist{}).
		Where("checklist_id = ?", checklistID).
		Update("status", status).Error
}

// SetChecklistArchived sets or clears the archived timestamp.
func (s *GormStore) SetChecklistArchived(ctx context.Context, checklistID, ownerID int, archivedAt *time.Time) (model.Checklist, bool, error) {
	return s.UpdateChecklistFields(ctx, checklistID, ownerID, map[string]any{"archived_at": archivedAt})
}

// TouchChecklistViewed records when a checklist detail was last opened.
func (s *GormStore) TouchChecklistViewed(ctx context.Context, checklistID int, at time.Time) error {
	return s.db.WithContext(ctx).Model(&model.Checklist{}).
		Where("checklist_id = ?", checklistID).
		Update("last_viewed_at", at).Error
}

// DeleteChecklist removes a checklist together with its items and
// notifications. Items go first so no orphan can be observed.
func (s *GormStore) DeleteChecklist(ctx context.Context, checklistID, ownerID int) (bool, error) {
	found := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var c model.Checklist
		if err := tx.First(&c, "checklist_id = ? AND user_id = ?", checklistID, ownerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		if err := tx.Delete(&model.Item{}, "checklist_id = ?", checklistID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.Notification{}, "checklist_id = ?", checklistID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.Checklist{}, "checklist_id = ?", checklistID).Error; err != nil {
			return err
		}
		found = true
		return nil
	})
	return found, err
}

// CreateItem stores a new item and loads its category for the response.
func (s *GormStore) CreateItem(ctx context.Context, it *model.Item) error {
	if err := s.db.WithContext(ctx).Create(it).Error; err != nil {
		return err
	}
	return s.db.WithContext(ctx).First(&it.Category, "category_id = ?", it.CategoryID).Error
}

// GetItem returns an item of the given checklist with its category.
func (s *GormStore) GetItem(ctx context.Context, checklistID, itemID int) (model.Item, bool, error) {
	var it model.Item
	err := s.db.WithContext(ctx).Preload("Category").
		First(&it, "checklist_id = ? AND item_id = ?", checklistID, itemID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Item{}, false, nil
		}
		return model.Item{}, false, err
	}
	return it, true, nil
}

// ListItems returns all items of a checklist in insertion order.
func (s *GormStore) ListItems(ctx context.Context, checklistID int) ([]model.Item, error) {
	var items []model.Item
	err := s.db.WithContext(ctx).Preload("Category").
		Where("checklist_id = ?", checklistID).
		Order("item_id ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateItemFields applies a partial column update to an item of the given
// checklist and returns the refreshed row with its category.
func (s *GormStore) UpdateItemFields(ctx context.Context, checklistID, itemID int, fields map[string]any) (model.Item, bool, error) {
	result := s.db.WithContext(ctx).Model(&model.Item{}).
		Where("checklist_id = ? AND item_id = ?", checklistID, itemID).
		Updates(fields)
	if result.Error != nil {
		return model.Item{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return model.Item{}, false, nil
	}
	var it model.Item
	err := s.db.WithContext(ctx).Preload("Category").
		First(&it, "item_id = ?", itemID).Error
	if err != nil {
		return model.Item{}, false, err
	}
	return it, true, nil
}

// UpdateItemStatuses sets status and completion timestamp on every listed
// item that belongs to the checklist and the owner, and returns the updated
// rows. IDs outside that scope are skipped silently.
func (s *GormStore) UpdateItemStatuses(ctx context.Context, checklistID, ownerID int, itemIDs []int, status model.Status, completedAt *time.Time) ([]model.Item, error) {
	if len(itemIDs) == 0 {
		return []model.Item{}, nil
	}
	err := s.db.WithContext(ctx).Model(&model.Item{}).
		Where("checklist_id = ? AND user_id = ? AND item_id IN ?", checklistID, ownerID, itemIDs).
		Updates(map[string]any{"status": status, "completed_at": completedAt}).Error
	if err != nil {
		return nil, err
	}
	var items []model.Item
	err = s.db.WithContext(ctx).Preload("Category").
		Where("checklist_id = ? AND user_id = ? AND item_id IN ?", checklistID, ownerID, itemIDs).
		Order("item_id ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// DeleteItem removes one of the owner's items from a checklist.
func (s *GormStore) DeleteItem(ctx context.Context, checklistID, itemID, ownerID int) (bool, error) {
	result := s.db.WithContext(ctx).
		Delete(&model.Item{}, "checklist_id = ? AND item_id = ? AND user_id = ?", checklistID, itemID, ownerID)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// DeleteItems removes the owner's items from a checklist.
func (s *GormStore) DeleteItems(ctx context.Context, checklistID, ownerID int) error {
	return s.db.WithContext(ctx).
		Delete(&model.Item{}, "checklist_id = ? AND user_id = ?", checklistID, ownerID).Error
}

// ListCategories returns all categories in display order.
func (s *GormStore) ListCategories(ctx context.Context) ([]model.Category, error) {
	var cats []model.Category
	if err := s.db.WithContext(ctx).Order("display_order ASC").Find(&cats).Error; err != nil {
		return nil, err
	}
	return cats, nil
}

// GetCategory returns a category by ID.
func (s *GormStore) GetCategory(ctx context.Context, categoryID int) (model.Category, bool, error) {
	var cat model.Category
	if err := s.db.WithContext(ctx).First(&cat, "category_id = ?", categoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Category{}, false, nil
		}
		return model.Category{}, false, err
	}
	return cat, true, nil
}

// GetCategoryByName returns a category by its unique name.
func (s *GormStore) GetCategoryByName(ctx context.Context, name string) (model.Category, bool, error) {
	var cat model.Category
	if err := s.db.WithContext(ctx).First(&cat, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Category{}, false, nil
		}
		return model.Category{}, false, err
	}
	return cat, true, nil
}

// CreateCategory stores a new category.
func (s *GormStore) CreateCategory(ctx context.Context, cat *model.Category) error {
	return s.db.WithContext(ctx).Create(cat).Error
}

// UpdateCategory saves name, description and display order.
func (s *GormStore) UpdateCategory(ctx context.Context, cat *model.Category) error {
	return s.db.WithContext(ctx).Model(&model.Category{}).
		Where("category_id = ?", cat.CategoryID).
		Updates(map[string]any{
			"name":          cat.Name,
			"description":   cat.Description,
			"display_order": cat.DisplayOrder,
		}).Error
}

// DeleteCategory removes a category.
func (s *GormStore) DeleteCategory(ctx context.Context, categoryID int) (bool, error) {
	result := s.db.WithContext(ctx).Delete(&model.Category{}, "category_id = ?", categoryID)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// ReorderCategories applies all display-order updates in one transaction.
func (s *GormStore) ReorderCategories(ctx context.Context, orders []CategoryOrder) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, o := range orders {
			err := tx.Model(&model.Category{}).
				Where("category_id = ?", o.CategoryID).
				Update("display_order", o.DisplayOrder).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// CreateNotification stores a generated reminder.
func (s *GormStore) CreateNotification(ctx context.Context, n *model.Notification) error {
	return s.db.WithContext(ctx).Create(n).Error
}

// ListNotifications returns a user's notifications, newest first.
func (s *GormStore) ListNotifications(ctx context.Context, ownerID, limit int) ([]model.Notification, error) {
	tx := s.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at DESC")
	if limit > 0 {
		tx = tx.Limit(limit)
	}
	var ns []model.Notification
	if err := tx.Find(&ns).Error; err != nil {
		return nil, err
	}
	return ns, nil
}

// DeleteNotification removes a user's notification.
func (s *GormStore) DeleteNotification(ctx context.Context, notificationID, ownerID int) (bool, error) {
	result := s.db.WithContext(ctx).
		Delete(&model.Notification{}, "notification_id = ? AND user_id = ?", notificationID, ownerID)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
