package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"sitecheck/model"
)

// MemoryStore is an in-process Store used by tests and local development.
// Transactions are simulated with snapshot/rollback; concurrent transactions
// are not serialized against each other beyond per-call locking.
type MemoryStore struct {
	mu            sync.Mutex
	users         map[int]model.User
	byAuthUID     map[string]int
	checklists    map[int]model.Checklist
	items         map[int]model.Item
	categories    map[int]model.Category
	notifications map[int]model.Notification
	nextID        map[string]int
}

// NewMemoryStore initializes an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:         make(map[int]model.User),
		byAuthUID:     make(map[string]int),
		checklists:    make(map[int]model.Checklist),
		items:         make(map[int]model.Item),
		categories:    make(map[int]model.Category),
		notifications: make(map[int]model.Notification),
		nextID:        make(map[string]int),
	}
}

func (m *MemoryStore) id(kind string) int {
	m.nextID[kind]++
	return m.nextID[kind]
}

type memorySnapshot struct {
	users         map[int]model.User
	byAuthUID     map[string]int
	checklists    map[int]model.Checklist
	items         map[int]model.Item
	categories    map[int]model.Category
	notifications map[int]model.Notification
	nextID        map[string]int
}

func cloneMap[K comparable, V any](src map[K]V) map[K]V {
	dst := make(map[K]V, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func (m *MemoryStore) snapshot() memorySnapshot {
	return memorySnapshot{
		users:         cloneMap(m.users),
		byAuthUID:     cloneMap(m.byAuthUID),
		checklists:    cloneMap(m.checklists),
		items:         cloneMap(m.items),
		categories:    cloneMap(m.categories),
		notifications: cloneMap(m.notifications),
		nextID:        cloneMap(m.nextID),
	}
}

func (m *MemoryStore) restore(s memorySnapshot) {
	m.users = s.users
	m.byAuthUID = s.byAuthUID
	m.checklists = s.checklists
	m.items = s.items
	m.categories = s.categories
	m.notifications = s.notifications
	m.nextID = s.nextID
}

// Transaction snapshots the state, runs fn, and restores the snapshot when
// fn fails, so callers observe the same all-or-nothing contract as the
// database-backed store.
func (m *MemoryStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	m.mu.Lock()
	snap := m.snapshot()
	m.mu.Unlock()

	if err := fn(m); err != nil {
		m.mu.Lock()
		m.restore(snap)
		m.mu.Unlock()
		return err
	}
	return nil
}

// UpsertUser creates or refreshes the row for an external identity.
func (m *MemoryStore) UpsertUser(ctx context.Context, u model.User) (model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if id, ok := m.byAuthUID[u.AuthUID]; ok {
		existing := m.users[id]
		existing.Name = u.Name
		m.users[id] = existing
		return existing, nil
	}
	u.UserID = m.id("user")
	u.CreatedAt = time.Now()
	m.users[u.UserID] = u
	m.byAuthUID[u.AuthUID] = u.UserID
	return u, nil
}

// GetUserByAuthUID looks up a user by external identity.
func (m *MemoryStore) GetUserByAuthUID(ctx context.Context, authUID string) (model.User, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id, ok := m.byAuthUID[authUID]
	if !ok {
		return model.User{}, false, nil
	}
	return m.users[id], true, nil
}

// CreateChecklist stores a new checklist.
func (m *MemoryStore) CreateChecklist(ctx context.Context, c *model.Checklist) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c.ChecklistID = m.id("checklist")
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now
	if c.Status == "" {
		c.Status = model.StatusNotStarted
	}
	stored := *c
	stored.Items = nil
	m.checklists[c.ChecklistID] = stored
	return nil
}

func (m *MemoryStore) itemsOf(checklistID int) []model.Item {
	var items []model.Item
	for _, it := range m.items {
		if it.ChecklistID == checklistID {
			it.Category = m.categories[it.CategoryID]
			items = append(items, it)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ItemID < items[j].ItemID })
	return items
}

// GetChecklist returns an owner's checklist with items and categories.
func (m *MemoryStore) GetChecklist(ctx context.Context, checklistID, ownerID int) (model.Checklist, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.checklists[checklistID]
	if !ok || c.UserID != ownerID {
		return model.Checklist{}, false, nil
	}
	c.Items = m.itemsOf(checklistID)
	return c, true, nil
}

// ListChecklists filters and sorts in-process, mirroring the SQL semantics.
func (m *MemoryStore) ListChecklists(ctx context.Context, f ChecklistFilter) ([]ChecklistSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var matched []model.Checklist
	for _, c := range m.checklists {
		if f.OwnerID != 0 && c.UserID != f.OwnerID {
			continue
		}
		if f.IsArchived != (c.ArchivedAt != nil) {
			continue
		}
		if f.IsTemplate != nil && c.IsTemplate != *f.IsTemplate {
			continue
		}
		if f.Status != nil && c.Status != *f.Status {
			continue
		}
		if f.Search != "" {
			q := strings.ToLower(f.Search)
			if !strings.Contains(strings.ToLower(c.Name), q) &&
				!strings.Contains(strings.ToLower(c.SiteName), q) {
				continue
			}
		}
		if f.DateFrom != nil && c.WorkDate.Before(*f.DateFrom) {
			continue
		}
		if f.DateTo != nil && !c.WorkDate.Before(*f.DateTo) {
			continue
		}
		if f.ViewedSince != nil && (c.LastViewedAt == nil || c.LastViewedAt.Before(*f.ViewedSince)) {
			continue
		}
		matched = append(matched, c)
	}

	key := func(c model.Checklist) time.Time {
		switch f.SortBy {
		case SortByUpdatedAt:
			return c.UpdatedAt
		case SortByWorkDate:
			return c.WorkDate
		case SortByLastViewed:
			if c.LastViewedAt != nil {
				return *c.LastViewedAt
			}
			return time.Time{}
		default:
			return c.CreatedAt
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if f.SortOrder == SortAsc {
			return key(matched[i]).Before(key(matched[j]))
		}
		return key(matched[j]).Before(key(matched[i]))
	})

	if f.Limit > 0 && len(matched) > f.Limit {
		matched = matched[:f.Limit]
	}

	for i := range matched {
		matched[i].Items = m.itemsOf(matched[i].ChecklistID)
	}
	return summarize(matched), nil
}

// ListChecklistsForReminder returns active, non-template checklists with a
// work date in [from, to).
func (m *MemoryStore) ListChecklistsForReminder(ctx context.Context, from, to time.Time) ([]model.Checklist, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var res []model.Checklist
	for _, c := range m.checklists {
		if c.ArchivedAt != nil || c.IsTemplate {
			continue
		}
		if c.WorkDate.Before(from) || !c.WorkDate.Before(to) {
			continue
		}
		c.Items = m.itemsOf(c.ChecklistID)
		res = append(res, c)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].WorkDate.Before(res[j].WorkDate) })
	return res, nil
}

// UpdateChecklistFields applies a partial column update.
func (m *MemoryStore) UpdateChecklistFields(ctx context.Context, checklistID, ownerID int, fields map[string]any) (model.Checklist, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.checklists[checklistID]
	if !ok || c.UserID != ownerID {
		return model.Checklist{}, false, nil
	}
	for col, v := range fields {
		switch col {
		case "name":
			c.Name = v.(string)
		case "description":
			c.Description = v.(string)
		case "site_name":
			c.SiteName = v.(string)
		case "work_date":
			c.WorkDate = v.(time.Time)
		case "is_template":
			c.IsTemplate = v.(bool)
		case "status":
			c.Status = v.(model.Status)
		case "archived_at":
			c.ArchivedAt = v.(*time.Time)
		}
	}
	c.UpdatedAt = time.Now()
	m.checklists[checklistID] = c
	return c, true, nil
}

// UpdateChecklistStatus persists the derived aggregate status.
func (m *MemoryStore) UpdateChecklistStatus(ctx context.Context, checklistID int, status model.Status) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.checklists[checklistID]
	if !ok {
		return nil
	}
	c.Status = status
	c.UpdatedAt = time.Now()
	m.checklists[checklistID] = c
	return nil
}

// SetChecklistArchived sets or clears the archived timestamp.
func (m *MemoryStore) SetChecklistArchived(ctx context.Context, checklistID, ownerID int, archivedAt *time.Time) (model.Checklist, bool, error) {
	return m.UpdateChecklistFields(ctx, checklistID, ownerID, map[string]any{"archived_at": archivedAt})
}

// TouchChecklistViewed records the last-viewed time.
func (m *MemoryStore) TouchChecklistViewed(ctx context.Context, checklistID int, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.checklists[checklistID]
	if !ok {
		return nil
	}
	c.LastViewedAt = &at
	m.checklists[checklistID] = c
	return nil
}

// DeleteChecklist removes a checklist, its items and its notifications.
func (m *MemoryStore) DeleteChecklist(ctx context.Context, checklistID, ownerID int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.checklists[checklistID]
	if !ok || c.UserID != ownerID {
		return false, nil
	}
	for id, it := range m.items {
		if it.ChecklistID == checklistID {
			delete(m.items, id)
		}
	}
	for id, n := range m.notifications {
		if n.ChecklistID == checklistID {
			delete(m.notifications, id)
		}
	}
	delete(m.checklists, checklistID)
	return true, nil
}

// CreateItem stores a new item and resolves its category.
func (m *MemoryStore) CreateItem(ctx context.Context, it *model.Item) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	it.ItemID = m.id("item")
	now := time.Now()
	it.CreatedAt = now
	it.UpdatedAt = now
	if it.Status == "" {
		it.Status = model.StatusNotStarted
	}
	stored := *it
	stored.Category = model.Category{}
	m.items[it.ItemID] = stored
	it.Category = m.categories[it.CategoryID]
	return nil
}

// GetItem returns an item of the given checklist with its category.
func (m *MemoryStore) GetItem(ctx context.Context, checklistID, itemID int) (model.Item, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	it, ok := m.items[itemID]
	if !ok || it.ChecklistID != checklistID {
		return model.Item{}, false, nil
	}
	it.Category = m.categories[it.CategoryID]
	return it, true, nil
}

// ListItems returns all items of a checklist in insertion order.
func (m *MemoryStore) ListItems(ctx context.Context, checklistID int) ([]model.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.itemsOf(checklistID), nil
}

// UpdateItemFields applies a partial column update to an item of the given
// checklist.
func (m *MemoryStore) UpdateItemFields(ctx context.Context, checklistID, itemID int, fields map[string]any) (model.Item, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	it, ok := m.items[itemID]
	if !ok || it.ChecklistID != checklistID {
		return model.Item{}, false, nil
	}
	for col, v := range fields {
		switch col {
		case "name":
			it.Name = v.(string)
		case "description":
			it.Description = v.(string)
		case "category_id":
			it.CategoryID = v.(int)
		case "quantity":
			it.Quantity = v.(int)
		case "unit":
			it.Unit = v.(string)
		case "memo":
			it.Memo = v.(string)
		case "status":
			it.Status = v.(model.Status)
		case "completed_at":
			it.CompletedAt = v.(*time.Time)
		}
	}
	it.UpdatedAt = time.Now()
	m.items[itemID] = it
	it.Category = m.categories[it.CategoryID]
	return it, true, nil
}

// UpdateItemStatuses sets status and completion timestamp on every matching
// item, skipping IDs outside the checklist/owner scope.
func (m *MemoryStore) UpdateItemStatuses(ctx context.Context, checklistID, ownerID int, itemIDs []int, status model.Status, completedAt *time.Time) ([]model.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var updated []model.Item
	for _, id := range itemIDs {
		it, ok := m.items[id]
		if !ok || it.ChecklistID != checklistID || it.UserID != ownerID {
			continue
		}
		it.Status = status
		it.CompletedAt = completedAt
		it.UpdatedAt = time.Now()
		m.items[id] = it
		it.Category = m.categories[it.CategoryID]
		updated = append(updated, it)
	}
	sort.Slice(updated, func(i, j int) bool { return updated[i].ItemID < updated[j].ItemID })
	return updated, nil
}

// DeleteItem removes one of the owner's items from a checklist.
func (m *MemoryStore) DeleteItem(ctx context.Context, checklistID, itemID, ownerID int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	it, ok := m.items[itemID]
	if !ok || it.ChecklistID != checklistID || it.UserID != ownerID {
		return false, nil
	}
	delete(m.items, itemID)
	return true, nil
}

// DeleteItems removes the owner's items from a checklist.
func (m *MemoryStore) DeleteItems(ctx context.Context, checklistID, ownerID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, it := range m.items {
		if it.ChecklistID == checklistID && it.UserID == ownerID {
			delete(m.items, id)
		}
	}
	return nil
}

// ListCategories returns all categories in display order.
func (m *MemoryStore) ListCategories(ctx context.Context) ([]model.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var cats []model.Category
	for _, c := range m.categories {
		cats = append(cats, c)
	}
	sort.Slice(cats, func(i, j int) bool {
		if cats[i].DisplayOrder != cats[j].DisplayOrder {
			return cats[i].DisplayOrder < cats[j].DisplayOrder
		}
		return cats[i].CategoryID < cats[j].CategoryID
	})
	return cats, nil
}

// GetCategory returns a category by ID.
func (m *MemoryStore) GetCategory(ctx context.Context, categoryID int) (model.Category, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.categories[categoryID]
	return c, ok, nil
}

// GetCategoryByName returns a category by its unique name.
func (m *MemoryStore) GetCategoryByName(ctx context.Context, name string) (model.Category, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.categories {
		if c.Name == name {
			return c, true, nil
		}
	}
	return model.Category{}, false, nil
}

// CreateCategory stores a new category.
func (m *MemoryStore) CreateCategory(ctx context.Context, cat *model.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cat.CategoryID = m.id("category")
	now := time.Now()
	cat.CreatedAt = now
	cat.UpdatedAt = now
	m.categories[cat.CategoryID] = *cat
	return nil
}

// UpdateCategory saves name, description and display order.
func (m *MemoryStore) UpdateCategory(ctx context.Context, cat *model.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.categories[cat.CategoryID]
	if !ok {
		return nil
	}
	existing.Name = cat.Name
	existing.Description = cat.Description
	existing.DisplayOrder = cat.DisplayOrder
	existing.UpdatedAt = time.Now()
	m.categories[cat.CategoryID] = existing
	return nil
}

// DeleteCategory removes a category.
func (m *MemoryStore) DeleteCategory(ctx context.Context, categoryID int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.categories[categoryID]; !ok {
		return false, nil
	}
	delete(m.categories, categoryID)
	return true, nil
}

// ReorderCategories applies all display-order updates at once.
func (m *MemoryStore) ReorderCategories(ctx context.Context, orders []CategoryOrder) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, o := range orders {
		c, ok := m.categories[o.CategoryID]
		if !ok {
			continue
		}
		c.DisplayOrder = o.DisplayOrder
		c.UpdatedAt = time.Now()
		m.categories[o.CategoryID] = c
	}
	return nil
}

// CreateNotification stores a generated reminder.
func (m *MemoryStore) CreateNotification(ctx context.Context, n *model.Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	n.NotificationID = m.id("notification")
	n.CreatedAt = time.Now()
	m.notifications[n.NotificationID] = *n
	return nil
}

// ListNotifications returns a user's notifications, newest first.
func (m *MemoryStore) ListNotifications(ctx context.Context, ownerID, limit int) ([]model.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var ns []model.Notification
	for _, n := range m.notifications {
		if n.UserID == ownerID {
			ns = append(ns, n)
		}
	}
	sort.Slice(ns, func(i, j int) bool {
		if !ns[i].CreatedAt.Equal(ns[j].CreatedAt) {
			return ns[i].CreatedAt.After(ns[j].CreatedAt)
		}
		return ns[i].NotificationID > ns[j].NotificationID
	})
	if limit > 0 && len(ns) > limit {
		ns = ns[:limit]
	}
	return ns, nil
}

// DeleteNotification removes a user's notification.
func (m *MemoryStore) DeleteNotification(ctx context.Context, notificationID, ownerID int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, ok := m.notifications[notificationID]
	if !ok || n.UserID != ownerID {
		return false, nil
	}
	delete(m.notifications, notificationID)
	return true, nil
}
