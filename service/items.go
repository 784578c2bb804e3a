package service

import (
	"context"
	"time"

	"sitecheck/model"
	"sitecheck/store"
)

// ItemService applies item mutations and keeps the owning checklist's stored
// status equal to the aggregate of its items, inside one transaction per
// logical operation.
type ItemService struct {
	store store.Store
	now   func() time.Time
}

func NewItemService(st store.Store) *ItemService {
	return &ItemService{store: st, now: time.Now}
}

// ItemSummary carries the completed/total item counts of a checklist.
type ItemSummary struct {
	CompletedItems int `json:"completedItems"`
	TotalItems     int `json:"totalItems"`
}

// ItemStatusResult is the outcome of a single-item status update.
type ItemStatusResult struct {
	Item      model.Item      `json:"item"`
	Checklist model.Checklist `json:"checklist"`
	Summary   ItemSummary     `json:"summary"`
}

// BatchStatusResult is the outcome of a bulk status update.
type BatchStatusResult struct {
	Items     []model.Item    `json:"items"`
	Checklist model.Checklist `json:"checklist"`
	Summary   ItemSummary     `json:"summary"`
}

func summaryOf(items []model.Item) ItemSummary {
	completed := 0
	for _, it := range items {
		if it.Status == model.StatusCompleted {
			completed++
		}
	}
	return ItemSummary{CompletedItems: completed, TotalItems: len(items)}
}

func (s *ItemService) completionTime(status model.Status) *time.Time {
	if status != model.StatusCompleted {
		return nil
	}
	now := s.now()
	return &now
}

// UpdateItemStatus changes one item's status and recomputes the checklist
// status from the full post-write sibling set, committing both writes
// atomically. Updating an item to its current status still recomputes the
// aggregate, correcting any out-of-band drift.
func (s *ItemService) UpdateItemStatus(ctx context.Context, checklistID, itemID int, status model.Status, requesterID int) (ItemStatusResult, error) {
	if !status.Valid() {
		return ItemStatusResult{}, Invalid("status", "must be NotStarted, Pending or Completed")
	}

	var res ItemStatusResult
	err := s.store.Transaction(ctx, func(tx store.Store) error {
		checklist, err := AuthorizeChecklist(ctx, tx, checklistID, requesterID)
		if err != nil {
			return err
		}
		item, ok, err := tx.GetItem(ctx, checklistID, itemID)
		if err != nil {
			return err
		}
		if !ok || item.UserID != requesterID {
			return ErrNotFound
		}

		updated, err := tx.UpdateItemStatuses(ctx, checklistID, requesterID, []int{itemID}, status, s.completionTime(status))
		if err != nil {
			return err
		}
		if len(updated) == 0 {
			return ErrNotFound
		}

		checklist, siblings, err := s.settleChecklistStatus(ctx, tx, checklist)
		if err != nil {
			return err
		}
		res = ItemStatusResult{Item: updated[0], Checklist: checklist, Summary: summaryOf(siblings)}
		return nil
	})
	if err != nil {
		return ItemStatusResult{}, err
	}
	return res, nil
}

// UpdateItemStatuses applies one status to every listed item that belongs to
// the checklist and the requester, then recomputes and persists the
// checklist status exactly once. The whole batch commits or rolls back as a
// unit. An empty batch is a valid no-op that still settles the aggregate.
func (s *ItemService) UpdateItemStatuses(ctx context.Context, checklistID int, itemIDs []int, status model.Status, requesterID int) (BatchStatusResult, error) {
	if !status.Valid() {
		return BatchStatusResult{}, Invalid("status", "must be NotStarted, Pending or Completed")
	}

	var res BatchStatusResult
	err := s.store.Transaction(ctx, func(tx store.Store) error {
		checklist, err := AuthorizeChecklist(ctx, tx, checklistID, requesterID)
		if err != nil {
			return err
		}

		updated, err := tx.UpdateItemStatuses(ctx, checklistID, requesterID, itemIDs, status, s.completionTime(status))
		if err != nil {
			return err
		}

		checklist, siblings, err := s.settleChecklistStatus(ctx, tx, checklist)
		if err != nil {
			return err
		}
		res = BatchStatusResult{Items: updated, Checklist: checklist, Summary: summaryOf(siblings)}
		return nil
	})
	if err != nil {
		return BatchStatusResult{}, err
	}
	return res, nil
}

// settleChecklistStatus re-reads the full sibling set after a write and
// persists the recomputed aggregate when it differs from the stored status.
func (s *ItemService) settleChecklistStatus(ctx context.Context, tx store.Store, checklist model.Checklist) (model.Checklist, []model.Item, error) {
	siblings, err := tx.ListItems(ctx, checklist.ChecklistID)
	if err != nil {
		return model.Checklist{}, nil, err
	}
	aggregate := AggregateStatus(statusesOf(siblings))
	if aggregate != checklist.Status {
		if err := tx.UpdateChecklistStatus(ctx, checklist.ChecklistID, aggregate); err != nil {
			return model.Checklist{}, nil, err
		}
		checklist.Status = aggregate
	}
	checklist.Items = nil
	return checklist, siblings, nil
}

// ItemInput is the validated payload for creating an item.
type ItemInput struct {
	Name        string
	Description string
	CategoryID  int
	Quantity    int
	Unit        string
	Memo        string
	Status      model.Status
}

// CreateItem adds an item to the requester's checklist and settles the
// checklist status in the same transaction, since a new NotStarted item can
// demote a Completed checklist.
func (s *ItemService) CreateItem(ctx context.Context, checklistID int, in ItemInput, requesterID int) (model.Item, error) {
	if in.Status == "" {
		in.Status = model.StatusNotStarted
	}
	if !in.Status.Valid() {
		return model.Item{}, Invalid("status", "must be NotStarted, Pending or Completed")
	}

	var created model.Item
	err := s.store.Transaction(ctx, func(tx store.Store) error {
		checklist, err := AuthorizeChecklist(ctx, tx, checklistID, requesterID)
		if err != nil {
			return err
		}
		if _, ok, err := tx.GetCategory(ctx, in.CategoryID); err != nil {
			return err
		} else if !ok {
			return Invalid("categoryId", "category does not exist")
		}

		item := model.Item{
			ChecklistID: checklistID,
			CategoryID:  in.CategoryID,
			UserID:      requesterID,
			Name:        in.Name,
			Description: in.Description,
			Quantity:    in.Quantity,
			Unit:        in.Unit,
			Memo:        in.Memo,
			Status:      in.Status,
			CompletedAt: s.completionTime(in.Status),
		}
		if err := tx.CreateItem(ctx, &item); err != nil {
			return err
		}
		if _, _, err := s.settleChecklistStatus(ctx, tx, checklist); err != nil {
			return err
		}
		created = item
		return nil
	})
	if err != nil {
		return model.Item{}, err
	}
	return created, nil
}

// ItemUpdate carries the optional fields of an item update; nil fields are
// left untouched.
type ItemUpdate struct {
	Name        *string
	Description *string
	CategoryID  *int
	Quantity    *int
	Unit        *string
	Memo        *string
	Status      *model.Status
}

// UpdateItem applies a partial update to one of the requester's items. A
// status change keeps the completion timestamp in step and settles the
// checklist aggregate in the same transaction.
func (s *ItemService) UpdateItem(ctx context.Context, checklistID, itemID int, in ItemUpdate, requesterID int) (model.Item, error) {
	fields := make(map[string]any)
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.CategoryID != nil {
		fields["category_id"] = *in.CategoryID
	}
	if in.Quantity != nil {
		fields["quantity"] = *in.Quantity
	}
	if in.Unit != nil {
		fields["unit"] = *in.Unit
	}
	if in.Memo != nil {
		fields["memo"] = *in.Memo
	}
	if in.Status != nil {
		if !in.Status.Valid() {
			return model.Item{}, Invalid("status", "must be NotStarted, Pending or Completed")
		}
		fields["status"] = *in.Status
		fields["completed_at"] = s.completionTime(*in.Status)
	}
	if len(fields) == 0 {
		return model.Item{}, Invalid("body", "no fields to update")
	}

	var updated model.Item
	err := s.store.Transaction(ctx, func(tx store.Store) error {
		checklist, err := AuthorizeChecklist(ctx, tx, checklistID, requesterID)
		if err != nil {
			return err
		}
		item, ok, err := tx.GetItem(ctx, checklistID, itemID)
		if err != nil {
			return err
		}
		if !ok || item.UserID != requesterID {
			return ErrNotFound
		}
		if in.CategoryID != nil {
			if _, ok, err := tx.GetCategory(ctx, *in.CategoryID); err != nil {
				return err
			} else if !ok {
				return Invalid("categoryId", "category does not exist")
			}
		}

		updated, ok, err = tx.UpdateItemFields(ctx, checklistID, itemID, fields)
		if err != nil {
			return err
		}
		if !ok {
			return ErrNotFound
		}
		_, _, err = s.settleChecklistStatus(ctx, tx, checklist)
		return err
	})
	if err != nil {
		return model.Item{}, err
	}
	return updated, nil
}

// DeleteItem removes one of the requester's items and settles the checklist
// aggregate, since removing the last unfinished item can complete the
// checklist.
func (s *ItemService) DeleteItem(ctx context.Context, checklistID, itemID, requesterID int) error {
	return s.store.Transaction(ctx, func(tx store.Store) error {
		checklist, err := AuthorizeChecklist(ctx, tx, checklistID, requesterID)
		if err != nil {
			return err
		}
		found, err := tx.DeleteItem(ctx, checklistID, itemID, requesterID)
		if err != nil {
			return err
		}
		if !found {
			return ErrNotFound
		}
		_, _, err = s.settleChecklistStatus(ctx, tx, checklist)
		return err
	})
}

// ListItems returns the items of the requester's checklist.
func (s *ItemService) ListItems(ctx context.Context, checklistID, requesterID int) ([]model.Item, error) {
	if _, err := AuthorizeChecklist(ctx, s.store, checklistID, requesterID); err != nil {
		return nil, err
	}
	return s.store.ListItems(ctx, checklistID)
}

// DeleteItems removes the requester's items from a checklist and settles the
// now-empty (or reduced) aggregate.
func (s *ItemService) DeleteItems(ctx context.Context, checklistID, requesterID int) error {
	return s.store.Transaction(ctx, func(tx store.Store) error {
		checklist, err := AuthorizeChecklist(ctx, tx, checklistID, requesterID)
		if err != nil {
			return err
		}
		if err := tx.DeleteItems(ctx, checklistID, requesterID); err != nil {
			return err
		}
		_, _, err = s.settleChecklistStatus(ctx, tx, checklist)
		return err
	})
}
