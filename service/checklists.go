package service

import (
	"context"
	"time"

	"sitecheck/model"
	"sitecheck/store"
)

// ChecklistService handles checklist CRUD, archiving and duplication.
type ChecklistService struct {
	store store.Store
	now   func() time.Time
}

func NewChecklistService(st store.Store) *ChecklistService {
	return &ChecklistService{store: st, now: time.Now}
}

// List returns the requester's checklists matching the filter, annotated
// with completed/total item counts.
func (s *ChecklistService) List(ctx context.Context, requesterID int, f store.ChecklistFilter) ([]store.ChecklistSummary, error) {
	f.OwnerID = requesterID
	return s.store.ListChecklists(ctx, f)
}

// ChecklistInput is the validated payload for creating a checklist.
type ChecklistInput struct {
	Name        string
	Description string
	SiteName    string
	WorkDate    time.Time
	IsTemplate  bool
	Status      model.Status
}

// Create stores a new checklist for the requester.
func (s *ChecklistService) Create(ctx context.Context, in ChecklistInput, requesterID int) (model.Checklist, error) {
	if in.Status == "" {
		in.Status = model.StatusNotStarted
	}
	if !in.Status.Valid() {
		return model.Checklist{}, Invalid("status", "must be NotStarted, Pending or Completed")
	}
	c := model.Checklist{
		UserID:      requesterID,
		Name:        in.Name,
		Description: in.Description,
		SiteName:    in.SiteName,
		WorkDate:    in.WorkDate,
		IsTemplate:  in.IsTemplate,
		Status:      in.Status,
	}
	if err := s.store.CreateChecklist(ctx, &c); err != nil {
		return model.Checklist{}, err
	}
	return c, nil
}

// Get returns the requester's checklist with items and categories, and
// records the view time for the dashboard's recent list.
func (s *ChecklistService) Get(ctx context.Context, checklistID, requesterID int) (model.Checklist, error) {
	c, err := AuthorizeChecklist(ctx, s.store, checklistID, requesterID)
	if err != nil {
		return model.Checklist{}, err
	}
	viewedAt := s.now()
	if err := s.store.TouchChecklistViewed(ctx, checklistID, viewedAt); err != nil {
		return model.Checklist{}, err
	}
	c.LastViewedAt = &viewedAt
	return c, nil
}

// ChecklistUpdate carries the optional fields of a checklist update; nil
// fields are left untouched.
type ChecklistUpdate struct {
	Name        *string
	Description *string
	SiteName    *string
	WorkDate    *time.Time
	IsTemplate  *bool
}

// Update applies a partial update to the requester's checklist.
func (s *ChecklistService) Update(ctx context.Context, checklistID, requesterID int, in ChecklistUpdate) (model.Checklist, error) {
	fields := make(map[string]any)
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.SiteName != nil {
		fields["site_name"] = *in.SiteName
	}
	if in.WorkDate != nil {
		fields["work_date"] = *in.WorkDate
	}
	if in.IsTemplate != nil {
		fields["is_template"] = *in.IsTemplate
	}
	if len(fields) == 0 {
		return model.Checklist{}, Invalid("body", "no fields to update")
	}
	c, ok, err := s.store.UpdateChecklistFields(ctx, checklistID, requesterID, fields)
	if err != nil {
		return model.Checklist{}, err
	}
	if !ok {
		return model.Checklist{}, ErrNotFound
	}
	return c, nil
}

// Delete removes the requester's checklist and all of its items.
func (s *ChecklistService) Delete(ctx context.Context, checklistID, requesterID int) error {
	found, err := s.store.DeleteChecklist(ctx, checklistID, requesterID)
	if err != nil {
		return err
	}
	if !found {
		return ErrNotFound
	}
	return nil
}

// Archive stamps the checklist as archived.
func (s *ChecklistService) Archive(ctx context.Context, checklistID, requesterID int) (model.Checklist, error) {
	at := s.now()
	return s.setArchived(ctx, checklistID, requesterID, &at)
}

// Restore clears the archived stamp.
func (s *ChecklistService) Restore(ctx context.Context, checklistID, requesterID int) (model.Checklist, error) {
	return s.setArchived(ctx, checklistID, requesterID, nil)
}

func (s *ChecklistService) setArchived(ctx context.Context, checklistID, requesterID int, at *time.Time) (model.Checklist, error) {
	c, ok, err := s.store.SetChecklistArchived(ctx, checklistID, requesterID, at)
	if err != nil {
		return model.Checklist{}, err
	}
	if !ok {
		return model.Checklist{}, ErrNotFound
	}
	return c, nil
}

// Duplicate copies the requester's checklist and its items into a new
// template named "<name>(copy)". Item statuses are reset so the copy starts
// fresh; the copy and all of its items commit as one unit.
func (s *ChecklistService) Duplicate(ctx context.Context, checklistID, requesterID int) (model.Checklist, error) {
	var copied model.Checklist
	err := s.store.Transaction(ctx, func(tx store.Store) error {
		original, err := AuthorizeChecklist(ctx, tx, checklistID, requesterID)
		if err != nil {
			return err
		}
		copied = model.Checklist{
			UserID:      requesterID,
			Name:        original.Name + "(copy)",
			Description: original.Description,
			SiteName:    original.SiteName,
			WorkDate:    original.WorkDate,
			IsTemplate:  true,
			Status:      model.StatusNotStarted,
		}
		if err := tx.CreateChecklist(ctx, &copied); err != nil {
			return err
		}
		for _, it := range original.Items {
			copy := model.Item{
				ChecklistID: copied.ChecklistID,
				CategoryID:  it.CategoryID,
				UserID:      requesterID,
				Name:        it.Name,
				Description: it.Description,
				Quantity:    it.Quantity,
				Unit:        it.Unit,
				Memo:        it.Memo,
				Status:      model.StatusNotStarted,
			}
			if err := tx.CreateItem(ctx, &copy); err != nil {
				return err
			}
			copied.Items = append(copied.Items, copy)
		}
		return nil
	})
	if err != nil {
		return model.Checklist{}, err
	}
	return copied, nil
}
