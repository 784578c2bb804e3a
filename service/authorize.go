package service

import (
	"context"

	"sitecheck/model"
	"sitecheck/store"
)

// AuthorizeChecklist resolves a checklist only when it exists and belongs to
// the requester. Every read/write path goes through this one check; a
// checklist that is missing and a checklist owned by someone else are
// indistinguishable to the caller.
func AuthorizeChecklist(ctx context.Context, st store.Store, checklistID, ownerID int) (model.Checklist, error) {
	c, ok, err := st.GetChecklist(ctx, checklistID, ownerID)
	if err != nil {
		return model.Checklist{}, err
	}
	if !ok {
		return model.Checklist{}, ErrNotFound
	}
	return c, nil
}
