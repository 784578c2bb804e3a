package store

import (
	"time"

	"sitecheck/model"
)

// SortField is a whitelisted checklist sort column.
type SortField string

const (
	SortByCreatedAt SortField = "createdAt"
	SortByUpdatedAt SortField = "updatedAt"
	SortByWorkDate  SortField = "workDate"

	// SortByLastViewed is internal-only (dashboard); the query parser never
	// produces it from request input.
	SortByLastViewed SortField = "lastViewedAt"
)

// Column maps the API-facing field name to the underlying column. Only
// whitelisted fields have a mapping, which is what keeps the ORDER BY safe.
func (f SortField) Column() string {
	switch f {
	case SortByUpdatedAt:
		return "updated_at"
	case SortByWorkDate:
		return "work_date"
	case SortByLastViewed:
		return "last_viewed_at"
	default:
		return "created_at"
	}
}

// SortOrder is the sort direction, asc or desc.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ChecklistFilter is a bounded query description. It is only ever built by
// the query parser or internal callers, never directly from raw input.
type ChecklistFilter struct {
	// OwnerID scopes results to one user. Zero means any owner.
	OwnerID int

	// IsArchived selects archived (archived_at set) vs active checklists.
	// Always applied, matching the listing semantics of the UI.
	IsArchived bool

	// IsTemplate filters on the template flag when non-nil.
	IsTemplate *bool

	// Status filters on the stored aggregate status when non-nil.
	Status *model.Status

	// Search matches name OR site name, case-insensitive substring.
	Search string

	// DateFrom is an inclusive lower bound on work date.
	DateFrom *time.Time
	// DateTo is an exclusive upper bound on work date. The parser normalizes
	// a calendar date to the start of the following day so the whole end date
	// is included.
	DateTo *time.Time

	// ViewedSince keeps only checklists viewed at or after the given time.
	ViewedSince *time.Time

	SortBy    SortField
	SortOrder SortOrder

	// Limit caps the result set. Zero means no cap.
	Limit int
}
