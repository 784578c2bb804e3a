package service

import (
	"net/url"
	"time"

	"sitecheck/model"
	"sitecheck/store"
)

const dateLayout = "2006-01-02"

// ParseChecklistFilter turns untrusted query parameters into a bounded
// filter. Sort parameters outside their whitelists fall back to the defaults
// silently; an unknown status or unparseable date is rejected.
func ParseChecklistFilter(values url.Values) (store.ChecklistFilter, error) {
	f := store.ChecklistFilter{
		IsArchived: values.Get("isArchived") == "true",
		Search:     values.Get("searchQuery"),
		SortBy:     store.SortByCreatedAt,
		SortOrder:  store.SortDesc,
	}

	switch values.Get("isTemplate") {
	case "true":
		v := true
		f.IsTemplate = &v
	case "false":
		v := false
		f.IsTemplate = &v
	}

	if raw := values.Get("status"); raw != "" {
		status, err := model.ParseStatus(raw)
		if err != nil {
			return store.ChecklistFilter{}, Invalid("status", "must be NotStarted, Pending or Completed")
		}
		f.Status = &status
	}

	if raw := values.Get("dateFrom"); raw != "" {
		from, err := time.ParseInLocation(dateLayout, raw, time.Local)
		if err != nil {
			return store.ChecklistFilter{}, Invalid("dateFrom", "must be a YYYY-MM-DD date")
		}
		f.DateFrom = &from
	}

	if raw := values.Get("dateTo"); raw != "" {
		to, err := time.ParseInLocation(dateLayout, raw, time.Local)
		if err != nil {
			return store.ChecklistFilter{}, Invalid("dateTo", "must be a YYYY-MM-DD date")
		}
		// The whole end date is included: the bound is the start of the next
		// day, exclusive.
		end := to.AddDate(0, 0, 1)
		f.DateTo = &end
	}

	switch sortBy := store.SortField(values.Get("sortBy")); sortBy {
	case store.SortByCreatedAt, store.SortByUpdatedAt, store.SortByWorkDate:
		f.SortBy = sortBy
	}

	if values.Get("sortOrder") == "asc" {
		f.SortOrder = store.SortAsc
	}

	return f, nil
}
