package service

import (
	"net/url"
	"testing"
	"time"

	"sitecheck/model"
	"sitecheck/store"
)

func TestParseChecklistFilterDefaults(t *testing.T) {
	f, err := ParseChecklistFilter(url.Values{})
	if err != nil {
		t.Fatalf("ParseChecklistFilter() error = %v", err)
	}
	if f.SortBy != store.SortByCreatedAt {
		t.Errorf("SortBy = %v, want %v", f.SortBy, store.SortByCreatedAt)
	}
	if f.SortOrder != store.SortDesc {
		t.Errorf("SortOrder = %v, want %v", f.SortOrder, store.SortDesc)
	}
	if f.IsArchived {
		t.Error("IsArchived = true, want false by default")
	}
	if f.IsTemplate != nil || f.Status != nil || f.DateFrom != nil || f.DateTo != nil {
		t.Error("optional filters should be nil when absent")
	}
}

func TestParseChecklistFilterSortWhitelist(t *testing.T) {
	tests := []struct {
		sortBy string
		want   store.SortField
	}{
		{"createdAt", store.SortByCreatedAt},
		{"updatedAt", store.SortByUpdatedAt},
		{"workDate", store.SortByWorkDate},
		{"lastViewedAt", store.SortByCreatedAt}, // internal field, not accepted from input
		{"user_id; DROP TABLE checklists", store.SortByCreatedAt},
		{"", store.SortByCreatedAt},
	}
	for _, tt := range tests {
		f, err := ParseChecklistFilter(url.Values{"sortBy": {tt.sortBy}})
		if err != nil {
			t.Fatalf("ParseChecklistFilter(sortBy=%q) error = %v", tt.sortBy, err)
		}
		if f.SortBy != tt.want {
			t.Errorf("sortBy=%q: got %v, want %v", tt.sortBy, f.SortBy, tt.want)
		}
	}
}

func TestParseChecklistFilterSortOrder(t *testing.T) {
	for raw, want := range map[string]store.SortOrder{
		"asc":      store.SortAsc,
		"desc":     store.SortDesc,
		"sideways": store.SortDesc,
		"":         store.SortDesc,
	} {
		f, err := ParseChecklistFilter(url.Values{"sortOrder": {raw}})
		if err != nil {
			t.Fatalf("ParseChecklistFilter(sortOrder=%q) error = %v", raw, err)
		}
		if f.SortOrder != want {
			t.Errorf("sortOrder=%q: got %v, want %v", raw, f.SortOrder, want)
		}
	}
}

func TestParseChecklistFilterStatus(t *testing.T) {
	f, err := ParseChecklistFilter(url.Values{"status": {"Pending"}})
	if err != nil {
		t.Fatalf("ParseChecklistFilter() error = %v", err)
	}
	if f.Status == nil || *f.Status != model.StatusPending {
		t.Errorf("Status = %v, want Pending", f.Status)
	}

	if _, err := ParseChecklistFilter(url.Values{"status": {"Done"}}); err == nil {
		t.Error("unknown status accepted, want validation error")
	}
}

func TestParseChecklistFilterDateToIncludesWholeDay(t *testing.T) {
	f, err := ParseChecklistFilter(url.Values{"dateTo": {"2026-03-15"}})
	if err != nil {
		t.Fatalf("ParseChecklistFilter() error = %v", err)
	}
	want := time.Date(2026, 3, 16, 0, 0, 0, 0, time.Local)
	if f.DateTo == nil || !f.DateTo.Equal(want) {
		t.Errorf("DateTo = %v, want %v (start of next day, exclusive)", f.DateTo, want)
	}
}

func TestParseChecklistFilterBadDate(t *testing.T) {
	for _, key := range []string{"dateFrom", "dateTo"} {
		if _, err := ParseChecklistFilter(url.Values{key: {"15/03/2026"}}); err == nil {
			t.Errorf("%s with wrong layout accepted, want validation error", key)
		}
	}
}

func TestParseChecklistFilterTemplateFlag(t *testing.T) {
	f, _ := ParseChecklistFilter(url.Values{"isTemplate": {"true"}})
	if f.IsTemplate == nil || !*f.IsTemplate {
		t.Error("isTemplate=true not applied")
	}
	f, _ = ParseChecklistFilter(url.Values{"isTemplate": {"false"}})
	if f.IsTemplate == nil || *f.IsTemplate {
		t.Error("isTemplate=false not applied")
	}
	f, _ = ParseChecklistFilter(url.Values{"isTemplate": {"maybe"}})
	if f.IsTemplate != nil {
		t.Error("unrecognized isTemplate should leave filter unset")
	}
}
