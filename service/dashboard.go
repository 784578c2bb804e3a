package service

import (
	"context"
	"time"

	"sitecheck/model"
	"sitecheck/store"
)

// DashboardService assembles the landing-page view: today's sites, recently
// viewed checklists and the latest notifications.
type DashboardService struct {
	store store.Store
	now   func() time.Time
}

func NewDashboardService(st store.Store) *DashboardService {
	return &DashboardService{store: st, now: time.Now}
}

// DashboardStats aggregates today's item counts across checklists.
type DashboardStats struct {
	TodayCount         int `json:"todayCount"`
	TotalTaskCount     int `json:"totalTaskCount"`
	CompletedTaskCount int `json:"completedTaskCount"`
}

// Dashboard is the landing-page payload.
type Dashboard struct {
	TodayChecklists  []store.ChecklistSummary `json:"todayChecklists"`
	RecentChecklists []store.ChecklistSummary `json:"recentChecklists"`
	Notifications    []model.Notification     `json:"notifications"`
	Stats            DashboardStats           `json:"stats"`
}

const (
	dashboardListLimit         = 5
	dashboardNotificationLimit = 3
	recentViewWindow           = 48 * time.Hour
)

// Build returns the requester's dashboard for the current local day.
func (s *DashboardService) Build(ctx context.Context, requesterID int) (Dashboard, error) {
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	tomorrow := today.AddDate(0, 0, 1)

	todayLists, err := s.store.ListChecklists(ctx, store.ChecklistFilter{
		OwnerID:   requesterID,
		DateFrom:  &today,
		DateTo:    &tomorrow,
		SortBy:    store.SortByWorkDate,
		SortOrder: store.SortAsc,
		Limit:     dashboardListLimit,
	})
	if err != nil {
		return Dashboard{}, err
	}

	viewedSince := now.Add(-recentViewWindow)
	recent, err := s.store.ListChecklists(ctx, store.ChecklistFilter{
		OwnerID:     requesterID,
		ViewedSince: &viewedSince,
		SortBy:      store.SortByLastViewed,
		SortOrder:   store.SortDesc,
		Limit:       dashboardListLimit,
	})
	if err != nil {
		return Dashboard{}, err
	}

	notifications, err := s.store.ListNotifications(ctx, requesterID, dashboardNotificationLimit)
	if err != nil {
		return Dashboard{}, err
	}

	stats := DashboardStats{TodayCount: len(todayLists)}
	for _, c := range todayLists {
		stats.TotalTaskCount += c.TotalItems
		stats.CompletedTaskCount += c.CompletedItems
	}

	return Dashboard{
		TodayChecklists:  todayLists,
		RecentChecklists: recent,
		Notifications:    notifications,
		Stats:            stats,
	}, nil
}
