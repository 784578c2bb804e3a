package service

import (
	"context"
	"testing"
	"time"

	"sitecheck/model"
	"sitecheck/store"
)

func TestDashboardBuild(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	owner := seedUser(t, st, "uid-1")
	cat := seedCategory(t, st, "Concrete")

	now := time.Date(2026, 8, 30, 9, 0, 0, 0, time.Local)

	add := func(workDate time.Time, lastViewed *time.Time, statuses ...model.Status) model.Checklist {
		c := model.Checklist{UserID: owner.UserID, Name: "Pour", SiteName: "North Tower", WorkDate: workDate}
		if err := st.CreateChecklist(ctx, &c); err != nil {
			t.Fatalf("CreateChecklist() error = %v", err)
		}
		for _, s := range statuses {
			it := model.Item{ChecklistID: c.ChecklistID, CategoryID: cat.CategoryID, UserID: owner.UserID, Name: "Item", Status: s}
			if err := st.CreateItem(ctx, &it); err != nil {
				t.Fatalf("CreateItem() error = %v", err)
			}
		}
		if lastViewed != nil {
			if err := st.TouchChecklistViewed(ctx, c.ChecklistID, *lastViewed); err != nil {
				t.Fatalf("TouchChecklistViewed() error = %v", err)
			}
		}
		return c
	}

	recently := now.Add(-3 * time.Hour)
	longAgo := now.Add(-72 * time.Hour)

	todayA := add(now.Add(time.Hour), nil, model.StatusCompleted, model.StatusNotStarted)
	todayB := add(now.Add(2*time.Hour), nil, model.StatusCompleted)
	add(now.AddDate(0, 0, 1), nil, model.StatusNotStarted) // tomorrow
	viewed := add(now.AddDate(0, 0, -2), &recently)
	add(now.AddDate(0, 0, -2), &longAgo) // outside the 48h window

	n := model.Notification{UserID: owner.UserID, ChecklistID: todayA.ChecklistID, Type: model.NotificationTypeDailyReminder, Title: "t", Message: "{}"}
	if err := st.CreateNotification(ctx, &n); err != nil {
		t.Fatalf("CreateNotification() error = %v", err)
	}

	svc := NewDashboardService(st)
	svc.now = func() time.Time { return now }

	d, err := svc.Build(ctx, owner.UserID)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if len(d.TodayChecklists) != 2 {
		t.Fatalf("today checklists = %d, want 2", len(d.TodayChecklists))
	}
	if d.TodayChecklists[0].ChecklistID != todayA.ChecklistID || d.TodayChecklists[1].ChecklistID != todayB.ChecklistID {
		t.Errorf("today checklists out of work-date order: %d, %d",
			d.TodayChecklists[0].ChecklistID, d.TodayChecklists[1].ChecklistID)
	}

	if len(d.RecentChecklists) != 1 || d.RecentChecklists[0].ChecklistID != viewed.ChecklistID {
		t.Errorf("recent checklists = %+v, want only the one viewed within 48h", d.RecentChecklists)
	}

	if len(d.Notifications) != 1 {
		t.Errorf("notifications = %d, want 1", len(d.Notifications))
	}

	want := DashboardStats{TodayCount: 2, TotalTaskCount: 3, CompletedTaskCount: 2}
	if d.Stats != want {
		t.Errorf("stats = %+v, want %+v", d.Stats, want)
	}
}

func TestDashboardEmpty(t *testing.T) {
	st := store.NewMemoryStore()
	owner := seedUser(t, st, "uid-1")

	d, err := NewDashboardService(st).Build(context.Background(), owner.UserID)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if d.Stats.TodayCount != 0 || len(d.TodayChecklists) != 0 || len(d.RecentChecklists) != 0 {
		t.Errorf("dashboard not empty: %+v", d)
	}
}
