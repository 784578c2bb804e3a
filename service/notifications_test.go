package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"sitecheck/model"
	"sitecheck/store"
)

func TestGenerateDailyReminders(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	owner := seedUser(t, st, "uid-1")
	cat := seedCategory(t, st, "Concrete")

	now := time.Date(2026, 8, 30, 9, 0, 0, 0, time.Local)

	addChecklist := func(workDate time.Time, isTemplate bool, archived bool) model.Checklist {
		c := model.Checklist{
			UserID:     owner.UserID,
			Name:       "Pour",
			SiteName:   "North Tower",
			WorkDate:   workDate,
			IsTemplate: isTemplate,
		}
		if archived {
			at := now
			c.ArchivedAt = &at
		}
		if err := st.CreateChecklist(ctx, &c); err != nil {
			t.Fatalf("CreateChecklist() error = %v", err)
		}
		return c
	}

	today := addChecklist(now.Add(2*time.Hour), false, false)
	addChecklist(now.AddDate(0, 0, 1), false, false) // tomorrow
	addChecklist(now.AddDate(0, 0, -1), false, false) // yesterday
	addChecklist(now.Add(time.Hour), true, false)     // template
	addChecklist(now.Add(time.Hour), false, true)     // archived

	it := model.Item{
		ChecklistID: today.ChecklistID,
		CategoryID:  cat.CategoryID,
		UserID:      owner.UserID,
		Name:        "Cement bags",
		Quantity:    40,
		Unit:        "bag",
	}
	if err := st.CreateItem(ctx, &it); err != nil {
		t.Fatalf("CreateItem() error = %v", err)
	}

	svc := NewNotificationService(st)
	svc.now = func() time.Time { return now }

	created, err := svc.GenerateDailyReminders(ctx)
	if err != nil {
		t.Fatalf("GenerateDailyReminders() error = %v", err)
	}
	if created != 1 {
		t.Fatalf("created = %d, want 1 (today's active non-template checklist only)", created)
	}

	ns, err := svc.List(ctx, owner.UserID)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(ns) != 1 {
		t.Fatalf("notifications = %d, want 1", len(ns))
	}
	n := ns[0]
	if n.Type != model.NotificationTypeDailyReminder {
		t.Errorf("Type = %q, want %q", n.Type, model.NotificationTypeDailyReminder)
	}
	if n.Title != "Today's checklist: North Tower" {
		t.Errorf("Title = %q", n.Title)
	}
	if n.ChecklistID != today.ChecklistID {
		t.Errorf("ChecklistID = %d, want %d", n.ChecklistID, today.ChecklistID)
	}

	var payload DailyReminderPayload
	if err := json.Unmarshal([]byte(n.Message), &payload); err != nil {
		t.Fatalf("message is not valid JSON: %v", err)
	}
	if payload.SiteName != "North Tower" || payload.TotalItems != 1 {
		t.Errorf("payload = %+v", payload)
	}
	if len(payload.Items) != 1 || payload.Items[0].Name != "Cement bags" ||
		payload.Items[0].Category != "Concrete" || payload.Items[0].Quantity != 40 ||
		payload.Items[0].Unit != "bag" {
		t.Errorf("payload items = %+v", payload.Items)
	}
}

func TestGenerateDailyRemindersNoDedup(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	owner := seedUser(t, st, "uid-1")
	now := time.Date(2026, 8, 30, 9, 0, 0, 0, time.Local)
	c := model.Checklist{UserID: owner.UserID, Name: "Pour", SiteName: "North Tower", WorkDate: now}
	if err := st.CreateChecklist(ctx, &c); err != nil {
		t.Fatalf("CreateChecklist() error = %v", err)
	}

	svc := NewNotificationService(st)
	svc.now = func() time.Time { return now }

	for i := 0; i < 2; i++ {
		if _, err := svc.GenerateDailyReminders(ctx); err != nil {
			t.Fatalf("GenerateDailyReminders() error = %v", err)
		}
	}
	ns, _ := svc.List(ctx, owner.UserID)
	if len(ns) != 2 {
		t.Errorf("notifications = %d, want 2; each run creates its own reminders", len(ns))
	}
}

func TestDeleteNotification(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	owner := seedUser(t, st, "uid-1")
	other := seedUser(t, st, "uid-2")

	n := model.Notification{UserID: owner.UserID, ChecklistID: 1, Type: model.NotificationTypeDailyReminder, Title: "t", Message: "{}"}
	if err := st.CreateNotification(ctx, &n); err != nil {
		t.Fatalf("CreateNotification() error = %v", err)
	}

	svc := NewNotificationService(st)
	if err := svc.Delete(ctx, n.NotificationID, other.UserID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("foreign delete error = %v, want ErrNotFound", err)
	}
	if err := svc.Delete(ctx, n.NotificationID, owner.UserID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := svc.Delete(ctx, n.NotificationID, owner.UserID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete error = %v, want ErrNotFound", err)
	}
}
