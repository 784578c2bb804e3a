package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"sitecheck/model"
	"sitecheck/store"
)

// NotificationService generates daily site reminders and serves the
// notification inbox.
type NotificationService struct {
	store store.Store
	now   func() time.Time
}

func NewNotificationService(st store.Store) *NotificationService {
	return &NotificationService{store: st, now: time.Now}
}

// ReminderItem is one line of a daily reminder payload.
type ReminderItem struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Quantity int    `json:"quantity"`
	Unit     string `json:"unit"`
}

// DailyReminderPayload is the JSON message body of a daily reminder.
type DailyReminderPayload struct {
	SiteName   string         `json:"siteName"`
	TotalItems int            `json:"totalItems"`
	Items      []ReminderItem `json:"items"`
}

// GenerateDailyReminders creates one notification per active, non-template
// checklist whose work date falls on the local calendar day of now. The
// generator does not deduplicate across invocations; invocation policy
// belongs to the caller. Returns the number of notifications created.
func (s *NotificationService) GenerateDailyReminders(ctx context.Context) (int, error) {
	now := s.now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 0, 1)

	checklists, err := s.store.ListChecklistsForReminder(ctx, from, to)
	if err != nil {
		return 0, err
	}

	created := 0
	for _, c := range checklists {
		payload := DailyReminderPayload{
			SiteName:   c.SiteName,
			TotalItems: len(c.Items),
			Items:      make([]ReminderItem, 0, len(c.Items)),
		}
		for _, it := range c.Items {
			payload.Items = append(payload.Items, ReminderItem{
				Name:     it.Name,
				Category: it.Category.Name,
				Quantity: it.Quantity,
				Unit:     it.Unit,
			})
		}
		message, err := json.Marshal(payload)
		if err != nil {
			return created, fmt.Errorf("marshal reminder for checklist %d: %w", c.ChecklistID, err)
		}
		n := model.Notification{
			UserID:      c.UserID,
			ChecklistID: c.ChecklistID,
			Type:        model.NotificationTypeDailyReminder,
			Title:       fmt.Sprintf("Today's checklist: %s", c.SiteName),
			Message:     string(message),
		}
		if err := s.store.CreateNotification(ctx, &n); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

// List returns the requester's notifications, newest first.
func (s *NotificationService) List(ctx context.Context, requesterID int) ([]model.Notification, error) {
	return s.store.ListNotifications(ctx, requesterID, 0)
}

// Delete removes one of the requester's notifications.
func (s *NotificationService) Delete(ctx context.Context, notificationID, requesterID int) error {
	found, err := s.store.DeleteNotification(ctx, notificationID, requesterID)
	if err != nil {
		return err
	}
	if !found {
		return ErrNotFound
	}
	return nil
}
