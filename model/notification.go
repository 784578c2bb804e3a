package model

import "time"

const NotificationTypeDailyReminder = "daily_reminder"

// Notification is created by the daily reminder generator and read-only
// afterward except for deletion.
type Notification struct {
	NotificationID int       `gorm:"column:notification_id;primaryKey;autoIncrement" json:"id"`
	UserID         int       `gorm:"column:user_id;not null;index" json:"userId"`
	ChecklistID    int       `gorm:"column:checklist_id;not null" json:"checklistId"`
	Type           string    `gorm:"column:type;type:varchar(64);not null" json:"type"`
	Title          string    `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Message        string    `gorm:"column:message;type:text;not null" json:"message"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`

	// Relations
	User      User      `gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE" json:"-"`
	Checklist Checklist `gorm:"foreignKey:ChecklistID;references:ChecklistID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE" json:"-"`
}

func (Notification) TableName() string {
	return "notification"
}
