package model

import "time"

// Checklist status is derived from the item set but stored redundantly so
// list queries can filter on it without loading items.
type Checklist struct {
	ChecklistID  int        `gorm:"column:checklist_id;primaryKey;autoIncrement" json:"id"`
	UserID       int        `gorm:"column:user_id;not null;index" json:"userId"`
	Name         string     `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Description  string     `gorm:"column:description;type:text" json:"description"`
	SiteName     string     `gorm:"column:site_name;type:varchar(255);not null" json:"siteName"`
	WorkDate     time.Time  `gorm:"column:work_date;not null;index" json:"workDate"`
	IsTemplate   bool       `gorm:"column:is_template;default:false;not null" json:"isTemplate"`
	Status       Status     `gorm:"column:status;type:varchar(16);default:'NotStarted';not null" json:"status"`
	ArchivedAt   *time.Time `gorm:"column:archived_at" json:"archivedAt"`
	LastViewedAt *time.Time `gorm:"column:last_viewed_at" json:"lastViewedAt"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`

	// Relations
	User  User   `gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE" json:"-"`
	Items []Item `gorm:"foreignKey:ChecklistID;references:ChecklistID" json:"items,omitempty"`
}

func (Checklist) TableName() string {
	return "checklists"
}
