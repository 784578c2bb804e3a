package model

import "time"

// Item belongs to exactly one checklist and one category. CompletedAt is
// non-nil if and only if Status is Completed.
type Item struct {
	ItemID      int        `gorm:"column:item_id;primaryKey;autoIncrement" json:"id"`
	ChecklistID int        `gorm:"column:checklist_id;not null;index" json:"checklistId"`
	CategoryID  int        `gorm:"column:category_id;not null" json:"categoryId"`
	UserID      int        `gorm:"column:user_id;not null" json:"userId"`
	Name        string     `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Description string     `gorm:"column:description;type:text" json:"description"`
	Quantity    int        `gorm:"column:quantity;default:1;not null" json:"quantity"`
	Unit        string     `gorm:"column:unit;type:varchar(32)" json:"unit"`
	Memo        string     `gorm:"column:memo;type:text" json:"memo"`
	Status      Status     `gorm:"column:status;type:varchar(16);default:'NotStarted';not null" json:"status"`
	CompletedAt *time.Time `gorm:"column:completed_at" json:"completedAt"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`

	// Relations
	Checklist Checklist `gorm:"foreignKey:ChecklistID;references:ChecklistID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE" json:"-"`
	Category  Category  `gorm:"foreignKey:CategoryID;references:CategoryID;constraint:OnUpdate:CASCADE" json:"category"`
}

func (Item) TableName() string {
	return "items"
}
