package model

import "time"

// Category is a reusable classification label for items. Never owned by a
// checklist and never mutated by status logic.
type Category struct {
	CategoryID   int       `gorm:"column:category_id;primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"column:name;type:varchar(255);uniqueIndex;not null" json:"name"`
	Description  string    `gorm:"column:description;type:text" json:"description"`
	DisplayOrder int       `gorm:"column:display_order;default:0;not null" json:"displayOrder"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (Category) TableName() string {
	return "categories"
}
