package model

import "time"

type User struct {
	UserID    int       `gorm:"column:user_id;primaryKey;autoIncrement" json:"id"`
	AuthUID   string    `gorm:"column:auth_uid;type:varchar(255);uniqueIndex;not null" json:"authUid"`
	Name      string    `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Role      string    `gorm:"column:role;type:varchar(32);default:'user';not null" json:"role"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (User) TableName() string {
	return "users"
}
