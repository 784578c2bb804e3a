package dto

import "time"

type CreateChecklistRequest struct {
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description"`
	SiteName    string    `json:"siteName" binding:"required"`
	WorkDate    time.Time `json:"workDate" binding:"required"`
	IsTemplate  bool      `json:"isTemplate"`
	Status      string    `json:"status"`
}

// UpdateChecklistRequest carries partial updates; nil fields are untouched.
type UpdateChecklistRequest struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	SiteName    *string    `json:"siteName"`
	WorkDate    *time.Time `json:"workDate"`
	IsTemplate  *bool      `json:"isTemplate"`
}
