package dto

type CategoryRequest struct {
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	DisplayOrder int    `json:"displayOrder"`
}

type CategoryOrderEntry struct {
	CategoryID   int `json:"categoryId" binding:"required"`
	DisplayOrder int `json:"displayOrder"`
}

type ReorderCategoriesRequest struct {
	Orders []CategoryOrderEntry `json:"orders" binding:"required"`
}
