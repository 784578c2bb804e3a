package dto

type CreateItemRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	CategoryID  int    `json:"categoryId" binding:"required"`
	Quantity    int    `json:"quantity"`
	Unit        string `json:"unit"`
	Memo        string `json:"memo"`
	Status      string `json:"status"`
}

// UpdateItemRequest carries partial item updates; nil fields are untouched.
type UpdateItemRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	CategoryID  *int    `json:"categoryId"`
	Quantity    *int    `json:"quantity"`
	Unit        *string `json:"unit"`
	Memo        *string `json:"memo"`
	Status      *string `json:"status"`
}

type UpdateItemStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateItemsStatusRequest moves a batch of items to one status. An empty
// itemIds list is accepted and leaves the items untouched.
type UpdateItemsStatusRequest struct {
	ItemIDs []int  `json:"itemIds"`
	Status  string `json:"status" binding:"required"`
}
