package checklist

import (
	"net/http"

	"sitecheck/controller"
	"sitecheck/dto"
	"sitecheck/model"
	"sitecheck/service"

	"github.com/gin-gonic/gin"
)

func ListItems(c *gin.Context, items *service.ItemService, users *service.UserService) {
	checklistID, ok := controller.PathID(c, "checklistId")
	if !ok {
		return
	}
	u, found, ok := controller.LookupRequester(c, users)
	if !ok {
		return
	}
	if !found {
		controller.RespondError(c, service.ErrNotFound)
		return
	}

	result, err := items.ListItems(c.Request.Context(), checklistID, u.UserID)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	if result == nil {
		result = []model.Item{}
	}
	c.JSON(http.StatusOK, result)
}

func CreateItem(c *gin.Context, items *service.ItemService, users *service.UserService) {
	checklistID, ok := controller.PathID(c, "checklistId")
	if !ok {
		return
	}
	var req dto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	status, err := parseOptionalStatus(req.Status)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	u, ok := controller.EnsureRequester(c, users)
	if !ok {
		return
	}

	created, err := items.CreateItem(c.Request.Context(), checklistID, service.ItemInput{
		Name:        req.Name,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		Quantity:    req.Quantity,
		Unit:        req.Unit,
		Memo:        req.Memo,
		Status:      status,
	}, u.UserID)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func DeleteItems(c *gin.Context, items *service.ItemService, users *service.UserService) {
	checklistID, ok := controller.PathID(c, "checklistId")
	if !ok {
		return
	}
	u, ok := controller.EnsureRequester(c, users)
	if !ok {
		return
	}

	if err := items.DeleteItems(c.Request.Context(), checklistID, u.UserID); err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Items deleted successfully"})
}

// UpdateItem applies a partial edit to one item. A status change settles the
// checklist aggregate like the status endpoints do.
func UpdateItem(c *gin.Context, items *service.ItemService, users *service.UserService) {
	checklistID, ok := controller.PathID(c, "checklistId")
	if !ok {
		return
	}
	itemID, ok := controller.PathID(c, "itemId")
	if !ok {
		return
	}
	var req dto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	update := service.ItemUpdate{
		Name:        req.Name,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		Quantity:    req.Quantity,
		Unit:        req.Unit,
		Memo:        req.Memo,
	}
	if req.Status != nil {
		status, err := model.ParseStatus(*req.Status)
		if err != nil {
			controller.RespondError(c, service.Invalid("status", "must be NotStarted, Pending or Completed"))
			return
		}
		update.Status = &status
	}
	u, ok := controller.EnsureRequester(c, users)
	if !ok {
		return
	}

	updated, err := items.UpdateItem(c.Request.Context(), checklistID, itemID, update, u.UserID)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func DeleteItem(c *gin.Context, items *service.ItemService, users *service.UserService) {
	checklistID, ok := controller.PathID(c, "checklistId")
	if !ok {
		return
	}
	itemID, ok := controller.PathID(c, "itemId")
	if !ok {
		return
	}
	u, ok := controller.EnsureRequester(c, users)
	if !ok {
		return
	}

	if err := items.DeleteItem(c.Request.Context(), checklistID, itemID, u.UserID); err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item deleted successfully"})
}

// UpdateItemStatus moves one item to a new status. The response carries the
// updated item together with the settled checklist so clients never render
// the two out of sync.
func UpdateItemStatus(c *gin.Context, items *service.ItemService, users *service.UserService) {
	checklistID, ok := controller.PathID(c, "checklistId")
	if !ok {
		return
	}
	itemID, ok := controller.PathID(c, "itemId")
	if !ok {
		return
	}
	var req dto.UpdateItemStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	status, err := model.ParseStatus(req.Status)
	if err != nil {
		controller.RespondError(c, service.Invalid("status", "must be NotStarted, Pending or Completed"))
		return
	}
	u, ok := controller.EnsureRequester(c, users)
	if !ok {
		return
	}

	result, err := items.UpdateItemStatus(c.Request.Context(), checklistID, itemID, status, u.UserID)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// UpdateItemsStatus moves a batch of items to one status in a single commit.
func UpdateItemsStatus(c *gin.Context, items *service.ItemService, users *service.UserService) {
	checklistID, ok := controller.PathID(c, "checklistId")
	if !ok {
		return
	}
	var req dto.UpdateItemsStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	status, err := model.ParseStatus(req.Status)
	if err != nil {
		controller.RespondError(c, service.Invalid("status", "must be NotStarted, Pending or Completed"))
		return
	}
	u, ok := controller.EnsureRequester(c, users)
	if !ok {
		return
	}

	result, err := items.UpdateItemStatuses(c.Request.Context(), checklistID, req.ItemIDs, status, u.UserID)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
