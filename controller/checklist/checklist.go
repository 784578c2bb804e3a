package checklist

import (
	"net/http"

	"sitecheck/controller"
	"sitecheck/dto"
	"sitecheck/model"
	"sitecheck/service"
	"sitecheck/store"

	"github.com/gin-gonic/gin"
)

func ChecklistController(router *gin.Engine, auth gin.HandlerFunc, checklists *service.ChecklistService, items *service.ItemService, users *service.UserService) {
	router.GET("/checklists", auth, func(c *gin.Context) {
		ListChecklists(c, checklists, users)
	})
	router.POST("/checklists", auth, func(c *gin.Context) {
		CreateChecklist(c, checklists, users)
	})
	router.GET("/checklists/:checklistId", auth, func(c *gin.Context) {
		GetChecklist(c, checklists, users)
	})
	router.PATCH("/checklists/:checklistId", auth, func(c *gin.Context) {
		UpdateChecklist(c, checklists, users)
	})
	router.DELETE("/checklists/:checklistId", auth, func(c *gin.Context) {
		DeleteChecklist(c, checklists, users)
	})
	router.POST("/checklists/:checklistId/archive", auth, func(c *gin.Context) {
		ArchiveChecklist(c, checklists, users)
	})
	router.POST("/checklists/:checklistId/restore", auth, func(c *gin.Context) {
		RestoreChecklist(c, checklists, users)
	})
	router.POST("/checklists/:checklistId/duplicate", auth, func(c *gin.Context) {
		DuplicateChecklist(c, checklists, users)
	})

	router.GET("/checklists/:checklistId/items", auth, func(c *gin.Context) {
		ListItems(c, items, users)
	})
	router.POST("/checklists/:checklistId/items", auth, func(c *gin.Context) {
		CreateItem(c, items, users)
	})
	router.DELETE("/checklists/:checklistId/items", auth, func(c *gin.Context) {
		DeleteItems(c, items, users)
	})
	router.PATCH("/checklists/:checklistId/items", auth, func(c *gin.Context) {
		UpdateItemsStatus(c, items, users)
	})
	router.PATCH("/checklists/:checklistId/items/:itemId", auth, func(c *gin.Context) {
		UpdateItem(c, items, users)
	})
	router.DELETE("/checklists/:checklistId/items/:itemId", auth, func(c *gin.Context) {
		DeleteItem(c, items, users)
	})
	router.PATCH("/checklists/:checklistId/items/:itemId/status", auth, func(c *gin.Context) {
		UpdateItemStatus(c, items, users)
	})
}

func ListChecklists(c *gin.Context, checklists *service.ChecklistService, users *service.UserService) {
	u, found, ok := controller.LookupRequester(c, users)
	if !ok {
		return
	}
	if !found {
		c.JSON(http.StatusOK, []store.ChecklistSummary{})
		return
	}

	filter, err := service.ParseChecklistFilter(c.Request.URL.Query())
	if err != nil {
		controller.RespondError(c, err)
		return
	}

	result, err := checklists.List(c.Request.Context(), u.UserID, filter)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	if result == nil {
		result = []store.ChecklistSummary{}
	}
	c.JSON(http.StatusOK, result)
}

func CreateChecklist(c *gin.Context, checklists *service.ChecklistService, users *service.UserService) {
	var req dto.CreateChecklistRequest
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

	created, err := checklists.Create(c.Request.Context(), service.ChecklistInput{
		Name:        req.Name,
		Description: req.Description,
		SiteName:    req.SiteName,
		WorkDate:    req.WorkDate,
		IsTemplate:  req.IsTemplate,
		Status:      status,
	}, u.UserID)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func GetChecklist(c *gin.Context, checklists *service.ChecklistService, users *service.UserService) {
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

	checklist, err := checklists.Get(c.Request.Context(), checklistID, u.UserID)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, checklist)
}

func UpdateChecklist(c *gin.Context, checklists *service.ChecklistService, users *service.UserService) {
	checklistID, ok := controller.PathID(c, "checklistId")
	if !ok {
		return
	}
	var req dto.UpdateChecklistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	u, ok := controller.EnsureRequester(c, users)
	if !ok {
		return
	}

	updated, err := checklists.Update(c.Request.Context(), checklistID, u.UserID, service.ChecklistUpdate{
		Name:        req.Name,
		Description: req.Description,
		SiteName:    req.SiteName,
		WorkDate:    req.WorkDate,
		IsTemplate:  req.IsTemplate,
	})
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func DeleteChecklist(c *gin.Context, checklists *service.ChecklistService, users *service.UserService) {
	checklistID, ok := controller.PathID(c, "checklistId")
	if !ok {
		return
	}
	u, ok := controller.EnsureRequester(c, users)
	if !ok {
		return
	}

	if err := checklists.Delete(c.Request.Context(), checklistID, u.UserID); err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Checklist deleted successfully"})
}

func parseOptionalStatus(raw string) (model.Status, error) {
	if raw == "" {
		return "", nil
	}
	status, err := model.ParseStatus(raw)
	if err != nil {
		return "", service.Invalid("status", "must be NotStarted, Pending or Completed")
	}
	return status, nil
}
