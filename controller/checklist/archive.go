package checklist

import (
	"net/http"

	"sitecheck/controller"
	"sitecheck/service"

	"github.com/gin-gonic/gin"
)

func ArchiveChecklist(c *gin.Context, checklists *service.ChecklistService, users *service.UserService) {
	checklistID, ok := controller.PathID(c, "checklistId")
	if !ok {
		return
	}
	u, ok := controller.EnsureRequester(c, users)
	if !ok {
		return
	}

	archived, err := checklists.Archive(c.Request.Context(), checklistID, u.UserID)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, archived)
}

func RestoreChecklist(c *gin.Context, checklists *service.ChecklistService, users *service.UserService) {
	checklistID, ok := controller.PathID(c, "checklistId")
	if !ok {
		return
	}
	u, ok := controller.EnsureRequester(c, users)
	if !ok {
		return
	}

	restored, err := checklists.Restore(c.Request.Context(), checklistID, u.UserID)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, restored)
}

// DuplicateChecklist copies a checklist and its items into a fresh template.
func DuplicateChecklist(c *gin.Context, checklists *service.ChecklistService, users *service.UserService) {
	checklistID, ok := controller.PathID(c, "checklistId")
	if !ok {
		return
	}
	u, ok := controller.EnsureRequester(c, users)
	if !ok {
		return
	}

	copied, err := checklists.Duplicate(c.Request.Context(), checklistID, u.UserID)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, copied)
}
