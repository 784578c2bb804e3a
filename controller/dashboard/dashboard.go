package dashboard

import (
	"net/http"

	"sitecheck/controller"
	"sitecheck/service"

	"github.com/gin-gonic/gin"
)

func DashboardController(router *gin.Engine, auth gin.HandlerFunc, dashboards *service.DashboardService, users *service.UserService) {
	router.GET("/dashboard", auth, func(c *gin.Context) {
		GetDashboard(c, dashboards, users)
	})
}

// GetDashboard returns today's checklists, recently viewed checklists, the
// latest notifications and today's item counts for the requester.
func GetDashboard(c *gin.Context, dashboards *service.DashboardService, users *service.UserService) {
	u, found, ok := controller.LookupRequester(c, users)
	if !ok {
		return
	}
	if !found {
		controller.RespondError(c, service.ErrNotFound)
		return
	}

	result, err := dashboards.Build(c.Request.Context(), u.UserID)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
