package notification

import (
	"net/http"

	"sitecheck/controller"
	"sitecheck/model"
	"sitecheck/service"

	"github.com/gin-gonic/gin"
)

func NotificationController(router *gin.Engine, auth gin.HandlerFunc, notifications *service.NotificationService, users *service.UserService) {
	router.GET("/notifications", auth, func(c *gin.Context) {
		ListNotifications(c, notifications, users)
	})
	router.POST("/notifications", auth, func(c *gin.Context) {
		GenerateNotifications(c, notifications, users)
	})
	router.DELETE("/notifications/:notificationId", auth, func(c *gin.Context) {
		DeleteNotification(c, notifications, users)
	})
}

func ListNotifications(c *gin.Context, notifications *service.NotificationService, users *service.UserService) {
	u, found, ok := controller.LookupRequester(c, users)
	if !ok {
		return
	}
	if !found {
		c.JSON(http.StatusOK, []model.Notification{})
		return
	}

	result, err := notifications.List(c.Request.Context(), u.UserID)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	if result == nil {
		result = []model.Notification{}
	}
	c.JSON(http.StatusOK, result)
}

// GenerateNotifications runs the daily reminder generation on demand, the
// same pass the scheduler runs every morning.
func GenerateNotifications(c *gin.Context, notifications *service.NotificationService, users *service.UserService) {
	if _, ok := controller.EnsureRequester(c, users); !ok {
		return
	}

	created, err := notifications.GenerateDailyReminders(c.Request.Context())
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"created": created})
}

func DeleteNotification(c *gin.Context, notifications *service.NotificationService, users *service.UserService) {
	notificationID, ok := controller.PathID(c, "notificationId")
	if !ok {
		return
	}
	u, ok := controller.EnsureRequester(c, users)
	if !ok {
		return
	}

	if err := notifications.Delete(c.Request.Context(), notificationID, u.UserID); err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification deleted successfully"})
}
