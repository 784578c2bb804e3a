package connection

import (
	"log"
	"log/slog"
	"os"

	"sitecheck/config"
	"sitecheck/controller/category"
	"sitecheck/controller/checklist"
	"sitecheck/controller/dashboard"
	"sitecheck/controller/notification"
	"sitecheck/middleware"
	"sitecheck/scheduler"
	"sitecheck/service"
	"sitecheck/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func StartServer() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	st, err := store.NewGormStore(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	users := service.NewUserService(st)
	checklists := service.NewChecklistService(st)
	items := service.NewItemService(st)
	categories := service.NewCategoryService(st)
	notifications := service.NewNotificationService(st)
	dashboards := service.NewDashboardService(st)

	router := gin.Default()
	router.Use(cors.Default())
	router.Use(middleware.RequestIDMiddleware())

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Api is running!"})
	})

	auth := middleware.AccessTokenMiddleware(cfg.AuthJWTSecret)

	checklist.ChecklistController(router, auth, checklists, items, users)
	category.CategoryController(router, auth, categories, users)
	notification.NotificationController(router, auth, notifications, users)
	dashboard.DashboardController(router, auth, dashboards, users)

	if _, err := scheduler.StartScheduler(notifications, cfg.ReminderCron); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}

	router.Run(":" + cfg.Port)
}
