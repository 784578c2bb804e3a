// scheduler/scheduler.go
package scheduler

import (
	"context"
	"log/slog"

	"sitecheck/service"

	"github.com/robfig/cron/v3"
)

// StartScheduler registers the daily reminder job and starts the cron
// runner. The returned cron keeps running for the life of the process.
func StartScheduler(notifications *service.NotificationService, cronSpec string) (*cron.Cron, error) {
	c := cron.New(cron.WithSeconds())

	_, err := c.AddFunc(cronSpec, func() {
		slog.Info("running daily reminder job")
		created, err := notifications.GenerateDailyReminders(context.Background())
		if err != nil {
			slog.Error("daily reminder job failed", "error", err)
			return
		}
		slog.Info("daily reminder job finished", "created", created)
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	slog.Info("scheduler started", "spec", cronSpec)
	return c, nil
}
