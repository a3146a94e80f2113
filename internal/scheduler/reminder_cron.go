package scheduler

import (
	"context"

	"github.com/Malcolmdebono/Bucket-list-application/internal/jobs"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// StartReminderCron schedules the daily deadline scan.
func StartReminderCron(reminder *jobs.DeadlineReminder) *cron.Cron {
	c := cron.New()

	// Every day at 08:00
	c.AddFunc("0 8 * * *", func() {
		if err := reminder.RunDailyScan(context.Background()); err != nil {
			logrus.WithError(err).Error("Deadline reminder scan failed")
		}
	})

	c.Start()
	return c
}
