package jobs

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Malcolmdebono/Bucket-list-application/internal/models"
	"github.com/Malcolmdebono/Bucket-list-application/internal/services"
	"github.com/Malcolmdebono/Bucket-list-application/pkg/email"
	"github.com/sirupsen/logrus"
)

// DeadlineReminder scans bucket lists for pending points whose deadline
// falls within the next 24 hours and sends one summary email.
type DeadlineReminder struct {
	Service   *services.BucketListService
	Recipient string
}

// DuePoint is a pending point together with the list it belongs to.
type DuePoint struct {
	ListTitle string
	Point     models.BucketListPoint
}

// NewDeadlineReminder creates a new instance of DeadlineReminder.
func NewDeadlineReminder(service *services.BucketListService, recipient string) *DeadlineReminder {
	return &DeadlineReminder{Service: service, Recipient: recipient}
}

// CollectDueSoon returns the pending points due within 24 hours of now.
func CollectDueSoon(views []models.BucketListView, now time.Time) []DuePoint {
	deadline := now.Add(24 * time.Hour)
	var due []DuePoint
	for _, view := range views {
		for _, point := range view.Points {
			if point.Status == models.StatusPending && point.Deadline.After(now) && point.Deadline.Before(deadline) {
				due = append(due, DuePoint{ListTitle: view.Title, Point: point})
			}
		}
	}
	return due
}

// RunDailyScan collects due-soon points and mails the reminder. A missing
// recipient turns the job into a no-op.
func (d *DeadlineReminder) RunDailyScan(ctx context.Context) error {
	if d.Recipient == "" {
		return nil
	}

	views, err := d.Service.ListBucketItems(ctx, "")
	if err != nil {
		return fmt.Errorf("failed to fetch bucket lists: %v", err)
	}

	due := CollectDueSoon(views, time.Now())
	if len(due) == 0 {
		logrus.Info("Deadline scan completed: nothing due soon")
		return nil
	}

	lines := make([]string, len(due))
	for i, p := range due {
		lines[i] = fmt.Sprintf("- %q in %q is due by %s",
			p.Point.PointName, p.ListTitle, p.Point.Deadline.Format("Jan 2 15:04"))
	}

	body := "Bucket list points due in the next 24 hours:\n\n" + strings.Join(lines, "\n") + "\n"
	if err := email.SendEmail(d.Recipient, "Bucket list deadlines", body); err != nil {
		return fmt.Errorf("failed to send reminder email: %v", err)
	}

	logrus.WithField("due_points", len(due)).Info("Deadline scan completed: reminder sent")
	return nil
}
