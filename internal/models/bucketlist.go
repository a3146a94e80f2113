package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Point status values persisted in the BucketListPoints collection.
const (
	StatusDone    = "Done"
	StatusPending = "Pending"
)

// Progress colors derived from point completion. Not persisted.
const (
	ProgressComplete   = "green"
	ProgressInProgress = "orange"
	ProgressNone       = "red"
)

// BucketList is a user-owned checklist referencing its points by id.
type BucketList struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"_id"`
	UserID    string               `bson:"user_id" json:"user_id"`
	Title     string               `bson:"title" json:"title"`
	PointIDs  []primitive.ObjectID `bson:"bucketlistpoints" json:"bucketlistpoints"`
	CreatedAt time.Time            `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time            `bson:"updated_at" json:"updated_at"`
}

// BucketListPoint is a single goal inside a bucket list. It has no
// lifecycle of its own: points are replaced wholesale when the owning
// list is updated.
type BucketListPoint struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	PointName string             `bson:"pointname" json:"pointname"`
	Status    string             `bson:"status" json:"status"`
	Deadline  time.Time          `bson:"deadline" json:"deadline"`
}

// BucketListView is the joined shape served to clients: the list with its
// points flattened in via $lookup.
type BucketListView struct {
	ID     primitive.ObjectID `bson:"_id" json:"_id"`
	UserID string             `bson:"user_id" json:"user_id"`
	Title  string             `bson:"title" json:"title"`
	Points []BucketListPoint  `bson:"points" json:"points"`
}

// PointInput is the wire shape accepted on create/update.
type PointInput struct {
	PointName string `json:"pointName"`
	Status    bool   `json:"status"`
	Deadline  string `json:"deadline"`
}

// PointStatus maps the boolean wire status to the persisted enum.
func PointStatus(done bool) string {
	if done {
		return StatusDone
	}
	return StatusPending
}

// DoneCount returns how many points of the view are completed.
func (v BucketListView) DoneCount() int {
	count := 0
	for _, p := range v.Points {
		if p.Status == StatusDone {
			count++
		}
	}
	return count
}

// ProgressColor derives the display state: green when every point is done,
// orange when some are, red when none are.
func (v BucketListView) ProgressColor() string {
	done := v.DoneCount()
	switch {
	case len(v.Points) > 0 && done == len(v.Points):
		return ProgressComplete
	case done > 0:
		return ProgressInProgress
	default:
		return ProgressNone
	}
}
