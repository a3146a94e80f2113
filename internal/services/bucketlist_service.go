package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Malcolmdebono/Bucket-list-application/internal/models"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// BucketListStore is the storage surface the service needs.
type BucketListStore interface {
	ListViews(ctx context.Context, userID string) ([]models.BucketListView, error)
	GetViewByID(ctx context.Context, id primitive.ObjectID) (*models.BucketListView, error)
	InsertPoints(ctx context.Context, points []models.BucketListPoint) ([]primitive.ObjectID, error)
	CreateBucketList(ctx context.Context, list *models.BucketList) (primitive.ObjectID, error)
	ReplacePoints(ctx context.Context, id primitive.ObjectID, title string, points []models.BucketListPoint) error
}

// CreateBucketItemInput is the request shape for creating a bucket list.
type CreateBucketItemInput struct {
	UserID string              `json:"user_id"`
	Title  string              `json:"title"`
	Points []models.PointInput `json:"points"`
}

// UpdateBucketItemInput is the request shape for replacing a bucket list's
// title and point set.
type UpdateBucketItemInput struct {
	Title  string              `json:"title"`
	Points []models.PointInput `json:"points"`
}

// BucketListService encapsulates the bucket list business logic.
type BucketListService struct {
	store BucketListStore
}

// NewBucketListService creates a new instance of BucketListService.
func NewBucketListService(store BucketListStore) *BucketListService {
	return &BucketListService{store: store}
}

// ListBucketItems returns the joined views, optionally for one user.
func (s *BucketListService) ListBucketItems(ctx context.Context, userID string) ([]models.BucketListView, error) {
	views, err := s.store.ListViews(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bucket lists: %v", err)
	}
	return views, nil
}

// CreateBucketItem validates the input, persists the points, then the
// parent referencing them, and returns the freshly joined view.
func (s *BucketListService) CreateBucketItem(ctx context.Context, input CreateBucketItemInput) (*models.BucketListView, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if input.UserID == "" {
		return nil, fmt.Errorf("%w: user_id is required", ErrInvalidInput)
	}
	if len(input.Points) == 0 {
		return nil, fmt.Errorf("%w: at least one point is required", ErrInvalidInput)
	}

	points, err := buildPoints(input.Points)
	if err != nil {
		return nil, err
	}

	pointIDs, err := s.store.InsertPoints(ctx, points)
	if err != nil {
		return nil, fmt.Errorf("failed to create bucket list points: %v", err)
	}

	list := &models.BucketList{
		UserID:   input.UserID,
		Title:    input.Title,
		PointIDs: pointIDs,
	}
	listID, err := s.store.CreateBucketList(ctx, list)
	if err != nil {
		return nil, fmt.Errorf("failed to create bucket list: %v", err)
	}

	view, err := s.store.GetViewByID(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("failed to read back bucket list: %v", err)
	}

	logrus.WithFields(logrus.Fields{
		"bucketlist_id": listID.Hex(),
		"user_id":       input.UserID,
		"points":        len(points),
	}).Info("Bucket list created")
	return view, nil
}

// UpdateBucketItem replaces the point set and title wholesale and returns
// the joined view. The replacement is transactional in the store.
func (s *BucketListService) UpdateBucketItem(ctx context.Context, id string, input UpdateBucketItemInput) (*models.BucketListView, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		logrus.WithField("bucketlist_id", id).Warn("Invalid bucket list ID")
		return nil, ErrNotFound
	}

	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if len(input.Points) == 0 {
		return nil, fmt.Errorf("%w: at least one point is required", ErrInvalidInput)
	}

	points, err := buildPoints(input.Points)
	if err != nil {
		return nil, err
	}

	if err := s.store.ReplacePoints(ctx, objID, input.Title, points); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update bucket list: %v", err)
	}

	view, err := s.store.GetViewByID(ctx, objID)
	if err != nil {
		return nil, fmt.Errorf("failed to read back bucket list: %v", err)
	}

	logrus.WithFields(logrus.Fields{
		"bucketlist_id": id,
		"points":        len(points),
	}).Info("Bucket list updated")
	return view, nil
}

func buildPoints(inputs []models.PointInput) ([]models.BucketListPoint, error) {
	points := make([]models.BucketListPoint, len(inputs))
	for i, in := range inputs {
		if in.PointName == "" {
			return nil, fmt.Errorf("%w: point name is required", ErrInvalidInput)
		}
		deadline, err := parseDeadline(in.Deadline)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid deadline %q", ErrInvalidInput, in.Deadline)
		}
		points[i] = models.BucketListPoint{
			ID:        primitive.NewObjectID(),
			PointName: in.PointName,
			Status:    models.PointStatus(in.Status),
			Deadline:  deadline,
		}
	}
	return points, nil
}

// parseDeadline accepts both the date-only form the mobile client sends
// and full RFC 3339 timestamps.
func parseDeadline(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
