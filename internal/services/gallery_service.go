package services

import (
	"context"
	"fmt"

	"github.com/Malcolmdebono/Bucket-list-application/internal/models"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GalleryStore is the storage surface the service needs.
type GalleryStore interface {
	GetGalleryByID(ctx context.Context, id primitive.ObjectID) (*models.Gallery, error)
}

type GalleryService struct {
	store GalleryStore
}

func NewGalleryService(store GalleryStore) *GalleryService {
	return &GalleryService{store: store}
}

// GetGalleryImages returns the image URLs of a gallery. A gallery that
// does not exist yields an empty slice, matching what detail screens
// expect; a malformed id is a client error.
func (s *GalleryService) GetGalleryImages(ctx context.Context, id string) ([]string, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		logrus.WithField("gallery_id", id).Warn("Invalid gallery ID")
		return nil, fmt.Errorf("%w: invalid galleryId", ErrInvalidInput)
	}

	gallery, err := s.store.GetGalleryByID(ctx, objID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch gallery: %v", err)
	}
	if gallery == nil || gallery.Images == nil {
		return []string{}, nil
	}
	return gallery.Images, nil
}
