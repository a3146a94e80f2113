package repository

import (
	"context"
	"fmt"

	"github.com/Malcolmdebono/Bucket-list-application/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type GalleryRepository struct {
	collection *mongo.Collection
}

func NewGalleryRepository(db *mongo.Database) *GalleryRepository {
	return &GalleryRepository{collection: db.Collection("Galleries")}
}

// GetGalleryByID fetches a gallery document by its ObjectID. Lookup is by
// _id only; the older by-name strategy is gone.
func (r *GalleryRepository) GetGalleryByID(ctx context.Context, id primitive.ObjectID) (*models.Gallery, error) {
	var gallery models.Gallery
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&gallery)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get gallery: %v", err)
	}
	return &gallery, nil
}
