package repository

import (
	"context"

	"github.com/Malcolmdebono/Bucket-list-application/internal/models"
	"github.com/Malcolmdebono/Bucket-list-application/pkg/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ExperienceRepository handles database operations for the read-only
// experience catalogue.
type ExperienceRepository struct {
	collection *mongo.Collection
}

// NewExperienceRepository creates a new instance of ExperienceRepository.
func NewExperienceRepository(db *mongo.Database) *ExperienceRepository {
	return &ExperienceRepository{
		collection: db.Collection("Experience"),
	}
}

// BuildExperienceFilter translates the category filter and free-text query
// into a MongoDB condition. "All" or an empty filter means unfiltered; a
// non-empty query matches name, address or type case-insensitively.
func BuildExperienceFilter(filter, query string) bson.M {
	cond := bson.M{}
	if filter != "" && filter != "All" {
		cond["type"] = filter
	}
	if query != "" {
		regex := primitive.Regex{Pattern: query, Options: "i"}
		cond["$or"] = bson.A{
			bson.M{"name": bson.M{"$regex": regex}},
			bson.M{"address": bson.M{"$regex": regex}},
			bson.M{"type": bson.M{"$regex": regex}},
		}
	}
	return cond
}

// ListExperiences fetches experiences matching filter/query, newest first,
// truncated to limit.
func (r *ExperienceRepository) ListExperiences(ctx context.Context, filter, query string, limit int64) ([]models.Experience, error) {
	findOptions := options.Find().
		SetSort(bson.M{"createdAt": -1}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, BuildExperienceFilter(filter, query), findOptions)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to fetch experiences")
		return nil, err
	}
	defer cursor.Close(ctx)

	experiences := []models.Experience{}
	for cursor.Next(ctx) {
		var exp models.Experience
		if err := cursor.Decode(&exp); err != nil {
			logger.Log.WithError(err).Error("Failed to decode experience")
			return nil, err
		}
		experiences = append(experiences, exp)
	}

	logger.Log.WithField("count", len(experiences)).Info("Experiences fetched successfully")
	return experiences, nil
}

// GetLatestExperiences returns at most 5 experiences ordered by ascending
// creation date.
func (r *ExperienceRepository) GetLatestExperiences(ctx context.Context) ([]models.Experience, error) {
	findOptions := options.Find().
		SetSort(bson.M{"createdAt": 1}).
		SetLimit(5)

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to fetch latest experiences")
		return nil, err
	}
	defer cursor.Close(ctx)

	experiences := []models.Experience{}
	for cursor.Next(ctx) {
		var exp models.Experience
		if err := cursor.Decode(&exp); err != nil {
			logger.Log.WithError(err).Error("Failed to decode experience")
			return nil, err
		}
		experiences = append(experiences, exp)
	}

	return experiences, nil
}

// GetExperienceByID fetches a single experience by its ObjectID.
func (r *ExperienceRepository) GetExperienceByID(ctx context.Context, id primitive.ObjectID) (*models.Experience, error) {
	var exp models.Experience
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&exp); err != nil {
		logger.Log.WithError(err).WithField("experience_id", id.Hex()).Warn("Failed to find experience by ID")
		return nil, err
	}
	return &exp, nil
}
