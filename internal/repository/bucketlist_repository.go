package repository

import (
	"context"
	"time"

	"github.com/Malcolmdebono/Bucket-list-application/internal/models"
	"github.com/Malcolmdebono/Bucket-list-application/pkg/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// BucketListRepository handles the BucketList and BucketListPoints
// collections, including the joined view the API serves.
type BucketListRepository struct {
	lists  *mongo.Collection
	points *mongo.Collection
}

// NewBucketListRepository creates a new instance of BucketListRepository.
func NewBucketListRepository(db *mongo.Database) *BucketListRepository {
	return &BucketListRepository{
		lists:  db.Collection("BucketList"),
		points: db.Collection("BucketListPoints"),
	}
}

func lookupStage() bson.D {
	return bson.D{{Key: "$lookup", Value: bson.M{
		"from":         "BucketListPoints",
		"localField":   "bucketlistpoints",
		"foreignField": "_id",
		"as":           "points",
	}}}
}

// ListViews fetches bucket lists joined with their points, optionally
// restricted to one user.
func (r *BucketListRepository) ListViews(ctx context.Context, userID string) ([]models.BucketListView, error) {
	pipeline := mongo.Pipeline{}
	if userID != "" {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: bson.M{"user_id": userID}}})
	}
	pipeline = append(pipeline, lookupStage())

	cursor, err := r.lists.Aggregate(ctx, pipeline)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to aggregate bucket lists")
		return nil, err
	}
	defer cursor.Close(ctx)

	views := []models.BucketListView{}
	if err := cursor.All(ctx, &views); err != nil {
		logger.Log.WithError(err).Error("Failed to decode bucket list views")
		return nil, err
	}

	logger.Log.WithField("count", len(views)).Info("Bucket list views fetched successfully")
	return views, nil
}

// GetViewByID fetches a single joined view. Returns mongo.ErrNoDocuments
// via the error when the list does not exist.
func (r *BucketListRepository) GetViewByID(ctx context.Context, id primitive.ObjectID) (*models.BucketListView, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"_id": id}}},
		lookupStage(),
	}

	cursor, err := r.lists.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var views []models.BucketListView
	if err := cursor.All(ctx, &views); err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, mongo.ErrNoDocuments
	}
	return &views[0], nil
}

// InsertPoints persists a batch of points and returns their new ids.
func (r *BucketListRepository) InsertPoints(ctx context.Context, points []models.BucketListPoint) ([]primitive.ObjectID, error) {
	docs := make([]interface{}, len(points))
	for i, p := range points {
		docs[i] = p
	}

	result, err := r.points.InsertMany(ctx, docs)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to insert bucket list points")
		return nil, err
	}

	ids := make([]primitive.ObjectID, len(result.InsertedIDs))
	for i, raw := range result.InsertedIDs {
		ids[i] = raw.(primitive.ObjectID)
	}
	return ids, nil
}

// CreateBucketList persists the parent list referencing already inserted
// point ids and returns the new list id.
func (r *BucketListRepository) CreateBucketList(ctx context.Context, list *models.BucketList) (primitive.ObjectID, error) {
	list.CreatedAt = time.Now()
	list.UpdatedAt = time.Now()

	result, err := r.lists.InsertOne(ctx, list)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to insert bucket list")
		return primitive.NilObjectID, err
	}

	id := result.InsertedID.(primitive.ObjectID)
	logger.Log.WithField("bucketlist_id", id.Hex()).Info("Bucket list created successfully")
	return id, nil
}

// ReplacePoints swaps a list's title and point set in one transaction.
// New points are inserted first, the parent is repointed, and only then
// are the old points deleted, so the parent never references missing
// points whatever step a crash lands on.
func (r *BucketListRepository) ReplacePoints(ctx context.Context, id primitive.ObjectID, title string, points []models.BucketListPoint) error {
	session, err := r.lists.Database().Client().StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		var existing models.BucketList
		if err := r.lists.FindOne(sc, bson.M{"_id": id}).Decode(&existing); err != nil {
			return nil, err
		}

		docs := make([]interface{}, len(points))
		for i, p := range points {
			docs[i] = p
		}
		inserted, err := r.points.InsertMany(sc, docs)
		if err != nil {
			return nil, err
		}

		newIDs := make([]primitive.ObjectID, len(inserted.InsertedIDs))
		for i, raw := range inserted.InsertedIDs {
			newIDs[i] = raw.(primitive.ObjectID)
		}

		update := bson.M{"$set": bson.M{
			"title":            title,
			"bucketlistpoints": newIDs,
			"updated_at":       time.Now(),
		}}
		if _, err := r.lists.UpdateOne(sc, bson.M{"_id": id}, update); err != nil {
			return nil, err
		}

		if len(existing.PointIDs) > 0 {
			if _, err := r.points.DeleteMany(sc, bson.M{"_id": bson.M{"$in": existing.PointIDs}}); err != nil {
				return nil, err
			}
		}
		return nil, nil
	})
	if err != nil {
		logger.Log.WithError(err).WithField("bucketlist_id", id.Hex()).Error("Failed to replace bucket list points")
		return err
	}

	logger.Log.WithField("bucketlist_id", id.Hex()).Info("Bucket list points replaced successfully")
	return nil
}
