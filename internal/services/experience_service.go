package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Malcolmdebono/Bucket-list-application/internal/models"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// DefaultListLimit caps experience listings when the client sends none.
const DefaultListLimit = 6

// ExperienceStore is the storage surface the service needs.
type ExperienceStore interface {
	ListExperiences(ctx context.Context, filter, query string, limit int64) ([]models.Experience, error)
	GetLatestExperiences(ctx context.Context) ([]models.Experience, error)
	GetExperienceByID(ctx context.Context, id primitive.ObjectID) (*models.Experience, error)
}

// QueryCache is the read-through cache surface. A nil *cache.Cache
// satisfies it with caching disabled.
type QueryCache interface {
	GetJSON(ctx context.Context, key string, dest interface{}) (bool, error)
	SetJSON(ctx context.Context, key string, value interface{}) error
}

// ExperienceService encapsulates the catalogue query logic.
type ExperienceService struct {
	store ExperienceStore
	cache QueryCache
}

// NewExperienceService creates a new instance of ExperienceService.
func NewExperienceService(store ExperienceStore, cache QueryCache) *ExperienceService {
	return &ExperienceService{store: store, cache: cache}
}

// ListExperiences returns experiences for the given filter/query, newest
// first, capped at limit (default 6). Results are served from Redis when
// the same query was answered recently; cache failures only log.
func (s *ExperienceService) ListExperiences(ctx context.Context, filter, query string, limit int64) ([]models.Experience, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	key := fmt.Sprintf("experiences:%s|%s|%d", filter, query, limit)

	var cached []models.Experience
	if s.cache != nil {
		hit, err := s.cache.GetJSON(ctx, key, &cached)
		if err != nil {
			logrus.WithError(err).WithField("key", key).Warn("Experience cache read failed")
		} else if hit {
			logrus.WithField("key", key).Debug("Experience cache hit")
			return cached, nil
		}
	}

	experiences, err := s.store.ListExperiences(ctx, filter, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch experiences: %v", err)
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, key, experiences); err != nil {
			logrus.WithError(err).WithField("key", key).Warn("Experience cache write failed")
		}
	}

	return experiences, nil
}

// GetLatestExperiences returns the oldest-first capped listing used by the
// home screen carousel.
func (s *ExperienceService) GetLatestExperiences(ctx context.Context) ([]models.Experience, error) {
	experiences, err := s.store.GetLatestExperiences(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch latest experiences: %v", err)
	}
	return experiences, nil
}

// GetExperience fetches one experience. A malformed id is reported the
// same way as a missing document.
func (s *ExperienceService) GetExperience(ctx context.Context, id string) (*models.Experience, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		logrus.WithField("experience_id", id).Warn("Invalid experience ID")
		return nil, ErrNotFound
	}

	exp, err := s.store.GetExperienceByID(ctx, objID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get experience: %v", err)
	}
	return exp, nil
}
