package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildExperienceFilterUnfiltered(t *testing.T) {
	require.Equal(t, bson.M{}, BuildExperienceFilter("", ""))
	require.Equal(t, bson.M{}, BuildExperienceFilter("All", ""))
}

func TestBuildExperienceFilterByType(t *testing.T) {
	cond := BuildExperienceFilter("Adventure", "")
	require.Equal(t, bson.M{"type": "Adventure"}, cond)
}

func TestBuildExperienceFilterWithQuery(t *testing.T) {
	cond := BuildExperienceFilter("", "beach")

	or, ok := cond["$or"].(bson.A)
	require.True(t, ok, "expected an $or clause")
	require.Len(t, or, 3)

	regex := primitive.Regex{Pattern: "beach", Options: "i"}
	require.Contains(t, or, bson.M{"name": bson.M{"$regex": regex}})
	require.Contains(t, or, bson.M{"address": bson.M{"$regex": regex}})
	require.Contains(t, or, bson.M{"type": bson.M{"$regex": regex}})
}

func TestBuildExperienceFilterCombined(t *testing.T) {
	cond := BuildExperienceFilter("City", "museum")
	require.Equal(t, "City", cond["type"])
	require.NotNil(t, cond["$or"])
}
