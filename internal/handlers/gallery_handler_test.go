package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Malcolmdebono/Bucket-list-application/internal/models"
	"github.com/Malcolmdebono/Bucket-list-application/internal/services"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeGalleryStore struct {
	galleries map[primitive.ObjectID]models.Gallery
}

func (s *fakeGalleryStore) GetGalleryByID(ctx context.Context, id primitive.ObjectID) (*models.Gallery, error) {
	if g, ok := s.galleries[id]; ok {
		return &g, nil
	}
	return nil, nil
}

func TestGetGalleryImagesHandler(t *testing.T) {
	id := primitive.NewObjectID()
	store := &fakeGalleryStore{galleries: map[primitive.ObjectID]models.Gallery{
		id: {ID: id, Images: []string{"https://img/1.jpg", "https://img/2.jpg"}},
	}}
	handler := NewGalleryHandler(services.NewGalleryService(store))

	req := httptest.NewRequest(http.MethodGet, "/api/galleries?galleryId="+id.Hex(), nil)
	rec := httptest.NewRecorder()
	handler.GetGalleryImagesHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var images []string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&images))
	require.Equal(t, []string{"https://img/1.jpg", "https://img/2.jpg"}, images)
}

func TestGetGalleryImagesHandlerAltParam(t *testing.T) {
	id := primitive.NewObjectID()
	store := &fakeGalleryStore{galleries: map[primitive.ObjectID]models.Gallery{
		id: {ID: id, Images: []string{"https://img/1.jpg"}},
	}}
	handler := NewGalleryHandler(services.NewGalleryService(store))

	req := httptest.NewRequest(http.MethodGet, "/api/galleries?gallery_id="+id.Hex(), nil)
	rec := httptest.NewRecorder()
	handler.GetGalleryImagesHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestGetGalleryImagesHandlerMissingParam(t *testing.T) {
	handler := NewGalleryHandler(services.NewGalleryService(&fakeGalleryStore{}))

	req := httptest.NewRequest(http.MethodGet, "/api/galleries", nil)
	rec := httptest.NewRecorder()
	handler.GetGalleryImagesHandler(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetGalleryImagesHandlerUnknownGallery(t *testing.T) {
	handler := NewGalleryHandler(services.NewGalleryService(&fakeGalleryStore{}))

	req := httptest.NewRequest(http.MethodGet, "/api/galleries?galleryId="+primitive.NewObjectID().Hex(), nil)
	rec := httptest.NewRecorder()
	handler.GetGalleryImagesHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var images []string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&images))
	require.Empty(t, images)
}
