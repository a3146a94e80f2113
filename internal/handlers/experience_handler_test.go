package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Malcolmdebono/Bucket-list-application/internal/models"
	"github.com/Malcolmdebono/Bucket-list-application/internal/services"
	jwtutil "github.com/Malcolmdebono/Bucket-list-application/pkg/jwt"
	"github.com/Malcolmdebono/Bucket-list-application/pkg/middleware"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeExperienceStore struct {
	experiences []models.Experience
}

func (s *fakeExperienceStore) ListExperiences(ctx context.Context, filter, query string, limit int64) ([]models.Experience, error) {
	return s.experiences, nil
}

func (s *fakeExperienceStore) GetLatestExperiences(ctx context.Context) ([]models.Experience, error) {
	return s.experiences, nil
}

func (s *fakeExperienceStore) GetExperienceByID(ctx context.Context, id primitive.ObjectID) (*models.Experience, error) {
	for _, exp := range s.experiences {
		if exp.ID == id {
			return &exp, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

const testJWTSecret = "test-secret"

func experienceRouter(store *fakeExperienceStore) http.Handler {
	handler := NewExperienceHandler(services.NewExperienceService(store, nil))

	router := mux.NewRouter()
	api := router.PathPrefix("/api").Subrouter()
	api.Use(middleware.AuthMiddleware(testJWTSecret))
	api.HandleFunc("/experience", handler.ListExperiencesHandler).Methods("GET")
	api.HandleFunc("/experience/latest", handler.GetLatestExperiencesHandler).Methods("GET")
	api.HandleFunc("/experience/{id}", handler.GetExperienceHandler).Methods("GET")
	return router
}

func bearer(t *testing.T) string {
	t.Helper()
	token, err := jwtutil.GenerateToken("admin", testJWTSecret, time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
}

func TestListExperiencesRequiresToken(t *testing.T) {
	router := experienceRouter(&fakeExperienceStore{})

	req := httptest.NewRequest(http.MethodGet, "/api/experience", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListExperiencesHandler(t *testing.T) {
	id := primitive.NewObjectID()
	router := experienceRouter(&fakeExperienceStore{experiences: []models.Experience{
		{ID: id, Name: "Skydiving", Type: "Adventure"},
	}})

	req := httptest.NewRequest(http.MethodGet, "/api/experience?filter=Adventure&limit=3", nil)
	req.Header.Set("Authorization", bearer(t))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var experiences []models.Experience
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&experiences))
	require.Len(t, experiences, 1)
	require.Equal(t, "Skydiving", experiences[0].Name)
}

func TestGetExperienceHandlerNotFound(t *testing.T) {
	router := experienceRouter(&fakeExperienceStore{})

	req := httptest.NewRequest(http.MethodGet, "/api/experience/"+primitive.NewObjectID().Hex(), nil)
	req.Header.Set("Authorization", bearer(t))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var payload map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&payload))
	require.Equal(t, "Not found", payload["error"])
}

func TestGetExperienceHandlerFound(t *testing.T) {
	id := primitive.NewObjectID()
	router := experienceRouter(&fakeExperienceStore{experiences: []models.Experience{
		{ID: id, Name: "Skydiving"},
	}})

	req := httptest.NewRequest(http.MethodGet, "/api/experience/"+id.Hex(), nil)
	req.Header.Set("Authorization", bearer(t))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var exp models.Experience
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&exp))
	require.Equal(t, id, exp.ID)
}
