package handlers

import (
	"net/http"
	"strconv"

	"github.com/Malcolmdebono/Bucket-list-application/internal/services"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// ExperienceHandler handles HTTP requests for the experience catalogue.
type ExperienceHandler struct {
	Service *services.ExperienceService
}

// NewExperienceHandler creates a new instance of ExperienceHandler.
func NewExperienceHandler(service *services.ExperienceService) *ExperienceHandler {
	return &ExperienceHandler{Service: service}
}

// ListExperiencesHandler handles GET /api/experience with optional
// filter, query and limit parameters.
func (h *ExperienceHandler) ListExperiencesHandler(w http.ResponseWriter, r *http.Request) {
	filter := r.URL.Query().Get("filter")
	query := r.URL.Query().Get("query")

	var limit int64
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err == nil {
			limit = parsed
		}
	}

	experiences, err := h.Service.ListExperiences(r.Context(), filter, query, limit)
	if err != nil {
		logrus.WithError(err).Error("Failed to list experiences")
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, experiences)
}

// GetLatestExperiencesHandler handles GET /api/experience/latest.
func (h *ExperienceHandler) GetLatestExperiencesHandler(w http.ResponseWriter, r *http.Request) {
	experiences, err := h.Service.GetLatestExperiences(r.Context())
	if err != nil {
		logrus.WithError(err).Error("Failed to fetch latest experiences")
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, experiences)
}

// GetExperienceHandler handles GET /api/experience/{id}.
func (h *ExperienceHandler) GetExperienceHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	exp, err := h.Service.GetExperience(r.Context(), id)
	if err != nil {
		logrus.WithField("experience_id", id).WithError(err).Warn("Experience lookup failed")
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, exp)
}
