package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Malcolmdebono/Bucket-list-application/internal/services"
)

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondServiceError maps the service error taxonomy onto status codes.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		respondError(w, http.StatusNotFound, "Not found")
	case errors.Is(err, services.ErrInvalidInput):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, "Invalid credentials")
	default:
		respondError(w, http.StatusInternalServerError, err.Error())
	}
}
