package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Malcolmdebono/Bucket-list-application/internal/services"
	"github.com/sirupsen/logrus"
)

// AuthHandler handles the login endpoint.
type AuthHandler struct {
	Service *services.AuthService
}

func NewAuthHandler(service *services.AuthService) *AuthHandler {
	return &AuthHandler{Service: service}
}

// LoginHandler handles POST /api/auth/login and returns a bearer token.
func (h *AuthHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var credentials struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		logrus.WithError(err).Warn("Invalid login payload")
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	token, err := h.Service.Login(credentials.Username, credentials.Password)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"token": token})
}
