package handlers

import "net/http"

// HealthHandler handles GET /health. Liveness only.
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
