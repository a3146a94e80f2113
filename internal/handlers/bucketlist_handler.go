package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Malcolmdebono/Bucket-list-application/internal/services"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// BucketListHandler handles HTTP requests for bucket list items.
type BucketListHandler struct {
	Service *services.BucketListService
}

// NewBucketListHandler creates a new instance of BucketListHandler.
func NewBucketListHandler(service *services.BucketListService) *BucketListHandler {
	return &BucketListHandler{Service: service}
}

// ListItemsHandler handles GET /api/items with an optional user_id filter.
func (h *BucketListHandler) ListItemsHandler(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")

	views, err := h.Service.ListBucketItems(r.Context(), userID)
	if err != nil {
		logrus.WithError(err).Error("Failed to list bucket items")
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, views)
}

// CreateItemHandler handles POST /api/items.
func (h *BucketListHandler) CreateItemHandler(w http.ResponseWriter, r *http.Request) {
	var input services.CreateBucketItemInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		logrus.WithError(err).Warn("Invalid bucket item payload")
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	view, err := h.Service.CreateBucketItem(r.Context(), input)
	if err != nil {
		logrus.WithError(err).Warn("Failed to create bucket item")
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, view)
}

// UpdateItemHandler handles PUT /api/items/{id}. The point set is
// replaced wholesale.
func (h *BucketListHandler) UpdateItemHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var input services.UpdateBucketItemInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		logrus.WithError(err).Warn("Invalid bucket item payload")
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	view, err := h.Service.UpdateBucketItem(r.Context(), id, input)
	if err != nil {
		logrus.WithField("bucketlist_id", id).WithError(err).Warn("Failed to update bucket item")
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, view)
}
