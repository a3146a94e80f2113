package handlers

import (
	"net/http"

	"github.com/Malcolmdebono/Bucket-list-application/internal/services"
	"github.com/sirupsen/logrus"
)

// GalleryHandler handles HTTP requests for experience photo galleries.
type GalleryHandler struct {
	Service *services.GalleryService
}

func NewGalleryHandler(service *services.GalleryService) *GalleryHandler {
	return &GalleryHandler{Service: service}
}

// GetGalleryImagesHandler handles GET /api/galleries. Both the galleryId
// and gallery_id spellings are accepted.
func (h *GalleryHandler) GetGalleryImagesHandler(w http.ResponseWriter, r *http.Request) {
	galleryID := r.URL.Query().Get("galleryId")
	if galleryID == "" {
		galleryID = r.URL.Query().Get("gallery_id")
	}
	if galleryID == "" {
		respondError(w, http.StatusBadRequest, "Missing galleryId (or gallery_id) query parameter")
		return
	}

	images, err := h.Service.GetGalleryImages(r.Context(), galleryID)
	if err != nil {
		logrus.WithField("gallery_id", galleryID).WithError(err).Warn("Gallery lookup failed")
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, images)
}
