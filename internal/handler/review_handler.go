package handler

import (
	"net/http"

	"stylique/internal/model"
	"stylique/internal/service"

	"github.com/rs/zerolog"
)

// ReviewHandler handles review HTTP requests.
type ReviewHandler struct {
	service service.ReviewService
	logger  zerolog.Logger
}

// NewReviewHandler creates a new review handler.
func NewReviewHandler(service service.ReviewService, logger zerolog.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		logger:  logger.With().Str("handler", "review").Logger(),
	}
}

// Create handles POST /reviews.
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.ReviewRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, model.MsgInvalidBody, err.Error(), h.logger)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to post review", err.Error(), h.logger)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// ByProduct handles GET /reviews/{productId}.
func (h *ReviewHandler) ByProduct(w http.ResponseWriter, r *http.Request) {
	productID, ok := pathParam(w, r, "productId", h.logger)
	if !ok {
		return
	}

	reviews, err := h.service.ByProduct(r.Context(), productID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch reviews", err.Error(), h.logger)
		return
	}

	writeJSON(w, http.StatusOK, reviews)
}
