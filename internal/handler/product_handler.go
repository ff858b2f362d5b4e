package handler

import (
	"net/http"

	"stylique/internal/filter"
	"stylique/internal/model"
	"stylique/internal/service"

	"github.com/rs/zerolog"
)

// ProductHandler handles catalogue HTTP requests.
type ProductHandler struct {
	service service.ProductService
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.ProductService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// List handles GET /products. Non-numeric minPrice, maxPrice or rating values
// are rejected with 400.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	params, err := filter.ParseParams(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, model.MsgInvalidQuery, err.Error(), h.logger)
		return
	}

	products, err := h.service.List(r.Context(), params)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch products", err.Error(), h.logger)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// ByCategory handles GET /products/category/{category}.
func (h *ProductHandler) ByCategory(w http.ResponseWriter, r *http.Request) {
	category, ok := pathParam(w, r, "category", h.logger)
	if !ok {
		return
	}

	products, err := h.service.ByCategory(r.Context(), category)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch products", err.Error(), h.logger)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// GetByID handles GET /products/{id}. An unknown id is answered with null.
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathParam(w, r, "id", h.logger)
	if !ok {
		return
	}

	product, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch product", err.Error(), h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// FilterStats handles GET /products/filter-stats.
func (h *ProductHandler) FilterStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.FilterStats(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch filter stats", err.Error(), h.logger)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

// Categories handles GET /categories.
func (h *ProductHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.Categories(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch categories", err.Error(), h.logger)
		return
	}

	writeJSON(w, http.StatusOK, categories)
}
