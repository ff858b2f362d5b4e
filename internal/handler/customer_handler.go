package handler

import (
	"net/http"

	"stylique/internal/model"
	"stylique/internal/service"

	"github.com/rs/zerolog"
)

// CustomerHandler handles customer profile HTTP requests.
type CustomerHandler struct {
	service service.CustomerService
	logger  zerolog.Logger
}

// NewCustomerHandler creates a new customer handler.
func NewCustomerHandler(service service.CustomerService, logger zerolog.Logger) *CustomerHandler {
	return &CustomerHandler{
		service: service,
		logger:  logger.With().Str("handler", "customer").Logger(),
	}
}

// Upsert handles PUT /customers.
func (h *CustomerHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var req model.CustomerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, model.MsgInvalidBody, err.Error(), h.logger)
		return
	}

	result, err := h.service.Upsert(r.Context(), &req)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save customer", err.Error(), h.logger)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// GetByEmail handles GET /customers/{email}. An unknown email is answered
// with null.
func (h *CustomerHandler) GetByEmail(w http.ResponseWriter, r *http.Request) {
	email, ok := pathParam(w, r, "email", h.logger)
	if !ok {
		return
	}

	customer, err := h.service.GetByEmail(r.Context(), email)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch customer", err.Error(), h.logger)
		return
	}

	writeJSON(w, http.StatusOK, customer)
}
