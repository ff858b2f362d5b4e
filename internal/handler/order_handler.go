package handler

import (
	"errors"
	"net/http"

	"stylique/internal/model"
	"stylique/internal/service"

	"github.com/rs/zerolog"
)

// OrderHandler handles checkout HTTP requests.
type OrderHandler struct {
	service service.OrderService
	logger  zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(service service.OrderService, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger.With().Str("handler", "order").Logger(),
	}
}

// Checkout handles POST /checkout.
func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req model.OrderRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, model.MsgInvalidBody, err.Error(), h.logger)
		return
	}

	result, err := h.service.Checkout(r.Context(), &req)
	if err != nil {
		var (
			stockErr *model.StockError
			valErr   *model.ValidationError
		)
		switch {
		case errors.As(err, &stockErr):
			h.logger.Info().
				Str("product_id", stockErr.ProductID).
				Str("idempotency_key", req.IdempotencyKey).
				Msg("checkout rejected: stock not available")
			writeJSON(w, http.StatusConflict, model.StockConflictResponse{
				Error:     model.MsgStockNotAvailable,
				ProductID: stockErr.ProductID,
				Name:      stockErr.Name,
			})
		case errors.Is(err, model.ErrDuplicateOrder):
			writeError(w, http.StatusConflict, model.MsgDuplicateOrder, "", h.logger)
		case errors.As(err, &valErr):
			writeError(w, http.StatusBadRequest, model.MsgInvalidBody, valErr.Error(), h.logger)
		default:
			writeError(w, http.StatusInternalServerError, "Failed to post order", err.Error(), h.logger)
		}
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// ByEmail handles GET /checkout/{email}.
func (h *OrderHandler) ByEmail(w http.ResponseWriter, r *http.Request) {
	email, ok := pathParam(w, r, "email", h.logger)
	if !ok {
		return
	}

	orders, err := h.service.ByEmail(r.Context(), email)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch orders", err.Error(), h.logger)
		return
	}

	writeJSON(w, http.StatusOK, orders)
}
