package handler

import (
	"encoding/json"
	"net/http"

	"stylique/internal/model"

	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code. A nil data
// value is written as null.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers are already sent
		return
	}
}

// writeError writes an error response with the given status code, message and
// optional details.
func writeError(w http.ResponseWriter, status int, message, details string, logger zerolog.Logger) {
	event := logger.Warn()
	if status >= http.StatusInternalServerError {
		event = logger.Error()
	}
	event.Str("error", message).Str("details", details).Int("status", status).Msg("handler error")

	writeJSON(w, status, model.ErrorResponse{Error: message, Details: details})
}
