package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"commandr-api/internal/contextutil"
	"commandr-api/internal/service"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// writeJSON writes v as a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, ErrorResponse{Error: message})
}

// respondFailure logs a failed request with its request-type context and
// maps the error onto the API's uniform failure shape: missing keys and
// validation failures are 400 with the message verbatim, everything else is
// 500 with the original message preserved in details.
func respondFailure(w http.ResponseWriter, ctx context.Context, requestType string, err error) {
	logger := contextutil.LoggerFromContext(ctx)
	logger.ErrorContext(ctx, "request failed", "type", requestType, "error", err)

	var missingErr *service.MissingKeyError
	if errors.As(err, &missingErr) {
		writeError(w, http.StatusBadRequest, missingErr.Error())
		return
	}

	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		writeError(w, http.StatusBadRequest, validationErr.Error())
		return
	}

	writeJSON(w, http.StatusInternalServerError, ErrorResponse{
		Error:   "An unexpected error occurred",
		Details: err.Error(),
	})
}
