// Package common provides response helpers shared by API features.
package common

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/crumbwork/ladle/internal/recipe"
)

// Error codes used in error envelopes.
const (
	CodeNotFound        = "not_found"
	CodeInvalidArgument = "invalid_argument"
	CodeInternal        = "internal"
)

// ErrorBody is the error detail inside an error envelope.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the JSON envelope for failed requests.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// RespondJSON writes v as a JSON response with the given status.
func RespondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// RespondError writes an error envelope.
func RespondError(w http.ResponseWriter, status int, code, message string) {
	RespondJSON(w, status, ErrorResponse{Error: ErrorBody{Code: code, Message: message}})
}

// RespondStoreError maps store failures onto HTTP statuses: ErrNotFound is
// 404, ErrInvalidLimit is 400, anything else is a logged 500.
func RespondStoreError(w http.ResponseWriter, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, recipe.ErrNotFound):
		RespondError(w, http.StatusNotFound, CodeNotFound, "recipe not found")
	case errors.Is(err, recipe.ErrInvalidLimit):
		RespondError(w, http.StatusBadRequest, CodeInvalidArgument, "limit must not be negative")
	default:
		logger.Error("store query failed", "error", err)
		RespondError(w, http.StatusInternalServerError, CodeInternal, "internal error")
	}
}
