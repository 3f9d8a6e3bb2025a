package httpx

import (
	"errors"
	"net/http"

	"anirex/internal/apperr"

	"github.com/rs/zerolog"
)

// WriteServiceError maps a service error onto the response envelope.
// Unknown errors are logged and reported as 500.
func WriteServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, apperr.ErrValidation):
		JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
	case errors.Is(err, apperr.ErrAuthRequired):
		JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required", nil)
	case errors.Is(err, apperr.ErrNotFound):
		JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Resource not found", nil)
	case errors.Is(err, apperr.ErrConflict):
		JSONError(w, r, http.StatusConflict, "ALREADY_EXISTS", err.Error(), nil)
	case errors.Is(err, apperr.ErrNetwork):
		zerolog.Ctx(r.Context()).Warn().Err(err).Msg("upstream failure")
		JSONError(w, r, http.StatusBadGateway, "UPSTREAM_UNAVAILABLE", "Upstream service unavailable", nil)
	default:
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("unhandled service error")
		JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred", nil)
	}
}

// ValidationFailed writes a 400 with per-field details.
func ValidationFailed(w http.ResponseWriter, r *http.Request, errs []ValidationError) {
	details := make([]ErrorDetail, 0, len(errs))
	for _, e := range errs {
		details = append(details, ErrorDetail{Field: e.Field, Message: e.Message})
	}
	JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request", details)
}
