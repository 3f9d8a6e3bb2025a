package apiclient

import (
	"fmt"

	"anirex/internal/apperr"
)

// APIError is a non-2xx reply from the API. It unwraps to the matching
// apperr sentinel so callers can use errors.Is.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api %d %s: %s", e.Status, e.Code, e.Message)
}

func (e *APIError) Unwrap() error {
	switch e.Code {
	case "VALIDATION_ERROR", "BAD_REQUEST":
		return apperr.ErrValidation
	case "UNAUTHORIZED":
		return apperr.ErrAuthRequired
	case "NOT_FOUND":
		return apperr.ErrNotFound
	case "ALREADY_EXISTS":
		return apperr.ErrConflict
	case "UPSTREAM_UNAVAILABLE", "RATE_LIMITED":
		return apperr.ErrNetwork
	}
	if e.Status >= 500 {
		return apperr.ErrNetwork
	}
	return nil
}
