// Package apperr holds the sentinel errors shared across services.
//
// Services wrap these with fmt.Errorf("...: %w", ...) and the HTTP edge maps
// them to status codes with errors.Is.
package apperr

import "errors"

var (
	// ErrNetwork is a failed or timed out request to the catalog or the store.
	ErrNetwork = errors.New("network failure")

	// ErrValidation is user input that failed validation.
	ErrValidation = errors.New("validation failed")

	// ErrAuthRequired is a mutating action attempted without a session.
	ErrAuthRequired = errors.New("authentication required")

	// ErrNotFound is an identifier that does not resolve.
	ErrNotFound = errors.New("not found")

	// ErrConflict is a unique constraint violation such as a taken email.
	ErrConflict = errors.New("already exists")
)
