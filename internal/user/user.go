// Package user owns accounts: registration and lookup.
package user

import (
	"fmt"
	"time"

	"anirex/internal/apperr"
)

const RoleUser = "USER"

var (
	ErrNotFound      = fmt.Errorf("user not found: %w", apperr.ErrNotFound)
	ErrAlreadyExists = fmt.Errorf("email already registered: %w", apperr.ErrConflict)
)

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	DisplayName  string    `json:"display_name"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
