// Package session keeps refresh-token sessions and the access-token
// blacklist used for sign-out.
package session

import (
	"fmt"
	"time"

	"anirex/internal/apperr"
)

var ErrNotFound = fmt.Errorf("session not found: %w", apperr.ErrNotFound)

// Session is one refresh token grant. Only the token hash is stored.
type Session struct {
	ID               string    `json:"id" db:"id"`
	UserID           string    `json:"user_id" db:"user_id"`
	RefreshTokenHash string    `json:"-" db:"refresh_token_hash"`
	UserAgent        string    `json:"user_agent" db:"user_agent"`
	IPAddress        string    `json:"ip_address" db:"ip_address"`
	RememberMe       bool      `json:"remember_me" db:"remember_me"`
	ExpiresAt        time.Time `json:"expires_at" db:"expires_at"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	LastUsedAt       time.Time `json:"last_used_at" db:"last_used_at"`
}
