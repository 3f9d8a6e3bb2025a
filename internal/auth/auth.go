// Package auth signs users in and out: access tokens, rotating refresh
// sessions and the sign-out blacklist.
package auth

import (
	"fmt"
	"time"

	"anirex/internal/apperr"
	"anirex/internal/user"
)

const (
	AccessTokenTTL       = 15 * time.Minute
	RefreshTokenTTL      = 30 * 24 * time.Hour
	RememberMeRefreshTTL = 90 * 24 * time.Hour
)

var ErrUnauthorized = fmt.Errorf("invalid credentials: %w", apperr.ErrAuthRequired)

// TokenPair is what a successful login or refresh hands back to the client.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int
	User         user.User
}

type LoginCmd struct {
	Email      string
	Password   string
	RememberMe bool
	UserAgent  string
	IPAddress  string
}

func refreshTTL(rememberMe bool) time.Duration {
	if rememberMe {
		return RememberMeRefreshTTL
	}
	return RefreshTokenTTL
}
