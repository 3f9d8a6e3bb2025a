package httpx

import (
	"context"
	"net/http"
	"strings"

	"anirex/internal/platform/crypto"

	"github.com/rs/zerolog"
)

type BlacklistRepository interface {
	IsBlacklisted(ctx context.Context, jti string) (bool, error)
}

func principalFrom(r *http.Request, secret string, blacklistRepo BlacklistRepository) (*crypto.Claims, bool) {
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, false
	}
	claims, err := crypto.ParseToken(secret, strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		return nil, false
	}
	if blacklistRepo != nil {
		blacklisted, err := blacklistRepo.IsBlacklisted(r.Context(), claims.ID)
		if err != nil {
			zerolog.Ctx(r.Context()).Warn().Err(err).Msg("blacklist lookup failed")
			return nil, false
		}
		if blacklisted {
			return nil, false
		}
	}
	return claims, true
}

// AuthMiddleware rejects requests without a valid bearer token.
func AuthMiddleware(secret string, blacklistRepo BlacklistRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := principalFrom(r, secret, blacklistRepo)
			if !ok {
				JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required", nil)
				return
			}
			ctx := ContextWithUser(r.Context(), claims.Sub, claims.Role, claims.Name, claims.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuthMiddleware attaches the principal when a valid token is
// present and otherwise lets the request through anonymously.
func OptionalAuthMiddleware(secret string, blacklistRepo BlacklistRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if claims, ok := principalFrom(r, secret, blacklistRepo); ok {
				r = r.WithContext(ContextWithUser(r.Context(), claims.Sub, claims.Role, claims.Name, claims.ID))
			}
			next.ServeHTTP(w, r)
		})
	}
}
