package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"anirex/internal/platform/crypto"
	"anirex/internal/session"
	"anirex/internal/user"
)

type Service struct {
	secret   string
	users    UserReader
	sessions SessionStore
	now      func() time.Time
}

func NewService(secret string, users UserReader, sessions SessionStore) *Service {
	return &Service{
		secret:   secret,
		users:    users,
		sessions: sessions,
		now:      time.Now,
	}
}

func hashToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}

func (s *Service) Login(ctx context.Context, cmd LoginCmd) (TokenPair, error) {
	u, err := s.users.GetByEmail(ctx, cmd.Email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return TokenPair{}, ErrUnauthorized
		}
		return TokenPair{}, err
	}
	if !crypto.VerifyPassword(u.PasswordHash, cmd.Password) {
		return TokenPair{}, ErrUnauthorized
	}

	return s.issue(ctx, u, session.Session{
		UserID:     u.ID,
		UserAgent:  cmd.UserAgent,
		IPAddress:  cmd.IPAddress,
		RememberMe: cmd.RememberMe,
	})
}

// Refresh exchanges a refresh token for a new pair. The old refresh token
// stops working.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	tokenHash := hashToken(refreshToken)
	sess, err := s.sessions.GetByTokenHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return TokenPair{}, ErrUnauthorized
		}
		return TokenPair{}, err
	}
	if !sess.ExpiresAt.IsZero() && s.now().After(sess.ExpiresAt) {
		return TokenPair{}, ErrUnauthorized
	}

	u, err := s.users.GetByID(ctx, sess.UserID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return TokenPair{}, ErrUnauthorized
		}
		return TokenPair{}, err
	}

	if err := s.sessions.DeleteByTokenHash(ctx, tokenHash); err != nil {
		return TokenPair{}, fmt.Errorf("rotate session: %w", err)
	}

	return s.issue(ctx, u, session.Session{
		UserID:     u.ID,
		UserAgent:  sess.UserAgent,
		IPAddress:  sess.IPAddress,
		RememberMe: sess.RememberMe,
	})
}

func (s *Service) issue(ctx context.Context, u user.User, sess session.Session) (TokenPair, error) {
	accessToken, _, err := crypto.GenerateToken(s.secret, u.ID, u.Role, u.DisplayName, AccessTokenTTL)
	if err != nil {
		return TokenPair{}, fmt.Errorf("sign access token: %w", err)
	}
	refreshToken, err := crypto.GenerateRefreshToken()
	if err != nil {
		return TokenPair{}, fmt.Errorf("generate refresh token: %w", err)
	}

	sess.RefreshTokenHash = hashToken(refreshToken)
	sess.ExpiresAt = s.now().Add(refreshTTL(sess.RememberMe))
	if err := s.sessions.Create(ctx, &sess); err != nil {
		return TokenPair{}, fmt.Errorf("create session: %w", err)
	}

	return TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int(AccessTokenTTL.Seconds()),
		User:         u,
	}, nil
}

// Logout revokes accessToken until it would have expired anyway. When a
// refresh token is supplied its session is dropped as well.
func (s *Service) Logout(ctx context.Context, accessToken, refreshToken string) error {
	claims, err := crypto.ParseToken(s.secret, accessToken)
	if err != nil {
		return ErrUnauthorized
	}

	expiresAt := s.now().Add(AccessTokenTTL)
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	if err := s.sessions.AddToBlacklist(ctx, claims.ID, claims.Sub, expiresAt); err != nil {
		return fmt.Errorf("blacklist token: %w", err)
	}

	if refreshToken != "" {
		if err := s.sessions.DeleteByTokenHash(ctx, hashToken(refreshToken)); err != nil {
			return fmt.Errorf("drop session: %w", err)
		}
	}
	return nil
}
