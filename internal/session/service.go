package session

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

type Service struct {
	repo          Repository
	blacklistRepo BlacklistRepository
}

func NewService(repo Repository, blacklistRepo BlacklistRepository) *Service {
	return &Service{
		repo:          repo,
		blacklistRepo: blacklistRepo,
	}
}

func (s *Service) ListByUserID(ctx context.Context, userID string) ([]Session, error) {
	return s.repo.ListByUserID(ctx, userID)
}

// DeleteForUser removes a session owned by userID. Sessions of other users
// are reported as not found.
func (s *Service) DeleteForUser(ctx context.Context, userID, sessionID string) error {
	return s.repo.DeleteForUser(ctx, userID, sessionID)
}

func (s *Service) Create(ctx context.Context, session *Session) error {
	return s.repo.Create(ctx, session)
}

func (s *Service) GetByTokenHash(ctx context.Context, hash string) (Session, error) {
	return s.repo.GetByTokenHash(ctx, hash)
}

func (s *Service) DeleteByTokenHash(ctx context.Context, hash string) error {
	return s.repo.DeleteByTokenHash(ctx, hash)
}

func (s *Service) AddToBlacklist(ctx context.Context, jti, userID string, expiresAt time.Time) error {
	return s.blacklistRepo.AddToken(ctx, jti, userID, expiresAt)
}

func (s *Service) IsBlacklisted(ctx context.Context, jti string) (bool, error) {
	return s.blacklistRepo.IsBlacklisted(ctx, jti)
}

// RunJanitor purges expired sessions and blacklist entries every interval
// until ctx is done.
func (s *Service) RunJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.cleanup(ctx)
		}
	}
}

func (s *Service) cleanup(ctx context.Context) {
	logger := zerolog.Ctx(ctx)
	if err := s.repo.CleanupExpired(ctx); err != nil {
		logger.Warn().Err(err).Msg("cleanup expired sessions")
	}
	if err := s.blacklistRepo.CleanupExpired(ctx); err != nil {
		logger.Warn().Err(err).Msg("cleanup token blacklist")
	}
}
