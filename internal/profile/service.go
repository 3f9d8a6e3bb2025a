package profile

import (
	"context"
	"errors"
	"fmt"
)

type Service struct {
	repo     Repository
	accounts AccountReader
}

func NewService(repo Repository, accounts AccountReader) *Service {
	return &Service{repo: repo, accounts: accounts}
}

// Get returns the profile of userID, creating it with defaults on first
// read.
func (s *Service) Get(ctx context.Context, userID string) (Profile, error) {
	p, err := s.repo.Get(ctx, userID)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return Profile{}, err
	}

	account, err := s.accounts.GetByID(ctx, userID)
	if err != nil {
		return Profile{}, fmt.Errorf("load account: %w", err)
	}

	p = Profile{UserID: userID, Name: DefaultName, Email: account.Email}
	if err := s.repo.Create(ctx, &p); err != nil {
		return Profile{}, fmt.Errorf("create profile: %w", err)
	}
	return p, nil
}

func (s *Service) Update(ctx context.Context, userID string, cmd UpdateCommand) (Profile, error) {
	if err := cmd.Normalize(); err != nil {
		return Profile{}, err
	}

	// Make sure the row exists before patching it.
	if _, err := s.Get(ctx, userID); err != nil {
		return Profile{}, err
	}

	if updates := cmd.ToMap(); len(updates) > 0 {
		if err := s.repo.Update(ctx, userID, updates); err != nil {
			return Profile{}, err
		}
	}
	return s.repo.Get(ctx, userID)
}
