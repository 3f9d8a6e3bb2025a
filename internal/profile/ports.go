package profile

import (
	"context"

	"anirex/internal/user"
)

//go:generate mockgen -source=ports.go -destination=mock_ports_test.go -package=profile
type Repository interface {
	Get(ctx context.Context, userID string) (Profile, error)
	Create(ctx context.Context, p *Profile) error
	Update(ctx context.Context, userID string, updates map[string]any) error
}

type AccountReader interface {
	GetByID(ctx context.Context, id string) (user.User, error)
}
