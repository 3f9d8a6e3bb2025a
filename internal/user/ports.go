package user

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_repository_test.go -package=user
type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
}
