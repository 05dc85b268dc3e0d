package port

import (
	"context"

	"todos/internal/core/domain"
)

type UserRepository interface {
	UsernameTaken(ctx context.Context, username string) (bool, error)
	GetByUsername(ctx context.Context, username string) (domain.User, error)
	Create(ctx context.Context, user domain.User) (domain.User, error)
}
