package port

import (
	"context"

	"todos/internal/core/domain"
	"todos/internal/core/model/request"
)

type AuthService interface {
	Register(ctx context.Context, req *request.SignUpRequest) (*domain.User, error)
	Login(ctx context.Context, username, password string) (*domain.User, error)
}
