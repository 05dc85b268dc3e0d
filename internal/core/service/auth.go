package service

import (
	"context"
	"fmt"
	"log/slog"

	"todos/internal/core/domain"
	"todos/internal/core/model/request"
	"todos/internal/core/port"
	"todos/internal/core/util"
)

type AuthService struct {
	repo port.UserRepository
}

func NewAuthService(repo port.UserRepository) *AuthService {
	return &AuthService{repo}
}

func (as *AuthService) Register(ctx context.Context, req *request.SignUpRequest) (*domain.User, error) {
	if req.Username == "" {
		return nil, fmt.Errorf("username is required")
	}

	taken, err := as.repo.UsernameTaken(ctx, req.Username)

	if err != nil {
		return nil, err
	}

	if taken {
		return nil, domain.NewConflictError("username", req.Username)
	}

	encrypted, err := util.GenerateEncrypt(req.Password)

	if err != nil {
		return nil, fmt.Errorf("error creating encrypted password")
	}

	user := domain.User{
		Username: req.Username,
		Password: encrypted,
		Email:    req.Email,
		Phone:    req.Phone,
	}

	savedUser, err := as.repo.Create(ctx, user)

	if err != nil {
		return nil, err
	}

	return &savedUser, nil
}

// Login resolves a username to its stored record and verifies the supplied
// password against the bcrypt hash. A missing user and a wrong password
// produce the same error; the real cause only goes to the log.
func (as *AuthService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := as.repo.GetByUsername(ctx, username)

	if err != nil {
		slog.Error("Auth#Login", "get_by_username", err)
		return nil, domain.ErrAuthenticationFailed
	}

	if err := util.ComparePassword(password, user.Password); err != nil {
		slog.Error("Auth#Login", "compare_password", err)
		return nil, domain.ErrAuthenticationFailed
	}

	return &user, nil
}
