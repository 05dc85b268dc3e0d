package service_test

import (
	"context"
	"errors"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	. "todos/pkg/test"

	"todos/internal/adapter/database/sqlite/repository"
	"todos/internal/core/domain"
	"todos/internal/core/model/request"
	"todos/internal/core/port"
	"todos/internal/core/service"
)

type AuthServiceTestSuite struct {
	suite.Suite
	Service port.AuthService
	repo    port.UserRepository
}

func (s *AuthServiceTestSuite) SetupTest() {
	db := InitTestDB()

	s.repo = repository.NewUserRepository(db)
	s.Service = service.NewAuthService(s.repo)
}

func TestAuthServiceTestSuite(t *testing.T) {
	RegisterTestingT(t)
	suite.Run(t, new(AuthServiceTestSuite))
}

func (s *AuthServiceTestSuite) TestRegister_Success() {
	req := &request.SignUpRequest{
		Username: "alice",
		Password: "password123",
		Email:    "alice@example.com",
		Phone:    "555-0100",
	}

	user, err := s.Service.Register(context.Background(), req)

	assert.NoError(s.T(), err)
	assert.NotNil(s.T(), user)
	assert.Equal(s.T(), "alice", user.Username)
	Expect(user.ID).To(BeNumerically(">", 0))
}

func (s *AuthServiceTestSuite) TestRegister_HashesPassword() {
	req := &request.SignUpRequest{
		Username: "alice",
		Password: "password123",
	}

	_, err := s.Service.Register(context.Background(), req)
	assert.NoError(s.T(), err)

	stored, err := s.repo.GetByUsername(context.Background(), "alice")

	assert.NoError(s.T(), err)
	Expect(stored.Password).NotTo(Equal("password123"))
	Expect(stored.Password).NotTo(BeEmpty())
}

func (s *AuthServiceTestSuite) TestRegister_DuplicateUsername() {
	req := &request.SignUpRequest{
		Username: "alice",
		Password: "password123",
	}

	first, err := s.Service.Register(context.Background(), req)
	assert.NoError(s.T(), err)

	again := &request.SignUpRequest{
		Username: "alice",
		Password: "different456",
	}

	_, err = s.Service.Register(context.Background(), again)

	assert.Error(s.T(), err)
	Expect(errors.Is(err, domain.ErrConflict)).To(BeTrue())
	Expect(err.Error()).To(ContainSubstring("alice"))

	// The first account is untouched.
	stored, err := s.repo.GetByUsername(context.Background(), "alice")
	assert.NoError(s.T(), err)
	assert.Equal(s.T(), first.ID, stored.ID)
}

func (s *AuthServiceTestSuite) TestRegister_EmptyUsername() {
	req := &request.SignUpRequest{
		Username: "",
		Password: "password123",
	}

	_, err := s.Service.Register(context.Background(), req)

	assert.Error(s.T(), err)
}

func (s *AuthServiceTestSuite) TestLogin_Success() {
	req := &request.SignUpRequest{
		Username: "alice",
		Password: "password123",
	}

	created, err := s.Service.Register(context.Background(), req)
	assert.NoError(s.T(), err)

	user, err := s.Service.Login(context.Background(), "alice", "password123")

	assert.NoError(s.T(), err)
	assert.NotNil(s.T(), user)
	assert.Equal(s.T(), created.ID, user.ID)
	assert.Equal(s.T(), "alice", user.Username)
	Expect(user.Password).NotTo(Equal("password123"))
}

func (s *AuthServiceTestSuite) TestLogin_WrongPassword() {
	req := &request.SignUpRequest{
		Username: "alice",
		Password: "password123",
	}

	_, err := s.Service.Register(context.Background(), req)
	assert.NoError(s.T(), err)

	_, err = s.Service.Login(context.Background(), "alice", "wrong-password")

	assert.Error(s.T(), err)
	Expect(errors.Is(err, domain.ErrAuthenticationFailed)).To(BeTrue())
}

func (s *AuthServiceTestSuite) TestLogin_UnknownUsername() {
	_, err := s.Service.Login(context.Background(), "nobody", "password123")

	assert.Error(s.T(), err)
	Expect(errors.Is(err, domain.ErrAuthenticationFailed)).To(BeTrue())
}

// Unknown username and wrong password are the same error, so the login
// path cannot be used to probe which usernames exist.
func (s *AuthServiceTestSuite) TestLogin_FailureIsUniform() {
	req := &request.SignUpRequest{
		Username: "alice",
		Password: "password123",
	}

	_, err := s.Service.Register(context.Background(), req)
	assert.NoError(s.T(), err)

	_, wrongPassword := s.Service.Login(context.Background(), "alice", "wrong-password")
	_, unknownUser := s.Service.Login(context.Background(), "nobody", "password123")

	Expect(wrongPassword.Error()).To(Equal(unknownUser.Error()))
}
