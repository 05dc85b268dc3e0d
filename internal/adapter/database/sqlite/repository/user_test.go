package repository_test

import (
	"context"
	"errors"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	. "todos/pkg/test"
	"todos/pkg/test/factory"

	"todos/internal/adapter/database/sqlite/repository"
	"todos/internal/core/domain"
	"todos/internal/core/port"
)

type UserRepositoryTestSuite struct {
	suite.Suite
	repo port.UserRepository
}

func (s *UserRepositoryTestSuite) SetupTest() {
	s.repo = repository.NewUserRepository(InitTestDB())
}

func TestUserRepositoryTestSuite(t *testing.T) {
	RegisterTestingT(t)
	suite.Run(t, new(UserRepositoryTestSuite))
}

func (s *UserRepositoryTestSuite) TestCreate_AssignsID() {
	user := factory.NewUser[domain.User](map[string]any{"Username": "alice"})

	saved, err := s.repo.Create(context.Background(), user)

	assert.NoError(s.T(), err)
	Expect(saved.ID).To(BeNumerically(">", 0))
	Expect(saved.Username).To(Equal("alice"))
}

func (s *UserRepositoryTestSuite) TestCreate_DuplicateUsername() {
	user := factory.NewUser[domain.User](map[string]any{"Username": "alice"})

	_, err := s.repo.Create(context.Background(), user)
	assert.NoError(s.T(), err)

	_, err = s.repo.Create(context.Background(), user)

	assert.Error(s.T(), err)
	Expect(errors.Is(err, domain.ErrConflict)).To(BeTrue())
}

func (s *UserRepositoryTestSuite) TestUsernameTaken() {
	taken, err := s.repo.UsernameTaken(context.Background(), "alice")

	assert.NoError(s.T(), err)
	Expect(taken).To(BeFalse())

	user := factory.NewUser[domain.User](map[string]any{"Username": "alice"})

	_, err = s.repo.Create(context.Background(), user)
	assert.NoError(s.T(), err)

	taken, err = s.repo.UsernameTaken(context.Background(), "alice")

	assert.NoError(s.T(), err)
	Expect(taken).To(BeTrue())
}

// Username matching is case-sensitive as stored.
func (s *UserRepositoryTestSuite) TestUsernameTaken_CaseSensitive() {
	user := factory.NewUser[domain.User](map[string]any{"Username": "Alice"})

	_, err := s.repo.Create(context.Background(), user)
	assert.NoError(s.T(), err)

	taken, err := s.repo.UsernameTaken(context.Background(), "alice")

	assert.NoError(s.T(), err)
	Expect(taken).To(BeFalse())
}

func (s *UserRepositoryTestSuite) TestGetByUsername_RoundTrip() {
	user := factory.NewUser[domain.User](map[string]any{
		"Username": "alice",
		"Email":    "alice@example.com",
		"Phone":    "555-0100",
	})

	saved, err := s.repo.Create(context.Background(), user)
	assert.NoError(s.T(), err)

	found, err := s.repo.GetByUsername(context.Background(), "alice")

	assert.NoError(s.T(), err)
	Expect(found.ID).To(Equal(saved.ID))
	Expect(found.Email).To(Equal("alice@example.com"))
	Expect(found.Phone).To(Equal("555-0100"))
	Expect(found.Password).To(Equal(user.Password))
}

func (s *UserRepositoryTestSuite) TestGetByUsername_NotFound() {
	_, err := s.repo.GetByUsername(context.Background(), "nobody")

	assert.Error(s.T(), err)
	Expect(errors.Is(err, domain.ErrNotFound)).To(BeTrue())
}
