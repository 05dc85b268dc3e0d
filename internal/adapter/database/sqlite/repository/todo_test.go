package repository_test

import (
	"context"
	"testing"
	"time"

	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	. "todos/pkg/test"
	"todos/pkg/test/factory"

	"todos/internal/adapter/database/sqlite/repository"
	"todos/internal/core/domain"
	"todos/internal/core/port"
)

type TodoRepositoryTestSuite struct {
	suite.Suite
	repo  port.TodoRepository
	owner domain.User
	other domain.User
}

func (s *TodoRepositoryTestSuite) SetupTest() {
	db := InitTestDB()

	s.repo = repository.NewTodoRepository(db)

	userRepo := repository.NewUserRepository(db)

	owner, err := userRepo.Create(context.Background(), factory.NewUser[domain.User](map[string]any{"Username": "owner"}))
	assert.NoError(s.T(), err)

	other, err := userRepo.Create(context.Background(), factory.NewUser[domain.User](map[string]any{"Username": "other"}))
	assert.NoError(s.T(), err)

	s.owner = owner
	s.other = other
}

func TestTodoRepositoryTestSuite(t *testing.T) {
	RegisterTestingT(t)
	suite.Run(t, new(TodoRepositoryTestSuite))
}

func (s *TodoRepositoryTestSuite) createTodo(title string, ownerID int) domain.Todo {
	todo, err := s.repo.Create(context.Background(), domain.Todo{
		Title:   title,
		Status:  domain.StatusTodo,
		OwnerID: ownerID,
	})
	assert.NoError(s.T(), err)

	return todo
}

func (s *TodoRepositoryTestSuite) TestCreate_AssignsIDAndDeadline() {
	todo := s.createTodo("buy milk", s.owner.ID)

	Expect(todo.ID).To(BeNumerically(">", 0))
	Expect(todo.OwnerID).To(Equal(s.owner.ID))
	Expect(todo.Deadline).To(BeTemporally("~", time.Now().UTC().Add(24*time.Hour), time.Minute))
}

func (s *TodoRepositoryTestSuite) TestListByOwner_Empty() {
	todos, err := s.repo.ListByOwner(context.Background(), s.owner.ID)

	assert.NoError(s.T(), err)
	Expect(todos).To(BeEmpty())
}

func (s *TodoRepositoryTestSuite) TestListByOwner_FiltersByOwner() {
	s.createTodo("mine", s.owner.ID)
	s.createTodo("theirs", s.other.ID)

	todos, err := s.repo.ListByOwner(context.Background(), s.owner.ID)

	assert.NoError(s.T(), err)
	Expect(todos).To(HaveLen(1))
	Expect(todos[0].Title).To(Equal("mine"))
}

func (s *TodoRepositoryTestSuite) TestUpdateStatus_ReportsRowsAffected() {
	todo := s.createTodo("buy milk", s.owner.ID)

	affected, err := s.repo.UpdateStatus(context.Background(), todo.ID, s.owner.ID, domain.StatusDone)

	assert.NoError(s.T(), err)
	Expect(affected).To(Equal(int64(1)))
}

func (s *TodoRepositoryTestSuite) TestUpdateStatus_WrongOwnerTouchesNothing() {
	todo := s.createTodo("buy milk", s.owner.ID)

	affected, err := s.repo.UpdateStatus(context.Background(), todo.ID, s.other.ID, domain.StatusDone)

	assert.NoError(s.T(), err)
	Expect(affected).To(Equal(int64(0)))

	todos, _ := s.repo.ListByOwner(context.Background(), s.owner.ID)
	Expect(todos[0].Status).To(Equal(domain.StatusTodo))
}

func (s *TodoRepositoryTestSuite) TestUpdateTitle_ReportsRowsAffected() {
	todo := s.createTodo("buy milk", s.owner.ID)

	affected, err := s.repo.UpdateTitle(context.Background(), todo.ID, s.owner.ID, "buy oat milk")

	assert.NoError(s.T(), err)
	Expect(affected).To(Equal(int64(1)))
}

func (s *TodoRepositoryTestSuite) TestDelete_WrongOwnerTouchesNothing() {
	todo := s.createTodo("buy milk", s.owner.ID)

	affected, err := s.repo.Delete(context.Background(), todo.ID, s.other.ID)

	assert.NoError(s.T(), err)
	Expect(affected).To(Equal(int64(0)))

	todos, _ := s.repo.ListByOwner(context.Background(), s.owner.ID)
	Expect(todos).To(HaveLen(1))
}

func (s *TodoRepositoryTestSuite) TestDelete_MissingRowTouchesNothing() {
	affected, err := s.repo.Delete(context.Background(), 12345, s.owner.ID)

	assert.NoError(s.T(), err)
	Expect(affected).To(Equal(int64(0)))
}
