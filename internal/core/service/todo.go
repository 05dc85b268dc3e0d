package service

import (
	"context"
	"log/slog"

	"todos/internal/core/domain"
	"todos/internal/core/port"
)

// TodoService is bound to one authenticated user at construction time.
// Every statement it issues filters by that user's id, so an item that
// exists but belongs to someone else is indistinguishable from one that
// does not exist.
type TodoService struct {
	repo port.TodoRepository
	user domain.User
}

func NewTodoService(repo port.TodoRepository, user domain.User) *TodoService {
	return &TodoService{repo: repo, user: user}
}

func (ts *TodoService) Create(ctx context.Context, title string) (domain.Todo, error) {
	todo := domain.Todo{
		Title:   title,
		Status:  domain.StatusTodo,
		OwnerID: ts.user.ID,
	}

	saved, err := ts.repo.Create(ctx, todo)

	if err != nil {
		slog.Error("Todo#Create", "error", err, "title", title)
		return domain.Todo{}, err
	}

	return saved, nil
}

func (ts *TodoService) List(ctx context.Context) ([]domain.Todo, error) {
	return ts.repo.ListByOwner(ctx, ts.user.ID)
}

func (ts *TodoService) UpdateStatus(ctx context.Context, id int, status string) error {
	affected, err := ts.repo.UpdateStatus(ctx, id, ts.user.ID, status)

	if err != nil {
		return err
	}

	if affected == 0 {
		slog.Debug("Todo#UpdateStatus no-op", "id", id, "owner_id", ts.user.ID)
	}

	return nil
}

func (ts *TodoService) UpdateTitle(ctx context.Context, id int, title string) error {
	affected, err := ts.repo.UpdateTitle(ctx, id, ts.user.ID, title)

	if err != nil {
		return err
	}

	if affected == 0 {
		slog.Debug("Todo#UpdateTitle no-op", "id", id, "owner_id", ts.user.ID)
	}

	return nil
}

// Delete is idempotent: deleting an id that is already gone, or that
// belongs to another user, touches zero rows and returns nil.
func (ts *TodoService) Delete(ctx context.Context, id int) error {
	affected, err := ts.repo.Delete(ctx, id, ts.user.ID)

	if err != nil {
		return err
	}

	if affected == 0 {
		slog.Debug("Todo#Delete no-op", "id", id, "owner_id", ts.user.ID)
	}

	return nil
}
