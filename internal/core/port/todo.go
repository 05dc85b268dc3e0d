package port

import (
	"context"

	"todos/internal/core/domain"
)

// TodoRepository is the storage contract for todo rows. Every mutator
// filters by both id and owner id and reports the number of rows it
// touched; the service decides what zero rows means.
type TodoRepository interface {
	Create(ctx context.Context, todo domain.Todo) (domain.Todo, error)
	ListByOwner(ctx context.Context, ownerID int) ([]domain.Todo, error)
	UpdateStatus(ctx context.Context, id, ownerID int, status string) (int64, error)
	UpdateTitle(ctx context.Context, id, ownerID int, title string) (int64, error)
	Delete(ctx context.Context, id, ownerID int) (int64, error)
}

type TodoService interface {
	Create(ctx context.Context, title string) (domain.Todo, error)
	List(ctx context.Context) ([]domain.Todo, error)
	UpdateStatus(ctx context.Context, id int, status string) error
	UpdateTitle(ctx context.Context, id int, title string) error
	Delete(ctx context.Context, id int) error
}
