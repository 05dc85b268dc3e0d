package repository

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	sq "github.com/Masterminds/squirrel"
	"go.opentelemetry.io/otel/attribute"

	"todos/internal/adapter/database/sqlite"
	"todos/internal/core/domain"
	"todos/internal/core/port"
	"todos/pkg/tracing"
)

type TodoRepository struct {
	db *sqlite.DB
}

func NewTodoRepository(db *sqlite.DB) port.TodoRepository {
	return &TodoRepository{db: db}
}

func (tr *TodoRepository) Create(ctx context.Context, todo domain.Todo) (domain.Todo, error) {
	ctx, span := tracing.CreateChildSpan(ctx, "db.todo.Create", []attribute.KeyValue{
		attribute.String("db.table", "todo"),
		attribute.String("db.operation", "INSERT"),
		attribute.Int("todo.owner_id", todo.OwnerID),
	})

	defer span.End()

	query := tr.db.QueryBuilder.Insert("todo").
		Columns("title", "status", "owner_id").
		Values(todo.Title, todo.Status, todo.OwnerID)

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.Todo{}, err
	}

	result, err := tr.db.ExecContext(ctx, stmt, args...)

	if err != nil {
		if sqlite.IsUniqueViolation(err) {
			return domain.Todo{}, domain.NewConflictError("title", todo.Title)
		}

		tracing.AddSpanError(span, err)
		slog.Error("Error creating todo", "error", err)
		return domain.Todo{}, err
	}

	id, err := result.LastInsertId()

	if err != nil {
		return domain.Todo{}, err
	}

	return tr.getByID(ctx, int(id), todo.OwnerID)
}

func (tr *TodoRepository) getByID(ctx context.Context, id, ownerID int) (domain.Todo, error) {
	query := tr.db.QueryBuilder.Select("id", "title", "status", "owner_id", "deadline").
		From("todo").
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"owner_id": ownerID}).
		Limit(1)

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.Todo{}, err
	}

	var todo domain.Todo

	err = tr.db.QueryRowContext(ctx, stmt, args...).Scan(
		&todo.ID,
		&todo.Title,
		&todo.Status,
		&todo.OwnerID,
		&todo.Deadline,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return domain.Todo{}, domain.ErrNotFound
	}

	if err != nil {
		slog.Error("Error getting todo by id", "error", err)
		return domain.Todo{}, err
	}

	return todo, nil
}

func (tr *TodoRepository) ListByOwner(ctx context.Context, ownerID int) ([]domain.Todo, error) {
	ctx, span := tracing.CreateChildSpan(ctx, "db.todo.ListByOwner", []attribute.KeyValue{
		attribute.String("db.table", "todo"),
		attribute.String("db.operation", "SELECT"),
		attribute.Int("todo.owner_id", ownerID),
	})

	defer span.End()

	query := tr.db.QueryBuilder.Select("id", "title", "status", "owner_id", "deadline").
		From("todo").
		Where(sq.Eq{"owner_id": ownerID})

	stmt, args, err := query.ToSql()

	if err != nil {
		return nil, err
	}

	rows, err := tr.db.QueryContext(ctx, stmt, args...)

	if err != nil {
		tracing.AddSpanError(span, err)
		slog.Error("Error fetching todos", "error", err)
		return nil, err
	}

	defer rows.Close()

	data := []domain.Todo{}

	for rows.Next() {
		var todo domain.Todo

		err = rows.Scan(&todo.ID, &todo.Title, &todo.Status, &todo.OwnerID, &todo.Deadline)

		if err != nil {
			return nil, err
		}

		data = append(data, todo)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("db.rows_returned", len(data)))

	return data, nil
}

func (tr *TodoRepository) UpdateStatus(ctx context.Context, id, ownerID int, status string) (int64, error) {
	query := tr.db.QueryBuilder.Update("todo").
		Set("status", status).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"owner_id": ownerID})

	stmt, args, err := query.ToSql()

	return tr.exec(ctx, stmt, args, err)
}

func (tr *TodoRepository) UpdateTitle(ctx context.Context, id, ownerID int, title string) (int64, error) {
	query := tr.db.QueryBuilder.Update("todo").
		Set("title", title).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"owner_id": ownerID})

	stmt, args, buildErr := query.ToSql()

	affected, err := tr.exec(ctx, stmt, args, buildErr)

	if err != nil && sqlite.IsUniqueViolation(err) {
		return 0, domain.NewConflictError("title", title)
	}

	return affected, err
}

func (tr *TodoRepository) Delete(ctx context.Context, id, ownerID int) (int64, error) {
	query := tr.db.QueryBuilder.Delete("todo").
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"owner_id": ownerID})

	stmt, args, err := query.ToSql()

	return tr.exec(ctx, stmt, args, err)
}

func (tr *TodoRepository) exec(ctx context.Context, stmt string, args []interface{}, buildErr error) (int64, error) {
	if buildErr != nil {
		return 0, buildErr
	}

	result, err := tr.db.ExecContext(ctx, stmt, args...)

	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}
