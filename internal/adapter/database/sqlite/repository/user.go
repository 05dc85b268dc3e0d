package repository

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	sq "github.com/Masterminds/squirrel"

	"todos/internal/adapter/database/sqlite"
	"todos/internal/core/domain"
	"todos/internal/core/port"
)

type UserRepository struct {
	db *sqlite.DB
}

func NewUserRepository(db *sqlite.DB) port.UserRepository {
	return &UserRepository{db: db}
}

func (ur *UserRepository) UsernameTaken(ctx context.Context, username string) (bool, error) {
	query := ur.db.QueryBuilder.Select("COUNT(1)").
		From("users").
		Where(sq.Eq{"username": username})

	stmt, args, err := query.ToSql()

	if err != nil {
		return false, err
	}

	var count int

	if err := ur.db.QueryRowContext(ctx, stmt, args...).Scan(&count); err != nil {
		return false, err
	}

	return count > 0, nil
}

func (ur *UserRepository) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	query := ur.db.QueryBuilder.Select("id", "username", "password", "email", "phone").
		From("users").
		Where(sq.Eq{"username": username}).
		Limit(1)

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.User{}, err
	}

	var data domain.User
	var email, phone sql.NullString

	err = ur.db.QueryRowContext(ctx, stmt, args...).Scan(
		&data.ID,
		&data.Username,
		&data.Password,
		&email,
		&phone,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, domain.ErrNotFound
	}

	if err != nil {
		slog.Error("Error getting user by username", "error", err)
		return domain.User{}, err
	}

	data.Email = email.String
	data.Phone = phone.String

	return data, nil
}

func (ur *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	query := ur.db.QueryBuilder.Insert("users").
		Columns("username", "password", "email", "phone").
		Values(user.Username, user.Password, user.Email, user.Phone)

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.User{}, err
	}

	result, err := ur.db.ExecContext(ctx, stmt, args...)

	if err != nil {
		if sqlite.IsUniqueViolation(err) {
			return domain.User{}, domain.NewConflictError("username", user.Username)
		}

		slog.Error("Error creating user", "error", err)
		return domain.User{}, err
	}

	id, err := result.LastInsertId()

	if err != nil {
		return domain.User{}, err
	}

	user.ID = int(id)

	return user, nil
}
