package repository

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	database "todos/internal/adapter/database/postgres"
	"todos/internal/core/domain"
	"todos/internal/core/port"
)

type UserRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) port.UserRepository {
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

	if err := ur.db.QueryRow(ctx, stmt, args...).Scan(&count); err != nil {
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

	err = ur.db.QueryRow(ctx, stmt, args...).Scan(
		&data.ID,
		&data.Username,
		&data.Password,
		&email,
		&phone,
	)

	if errors.Is(err, pgx.ErrNoRows) {
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
		Values(user.Username, user.Password, user.Email, user.Phone).
		Suffix("RETURNING id")

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.User{}, err
	}

	err = ur.db.QueryRow(ctx, stmt, args...).Scan(&user.ID)

	if err != nil {
		if database.IsUniqueViolation(err) {
			return domain.User{}, domain.NewConflictError("username", user.Username)
		}

		slog.Error("Error creating user", "error", err)
		return domain.User{}, err
	}

	return user, nil
}
