package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/openshelf/openshelf-server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

type UserRepository struct {
	db *Connection
}

func NewUserRepository(db *Connection) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (model.User, error) {
	var user model.User
	query := `SELECT id, username, password_hash, is_admin, created_at, updated_at, deleted_at
			  FROM users WHERE username = $1 AND deleted_at IS NULL`

	err := r.db.QueryRow(ctx, query, username).Scan(
		&user.ID, &user.Username, &user.PasswordHash, &user.IsAdmin,
		&user.CreatedAt, &user.UpdatedAt, &user.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, wrapStorageErr("get user by username", err)
	}

	return user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	var user model.User
	query := `SELECT id, username, password_hash, is_admin, created_at, updated_at, deleted_at
			  FROM users WHERE id = $1 AND deleted_at IS NULL`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&user.ID, &user.Username, &user.PasswordHash, &user.IsAdmin,
		&user.CreatedAt, &user.UpdatedAt, &user.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, wrapStorageErr("get user by id", err)
	}

	return user, nil
}

func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	query := `INSERT INTO users (id, username, password_hash, is_admin, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, username, password_hash, is_admin, created_at, updated_at, deleted_at`

	var savedUser model.User
	err := r.db.QueryRow(ctx, query,
		user.ID, user.Username, user.PasswordHash, user.IsAdmin,
		user.CreatedAt, user.UpdatedAt,
	).Scan(
		&savedUser.ID, &savedUser.Username, &savedUser.PasswordHash, &savedUser.IsAdmin,
		&savedUser.CreatedAt, &savedUser.UpdatedAt, &savedUser.DeletedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return model.User{}, model.ErrConflict
		}
		return model.User{}, wrapStorageErr("create user", err)
	}

	return savedUser, nil
}

func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE users SET deleted_at = NOW(), updated_at = NOW()
			  WHERE id = $1 AND deleted_at IS NULL`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return wrapStorageErr("delete user", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}
