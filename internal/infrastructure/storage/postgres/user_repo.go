package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"colibri/internal/core/apperror"
	"colibri/internal/domain/auth"
)

const userTable = "users"

var userColumns = []string{"id", "username", "name", "password_hash", "role", "created_at"}

// UserRepository is the PostgreSQL auth.UserRepository.
type UserRepository struct {
	txManager *TxManager
}

// NewUserRepository creates a PostgreSQL-backed user repository.
func NewUserRepository(txManager *TxManager) *UserRepository {
	return &UserRepository{txManager: txManager}
}

var _ auth.UserRepository = (*UserRepository)(nil)

// GetByUsername implements auth.UserRepository.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*auth.User, error) {
	sql, args, err := builder().
		Select(userColumns...).
		From(userTable).
		Where(squirrel.Eq{"username": username}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var user auth.User
	if err := pgxscan.Get(ctx, r.txManager.GetQuerier(ctx), &user, sql, args...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("user", username)
		}
		return nil, apperror.NewDatabase(err)
	}
	return &user, nil
}

// Upsert stores or replaces a user account. Used by the seeder.
func (r *UserRepository) Upsert(ctx context.Context, user *auth.User) error {
	_, err := r.txManager.GetQuerier(ctx).Exec(ctx, `
        INSERT INTO users (id, username, name, password_hash, role, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (username) DO UPDATE SET
            name = EXCLUDED.name,
            password_hash = EXCLUDED.password_hash,
            role = EXCLUDED.role
	`, user.ID, user.Username, user.Name, user.PasswordHash, user.Role, user.CreatedAt)
	if err != nil {
		return apperror.NewDatabase(err)
	}
	return nil
}
