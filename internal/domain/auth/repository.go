package auth

import (
	"context"
)

// UserRepository defines storage operations for user accounts.
type UserRepository interface {
	// GetByUsername returns one user or a NotFound error.
	GetByUsername(ctx context.Context, username string) (*User, error)
}
