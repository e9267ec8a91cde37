package memory

import (
	"context"
	"sync"

	"colibri/internal/core/apperror"
	"colibri/internal/domain/auth"
)

// UserRepository is the in-memory auth.UserRepository.
type UserRepository struct {
	mu    sync.RWMutex
	users map[string]*auth.User // keyed by username
}

// NewUserRepository creates an empty in-memory user store.
func NewUserRepository() *UserRepository {
	return &UserRepository{
		users: make(map[string]*auth.User),
	}
}

// Add stores a user, replacing any existing account with the same username.
func (r *UserRepository) Add(user *auth.User) {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *user
	r.users[user.Username] = &copied
}

// GetByUsername implements auth.UserRepository.
func (r *UserRepository) GetByUsername(_ context.Context, username string) (*auth.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[username]
	if !ok {
		return nil, apperror.NewNotFound("user", username)
	}
	copied := *u
	return &copied, nil
}

var _ auth.UserRepository = (*UserRepository)(nil)
