// Package context provides request-scoped values extraction.
package context

import (
	"context"
)

// Role codes. The service knows exactly two roles: the administrator can
// manage prices and see every surface, the cashier rings up sales and
// registers orders.
const (
	RoleAdmin   = "admin"
	RoleCashier = "cashier"
)

// UserContext contains authenticated user information.
type UserContext struct {
	UserID   string
	Username string
	Name     string
	Role     string
}

// IsAdmin reports whether the user holds the administrator role.
func (u *UserContext) IsAdmin() bool {
	return u.Role == RoleAdmin
}

type userContextKey struct{}

// WithUser adds UserContext to context.
func WithUser(ctx context.Context, user *UserContext) context.Context {
	return context.WithValue(ctx, userContextKey{}, user)
}

// GetUser returns UserContext from context.
func GetUser(ctx context.Context) *UserContext {
	if v, ok := ctx.Value(userContextKey{}).(*UserContext); ok {
		return v
	}
	return nil
}

// GetUserID returns user ID from context or empty string.
func GetUserID(ctx context.Context) string {
	if u := GetUser(ctx); u != nil {
		return u.UserID
	}
	return ""
}

// GetUsername returns the login name from context or empty string.
func GetUsername(ctx context.Context) string {
	if u := GetUser(ctx); u != nil {
		return u.Username
	}
	return ""
}

// HasRole checks if user has specific role.
func HasRole(ctx context.Context, role string) bool {
	u := GetUser(ctx)
	if u == nil {
		return false
	}
	return u.Role == role
}
