package dto

import (
	"time"

	"colibri/internal/domain/auth"
)

// LoginRequest is the request body for POST /auth/login.
type LoginRequest struct {
	Username string `json:"usuario" binding:"required"`
	Password string `json:"clave" binding:"required"`
}

// ToCredentials converts the request to domain credentials.
func (r *LoginRequest) ToCredentials() auth.Credentials {
	return auth.Credentials{Username: r.Username, Password: r.Password}
}

// UserResponse carries the public account fields.
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"usuario"`
	Name     string `json:"nombre"`
	Role     string `json:"rol"`
}

// FromUser creates UserResponse from a domain user.
func FromUser(u *auth.User) UserResponse {
	return UserResponse{
		ID:       u.ID.String(),
		Username: u.Username,
		Name:     u.Name,
		Role:     u.Role,
	}
}

// LoginResponse is the response body for a successful login.
type LoginResponse struct {
	AccessToken string       `json:"token"`
	TokenType   string       `json:"tipo_token"`
	ExpiresAt   time.Time    `json:"expira"`
	User        UserResponse `json:"usuario"`
}

// FromSession creates LoginResponse from a domain session.
func FromSession(s *auth.Session) LoginResponse {
	return LoginResponse{
		AccessToken: s.AccessToken,
		TokenType:   s.TokenType,
		ExpiresAt:   s.ExpiresAt,
		User:        FromUser(s.User),
	}
}
