package auth

import (
	"context"
	"fmt"
	"time"

	"colibri/internal/core/apperror"
	"colibri/pkg/logger"

	appctx "colibri/internal/core/context"
)

// Session is the result of a successful login.
type Session struct {
	AccessToken string    `json:"accessToken"`
	TokenType   string    `json:"tokenType"`
	ExpiresAt   time.Time `json:"expiresAt"`
	User        *User     `json:"user"`
}

// Service provides authentication logic.
type Service struct {
	userRepo   UserRepository
	jwtService *JWTService
}

// NewService creates a new auth service.
func NewService(userRepo UserRepository, jwtService *JWTService) *Service {
	return &Service{userRepo: userRepo, jwtService: jwtService}
}

// Login authenticates the user and returns a signed session. Unknown
// usernames and wrong passwords are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, creds Credentials) (*Session, error) {
	if creds.Username == "" || creds.Password == "" {
		return nil, apperror.NewValidation("username and password are required")
	}

	user, err := s.userRepo.GetByUsername(ctx, creds.Username)
	if err != nil {
		return nil, apperror.NewUnauthorized("invalid credentials")
	}

	if !user.CheckPassword(creds.Password) {
		logger.Warn(ctx, "failed login attempt", "username", creds.Username)
		return nil, apperror.NewUnauthorized("invalid credentials")
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	logger.Info(ctx, "user logged in",
		"user_id", user.ID,
		"username", user.Username,
		"role", user.Role)

	return &Session{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		User:        user,
	}, nil
}

// Me returns the account behind the authenticated context.
func (s *Service) Me(ctx context.Context) (*User, error) {
	username := appctx.GetUsername(ctx)
	if username == "" {
		return nil, apperror.NewUnauthorized("not authenticated")
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, apperror.NewUnauthorized("account no longer exists")
	}
	return user, nil
}
