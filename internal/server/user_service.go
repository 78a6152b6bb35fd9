package server

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/portfolioai/internal/config"
	"github.com/jonathan/portfolioai/internal/db"
	"github.com/jonathan/portfolioai/internal/types"
)

// UserService handles account registration and login.
type UserService struct {
	db       *db.DB
	password *config.PasswordConfig
}

// NewUserService creates a user service.
func NewUserService(database *db.DB, password *config.PasswordConfig) *UserService {
	return &UserService{db: database, password: password}
}

// Register creates a new user account.
func (s *UserService) Register(ctx context.Context, req *types.RegisterRequest) (*types.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.db.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, &ErrEmailAlreadyExists{Email: email}
	}

	hash, err := s.password.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.db.CreateUser(ctx, req.Name, email, hash)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return toAPIUser(user), nil
}

// Login authenticates a user by email and password. Lookup and verification
// failures produce the same error so responses do not reveal which field
// was wrong.
func (s *UserService) Login(ctx context.Context, req *types.LoginRequest) (*types.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.db.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil || !s.password.VerifyPassword(req.Password, user.PasswordHash) {
		return nil, &ErrInvalidCredentials{}
	}
	return toAPIUser(user), nil
}

// toAPIUser converts a user row to the API shape, dropping the hash.
func toAPIUser(u *db.User) *types.User {
	return &types.User{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
