package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/userdirectory/user-service/internal/core/ports"
)

// UserService implements user creation and listing.
type UserService struct {
	users  ports.UserRepository
	roles  ports.RoleRepository
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, roles ports.RoleRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, roles: roles, logger: logger}
}

// Create resolves the role, inserts the user and maps the stored row back.
// Uniqueness of the email is left to the store. Failures are returned, not
// logged; the HTTP error handler logs the cause.
func (s *UserService) Create(ctx context.Context, req ports.UserRequest) (*ports.UserResponse, error) {
	user, err := s.toEntity(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	saved, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	resp := toResponse(saved)
	s.logger.Info().Int64("user_id", resp.ID).Interface("role_id", resp.RoleID).Msg("user created")
	return &resp, nil
}

// ListAll returns every stored user, in store order.
func (s *UserService) ListAll(ctx context.Context) ([]ports.UserResponse, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return toResponses(users), nil
}
