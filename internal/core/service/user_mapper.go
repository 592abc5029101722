package service

import (
	"context"
	"fmt"

	"github.com/userdirectory/user-service/internal/core/domain"
	"github.com/userdirectory/user-service/internal/core/ports"
)

// --- Request → Record ---

// toEntity resolves the referenced role and builds the record to insert.
// A missing or unknown role id fails with domain.ErrRoleNotFound.
func (s *UserService) toEntity(ctx context.Context, req ports.UserRequest) (*domain.User, error) {
	if req.RoleID == nil {
		return nil, fmt.Errorf("%w: no role id given", domain.ErrRoleNotFound)
	}

	role, err := s.roles.FindByID(ctx, *req.RoleID)
	if err != nil {
		return nil, err
	}

	// The store assigns the id; a client-supplied one is ignored.
	return &domain.User{
		Nom:      req.Nom,
		Email:    req.Email,
		Password: req.Password,
		Role:     role,
	}, nil
}

// --- Record → Response ---

func toResponse(u *domain.User) ports.UserResponse {
	return ports.UserResponse{
		ID:     u.ID,
		Nom:    u.Nom,
		Email:  u.Email,
		RoleID: u.RoleID(),
	}
}

func toResponses(users []domain.User) []ports.UserResponse {
	out := make([]ports.UserResponse, len(users))
	for i := range users {
		out[i] = toResponse(&users[i])
	}
	return out
}
