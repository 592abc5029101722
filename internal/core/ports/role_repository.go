package ports

import (
	"context"

	"github.com/userdirectory/user-service/internal/core/domain"
)

// RoleRepository resolves roles by identity.
// FindByID returns domain.ErrRoleNotFound when no row matches.
type RoleRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Role, error)
}
