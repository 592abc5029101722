package ports

import (
	"context"

	"github.com/userdirectory/user-service/internal/core/domain"
)

// UserRepository persists users. Create assigns the identity; FindAll returns
// every row eagerly, with the role association resolved.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
}
