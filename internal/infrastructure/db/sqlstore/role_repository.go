package sqlstore

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/userdirectory/user-service/internal/core/domain"
)

// RoleRepository implements ports.RoleRepository.
type RoleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) *RoleRepository {
	return &RoleRepository{db: db}
}

// FindByID loads a role by primary key.
func (r *RoleRepository) FindByID(ctx context.Context, id int64) (*domain.Role, error) {
	var row roleModel
	err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("role %d: %w", id, domain.ErrRoleNotFound)
		}
		return nil, fmt.Errorf("find role: %w", err)
	}
	role := row.toEntity()
	return &role, nil
}
