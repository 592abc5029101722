package sqlstore

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/userdirectory/user-service/internal/core/domain"
)

// Migrate creates or updates the role and users tables.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(&roleModel{}, &userModel{}); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// SeedRoles makes sure a role exists for every label and returns them in the
// order given. Existing roles are left untouched.
func SeedRoles(ctx context.Context, db *gorm.DB, labels ...string) ([]domain.Role, error) {
	roles := make([]domain.Role, 0, len(labels))
	for _, label := range labels {
		label = strings.TrimSpace(label)
		if label == "" {
			continue
		}

		var row roleModel
		if err := db.WithContext(ctx).Where(roleModel{Libelle: label}).FirstOrCreate(&row).Error; err != nil {
			return nil, fmt.Errorf("seed role %q: %w", label, err)
		}
		roles = append(roles, row.toEntity())
	}
	return roles, nil
}
