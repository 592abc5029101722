package sqlstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/userdirectory/user-service/internal/core/domain"
)

// UserRepository implements ports.UserRepository.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts the user. The role association is written as a bare foreign
// key; roles are never created or updated through this path.
func (r *UserRepository) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	row := userModelFromEntity(u)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&row).Error; err != nil {
		if isConstraintViolation(err) {
			return nil, fmt.Errorf("insert user: %w: %v", domain.ErrConstraintViolation, err)
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	created := row.toEntity()
	if u.Role != nil {
		role := *u.Role
		created.Role = &role
	}
	return &created, nil
}

// FindAll returns every user ordered by id, roles preloaded.
func (r *UserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	var rows []userModel
	if err := r.db.WithContext(ctx).Preload("Role").Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}

	users := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, row.toEntity())
	}
	return users, nil
}

// Count returns the number of stored users.
func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&userModel{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

// isConstraintViolation reports whether err is an integrity failure raised by
// the database. Duplicate keys and foreign keys arrive already translated by
// GORM; NOT NULL, CHECK and length failures arrive as raw driver errors.
func isConstraintViolation(err error) bool {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey),
		errors.Is(err, gorm.ErrForeignKeyViolated),
		errors.Is(err, gorm.ErrCheckConstraintViolated):
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// class 23: integrity_constraint_violation; 22001: string_data_right_truncation
		return strings.HasPrefix(pgErr.Code, "23") || pgErr.Code == "22001"
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.Code == sqlite3.ErrConstraint
	}
	return false
}
