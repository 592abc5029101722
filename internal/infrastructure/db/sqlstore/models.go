package sqlstore

import "github.com/userdirectory/user-service/internal/core/domain"

// roleModel maps the role table.
type roleModel struct {
	ID      int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Libelle string `gorm:"column:libelle;type:varchar(30);uniqueIndex"`
}

func (roleModel) TableName() string { return "role" }

// userModel maps the users table. role_id is a nullable foreign key to role.id.
type userModel struct {
	ID       int64      `gorm:"column:id;primaryKey;autoIncrement"`
	Nom      string     `gorm:"column:nom;type:varchar(30);not null;check:chk_users_nom_length,length(nom) <= 30"`
	Email    string     `gorm:"column:email;type:varchar(255);not null;uniqueIndex"`
	Password string     `gorm:"column:password;type:varchar(255);not null"`
	RoleID   *int64     `gorm:"column:role_id"`
	Role     *roleModel `gorm:"foreignKey:RoleID;references:ID"`
}

func (userModel) TableName() string { return "users" }

func (m roleModel) toEntity() domain.Role {
	return domain.Role{ID: m.ID, Libelle: m.Libelle}
}

func userModelFromEntity(u *domain.User) userModel {
	return userModel{
		ID:       u.ID,
		Nom:      u.Nom,
		Email:    u.Email,
		Password: u.Password,
		RoleID:   u.RoleID(),
	}
}

func (m userModel) toEntity() domain.User {
	u := domain.User{
		ID:       m.ID,
		Nom:      m.Nom,
		Email:    m.Email,
		Password: m.Password,
	}
	if m.Role != nil {
		role := m.Role.toEntity()
		u.Role = &role
	} else if m.RoleID != nil {
		u.Role = &domain.Role{ID: *m.RoleID}
	}
	return u
}
