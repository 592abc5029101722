package domain

// User is a persisted account. Password is stored exactly as received.
type User struct {
	ID       int64
	Nom      string
	Email    string
	Password string
	Role     *Role // optional
}

// RoleID returns the referenced role identity, or nil when the user has no role.
func (u *User) RoleID() *int64 {
	if u.Role == nil {
		return nil
	}
	id := u.Role.ID
	return &id
}
