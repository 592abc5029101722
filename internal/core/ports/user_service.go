package ports

import "context"

// UserRequest is the DTO passed from the transport layer to UserService.
// ID is optional and only carried through; RoleID is required.
type UserRequest struct {
	ID       *int64
	Nom      string
	Email    string
	Password string
	RoleID   *int64
}

// UserResponse is returned by UserService. It never carries the password.
type UserResponse struct {
	ID     int64
	Nom    string
	Email  string
	RoleID *int64 // nil when the user has no role
}

// UserService defines use-case operations for users.
type UserService interface {
	Create(ctx context.Context, req UserRequest) (*UserResponse, error)
	ListAll(ctx context.Context) ([]UserResponse, error)
}
