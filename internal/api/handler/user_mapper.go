package handler

import (
	"github.com/userdirectory/user-service/internal/core/ports"
)

// --- Request → Service input ---

func toUserRequest(r userRequest) ports.UserRequest {
	return ports.UserRequest{
		ID:       r.ID,
		Nom:      r.Nom,
		Email:    r.Email,
		Password: r.Password,
		RoleID:   r.RoleID,
	}
}

// --- Service result → HTTP response ---

func toUserResponse(u ports.UserResponse) userResponse {
	return userResponse{
		ID:     u.ID,
		Nom:    u.Nom,
		Email:  u.Email,
		RoleID: u.RoleID,
	}
}

func toUserListResponse(users []ports.UserResponse) []userResponse {
	out := make([]userResponse, len(users))
	for i, u := range users {
		out[i] = toUserResponse(u)
	}
	return out
}
