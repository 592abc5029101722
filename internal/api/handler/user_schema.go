package handler

// ErrorResponse is the error envelope returned on 4xx/5xx responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse is returned with 400 when the body breaks field rules.
type ValidationErrorResponse struct {
	Error      string           `json:"error"`
	Violations []FieldViolation `json:"violations"`
}

// userRequest is the body of POST /api/users.
type userRequest struct {
	ID       *int64 `json:"id,omitempty"`
	Nom      string `json:"nom"      validate:"notblank"`
	Email    string `json:"email"    validate:"notblank,email"`
	Password string `json:"password" validate:"notblank"`
	RoleID   *int64 `json:"roleId"   validate:"required"`
}

// userResponse is the user view returned by both endpoints. It has no
// password field; roleId is null when the user has no role.
type userResponse struct {
	ID     int64  `json:"id"`
	Nom    string `json:"nom"`
	Email  string `json:"email"`
	RoleID *int64 `json:"roleId"`
}
