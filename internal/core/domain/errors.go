package domain

import "errors"

// ErrRoleNotFound is returned when a request references a role id that does not exist.
var ErrRoleNotFound = errors.New("role not found")

// ErrConstraintViolation is returned when the store rejects a write
// (duplicate email, dangling foreign key, NOT NULL or length constraints).
var ErrConstraintViolation = errors.New("constraint violation")
