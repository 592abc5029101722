package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/userdirectory/user-service/internal/api/metrics"
	"github.com/userdirectory/user-service/internal/core/domain"
	"github.com/userdirectory/user-service/internal/core/ports"
)

// UserHandler handles HTTP requests for user operations.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Create handles POST /api/users.
//
// Success is 200, not 201, for compatibility with existing clients.
//
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      userRequest  true  "User to create"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  ValidationErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /api/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req userRequest
	if err := c.Bind(&req); err != nil {
		metrics.UserCreateErrorsTotal.WithLabelValues("invalid_payload").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		metrics.UserCreateErrorsTotal.WithLabelValues("validation").Inc()
		return err
	}

	created, err := h.service.Create(c.Request().Context(), toUserRequest(req))
	if err != nil {
		metrics.UserCreateErrorsTotal.WithLabelValues(createErrorReason(err)).Inc()
		return err
	}

	metrics.UsersCreatedTotal.Inc()
	return c.JSON(http.StatusOK, toUserResponse(*created))
}

// List handles GET /api/users.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Success      200  {array}   userResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}

	metrics.UserListSize.Observe(float64(len(users)))
	return c.JSON(http.StatusOK, toUserListResponse(users))
}

func createErrorReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrRoleNotFound):
		return "role_not_found"
	case errors.Is(err, domain.ErrConstraintViolation):
		return "constraint_violation"
	default:
		return "internal"
	}
}
