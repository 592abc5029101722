package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/userdirectory/user-service/internal/api/handler"
	"github.com/userdirectory/user-service/internal/core/domain"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Renders request validation failures as 400 with the violated fields.
//   - Passes Echo's own errors (bind failures, unknown routes) through.
//   - Logs every other error and answers with a generic 500.
//
// A missing role and a store constraint violation both end up as 500.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := resolveError(err, log, c)
		_ = c.JSON(code, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, any) {
	var ve *handler.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, handler.ValidationErrorResponse{
			Error:      "validation failed",
			Violations: ve.Violations,
		}
	}

	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, handler.ErrorResponse{Error: fmt.Sprintf("%v", he.Message)}
	}

	reason := "unhandled error"
	switch {
	case errors.Is(err, domain.ErrRoleNotFound):
		reason = "referenced role not found"
	case errors.Is(err, domain.ErrConstraintViolation):
		reason = "store constraint violation"
	}

	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg(reason)

	return http.StatusInternalServerError, handler.ErrorResponse{Error: "internal server error"}
}
