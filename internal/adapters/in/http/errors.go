package http

import (
	"errors"
	"net/http"

	"routing/internal/core/application/usecases/commands"
	"routing/internal/core/domain/services"
	"routing/internal/generated/servers"
	"routing/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusOf maps use case errors to HTTP status codes. RemoteLookupFailed is
// checked first since its cause may itself be an ObjectNotFound.
func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrRemoteLookupFailed):
		return http.StatusBadGateway
	case errors.Is(err, services.ErrInvalidInput),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrNoRouteFound),
		errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, commands.ErrActionAlreadyExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(ctx echo.Context, err error) error {
	code := statusOf(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "Request failed",
			"method", ctx.Request().Method, "path", ctx.Path(), "error", err)
		message = http.StatusText(code)
	}
	return ctx.JSON(code, servers.Error{Code: code, Message: message})
}

func (s *Server) badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{Code: http.StatusBadRequest, Message: message})
}
