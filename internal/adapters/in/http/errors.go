package http

import (
	"errors"
	"net/http"

	"attendance/internal/core/application/usecases/commands"
	"attendance/internal/core/domain/model/assignment"
	"attendance/internal/core/domain/services"
	"attendance/internal/generated/servers"
	"attendance/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// statusOf maps domain errors to HTTP status codes; anything unknown is a 500.
func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, commands.ErrJobNotOwnedByCompany):
		return http.StatusForbidden
	case errors.Is(err, assignment.ErrInvalidTransition),
		errors.Is(err, services.ErrJobAlreadyAssigned),
		errors.Is(err, services.ErrJobNotOpen),
		errors.Is(err, services.ErrWorkerUnavailable),
		errors.Is(err, commands.ErrAlreadyApplied):
		return http.StatusConflict
	case errors.Is(err, services.ErrCheckpointMismatch):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(ctx echo.Context, err error) error {
	code := statusOf(err)
	if code == http.StatusInternalServerError {
		s.logger.Error("request failed",
			zap.String("method", ctx.Request().Method),
			zap.String("path", ctx.Path()),
			zap.Error(err),
		)
		return ctx.JSON(code, servers.Error{Code: code, Message: "Internal error"})
	}
	return ctx.JSON(code, servers.Error{Code: code, Message: err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{Code: http.StatusBadRequest, Message: message})
}

// errorHandler renders echo's own errors (routing, parameter binding) in the API shape.
func errorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := "Internal error"
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			code = httpErr.Code
			message = http.StatusText(code)
			if m, ok := httpErr.Message.(string); ok {
				message = m
			}
		} else {
			logger.Error("unhandled error", zap.Error(err))
		}

		if writeErr := ctx.JSON(code, servers.Error{Code: code, Message: message}); writeErr != nil {
			logger.Debug("writing error response", zap.Error(writeErr))
		}
	}
}
