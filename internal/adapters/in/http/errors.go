package http

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"cafeteria/internal/adapters/out/postgres/pgerr"
	"cafeteria/internal/generated/servers"
	"cafeteria/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

const retryAfterSeconds = "1"

// NewHTTPErrorHandler renders every error returned by a handler or
// middleware as a servers.Error body.
func NewHTTPErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	logger = logger.With("component", "HTTPErrorHandler")

	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, body := errorResponse(err)
		if status >= http.StatusInternalServerError {
			logger.ErrorContext(c.Request().Context(), "request failed",
				"method", c.Request().Method,
				"path", c.Path(),
				"status", status,
				"error", err,
			)
		}
		if status == http.StatusServiceUnavailable {
			c.Response().Header().Set("Retry-After", retryAfterSeconds)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, body)
		}
		if writeErr != nil {
			logger.ErrorContext(c.Request().Context(), "failed to write error response", "error", writeErr)
		}
	}
}

// errorResponse maps err to a status code and body. Anything it does not
// recognise becomes a generic internal error.
func errorResponse(err error) (int, servers.Error) {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) && httpErr.Internal != nil {
		if status, body, ok := domainError(httpErr.Internal); ok {
			return status, body
		}
	}

	if status, body, ok := domainError(err); ok {
		return status, body
	}

	if httpErr != nil {
		return echoError(httpErr)
	}

	return newError(http.StatusInternalServerError, servers.Internal, "internal server error")
}

func domainError(err error) (int, servers.Error, bool) {
	var validationErrs validator.ValidationErrors

	switch {
	case errors.Is(err, errs.ErrUnauthenticated):
		return withOK(newError(http.StatusUnauthorized, servers.Unauthenticated, err.Error()))
	case errors.Is(err, errs.ErrForbidden):
		return withOK(newError(http.StatusForbidden, servers.Forbidden, err.Error()))
	case errors.Is(err, errs.ErrObjectNotFound):
		return withOK(newError(http.StatusNotFound, servers.NotFound, err.Error()))
	case errors.Is(err, errs.ErrObjectIsUnavailable):
		return withOK(newError(http.StatusNotFound, servers.ProductUnavailable, err.Error()))
	case errors.Is(err, errs.ErrInvalidTransition):
		return withOK(newError(http.StatusBadRequest, servers.InvalidTransition, err.Error()))
	case errors.Is(err, errs.ErrConflict):
		return withOK(newError(http.StatusConflict, servers.Conflict, err.Error()))
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return withOK(newError(http.StatusBadRequest, servers.InvalidInput, err.Error()))
	case errors.As(err, &validationErrs):
		return withOK(newError(http.StatusBadRequest, servers.InvalidInput, validationMessage(validationErrs)))
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, sql.ErrConnDone), pgerr.IsQueryCanceled(err):
		return withOK(newError(http.StatusServiceUnavailable, servers.ResourceExhausted, "service is busy, retry later"))
	}

	return 0, servers.Error{}, false
}

func echoError(httpErr *echo.HTTPError) (int, servers.Error) {
	message := http.StatusText(httpErr.Code)
	if m, ok := httpErr.Message.(string); ok && m != "" {
		message = m
	}

	switch code := httpErr.Code; {
	case code == http.StatusUnauthorized:
		return newError(code, servers.Unauthenticated, message)
	case code == http.StatusForbidden:
		return newError(code, servers.Forbidden, message)
	case code == http.StatusNotFound:
		return newError(code, servers.NotFound, message)
	case code == http.StatusConflict:
		return newError(code, servers.Conflict, message)
	case code == http.StatusServiceUnavailable:
		return newError(code, servers.ResourceExhausted, message)
	case code >= http.StatusBadRequest && code < http.StatusInternalServerError:
		return newError(code, servers.InvalidInput, message)
	default:
		return newError(http.StatusInternalServerError, servers.Internal, "internal server error")
	}
}

func validationMessage(validationErrs validator.ValidationErrors) string {
	parts := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param()))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s must satisfy %s", fe.Field(), fe.Tag()))
	}
	return "value is invalid: " + strings.Join(parts, "; ")
}

func newError(status int, kind servers.ErrorKind, message string) (int, servers.Error) {
	return status, servers.Error{Code: status, Kind: kind, Message: message}
}

func withOK(status int, body servers.Error) (int, servers.Error, bool) {
	return status, body, true
}
