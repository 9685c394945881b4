package middleware

import (
	"log/slog"
	"net/http"

	"pantry/internal/delivery/http/response"
	domainerrors "pantry/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as echo's HTTPErrorHandler. It is the
// last resort for errors that escape the handlers; the full detail is
// logged server-side and only a coarse code reaches the client.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		m.logger.Warn("Request failed",
			slog.String("path", c.Request().URL.Path),
			slog.String("method", c.Request().Method),
			slog.String("code", appErr.ErrorCode()),
			slog.String("error", err.Error()),
		)
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode())

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		m.logger.Warn("Request rejected",
			slog.String("path", c.Request().URL.Path),
			slog.String("method", c.Request().Method),
			slog.Any("error", httpErr.Message),
		)
		code := response.CodeBadRequest
		if httpErr.Code >= http.StatusInternalServerError {
			code = response.CodeInternalError
		} else if httpErr.Code == http.StatusNotFound {
			code = "NOT_FOUND"
		}
		_ = response.Error(c, httpErr.Code, code)

		return
	}

	m.logger.Error("Unhandled error",
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
		slog.String("error", err.Error()),
	)
	_ = response.InternalServerError(c)
}
