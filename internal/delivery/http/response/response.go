// Package response implements the API response envelope. Every
// response is `{data?, errorMessage?}`; the HTTP status carries the
// primary error signal and errorMessage is a machine-readable code.
package response

import (
	"net/http"

	domainerrors "pantry/internal/domain/errors"
	"pantry/internal/errors"

	"github.com/labstack/echo/v4"
)

// Response is the envelope every endpoint returns.
type Response struct {
	Data         any    `json:"data,omitempty"`
	ErrorMessage string `json:"errorMessage,omitempty"`
}

// Error codes for failures raised at the HTTP boundary itself.
const (
	CodeBadRequest    = "BAD_REQUEST"
	CodeInternalError = "INTERNAL_ERROR"
)

// Success writes a successful envelope. Data may be nil for
// operations that return no body.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, Response{Data: data})
}

// Error writes a failure envelope carrying only the machine-readable code.
func Error(c echo.Context, statusCode int, errorCode string) error {
	return c.JSON(statusCode, Response{ErrorMessage: errorCode})
}

// BadRequest 400 error
func BadRequest(c echo.Context, errorCode string) error {
	return Error(c, http.StatusBadRequest, errorCode)
}

// BindingError binding error response
func BindingError(c echo.Context) error {
	return Error(c, http.StatusBadRequest, CodeBadRequest)
}

// NotFound 404 error
func NotFound(c echo.Context, errorCode string) error {
	return Error(c, http.StatusNotFound, errorCode)
}

// Conflict 409 error
func Conflict(c echo.Context, errorCode string) error {
	return Error(c, http.StatusConflict, errorCode)
}

// InternalServerError 500 error
func InternalServerError(c echo.Context) error {
	return Error(c, http.StatusInternalServerError, CodeInternalError)
}

// HandleAppError maps a typed application error to its status code and
// error code. Anything untyped becomes a generic 500; the detail never
// reaches the client.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return Error(c, appErr.HTTPCode(), appErr.ErrorCode())
	}

	return InternalServerError(c)
}
