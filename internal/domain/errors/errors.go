// Package errors defines the application error taxonomy. Services
// return these typed errors; the HTTP boundary is the only place they
// are mapped to status codes.
package errors

import (
	"net/http"

	"pantry/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Machine-readable error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the machine-readable error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy carrying detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Food-related errors
	ErrFoodNotFound = NewBaseError(
		http.StatusNotFound,
		"FOOD_NOT_FOUND",
		"Food not found.",
		"",
	)

	ErrNoFoodsFound = NewBaseError(
		http.StatusNotFound,
		"FOOD_NOT_FOUND",
		"No foods found.",
		"",
	)

	ErrFoodAlreadyExists = NewBaseError(
		http.StatusConflict,
		"FOOD_ALREADY_EXISTS",
		"A food with that name already exists.",
		"",
	)

	ErrFoodIDRequired = NewBaseError(
		http.StatusBadRequest,
		"BAD_REQUEST",
		"Must provide a Food Id.",
		"",
	)

	ErrFoodNoUpdates = NewBaseError(
		http.StatusBadRequest,
		"NO_UPDATES_DETECTED",
		"At least one field must be updated.",
		"",
	)

	ErrFoodInvalid = NewBaseError(
		http.StatusBadRequest,
		"BAD_REQUEST",
		"Food is missing required fields.",
		"",
	)

	// Ingredient-related errors
	ErrIngredientNotFound = NewBaseError(
		http.StatusNotFound,
		"INGREDIENT_NOT_FOUND",
		"Ingredient not found.",
		"",
	)

	ErrNoIngredientsFound = NewBaseError(
		http.StatusNotFound,
		"INGREDIENT_NOT_FOUND",
		"No ingredients found.",
		"",
	)

	ErrIngredientAlreadyExists = NewBaseError(
		http.StatusConflict,
		"INGREDIENT_ALREADY_EXISTS",
		"An ingredient with that name already exists.",
		"",
	)

	ErrIngredientIDRequired = NewBaseError(
		http.StatusBadRequest,
		"BAD_REQUEST",
		"Must provide an Ingredient Id.",
		"",
	)

	ErrIngredientNoUpdates = NewBaseError(
		http.StatusBadRequest,
		"NO_UPDATES_DETECTED",
		"At least one field must be updated.",
		"",
	)

	ErrIngredientInvalid = NewBaseError(
		http.StatusBadRequest,
		"BAD_REQUEST",
		"Ingredient is missing required fields.",
		"",
	)

	// General errors
	ErrBadRequest = NewBaseError(
		http.StatusBadRequest,
		"BAD_REQUEST",
		"Malformed request.",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error.",
		"",
	)
)

// DatabaseExecuteError represents a document store failure, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the underlying store error for errors.Is / errors.As.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the machine-readable error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "INTERNAL_ERROR"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Internal server error."
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
