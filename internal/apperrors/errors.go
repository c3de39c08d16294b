package apperrors

import (
	"errors"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the user is not allowed to act on the workplace.
var ErrForbidden = errors.New("forbidden")

// ErrUnauthorized indicates a missing or invalid identity.
var ErrUnauthorized = errors.New("unauthorized")

// ErrContention indicates the datastore gave up waiting for a lock (timeout, deadlock or
// serialization failure). The whole operation was rolled back and may be retried by the caller.
var ErrContention = errors.New("concurrent update conflict")

// AppError carries an HTTP-ish status code alongside the wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError wraps ErrNotFound with a message.
func NewNotFoundError(message string) *AppError {
	return NewAppError(http.StatusNotFound, message, ErrNotFound)
}

// NewValidationError wraps ErrValidation with a message.
func NewValidationError(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrValidation)
}

// NewConflictError wraps ErrDuplicate with a message.
func NewConflictError(message string) *AppError {
	return NewAppError(http.StatusConflict, message, ErrDuplicate)
}

// NewContentionError wraps ErrContention, keeping the driver error for logs.
func NewContentionError(message string, cause error) *AppError {
	return NewAppError(http.StatusConflict, message, errors.Join(ErrContention, cause))
}
