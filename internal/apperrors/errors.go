package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrUnauthorized indicates missing or invalid admin credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrNotification indicates that the outbound messaging gateway rejected or failed a send.
var ErrNotification = errors.New("notification failed")

// ErrStorage indicates a persistence failure.
var ErrStorage = errors.New("storage error")

// ErrScheduler indicates a failure inside a scheduled job.
var ErrScheduler = errors.New("scheduler error")

// AppError carries an HTTP-ish status code alongside a wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates an AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is lets server-side AppErrors match ErrStorage.
func (e *AppError) Is(target error) bool {
	return target == ErrStorage && e.Code >= 500
}

// NewValidationError wraps ErrValidation with a human readable message.
func NewValidationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
