package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrLimitReached indicates that a bounded collection is already full.
var ErrLimitReached = errors.New("limit reached")

// ErrUpstream indicates that a third-party provider failed or answered with an error.
var ErrUpstream = errors.New("upstream provider error")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// AppError carries an HTTP status code alongside a message and the underlying cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError with the given status code.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewValidationError wraps ErrValidation with a message.
func NewValidationError(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrValidation)
}

// NewNotFoundError wraps ErrNotFound with a message.
func NewNotFoundError(message string) *AppError {
	return NewAppError(http.StatusNotFound, message, ErrNotFound)
}

// NewUpstreamError wraps ErrUpstream, keeping the provider error in the message.
func NewUpstreamError(provider string, err error) *AppError {
	msg := provider + " request failed"
	if err != nil {
		msg = fmt.Sprintf("%s: %v", msg, err)
	}
	return NewAppError(http.StatusBadGateway, msg, ErrUpstream)
}

// StatusCode maps an error to the HTTP status a handler should answer with.
func StatusCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Code != 0 {
		return appErr.Code
	}
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate), errors.Is(err, ErrLimitReached):
		return http.StatusConflict
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrUpstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
