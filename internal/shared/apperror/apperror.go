package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	CodeValidation   = "VALIDATION_ERROR"
	CodeInvalidState = "INVALID_STATE"
	CodeNotFound     = "NOT_FOUND"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeUnavailable  = "UNAVAILABLE"
	CodeInternal     = "INTERNAL_ERROR"
)

type AppError struct {
	Code       string
	Message    string
	Field      string
	HTTPStatus int
	Err        error
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

func New(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

func Wrap(err error, code, message string, httpStatus int) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus, Err: err}
}

// Validation reports bad input. Field names the offending field; these errors
// never reach the store.
func Validation(field, reason string) *AppError {
	return &AppError{
		Code:       CodeValidation,
		Message:    reason,
		Field:      field,
		HTTPStatus: http.StatusBadRequest,
	}
}

// InvalidState reports a transition attempted from a non-matching state. The
// caller may re-fetch and retry; stored state is unchanged.
func InvalidState(message string) *AppError {
	return &AppError{Code: CodeInvalidState, Message: message, HTTPStatus: http.StatusConflict}
}

func NotFound(resource string) *AppError {
	return &AppError{Code: CodeNotFound, Message: resource + " not found", HTTPStatus: http.StatusNotFound}
}

func Forbidden(message string) *AppError {
	return &AppError{Code: CodeForbidden, Message: message, HTTPStatus: http.StatusForbidden}
}

func Unauthorized() *AppError {
	return &AppError{Code: CodeUnauthorized, Message: "authentication required", HTTPStatus: http.StatusUnauthorized}
}

// Unavailable wraps a store or transport failure. In-memory state is left
// untouched and nothing is retried automatically.
func Unavailable(err error) *AppError {
	return Wrap(err, CodeUnavailable, "service unavailable", http.StatusServiceUnavailable)
}

// Is reports whether err is an AppError with the given code.
func Is(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// From extracts the AppError from err, or wraps it as an internal error.
func From(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, CodeInternal, "an unexpected error occurred", http.StatusInternalServerError)
}
