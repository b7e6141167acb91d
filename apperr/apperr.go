// Package apperr defines the application error taxonomy shared by all use
// cases. Every business-rule violation or wrapped infrastructure failure is
// surfaced as an *Error carrying a human-readable message and the HTTP status
// code the boundary should respond with.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is an application-level error with an HTTP status classification.
type Error struct {
	Code    int    `json:"-"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// New creates an error with an explicit status code.
func New(code int, format string, args ...interface{}) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// NotFound creates a 404 error for an absent entity.
func NotFound(format string, args ...interface{}) *Error {
	return New(http.StatusNotFound, format, args...)
}

// Conflict creates a 409 error for a uniqueness violation.
func Conflict(format string, args ...interface{}) *Error {
	return New(http.StatusConflict, format, args...)
}

// BadRequest creates a 400 error for invalid business-rule input.
func BadRequest(format string, args ...interface{}) *Error {
	return New(http.StatusBadRequest, format, args...)
}

// Internal creates a 500 error wrapping an unexpected lower-layer failure.
func Internal(format string, args ...interface{}) *Error {
	return New(http.StatusInternalServerError, format, args...)
}

// StatusCode returns the HTTP status carried by err, or 500 when err is not
// part of the taxonomy.
func StatusCode(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return http.StatusInternalServerError
}

// IsNotFound reports whether err is a 404 taxonomy error.
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}
