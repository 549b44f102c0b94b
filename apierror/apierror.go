// Package apierror carries the failures a request can end with. Each one is a
// message plus the HTTP status it maps to, rendered as {message, status_code}.
package apierror

import (
	"errors"
	"net/http"
)

type APIError struct {
	Message    string `json:"message"`
	StatusCode int    `json:"status_code"`
}

func (e *APIError) Error() string {
	return e.Message
}

func New(message string, status int) *APIError {
	return &APIError{Message: message, StatusCode: status}
}

func BadRequest(message string) *APIError {
	return New(message, http.StatusBadRequest)
}

func Unauthorized(message string) *APIError {
	return New(message, http.StatusUnauthorized)
}

func NotFound(message string) *APIError {
	return New(message, http.StatusNotFound)
}

func Conflict(message string) *APIError {
	return New(message, http.StatusConflict)
}

func Internal() *APIError {
	return New("Internal server error", http.StatusInternalServerError)
}

// From extracts an *APIError from err's chain. Anything else becomes a 500.
func From(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return Internal(), false
}
