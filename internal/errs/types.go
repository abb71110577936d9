package errs

import (
	"net/http"
)

// New creates an HTTPError for any status, deriving Code from the status text.
func New(status int, message string) *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(status)),
		Message: message,
		Status:  status,
	}
}

// NewForbiddenError creates a 403 Forbidden HTTPError.
func NewForbiddenError(message string) *HTTPError {
	return New(http.StatusForbidden, message)
}

// NewBadRequestError creates a 400 Bad Request HTTPError.
func NewBadRequestError(message string) *HTTPError {
	return New(http.StatusBadRequest, message)
}

// NewNotFoundError creates a 404 Not Found HTTPError.
func NewNotFoundError(message string) *HTTPError {
	return New(http.StatusNotFound, message)
}

// NewTooManyRequestsError creates a 429 Too Many Requests HTTPError.
func NewTooManyRequestsError(message string) *HTTPError {
	return New(http.StatusTooManyRequests, message)
}

// NewInternalServerError creates a 500 Internal Server Error HTTPError.
//
// The message is the generic status text, never the real internal error.
func NewInternalServerError() *HTTPError {
	return New(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}
