// Package errs defines the application's HTTP error kind.
//
// Handlers and middleware return *HTTPError to signal a failure that carries
// an HTTP status code. The exception filter in the middleware package is the
// only place that turns it into a response body.
package errs

import "strings"

// HTTPError is the single error kind the application raises on purpose.
//
// Fields:
//   - Code: machine-friendly error code (e.g. "FORBIDDEN").
//   - Message: human-friendly message.
//   - Status: HTTP status code the response is sent with.
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// Error makes *HTTPError satisfy the built-in `error` interface.
// It returns the Message, so printing/logging the error shows the message.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is customizes how errors.Is(...) treats HTTPError.
//
// It returns true for any *HTTPError target. It does NOT compare Code/Status.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)

	return ok
}

// WithMessage returns a copy of this HTTPError with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:    e.Code,
		Message: message,
		Status:  e.Status,
	}
}

// MakeUpperCaseWithUnderscores converts a string into an UPPER_CASE_WITH_UNDERSCORES format.
//
//	"Bad Request" -> "BAD_REQUEST"
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
