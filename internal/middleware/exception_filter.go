package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/deppfellow/go-cats/internal/errs"
)

// TimestampFormat is ISO-8601 in UTC with millisecond precision.
const TimestampFormat = "2006-01-02T15:04:05.000Z07:00"

// ExceptionResponse is the body written for every intercepted HTTP exception.
type ExceptionResponse struct {
	StatusCode int    `json:"statusCode"`
	Timestamp  string `json:"timestamp"`
	Path       string `json:"path"`
}

// HTTPExceptionFilter converts HTTP exceptions into ExceptionResponse bodies.
//
// An HTTP exception is any error carrying a status code: *errs.HTTPError raised by
// the application, or *echo.HTTPError raised by echo itself (unknown route,
// method not allowed, undecodable body). Other errors are left alone.
type HTTPExceptionFilter struct {
	now func() time.Time
}

// NewHTTPExceptionFilter returns a filter stamping responses with the wall clock.
func NewHTTPExceptionFilter() *HTTPExceptionFilter {
	return &HTTPExceptionFilter{now: time.Now}
}

// WithClock returns a copy of the filter reading time from now.
func (f *HTTPExceptionFilter) WithClock(now func() time.Time) *HTTPExceptionFilter {
	return &HTTPExceptionFilter{now: now}
}

// StatusOf returns the status code carried by err and whether err is an HTTP exception.
func StatusOf(err error) (int, bool) {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Status, true
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		return echoErr.Code, true
	}

	return 0, false
}

// Catch writes the exception response for err and reports whether err was intercepted.
//
// A response that is already committed cannot be rewritten; Catch still reports
// the error as intercepted so no other handler writes to it.
func (f *HTTPExceptionFilter) Catch(err error, c echo.Context) bool {
	status, ok := StatusOf(err)
	if !ok {
		return false
	}

	if c.Response().Committed {
		return true
	}

	body := ExceptionResponse{
		StatusCode: status,
		Timestamp:  f.now().UTC().Format(TimestampFormat),
		Path:       c.Request().URL.Path,
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(status)
	} else {
		writeErr = c.JSON(status, body)
	}

	if writeErr != nil {
		GetLogger(c).Error().Err(writeErr).Msg("failed to write exception response")
	}

	return true
}
