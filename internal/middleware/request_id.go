package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// RequestIDHeader carries the request correlation ID in both directions.
	RequestIDHeader = "X-Request-ID"

	// RequestIDKey is the echo context key of the request ID.
	RequestIDKey = "request_id"

	// maxRequestIDLength bounds ids accepted from clients.
	maxRequestIDLength = 128
)

// RequestID returns an Echo middleware that ensures each request has a request ID.
//
// A well-formed incoming X-Request-ID is reused, otherwise a new UUID is generated.
// The ID is stored in the echo context and echoed back as a response header.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(RequestIDHeader)
			if !validRequestID(requestID) {
				requestID = uuid.NewString()
			}

			c.Set(RequestIDKey, requestID)
			c.Response().Header().Set(RequestIDHeader, requestID)

			return next(c)
		}
	}
}

// GetRequestID retrieves the request ID from Echo context.
//
// Returns empty string if not set.
func GetRequestID(c echo.Context) string {
	if requestID, ok := c.Get(RequestIDKey).(string); ok {
		return requestID
	}

	return ""
}

// validRequestID accepts non-empty ids of printable ASCII up to maxRequestIDLength,
// so a client cannot break log lines or headers with the value.
func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}

	for i := 0; i < len(id); i++ {
		if id[i] < '!' || id[i] > '~' {
			return false
		}
	}

	return true
}
