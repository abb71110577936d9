package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// RequestLogMessage is the marker line written for every observed request.
const RequestLogMessage = "Request..."

// RouteInfo names one method + route path pair, e.g. GET /cats.
type RouteInfo struct {
	Method string
	Path   string
}

// ForRoutes returns a Skipper that lets only the given routes through.
//
// Path is compared with the matched route template (c.Path()), so the skipper
// needs to run as router-level middleware (echo.Use), not as a Pre middleware.
func ForRoutes(routes ...RouteInfo) middleware.Skipper {
	return func(c echo.Context) bool {
		for _, route := range routes {
			if c.Request().Method == route.Method && c.Path() == route.Path {
				return false
			}
		}

		return true
	}
}

// LoggerMiddleware writes RequestLogMessage before the handler runs.
// It never rejects a request and never reads or changes the payload.
type LoggerMiddleware struct {
	skipper middleware.Skipper
}

// NewLoggerMiddleware returns a LoggerMiddleware limited by skipper.
// A nil skipper logs every request.
func NewLoggerMiddleware(skipper middleware.Skipper) *LoggerMiddleware {
	if skipper == nil {
		skipper = middleware.DefaultSkipper
	}

	return &LoggerMiddleware{skipper: skipper}
}

// Use is the echo.MiddlewareFunc of the configured LoggerMiddleware.
func (l *LoggerMiddleware) Use(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !l.skipper(c) {
			GetLogger(c).Info().Msg(RequestLogMessage)
		}

		return next(c)
	}
}

// Logger is the functional variant: it logs every request it is attached to.
func Logger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		GetLogger(c).Info().Msg(RequestLogMessage)

		return next(c)
	}
}
