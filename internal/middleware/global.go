package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/deppfellow/go-cats/internal/server"
)

// GlobalMiddlewares groups middleware applied to every route and the global error handler.
type GlobalMiddlewares struct {
	server *server.Server
	filter *HTTPExceptionFilter
}

// NewGlobalMiddlewares constructs the middleware bundle.
func NewGlobalMiddlewares(s *server.Server) *GlobalMiddlewares {
	return &GlobalMiddlewares{
		server: s,
		filter: NewHTTPExceptionFilter(),
	}
}

// Filter returns the exception filter used by GlobalErrorHandler.
func (global *GlobalMiddlewares) Filter() *HTTPExceptionFilter {
	return global.filter
}

// UseFilter replaces the exception filter, e.g. with one on a fixed clock.
func (global *GlobalMiddlewares) UseFilter(f *HTTPExceptionFilter) {
	global.filter = f
}

// CORS returns Echo's CORS middleware configured by the server config.
func (global *GlobalMiddlewares) CORS() echo.MiddlewareFunc {
	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: global.server.Config.Server.CORSAllowedOrigins,
	})
}

// RequestLogger writes one "API" line per request, with severity based on status.
//
// When a handler returns an error, echo has not written the final status yet;
// the status is then derived from the error the same way the exception filter does.
// Reference: https://github.com/labstack/echo/issues/2310#issuecomment-1288196898
func (global *GlobalMiddlewares) RequestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogError:   true,
		LogLatency: true,
		LogHost:    true,
		LogMethod:  true,
		LogURIPath: true,

		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			statusCode := v.Status

			if v.Error != nil {
				if status, ok := StatusOf(v.Error); ok {
					statusCode = status
				} else {
					statusCode = http.StatusInternalServerError
				}
			}

			logger := GetLogger(c)

			var e *zerolog.Event
			switch {
			case statusCode >= 500:
				e = logger.Error().Err(v.Error)
			case statusCode >= 400:
				e = logger.Warn()
			default:
				e = logger.Info()
			}

			e.
				Dur("latency", v.Latency).
				Int("status", statusCode).
				Str("method", v.Method).
				Str("uri", v.URI).
				Str("host", v.Host).
				Str("ip", c.RealIP()).
				Str("user_agent", c.Request().UserAgent()).
				Msg("API")

			return nil
		},
	})
}

// Recover turns handler panics into errors handled by GlobalErrorHandler.
func (global *GlobalMiddlewares) Recover() echo.MiddlewareFunc {
	return middleware.Recover()
}

// Secure returns Echo's secure headers middleware.
func (global *GlobalMiddlewares) Secure() echo.MiddlewareFunc {
	return middleware.Secure()
}

// GlobalErrorHandler is the final error funnel for the HTTP server.
//
// HTTP exceptions go to the exception filter. Every other error goes to echo's
// default error handler unchanged.
func (global *GlobalMiddlewares) GlobalErrorHandler(err error, c echo.Context) {
	logger := GetLogger(c)

	status, isHTTPException := StatusOf(err)

	switch {
	case !isHTTPException:
		logger.Error().Stack().Err(err).Msg("unhandled error")
	case status >= 500:
		logger.Error().Err(err).Int("status", status).Msg(err.Error())
	default:
		logger.Warn().Err(err).Int("status", status).Msg(err.Error())
	}

	if global.filter.Catch(err, c) {
		return
	}

	c.Echo().DefaultHTTPErrorHandler(err, c)
}
