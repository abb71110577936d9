// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers
package router

import (
	"io"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/go-cats/internal/handler"
	"github.com/deppfellow/go-cats/internal/middleware"
	"github.com/deppfellow/go-cats/internal/server"
)

// NewRouter builds the echo instance with every middleware and route registered.
//
// Middleware order matters:
//  1. New Relic transaction, so everything below can attach to it
//  2. panic recovery, CORS, secure headers
//  3. request id, then tracing attributes and the request-scoped logger that read it
//  4. access log and metrics, which observe the final status
//  5. rate limit and the "Request..." marker, closest to the handlers
func NewRouter(s *server.Server, h *handler.Handlers, mw *middleware.Middlewares) *echo.Echo {
	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.Logger.SetOutput(io.Discard)

	router.HTTPErrorHandler = mw.Global.GlobalErrorHandler

	router.Use(
		mw.Tracing.NewRelicMiddleware(),
		mw.Global.Recover(),
		mw.Global.CORS(),
		mw.Global.Secure(),
		middleware.RequestID(),
		mw.Tracing.EnhanceTracing(),
		mw.ContextEnhancer.EnhanceContext(),
		mw.Global.RequestLogger(),
	)

	if s.Config.Observability.Metrics.Enabled {
		router.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
			Subsystem:  s.Config.Observability.ServiceName,
			Registerer: s.Metrics,
		}))
	}

	router.Use(
		mw.RateLimit.Limit(),
		mw.Logger.Use,
	)

	registerSystemRoutes(router, s, h)
	registerCatsRoutes(router, h)

	return router
}
