package router

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/go-cats/internal/handler"
	"github.com/deppfellow/go-cats/internal/server"
)

// registerSystemRoutes registers "system" endpoints that are not part of business logic.
//
// Routes include:
//  1. Health endpoint (if enabled)
//  2. Docs endpoint (OpenAPI UI)
//  3. Static files endpoint (openapi.json and openapi.html)
//  4. Prometheus metrics (if enabled)
func registerSystemRoutes(r *echo.Echo, s *server.Server, h *handler.Handlers) {
	if s.Config.Observability.HealthChecks.Enabled {
		r.GET("/status", h.Health.CheckHealth)
	}

	r.StaticFS("/static", handler.StaticAssets())

	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)

	if s.Config.Observability.Metrics.Enabled {
		r.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
			Gatherer: s.Metrics,
		}))
	}
}
