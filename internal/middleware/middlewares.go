package middleware

import (
	"net/http"

	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/deppfellow/go-cats/internal/server"
)

// Middlewares groups all middleware components used by the HTTP server.
//
// Everything is built once here and reused during router setup.
type Middlewares struct {
	// Global holds middleware applied to every route plus the global error handler.
	Global *GlobalMiddlewares

	// ContextEnhancer attaches a request-scoped logger.
	ContextEnhancer *ContextEnhancer

	// Tracing provides New Relic transactions and attributes.
	Tracing *TracingMiddleware

	// RateLimit enforces the per-IP request rate from config.
	RateLimit *RateLimitMiddleware

	// Logger prints the request marker line, scoped to GET /cats.
	Logger *LoggerMiddleware
}

// NewMiddlewares constructs all middleware components using the application container.
func NewMiddlewares(s *server.Server) *Middlewares {
	var nrApp *newrelic.Application
	if s.LoggerService != nil {
		nrApp = s.LoggerService.GetApplication()
	}

	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		ContextEnhancer: NewContextEnhancer(s),
		Tracing:         NewTracingMiddleware(s, nrApp),
		RateLimit:       NewRateLimitMiddleware(s),
		Logger:          NewLoggerMiddleware(ForRoutes(RouteInfo{Method: http.MethodGet, Path: "/cats"})),
	}
}
