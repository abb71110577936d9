package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/deppfellow/go-cats/internal/errs"
	"github.com/deppfellow/go-cats/internal/server"
)

// RateLimitMiddleware limits requests per client IP using an in-memory token bucket.
type RateLimitMiddleware struct {
	server *server.Server
}

func NewRateLimitMiddleware(s *server.Server) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		server: s,
	}
}

// Limit returns the rate limiting middleware. A configured rate of zero disables it.
//
// Denied requests fail with a 429 HTTPError, which the exception filter renders.
func (r *RateLimitMiddleware) Limit() echo.MiddlewareFunc {
	cfg := r.server.Config.Server
	if cfg.RateLimit <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}

	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(cfg.RateLimit),
		Burst:     cfg.RateBurst,
		ExpiresIn: 3 * time.Minute,
	})

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: r.identifierError,
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			r.RecordRateLimitHit(c.Path())

			GetLogger(c).Warn().
				Str("identifier", identifier).
				Msg("rate limit exceeded")

			return errs.NewTooManyRequestsError("Too Many Requests")
		},
	})
}

// identifierError handles a client that cannot be identified. It is a server-side
// failure, never a 403, so it cannot be confused with a refused request.
func (r *RateLimitMiddleware) identifierError(c echo.Context, err error) error {
	GetLogger(c).Error().Err(err).Msg("rate limit identifier extraction failed")

	return errs.NewInternalServerError()
}

// RecordRateLimitHit records a New Relic custom event for a denied request.
func (r *RateLimitMiddleware) RecordRateLimitHit(endpoint string) {
	if app := r.server.LoggerService.GetApplication(); app != nil {
		app.RecordCustomEvent("RateLimitHit", map[string]interface{}{
			"endpoint": endpoint,
		})
	}
}
