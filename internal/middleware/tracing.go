package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/deppfellow/go-cats/internal/server"
)

// TracingMiddleware owns New Relic related Echo middleware.
//
// With a nil nrApp both middlewares pass requests through unchanged.
type TracingMiddleware struct {
	server *server.Server
	nrApp  *newrelic.Application
}

// NewTracingMiddleware constructs TracingMiddleware.
func NewTracingMiddleware(s *server.Server, nrApp *newrelic.Application) *TracingMiddleware {
	return &TracingMiddleware{
		server: s,
		nrApp:  nrApp,
	}
}

// NewRelicMiddleware starts a New Relic transaction per request and stores it in the
// request context, which makes newrelic.FromContext work further down the chain.
func (tm *TracingMiddleware) NewRelicMiddleware() echo.MiddlewareFunc {
	if tm.nrApp == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}

	return nrecho.Middleware(tm.nrApp)
}

// EnhanceTracing names the transaction after the matched route and records
// request attributes. A returned error is noticed and its HTTP status recorded,
// since the response is only written later by the global error handler.
func (tm *TracingMiddleware) EnhanceTracing() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			txn := newrelic.FromContext(c.Request().Context())
			if txn == nil {
				return next(c)
			}

			txn.SetName(c.Request().Method + " " + c.Path())
			txn.AddAttribute("service.environment", tm.server.Config.Primary.Env)
			txn.AddAttribute("http.route", c.Path())
			txn.AddAttribute("http.real_ip", c.RealIP())
			txn.AddAttribute("request.id", GetRequestID(c))

			err := next(c)
			if err == nil {
				txn.AddAttribute("http.status_code", c.Response().Status)

				return nil
			}

			status, isHTTPException := StatusOf(err)
			if !isHTTPException {
				status = http.StatusInternalServerError
			}

			txn.AddAttribute("http.status_code", status)
			txn.AddAttribute("error.http_exception", isHTTPException)
			txn.NoticeError(nrpkgerrors.Wrap(err))

			return err
		}
	}
}
