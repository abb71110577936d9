// Package middleware stores global and route-scoped middleware.
//
// These intercept requests to handle cross-cutting concerns
// such as request logging, CORS, rate limiting, tracing, panic recovery,
// and the exception filter that renders HTTP errors.
package middleware
