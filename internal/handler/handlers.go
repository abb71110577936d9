// Package handler is the first layer after the router.
//
// It decodes requests, calls the appropriate service,
// and writes the response. Errors are returned, never written;
// the global error handler renders them.
package handler

import (
	"github.com/deppfellow/go-cats/internal/server"
	"github.com/deppfellow/go-cats/internal/service"
)

// Handlers is a container that groups all HTTP handlers.
type Handlers struct {
	Cats    *CatsHandler
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler
}

// NewHandlers constructs the handler container, injecting the shared services.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Cats:    NewCatsHandler(s, services.Cats),
		Health:  NewHealthHandler(s, services.Cats),
		OpenAPI: NewOpenAPIHandler(s),
	}
}
