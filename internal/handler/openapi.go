package handler

import (
	"fmt"
	"io/fs"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/go-cats/internal/server"
)

// OpenAPIHandler serves the OpenAPI UI page.
//
// The page loads its JS from a CDN and reads openapi.json from /static.
type OpenAPIHandler struct {
	Handler
	assets fs.FS
}

// NewOpenAPIHandler constructs an OpenAPIHandler reading from the embedded static assets.
func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler: NewHandler(s),
		assets:  StaticAssets(),
	}
}

// ServeOpenAPIUI serves openapi.html. Caching is disabled so doc updates show immediately.
func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	templateBytes, err := fs.ReadFile(h.assets, "openapi.html")

	c.Response().Header().Set("Cache-Control", "no-cache")

	if err != nil {
		return fmt.Errorf("failed to read OpenAPI UI template: %w", err)
	}

	if err := c.HTML(http.StatusOK, string(templateBytes)); err != nil {
		return fmt.Errorf("failed to write HTML response: %w", err)
	}

	return nil
}
