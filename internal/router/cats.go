package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/go-cats/internal/handler"
)

func registerCatsRoutes(r *echo.Echo, h *handler.Handlers) {
	cats := r.Group("/cats")

	cats.POST("", handler.HandleNoContent(
		h.Cats.Create,
		http.StatusNoContent,
		handler.Header{Key: "Cache-Control", Value: "none"},
	))

	cats.GET("", handler.HandleRaw(
		h.Cats.FindAll,
		http.StatusOK,
	))
}
