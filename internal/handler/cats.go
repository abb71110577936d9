package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/go-cats/internal/errs"
	"github.com/deppfellow/go-cats/internal/model"
	"github.com/deppfellow/go-cats/internal/service"
	"github.com/deppfellow/go-cats/internal/server"
)

// CatsHandler serves the /cats resource.
//
// The CatsService is injected at construction time; every request shares it.
type CatsHandler struct {
	Handler
	cats *service.CatsService
}

// NewCatsHandler constructs a CatsHandler around the shared CatsService.
func NewCatsHandler(s *server.Server, cats *service.CatsService) *CatsHandler {
	return &CatsHandler{
		Handler: NewHandler(s),
		cats:    cats,
	}
}

// Create stores the decoded body as a new cat. It never fails.
func (h *CatsHandler) Create(c echo.Context, dto model.CreateCatDto) error {
	h.cats.Create(c.Request().Context(), dto.ToCat())

	return nil
}

// FindAll is meant to return every stored cat, but it refuses every request
// with 403 before the service is reached.
//
// TODO: return h.cats.FindAll(c.Request().Context()) once listing cats is allowed.
func (h *CatsHandler) FindAll(c echo.Context) ([]model.Cat, error) {
	return nil, errs.NewForbiddenError("Forbidden")
}
