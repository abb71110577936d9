package handler_test

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/deppfellow/go-cats/internal/config"
	"github.com/deppfellow/go-cats/internal/handler"
	"github.com/deppfellow/go-cats/internal/repository"
	"github.com/deppfellow/go-cats/internal/server"
	"github.com/deppfellow/go-cats/internal/service"
)

type testApp struct {
	server   *server.Server
	services *service.Services
	handlers *handler.Handlers
}

func newTestApp(t *testing.T) testApp {
	t.Helper()

	logger := zerolog.Nop()
	s := server.New(config.Default(), &logger, nil)
	services := service.NewServices(s, repository.NewRepositories(s))

	return testApp{
		server:   s,
		services: services,
		handlers: handler.NewHandlers(s, services),
	}
}

func newContext(method, target string, body io.Reader, contentType string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}

	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func jsonBody(s string) io.Reader {
	return strings.NewReader(s)
}

