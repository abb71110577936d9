package router_test

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/go-cats/internal/config"
	"github.com/deppfellow/go-cats/internal/handler"
	"github.com/deppfellow/go-cats/internal/middleware"
	"github.com/deppfellow/go-cats/internal/model"
	"github.com/deppfellow/go-cats/internal/repository"
	"github.com/deppfellow/go-cats/internal/router"
	"github.com/deppfellow/go-cats/internal/server"
	"github.com/deppfellow/go-cats/internal/service"
)

var now = time.Date(2026, time.October, 17, 9, 30, 0, 123_000_000, time.UTC)

type testApp struct {
	router   *echo.Echo
	services *service.Services
	logs     *bytes.Buffer
}

func newTestApp(t *testing.T, configure ...func(*config.Config)) testApp {
	t.Helper()

	cfg := config.Default()
	cfg.Server.RateLimit = 0

	for _, fn := range configure {
		fn(cfg)
	}

	logs := &bytes.Buffer{}
	logger := zerolog.New(logs)

	s := server.New(cfg, &logger, nil)
	services := service.NewServices(s, repository.NewRepositories(s))
	handlers := handler.NewHandlers(s, services)
	middlewares := middleware.NewMiddlewares(s)
	middlewares.Global.UseFilter(middlewares.Global.Filter().WithClock(func() time.Time { return now }))

	return testApp{
		router:   router.NewRouter(s, handlers, middlewares),
		services: services,
		logs:     logs,
	}
}

func (app testApp) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	app.router.ServeHTTP(rec, req)

	return rec
}

func (app testApp) requestLogs(t *testing.T) int {
	t.Helper()

	count := 0

	scanner := bufio.NewScanner(bytes.NewReader(app.logs.Bytes()))
	for scanner.Scan() {
		var line map[string]interface{}
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &line))

		if line[zerolog.MessageFieldName] == middleware.RequestLogMessage {
			count++
		}
	}

	return count
}

func TestCreateCat(t *testing.T) {
	t.Parallel()

	t.Run("valid body", func(t *testing.T) {
		t.Parallel()

		app := newTestApp(t)

		rec := app.do(http.MethodPost, "/cats", `{"name":"Tom","age":3,"breed":"tabby"}`)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "none", rec.Header().Get("Cache-Control"))
		assert.Empty(t, rec.Body.String())
		assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
		assert.Equal(t, []model.Cat{{Name: "Tom", Age: 3, Breed: "tabby"}}, app.services.Cats.FindAll(context.Background()))
	})

	t.Run("every post appends", func(t *testing.T) {
		t.Parallel()

		app := newTestApp(t)

		for i := 1; i <= 3; i++ {
			rec := app.do(http.MethodPost, "/cats", `{"name":"Tom","age":3,"breed":"tabby"}`)
			require.Equal(t, http.StatusNoContent, rec.Code)
			assert.Equal(t, i, app.services.Cats.Count(context.Background()))
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()

		app := newTestApp(t)

		rec := app.do(http.MethodPost, "/cats", `{"name":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"statusCode":400,"timestamp":"2026-10-17T09:30:00.123Z","path":"/cats"}`, rec.Body.String())
		assert.Equal(t, 0, app.services.Cats.Count(context.Background()))
	})

	t.Run("non-json body", func(t *testing.T) {
		t.Parallel()

		app := newTestApp(t)

		req := httptest.NewRequest(http.MethodPost, "/cats", strings.NewReader(`name=Tom`))
		req.Header.Set(echo.HeaderContentType, echo.MIMETextPlain)

		rec := httptest.NewRecorder()
		app.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, []model.Cat{{}}, app.services.Cats.FindAll(context.Background()))
	})

	t.Run("not logged", func(t *testing.T) {
		t.Parallel()

		app := newTestApp(t)
		app.do(http.MethodPost, "/cats", `{}`)

		assert.Equal(t, 0, app.requestLogs(t))
	})
}

func TestListCats(t *testing.T) {
	t.Parallel()

	t.Run("forbidden", func(t *testing.T) {
		t.Parallel()

		app := newTestApp(t)
		app.do(http.MethodPost, "/cats", `{"name":"Tom","age":3,"breed":"tabby"}`)

		rec := app.do(http.MethodGet, "/cats", "")

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, echo.MIMEApplicationJSON, rec.Header().Get(echo.HeaderContentType))
		assert.JSONEq(t, `{"statusCode":403,"timestamp":"2026-10-17T09:30:00.123Z","path":"/cats"}`, rec.Body.String())
	})

	t.Run("query string is not part of path", func(t *testing.T) {
		t.Parallel()

		app := newTestApp(t)

		rec := app.do(http.MethodGet, "/cats?limit=10&name=tom", "")

		var body middleware.ExceptionResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, http.StatusForbidden, body.StatusCode)
		assert.Equal(t, "/cats", body.Path)
	})

	t.Run("forbidden regardless of body", func(t *testing.T) {
		t.Parallel()

		app := newTestApp(t)

		rec := app.do(http.MethodGet, "/cats", `garbage`)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("logged once per request", func(t *testing.T) {
		t.Parallel()

		app := newTestApp(t)

		for i := 0; i < 3; i++ {
			app.do(http.MethodGet, "/cats", "")
		}

		assert.Equal(t, 3, app.requestLogs(t))
	})
}

func TestUnknownRoutes(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)

	rec := app.do(http.MethodGet, "/dogs", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"statusCode":404,"timestamp":"2026-10-17T09:30:00.123Z","path":"/dogs"}`, rec.Body.String())

	rec = app.do(http.MethodDelete, "/cats", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.JSONEq(t, `{"statusCode":405,"timestamp":"2026-10-17T09:30:00.123Z","path":"/cats"}`, rec.Body.String())

	assert.Equal(t, 0, app.requestLogs(t))
}

func TestSystemRoutes(t *testing.T) {
	t.Parallel()

	t.Run("status", func(t *testing.T) {
		t.Parallel()

		app := newTestApp(t)

		rec := app.do(http.MethodGet, "/status", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"healthy"`)
	})

	t.Run("docs", func(t *testing.T) {
		t.Parallel()

		app := newTestApp(t)

		rec := app.do(http.MethodGet, "/docs", "")
		assert.Equal(t, http.StatusOK, rec.Code)

		rec = app.do(http.MethodGet, "/static/openapi.json", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"/cats"`)
	})

	t.Run("metrics", func(t *testing.T) {
		t.Parallel()

		app := newTestApp(t)
		app.do(http.MethodPost, "/cats", `{"name":"Tom"}`)

		rec := app.do(http.MethodGet, "/metrics", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "cats_created_total 1")
		assert.Contains(t, rec.Body.String(), "cats_requests_total")
	})

	t.Run("disabled", func(t *testing.T) {
		t.Parallel()

		app := newTestApp(t, func(cfg *config.Config) {
			cfg.Observability.Metrics.Enabled = false
			cfg.Observability.HealthChecks.Enabled = false
		})

		assert.Equal(t, http.StatusNotFound, app.do(http.MethodGet, "/metrics", "").Code)
		assert.Equal(t, http.StatusNotFound, app.do(http.MethodGet, "/status", "").Code)
	})
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, func(cfg *config.Config) {
		cfg.Server = config.Default().Server
	})

	for i := 0; i < 60; i++ {
		require.Equal(t, http.StatusForbidden, app.do(http.MethodGet, "/cats", "").Code, "request %d", i)
	}

	for i := 0; i < 60; i++ {
		require.Equal(t, http.StatusNoContent, app.do(http.MethodPost, "/cats", `{"name":"Tom"}`).Code, "request %d", i)
	}

	assert.Equal(t, 60, app.services.Cats.Count(context.Background()))
}

func TestRateLimit(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, func(cfg *config.Config) {
		cfg.Server.RateLimit = 0.001
		cfg.Server.RateBurst = 2
	})

	assert.Equal(t, http.StatusNoContent, app.do(http.MethodPost, "/cats", `{}`).Code)
	assert.Equal(t, http.StatusForbidden, app.do(http.MethodGet, "/cats", "").Code)

	rec := app.do(http.MethodGet, "/cats", "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.JSONEq(t, `{"statusCode":429,"timestamp":"2026-10-17T09:30:00.123Z","path":"/cats"}`, rec.Body.String())
	assert.Equal(t, 1, app.requestLogs(t), "denied requests never reach the logging middleware")
}
