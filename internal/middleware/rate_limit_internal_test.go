package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/go-cats/internal/config"
	"github.com/deppfellow/go-cats/internal/errs"
	"github.com/deppfellow/go-cats/internal/server"
)

func TestRateLimitMiddleware_identifierError(t *testing.T) {
	t.Parallel()

	logger := zerolog.Nop()
	r := NewRateLimitMiddleware(server.New(config.Default(), &logger, nil))

	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/cats", nil), httptest.NewRecorder())

	err := r.identifierError(c, errors.New("no address"))

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.NotEqual(t, http.StatusForbidden, httpErr.Status)
}
