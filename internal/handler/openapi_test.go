package handler_test

import (
	"encoding/json"
	"io/fs"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/go-cats/internal/handler"
)

func TestOpenAPIHandler_ServeOpenAPIUI(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	c, rec := newContext(http.MethodGet, "/docs", nil, "")

	require.NoError(t, app.handlers.OpenAPI.ServeOpenAPIUI(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))
	assert.Contains(t, rec.Body.String(), "/static/openapi.json")
}

func TestStaticAssets(t *testing.T) {
	t.Parallel()

	raw, err := fs.ReadFile(handler.StaticAssets(), "openapi.json")
	require.NoError(t, err)

	var doc struct {
		Paths map[string]map[string]interface{} `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(raw, &doc))

	assert.Contains(t, doc.Paths["/cats"], "post")
	assert.Contains(t, doc.Paths["/cats"], "get")
}
