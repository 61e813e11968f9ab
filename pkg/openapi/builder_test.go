package openapi

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	r := NewRegistry()
	r.Register(Operation{
		Method:     "GET",
		Path:       "/v1/avatar",
		Summary:    "Resolve avatar",
		Parameters: []Parameter{{Name: "path"}, {Name: "no_prefix", Type: "boolean"}},
		Responses:  map[string]any{"200": map[string]any{"description": "ok"}},
	})
	r.Register(Operation{Method: "get", Path: "/healthz", Responses: map[string]any{}})

	doc := r.Build("userkit", "1.0.0")
	assert.Equal(t, "3.1.0", doc["openapi"])
	paths := doc["paths"].(map[string]any)
	require.Contains(t, paths, "/v1/avatar")
	op := paths["/v1/avatar"].(map[string]any)["get"].(map[string]any)
	params := op["parameters"].([]map[string]any)
	require.Len(t, params, 2)
	assert.Equal(t, map[string]any{"type": "string"}, params[0]["schema"])
	assert.Equal(t, map[string]any{"type": "boolean"}, params[1]["schema"])
	assert.Equal(t, "query", params[1]["in"])

	_, hasParams := paths["/healthz"].(map[string]any)["get"].(map[string]any)["parameters"]
	assert.False(t, hasParams)
}

func TestServeHandler(t *testing.T) {
	r := NewRegistry()
	r.Register(Operation{Method: "GET", Path: "/ping", Responses: map[string]any{}})
	rec := httptest.NewRecorder()
	r.ServeHandler("userkit", "dev")(rec, httptest.NewRequest("GET", "/openapi.json", nil))

	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var doc map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&doc))
	assert.Equal(t, map[string]any{"title": "userkit", "version": "dev"}, doc["info"])
}
