package handler_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHealth_200(t *testing.T) {
	h := newTestHandler(serverDeps{})

	rec, env := doJSON(t, h, http.MethodGet, "/healthz", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "ok", env.Message)
}

func TestOpenAPISpec_Served(t *testing.T) {
	h := newTestHandler(serverDeps{})

	req, rec := getRequest(t, "/openapi.yaml")
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/yaml", rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "openapi:"))
}

// Unknown routes respond with the envelope, not chi's plain-text 404.
func TestNotFound_Envelope(t *testing.T) {
	h := newTestHandler(serverDeps{})

	rec, env := doJSON(t, h, http.MethodGet, "/api/no-such-route", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "Route not found", env.Error)
}
