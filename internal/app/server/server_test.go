package server_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mdpad/mdpad/internal/app/server"
)

func TestRoutes(t *testing.T) {
	r := server.Init(zap.NewNop())
	srv := httptest.NewServer(r)
	defer srv.Close()

	t.Run("health", func(t *testing.T) {
		res, err := http.Get(srv.URL + "/api/health")
		require.NoError(t, err)
		defer res.Body.Close()

		body, err := io.ReadAll(res.Body)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.JSONEq(t, `{"status":"ok"}`, string(body))
	})

	t.Run("preview", func(t *testing.T) {
		res, err := http.Post(srv.URL+"/api/preview", "text/markdown", strings.NewReader("# Hi"))
		require.NoError(t, err)
		defer res.Body.Close()

		body, err := io.ReadAll(res.Body)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Contains(t, string(body), "<h1")
	})

	t.Run("unknown route", func(t *testing.T) {
		res, err := http.Get(srv.URL + "/api/unknown")
		require.NoError(t, err)
		defer res.Body.Close()

		assert.Equal(t, http.StatusNotFound, res.StatusCode)
	})

	t.Run("method not allowed", func(t *testing.T) {
		res, err := http.Post(srv.URL+"/api/health", "application/json", strings.NewReader("{}"))
		require.NoError(t, err)
		defer res.Body.Close()

		assert.Equal(t, http.StatusMethodNotAllowed, res.StatusCode)
	})
}
