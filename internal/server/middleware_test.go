package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/UnknownOlympus/hestia/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCORSHeaders(t *testing.T) {
	t.Parallel()

	repo := &stubEmployeeRepo{
		listFn: func(_ context.Context) ([]models.Employee, error) {
			return []models.Employee{}, nil
		},
	}
	handler := newTestHandler(t, repo)

	t.Run("responses carry cross-origin headers", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/employees", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "GET, POST, OPTIONS", rr.Header().Get("Access-Control-Allow-Methods"))
	})

	t.Run("preflight is answered before routing", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodOptions, "/employees", nil)
		req.Header.Set("Origin", "http://example.com")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "Content-Type", rr.Header().Get("Access-Control-Allow-Headers"))
	})
}
