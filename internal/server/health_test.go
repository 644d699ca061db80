package server_test

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/UnknownOlympus/hestia/internal/server"
	"github.com/stretchr/testify/require"
)

type MockDBPinger struct {
	ShouldFail bool
}

func (m *MockDBPinger) Ping(_ context.Context) error {
	if m.ShouldFail {
		return errors.New("mock db error")
	}
	return nil
}

func TestHealthEndpoint(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t, &stubEmployeeRepo{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	expectedBody := `{"status":"healthy","message":"Employee API is running"}`
	require.JSONEq(t, expectedBody, rr.Body.String())
}

func TestHealthChecker(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	t.Run("database ok", func(t *testing.T) {
		t.Parallel()

		mockDB := &MockDBPinger{ShouldFail: false}
		healthChecker := server.NewHealthChecker(mockDB, logger)

		req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
		rr := httptest.NewRecorder()

		healthChecker.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		expectedBody := `{"database":"ok"}`
		require.JSONEq(t, expectedBody, rr.Body.String())
	})

	t.Run("database unavailable", func(t *testing.T) {
		t.Parallel()

		mockDB := &MockDBPinger{ShouldFail: true}
		healthChecker := server.NewHealthChecker(mockDB, logger)

		req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
		rr := httptest.NewRecorder()

		healthChecker.ServeHTTP(rr, req)

		require.Equal(t, http.StatusServiceUnavailable, rr.Code)
		expectedBody := `{"database":"unavailable"}`
		require.JSONEq(t, expectedBody, rr.Body.String())
	})
}
