package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/UnknownOlympus/hestia/internal/lib/logger/sl"
	"github.com/UnknownOlympus/hestia/internal/metrics"
	"github.com/UnknownOlympus/hestia/internal/repository"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server holds the dependencies of the HTTP layer.
type Server struct {
	log          *slog.Logger
	repo         repository.EmployeeRepoIface
	metrics      *metrics.Metrics
	queryTimeout time.Duration
}

func NewServer(
	log *slog.Logger,
	repo repository.EmployeeRepoIface,
	mts *metrics.Metrics,
	queryTimeout time.Duration,
) *Server {
	return &Server{log: log, repo: repo, metrics: mts, queryTimeout: queryTimeout}
}

// Handler builds the routed handler: employee endpoints, health endpoints and
// the metrics exporter, wrapped with logging, metrics and CORS middleware.
func (s *Server) Handler(reg *prometheus.Registry, db DBPinger) http.Handler {
	router := mux.NewRouter()
	router.Use(RequestLogger(s.log), RequestMetrics(s.metrics))

	router.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	router.Handle("/health/ready", NewHealthChecker(db, s.log)).Methods(http.MethodGet)

	router.HandleFunc("/employees", s.handleCreateEmployee).Methods(http.MethodPost)
	router.HandleFunc("/employees", s.handleListEmployees).Methods(http.MethodGet)
	router.HandleFunc("/employees/{id}", s.handleGetEmployee).Methods(http.MethodGet)

	// CORS wraps the router itself so preflight requests are answered
	// before route matching rejects the OPTIONS method.
	return CORS(router)
}

// Start runs the HTTP server until ctx is cancelled, then shuts it down gracefully.
func Start(ctx context.Context, log *slog.Logger, port int, handler http.Handler) error {
	headerTimeout := 5 * time.Second
	shutdownTimeout := 10 * time.Second

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           handler,
		ReadHeaderTimeout: headerTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.InfoContext(ctx, "HTTP server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server failed: %w", err)
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.ErrorContext(ctx, "HTTP server shutdown failed", sl.Err(err))
		return fmt.Errorf("failed to shutdown http server: %w", err)
	}

	log.InfoContext(ctx, "HTTP server stopped gracefully")
	return <-errCh
}
