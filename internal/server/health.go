package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
)

type DBPinger interface {
	Ping(ctx context.Context) error
}

// handleHealth is a static liveness check. It deliberately performs no
// database access; readiness lives at /health/ready.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, map[string]string{
		"status":  "healthy",
		"message": "Employee API is running",
	})
}

// HealthChecker reports readiness by probing the database pool.
type HealthChecker struct {
	db  DBPinger
	log *slog.Logger
}

func NewHealthChecker(db DBPinger, log *slog.Logger) *HealthChecker {
	return &HealthChecker{db: db, log: log}
}

func (h *HealthChecker) ServeHTTP(writer http.ResponseWriter, req *http.Request) {
	h.log.DebugContext(req.Context(), "Performing readiness checks...")

	status := make(map[string]string)
	overallStatus := http.StatusOK

	if err := h.db.Ping(req.Context()); err != nil {
		status["database"] = "unavailable"
		overallStatus = http.StatusServiceUnavailable
		h.log.WarnContext(req.Context(), "Readiness check failed: DB ping", "error", err)
	} else {
		status["database"] = "ok"
	}

	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(overallStatus)
	if err := json.NewEncoder(writer).Encode(status); err != nil {
		h.log.ErrorContext(req.Context(), "Failed to write readiness response", "error", err)
	}

	h.log.DebugContext(req.Context(), "Readiness checks completed", "status", overallStatus)
}
