package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/UnknownOlympus/hestia/internal/lib/logger/sl"
	"github.com/UnknownOlympus/hestia/internal/repository"
)

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log.ErrorContext(r.Context(), "Failed to write response", sl.Err(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	s.writeJSON(w, r, status, errorResponse{Error: message})
}

// respondRepositoryError maps repository failures onto HTTP status codes.
// Driver error text is logged, never sent to the client.
func (s *Server) respondRepositoryError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		s.writeError(w, r, http.StatusNotFound, "employee not found")
	case errors.Is(err, repository.ErrDuplicateEmail):
		s.writeError(w, r, http.StatusConflict, "email already exists")
	case errors.Is(err, repository.ErrMissingFields):
		s.writeError(w, r, http.StatusBadRequest, "missing required fields")
	case errors.Is(err, repository.ErrPoolExhausted):
		s.log.WarnContext(r.Context(), "Connection pool exhausted", sl.Err(err))
		s.writeError(w, r, http.StatusServiceUnavailable, "service temporarily unavailable")
	default:
		s.log.ErrorContext(r.Context(), "Database error", sl.Err(err))
		s.writeError(w, r, http.StatusInternalServerError, "database error occurred")
	}
}
