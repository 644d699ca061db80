package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/mail"
	"strconv"
	"strings"

	"github.com/UnknownOlympus/hestia/internal/models"
	"github.com/gorilla/mux"
)

// createEmployeeRequest is the typed shape of a POST /employees body.
// Optional fields stay nil when absent so the persisted record keeps them NULL.
type createEmployeeRequest struct {
	FirstName  string       `json:"first_name"`
	LastName   string       `json:"last_name"`
	Email      string       `json:"email"`
	Phone      *string      `json:"phone"`
	Department *string      `json:"department"`
	Position   *string      `json:"position"`
	Salary     *float64     `json:"salary"`
	HireDate   *models.Date `json:"hire_date"`
}

func (req *createEmployeeRequest) missingFields() []string {
	var missing []string
	if strings.TrimSpace(req.FirstName) == "" {
		missing = append(missing, "first_name")
	}
	if strings.TrimSpace(req.LastName) == "" {
		missing = append(missing, "last_name")
	}
	if strings.TrimSpace(req.Email) == "" {
		missing = append(missing, "email")
	}
	return missing
}

func (s *Server) handleCreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req createEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if missing := req.missingFields(); len(missing) > 0 {
		s.writeError(w, r, http.StatusBadRequest, "missing required fields: "+strings.Join(missing, ", "))
		return
	}

	if _, err := mail.ParseAddress(req.Email); err != nil {
		s.writeError(w, r, http.StatusBadRequest, "invalid email format")
		return
	}

	if req.Salary != nil && *req.Salary < 0 {
		s.writeError(w, r, http.StatusBadRequest, "salary must be non-negative")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.queryTimeout)
	defer cancel()

	employee, err := s.repo.CreateEmployee(ctx, models.EmployeeDraft{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Phone:      req.Phone,
		Department: req.Department,
		Position:   req.Position,
		Salary:     req.Salary,
		HireDate:   req.HireDate,
	})
	if err != nil {
		s.respondRepositoryError(w, r, err)
		return
	}

	s.log.InfoContext(r.Context(), "Employee created", "id", employee.ID)
	s.writeJSON(w, r, http.StatusCreated, employee)
}

func (s *Server) handleGetEmployee(w http.ResponseWriter, r *http.Request) {
	identifier, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, "invalid employee id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.queryTimeout)
	defer cancel()

	employee, err := s.repo.GetEmployeeByID(ctx, identifier)
	if err != nil {
		s.respondRepositoryError(w, r, err)
		return
	}

	s.writeJSON(w, r, http.StatusOK, employee)
}

func (s *Server) handleListEmployees(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), s.queryTimeout)
	defer cancel()

	employees, err := s.repo.ListEmployees(ctx)
	if err != nil {
		s.respondRepositoryError(w, r, err)
		return
	}

	s.writeJSON(w, r, http.StatusOK, employees)
}
