package repository

import (
	"context"
	"errors"

	"github.com/UnknownOlympus/hestia/internal/metrics"
	"github.com/UnknownOlympus/hestia/internal/models"
)

var (
	// ErrNotFound is returned when no employee matches the requested identifier.
	ErrNotFound = errors.New("employee not found")
	// ErrDuplicateEmail is returned when an insert violates the email unique constraint.
	ErrDuplicateEmail = errors.New("email already exists")
	// ErrPoolExhausted is returned when no pooled connection became free within the deadline.
	ErrPoolExhausted = errors.New("connection pool exhausted")
	// ErrMissingFields is returned when required employee fields are empty.
	ErrMissingFields = errors.New("missing required employee fields")
)

type Repository struct {
	db      Database
	metrics *metrics.Metrics
}

// EmployeeRepoIface represents the interface for interacting with employee data in the repository.
type EmployeeRepoIface interface {
	CreateEmployee(ctx context.Context, draft models.EmployeeDraft) (models.Employee, error)
	GetEmployeeByID(ctx context.Context, identifier int64) (models.Employee, error)
	ListEmployees(ctx context.Context) ([]models.Employee, error)
}

func NewEmployeeRepository(db Database, mts *metrics.Metrics) EmployeeRepoIface {
	return &Repository{db: db, metrics: mts}
}
