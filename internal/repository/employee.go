package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/UnknownOlympus/hestia/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolationCode is the PostgreSQL SQLSTATE for unique constraint violations.
const uniqueViolationCode = "23505"

const employeeColumns = `id, first_name, last_name, email, phone, department, position, salary, hire_date, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

// CreateEmployee inserts a new employee and returns the persisted record with
// the storage-assigned identifier and timestamps.
func (r *Repository) CreateEmployee(ctx context.Context, draft models.EmployeeDraft) (models.Employee, error) {
	if draft.FirstName == "" || draft.LastName == "" || draft.Email == "" {
		return models.Employee{}, ErrMissingFields
	}

	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("create_employee").Observe(duration)
	}()
	query := `
		INSERT INTO employees (first_name, last_name, email, phone, department, position, salary, hire_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + employeeColumns

	var hireDate *time.Time
	if draft.HireDate != nil {
		hireDate = &draft.HireDate.Time
	}

	row := r.db.QueryRow(ctx, query,
		draft.FirstName, draft.LastName, draft.Email,
		draft.Phone, draft.Department, draft.Position, draft.Salary, hireDate)

	employee, err := scanEmployee(row)
	if err != nil {
		return models.Employee{}, mapStorageError("create employee", err)
	}

	r.metrics.EmployeesCreated.Inc()

	return employee, nil
}

// GetEmployeeByID retrieves an employee from the database by their ID.
func (r *Repository) GetEmployeeByID(ctx context.Context, identifier int64) (models.Employee, error) {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("get_employee_by_id").Observe(duration)
	}()
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id=$1`

	employee, err := scanEmployee(r.db.QueryRow(ctx, query, identifier))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Employee{}, fmt.Errorf("failed to get employee by id: %w", ErrNotFound)
		}
		return models.Employee{}, mapStorageError("get employee by id", err)
	}

	return employee, nil
}

// ListEmployees returns every employee ordered by identifier ascending.
// An empty table yields an empty slice, not an error.
func (r *Repository) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("list_employees").Observe(duration)
	}()
	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, mapStorageError("list employees", err)
	}
	defer rows.Close()

	employees := make([]models.Employee, 0)
	for rows.Next() {
		employee, scanErr := scanEmployee(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan employee row: %w", scanErr)
		}
		employees = append(employees, employee)
	}
	if err = rows.Err(); err != nil {
		return nil, mapStorageError("list employees", err)
	}

	return employees, nil
}

// scanEmployee maps a single row onto an Employee.
func scanEmployee(row rowScanner) (models.Employee, error) {
	var employee models.Employee
	var hireDate *time.Time

	err := row.Scan(
		&employee.ID, &employee.FirstName, &employee.LastName, &employee.Email,
		&employee.Phone, &employee.Department, &employee.Position, &employee.Salary,
		&hireDate, &employee.CreatedAt, &employee.UpdatedAt)
	if err != nil {
		return models.Employee{}, err
	}

	if hireDate != nil {
		employee.HireDate = &models.Date{Time: *hireDate}
	}

	return employee, nil
}

// mapStorageError translates driver failures to the repository error taxonomy.
// Raw driver text stays inside the wrapped error and never reaches clients.
func mapStorageError(operation string, err error) error {
	var pgErr *pgconn.PgError
	switch {
	case errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode:
		return fmt.Errorf("failed to %s: %w", operation, ErrDuplicateEmail)
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("failed to %s: %w", operation, ErrPoolExhausted)
	default:
		return fmt.Errorf("failed to %s: %w", operation, err)
	}
}
