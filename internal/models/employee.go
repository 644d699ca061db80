package models

import (
	"fmt"
	"strings"
	"time"
)

// Employee represents a persisted employee record.
type Employee struct {
	ID         int64     `json:"id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Email      string    `json:"email"`
	Phone      *string   `json:"phone"`
	Department *string   `json:"department"`
	Position   *string   `json:"position"`
	Salary     *float64  `json:"salary"`
	HireDate   *Date     `json:"hire_date"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// EmployeeDraft holds the caller-supplied fields of an employee before the
// storage layer assigns an identifier and timestamps.
type EmployeeDraft struct {
	FirstName  string
	LastName   string
	Email      string
	Phone      *string
	Department *string
	Position   *string
	Salary     *float64
	HireDate   *Date
}

const dateLayout = "2006-01-02"

// Date is a date-only value serialized as "YYYY-MM-DD" on the wire.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "" || raw == "null" {
		return nil
	}

	parsed, err := time.Parse(dateLayout, raw)
	if err != nil {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", raw, err)
	}
	d.Time = parsed

	return nil
}
