package models_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/UnknownOlympus/hestia/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_JSON(t *testing.T) {
	t.Parallel()

	t.Run("marshals as YYYY-MM-DD", func(t *testing.T) {
		t.Parallel()

		date := models.NewDate(2023, time.March, 1)
		raw, err := json.Marshal(date)

		require.NoError(t, err)
		assert.JSONEq(t, `"2023-03-01"`, string(raw))
	})

	t.Run("unmarshals a date string", func(t *testing.T) {
		t.Parallel()

		var date models.Date
		require.NoError(t, json.Unmarshal([]byte(`"2023-03-01"`), &date))
		assert.Equal(t, models.NewDate(2023, time.March, 1), date)
	})

	t.Run("rejects non-date strings", func(t *testing.T) {
		t.Parallel()

		var date models.Date
		err := json.Unmarshal([]byte(`"yesterday"`), &date)
		require.Error(t, err)
	})
}

func TestEmployee_JSONOptionalFields(t *testing.T) {
	t.Parallel()

	employee := models.Employee{
		ID:        1,
		FirstName: "Jane",
		LastName:  "Smith",
		Email:     "jane.smith@example.com",
	}

	raw, err := json.Marshal(employee)
	require.NoError(t, err)

	assert.Contains(t, string(raw), `"phone":null`)
	assert.Contains(t, string(raw), `"hire_date":null`)
	assert.Contains(t, string(raw), `"salary":null`)
}
