package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsValidDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"valid date", "2025-03-05", true},
		{"leap day", "2024-02-29", true},
		{"non leap year february 29", "2025-02-29", false},
		{"missing zero padding", "2025-3-5", false},
		{"month out of range", "2025-13-01", false},
		{"empty", "", false},
		{"time component", "2025-03-05T10:00:00Z", false},
		{"slashes", "2025/03/05", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidDate(tt.input))
		})
	}
}

func TestIsValidMonth(t *testing.T) {
	assert.True(t, IsValidMonth("2025-03"))
	assert.False(t, IsValidMonth("2025-3"))
	assert.False(t, IsValidMonth("2025-00"))
	assert.False(t, IsValidMonth("2025"))
}

func TestIsValidYear(t *testing.T) {
	assert.True(t, IsValidYear("2025"))
	assert.False(t, IsValidYear("25"))
	assert.False(t, IsValidYear("2025-03"))
}

func TestMonthStart(t *testing.T) {
	now := time.Date(2025, time.March, 31, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "2025-03", MonthKey(MonthStart(now, 0)))
	assert.Equal(t, "2025-01", MonthKey(MonthStart(now, 2)))
	// Crosses a year boundary.
	assert.Equal(t, "2024-10", MonthKey(MonthStart(now, 5)))
}

func TestMonthLabel(t *testing.T) {
	assert.Equal(t, "Mar 2025", MonthLabel(time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)))
}
