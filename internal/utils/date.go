package utils

import (
	"time"
)

const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
	YearLayout  = "2006"
)

// IsValidDate reports whether the input is a real calendar date in
// zero-padded YYYY-MM-DD form.
func IsValidDate(date string) bool {
	if len(date) != len(DateLayout) {
		return false
	}
	_, err := time.Parse(DateLayout, date)
	return err == nil
}

// IsValidMonth reports whether the input is a YYYY-MM month key.
func IsValidMonth(month string) bool {
	if len(month) != len(MonthLayout) {
		return false
	}
	_, err := time.Parse(MonthLayout, month)
	return err == nil
}

// IsValidYear reports whether the input is a four-digit year.
func IsValidYear(year string) bool {
	if len(year) != len(YearLayout) {
		return false
	}
	_, err := time.Parse(YearLayout, year)
	return err == nil
}

// MonthKey formats a time as its YYYY-MM month key.
func MonthKey(t time.Time) string {
	return t.Format(MonthLayout)
}

// MonthLabel formats a time the way the dashboard displays a month.
func MonthLabel(t time.Time) string {
	return t.Format("Jan 2006")
}

// DateKey formats a time as a zero-padded calendar date.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// MonthStart returns the first day of the month n months before t.
func MonthStart(t time.Time, monthsBack int) time.Time {
	return time.Date(t.Year(), t.Month()-time.Month(monthsBack), 1, 0, 0, 0, 0, t.Location())
}
