package models

import (
	"strings"

	"github.com/google/uuid"
)

// SessionFilter narrows a detailed session set before aggregation or listing.
// All criteria are optional and combine with logical AND, applied in order.
type SessionFilter struct {
	ApartmentID     *uuid.UUID
	ApartmentNumber string
	CleanerID       *uuid.UUID
	Month           string // YYYY-MM prefix match
	Year            string // YYYY prefix match
	StartDate       string // YYYY-MM-DD inclusive
	EndDate         string // YYYY-MM-DD inclusive
	Limit           int
	Offset          int
}

func (f SessionFilter) IsZero() bool {
	return f.ApartmentID == nil &&
		f.ApartmentNumber == "" &&
		f.CleanerID == nil &&
		f.Month == "" &&
		f.Year == "" &&
		f.StartDate == "" &&
		f.EndDate == ""
}

// Apply returns the sessions matching every supplied criterion. Date
// comparisons are lexicographic, valid because dates are zero-padded ISO form.
func (f SessionFilter) Apply(sessions []CleaningSessionDetail) []CleaningSessionDetail {
	filtered := sessions

	if f.ApartmentID != nil {
		filtered = keep(filtered, func(s CleaningSessionDetail) bool {
			return s.ApartmentID == *f.ApartmentID
		})
	}

	if f.ApartmentNumber != "" {
		filtered = keep(filtered, func(s CleaningSessionDetail) bool {
			return s.ApartmentNumber == f.ApartmentNumber
		})
	}

	if f.CleanerID != nil {
		filtered = keep(filtered, func(s CleaningSessionDetail) bool {
			return s.CleanerID == *f.CleanerID
		})
	}

	if f.Month != "" {
		filtered = keep(filtered, func(s CleaningSessionDetail) bool {
			return strings.HasPrefix(s.CleaningDate, f.Month)
		})
	}

	if f.Year != "" {
		filtered = keep(filtered, func(s CleaningSessionDetail) bool {
			return strings.HasPrefix(s.CleaningDate, f.Year)
		})
	}

	if f.StartDate != "" {
		filtered = keep(filtered, func(s CleaningSessionDetail) bool {
			return s.CleaningDate >= f.StartDate
		})
	}

	if f.EndDate != "" {
		filtered = keep(filtered, func(s CleaningSessionDetail) bool {
			return s.CleaningDate <= f.EndDate
		})
	}

	return filtered
}

func keep(
	sessions []CleaningSessionDetail,
	match func(CleaningSessionDetail) bool,
) []CleaningSessionDetail {
	kept := make([]CleaningSessionDetail, 0, len(sessions))
	for _, s := range sessions {
		if match(s) {
			kept = append(kept, s)
		}
	}
	return kept
}

// SessionPage is one window of a filtered session listing.
type SessionPage struct {
	Items []CleaningSessionDetail `json:"items"`
	Pagination
}

// Paginate applies the filter's limit/offset after all predicate filtering.
func (f SessionFilter) Paginate(filtered []CleaningSessionDetail) SessionPage {
	items, pagination := PaginateSlice(filtered, f.Limit, f.Offset)
	return SessionPage{Items: items, Pagination: pagination}
}
