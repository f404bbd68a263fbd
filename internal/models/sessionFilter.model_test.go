package models

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func detail(apartment, cleaner, date string) CleaningSessionDetail {
	return CleaningSessionDetail{
		ID:              uuid.New(),
		ApartmentID:     uuid.NewSHA1(uuid.NameSpaceOID, []byte(apartment)),
		CleanerID:       uuid.NewSHA1(uuid.NameSpaceOID, []byte(cleaner)),
		ApartmentNumber: apartment,
		CleanerName:     cleaner,
		CleaningDate:    date,
	}
}

func TestSessionFilterApply(t *testing.T) {
	a101ID := uuid.NewSHA1(uuid.NameSpaceOID, []byte("A101"))
	janeID := uuid.NewSHA1(uuid.NameSpaceOID, []byte("Jane"))

	sessions := []CleaningSessionDetail{
		detail("A101", "Jane", "2025-03-05"),
		detail("A101", "Pete", "2025-03-12"),
		detail("B202", "Jane", "2025-04-01"),
		detail("B202", "Pete", "2024-12-31"),
		detail("C303", "Jane", "2025-12-24"),
	}

	tests := []struct {
		name   string
		filter SessionFilter
		want   int
	}{
		{name: "no criteria keeps everything", filter: SessionFilter{}, want: 5},
		{name: "by apartment number", filter: SessionFilter{ApartmentNumber: "A101"}, want: 2},
		{name: "by apartment id", filter: SessionFilter{ApartmentID: &a101ID}, want: 2},
		{name: "by cleaner id", filter: SessionFilter{CleanerID: &janeID}, want: 3},
		{name: "by month", filter: SessionFilter{Month: "2025-03"}, want: 2},
		{name: "by year spans all months", filter: SessionFilter{Year: "2025"}, want: 4},
		{name: "start date inclusive", filter: SessionFilter{StartDate: "2025-03-12"}, want: 3},
		{name: "end date inclusive", filter: SessionFilter{EndDate: "2025-03-12"}, want: 3},
		{
			name:   "range",
			filter: SessionFilter{StartDate: "2025-01-01", EndDate: "2025-04-30"},
			want:   3,
		},
		{
			name:   "criteria combine with AND",
			filter: SessionFilter{CleanerID: &janeID, Year: "2025", ApartmentNumber: "C303"},
			want:   1,
		},
		{name: "no matches", filter: SessionFilter{Month: "2023-01"}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.filter.Apply(sessions)
			assert.Len(t, got, tt.want)
		})
	}
}

func TestSessionFilterPaginate(t *testing.T) {
	var sessions []CleaningSessionDetail
	for i := range 7 {
		sessions = append(sessions, detail("A101", "Jane", fmt.Sprintf("2025-01-%02d", i+1)))
	}

	t.Run("defaults to limit 50", func(t *testing.T) {
		page := SessionFilter{}.Paginate(sessions)
		assert.Len(t, page.Items, 7)
		assert.Equal(t, 7, page.Total)
		assert.Equal(t, DefaultPageLimit, page.Limit)
		assert.False(t, page.HasMore)
	})

	t.Run("window with more remaining", func(t *testing.T) {
		page := SessionFilter{Limit: 3, Offset: 0}.Paginate(sessions)
		assert.Len(t, page.Items, 3)
		assert.Equal(t, 7, page.Total)
		assert.True(t, page.HasMore)
		assert.Equal(t, "2025-01-01", page.Items[0].CleaningDate)
	})

	t.Run("last partial window", func(t *testing.T) {
		page := SessionFilter{Limit: 3, Offset: 6}.Paginate(sessions)
		assert.Len(t, page.Items, 1)
		assert.False(t, page.HasMore)
	})

	t.Run("offset past the end", func(t *testing.T) {
		page := SessionFilter{Limit: 3, Offset: 50}.Paginate(sessions)
		assert.Empty(t, page.Items)
		assert.Equal(t, 7, page.Total)
		assert.False(t, page.HasMore)
	})
}
