package services

import (
	"testing"
	"time"

	. "rightstay/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testID(name string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(name))
}

func testApartment(number, owner string, payout *decimal.Decimal) Apartment {
	return Apartment{
		BaseUUIDModel:   BaseUUIDModel{ID: testID("apartment-" + number)},
		ApartmentNumber: number,
		OwnerName:       owner,
		CleanerPayout:   payout,
	}
}

func testCleaner(name string) Cleaner {
	return Cleaner{
		BaseUUIDModel: BaseUUIDModel{ID: testID("cleaner-" + name)},
		Name:          name,
	}
}

func testSession(apartment Apartment, cleaner Cleaner, date string, price *decimal.Decimal) CleaningSessionDetail {
	return CleaningSessionDetail{
		ID:              testID("session-" + apartment.ApartmentNumber + cleaner.Name + date),
		ApartmentID:     apartment.ID,
		CleanerID:       cleaner.ID,
		CleaningDate:    date,
		Price:           price,
		ApartmentNumber: apartment.ApartmentNumber,
		OwnerName:       apartment.OwnerName,
		CleanerName:     cleaner.Name,
	}
}

func fixedClock(date string) func() time.Time {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return parsed }
}

// Scenario: three apartments, three cleaners, three sessions in Feb/Mar 2025.
// A101 pays its cleaner 200 per visit, B202 pays 120, C303 never gets cleaned.
func analyticsFixture() ([]CleaningSessionDetail, []Apartment, []Cleaner) {
	a101 := testApartment("A101", "Sarah Johnson", dec("200"))
	b202 := testApartment("B202", "Mike Chen", dec("120"))
	c303 := testApartment("C303", "Lisa Park", nil)
	apartments := []Apartment{a101, b202, c303}

	jane := testCleaner("Jane Smith")
	bob := testCleaner("Bob Wilson")
	carol := testCleaner("Carol Davis")
	cleaners := []Cleaner{jane, bob, carol}

	sessions := []CleaningSessionDetail{
		testSession(a101, jane, "2025-03-01", dec("230")),
		testSession(a101, bob, "2025-03-02", nil),
		testSession(b202, jane, "2025-02-10", dec("100")),
	}

	return sessions, apartments, cleaners
}

func TestAggregateSummary(t *testing.T) {
	sessions, apartments, cleaners := analyticsFixture()
	svc := NewAnalyticsServiceWithClock(fixedClock("2025-03-15"))

	result := svc.Aggregate(sessions, apartments, cleaners, SessionFilter{})

	assert.Equal(t, 3, result.Summary.TotalCleanings)
	assert.Equal(t, 3, result.Summary.ActiveApartments)
	assert.Equal(t, 3, result.Summary.ActiveCleaners)
	assert.Equal(t, "1.0", result.Summary.AverageCleaningsPerApartment)

	// 230 + 150 default + 100
	assert.Equal(t, "480", result.Summary.TotalRevenue.String())
	// two A101 visits at 200 plus one B202 visit at 120
	assert.Equal(t, "520", result.Summary.TotalCleanerPayouts.String())
	assert.Equal(t, "-40", result.Summary.NetRevenue.String())
	assert.True(
		t,
		result.Summary.NetRevenue.Equal(
			result.Summary.TotalRevenue.Sub(result.Summary.TotalCleanerPayouts),
		),
	)

	assert.Equal(t, 3, result.DateRange.TotalSessions)
}

func TestAggregateRevenueMatchesInvoicing(t *testing.T) {
	sessions, apartments, cleaners := analyticsFixture()
	svc := NewAnalyticsServiceWithClock(fixedClock("2025-03-15"))

	result := svc.Aggregate(sessions, apartments, cleaners, SessionFilter{})

	invoiced := decimal.Zero
	for _, entry := range result.InvoicingData {
		invoiced = invoiced.Add(entry.TotalAmount)
	}
	assert.True(t, result.Summary.TotalRevenue.Equal(invoiced),
		"total revenue must equal the sum of per-apartment invoice amounts")
}

func TestAggregateCleaningsByApartment(t *testing.T) {
	sessions, apartments, cleaners := analyticsFixture()
	svc := NewAnalyticsServiceWithClock(fixedClock("2025-03-15"))

	result := svc.Aggregate(sessions, apartments, cleaners, SessionFilter{})

	require.Len(t, result.CleaningsByApartment, 3, "zero count apartments are kept")
	assert.Equal(t, "A101", result.CleaningsByApartment[0].ApartmentNumber)
	assert.Equal(t, 2, result.CleaningsByApartment[0].CleaningCount)
	assert.Equal(t, "B202", result.CleaningsByApartment[1].ApartmentNumber)
	assert.Equal(t, 1, result.CleaningsByApartment[1].CleaningCount)
	assert.Equal(t, "C303", result.CleaningsByApartment[2].ApartmentNumber)
	assert.Equal(t, 0, result.CleaningsByApartment[2].CleaningCount)
}

func TestAggregateCleanerWorkloadDropsIdle(t *testing.T) {
	sessions, apartments, cleaners := analyticsFixture()
	svc := NewAnalyticsServiceWithClock(fixedClock("2025-03-15"))

	result := svc.Aggregate(sessions, apartments, cleaners, SessionFilter{})

	require.Len(t, result.CleanerWorkload, 2)
	names := []string{result.CleanerWorkload[0].CleanerName, result.CleanerWorkload[1].CleanerName}
	assert.Contains(t, names, "Jane Smith")
	assert.Contains(t, names, "Bob Wilson")
	assert.NotContains(t, names, "Carol Davis")
}

func TestAggregateCleanerEarnings(t *testing.T) {
	sessions, apartments, cleaners := analyticsFixture()
	svc := NewAnalyticsServiceWithClock(fixedClock("2025-03-15"))

	result := svc.Aggregate(sessions, apartments, cleaners, SessionFilter{})

	require.Len(t, result.CleanerEarnings, 2)

	jane := result.CleanerEarnings[0]
	assert.Equal(t, "Jane Smith", jane.CleanerName)
	assert.Equal(t, 2, jane.SessionCount)
	assert.Equal(t, "320", jane.TotalEarnings.String())
	assert.Equal(t, "160", jane.AverageEarningsPerSession.String())

	bob := result.CleanerEarnings[1]
	assert.Equal(t, "Bob Wilson", bob.CleanerName)
	assert.Equal(t, 1, bob.SessionCount)
	assert.Equal(t, "200", bob.TotalEarnings.String())
	assert.Equal(t, "200", bob.AverageEarningsPerSession.String())
}

func TestAggregateMonthlyTrendsWindow(t *testing.T) {
	sessions, apartments, cleaners := analyticsFixture()
	a101 := apartments[0]
	jane := cleaners[0]

	// one session just outside the six month window
	sessions = append(sessions, testSession(a101, jane, "2024-09-15", dec("150")))

	svc := NewAnalyticsServiceWithClock(fixedClock("2025-03-15"))
	result := svc.Aggregate(sessions, apartments, cleaners, SessionFilter{})

	require.Len(t, result.MonthlyTrends, 6)
	assert.Equal(t, "2024-10", result.MonthlyTrends[0].MonthKey)
	assert.Equal(t, "Oct 2024", result.MonthlyTrends[0].Month)
	assert.Equal(t, "2025-03", result.MonthlyTrends[5].MonthKey)
	assert.Equal(t, "Mar 2025", result.MonthlyTrends[5].Month)

	assert.Equal(t, 0, result.MonthlyTrends[0].CleaningCount)

	feb := result.MonthlyTrends[4]
	assert.Equal(t, "2025-02", feb.MonthKey)
	assert.Equal(t, 1, feb.CleaningCount)
	assert.Equal(t, 1, feb.UniqueApartments)
	assert.Equal(t, 1, feb.UniqueCleaners)

	march := result.MonthlyTrends[5]
	assert.Equal(t, 2, march.CleaningCount)
	assert.Equal(t, 1, march.UniqueApartments)
	assert.Equal(t, 2, march.UniqueCleaners)
}

func TestAggregateMonthlyTrendsIgnorePeriodFilter(t *testing.T) {
	sessions, apartments, cleaners := analyticsFixture()
	svc := NewAnalyticsServiceWithClock(fixedClock("2025-03-15"))

	result := svc.Aggregate(sessions, apartments, cleaners, SessionFilter{Month: "2025-03"})

	assert.Equal(t, 2, result.Summary.TotalCleanings)
	assert.Equal(t, "380", result.Summary.TotalRevenue.String())

	// trends keep the unfiltered February session
	feb := result.MonthlyTrends[4]
	assert.Equal(t, "2025-02", feb.MonthKey)
	assert.Equal(t, 1, feb.CleaningCount)

	assert.Equal(t, "2025-03", result.DateRange.Month)
	assert.Equal(t, 3, result.DateRange.TotalSessions)
}

func TestAggregateInsights(t *testing.T) {
	sessions, apartments, cleaners := analyticsFixture()
	svc := NewAnalyticsServiceWithClock(fixedClock("2025-03-15"))

	result := svc.Aggregate(sessions, apartments, cleaners, SessionFilter{})

	require.NotNil(t, result.Insights.MostActiveApartment)
	assert.Equal(t, "A101", result.Insights.MostActiveApartment.ApartmentNumber)

	require.NotNil(t, result.Insights.LeastActiveApartment)
	assert.Equal(t, "B202", result.Insights.LeastActiveApartment.ApartmentNumber,
		"least active skips apartments with no cleanings")

	require.NotNil(t, result.Insights.TopCleaner)
	assert.Equal(t, "Jane Smith", result.Insights.TopCleaner.CleanerName)
	assert.Equal(t, 2, result.Insights.TopCleaner.SessionCount)
}

func TestAggregateEmpty(t *testing.T) {
	svc := NewAnalyticsServiceWithClock(fixedClock("2025-03-15"))

	result := svc.Aggregate(nil, nil, nil, SessionFilter{})

	assert.Equal(t, 0, result.Summary.TotalCleanings)
	assert.Equal(t, "0", result.Summary.AverageCleaningsPerApartment)
	assert.True(t, result.Summary.TotalRevenue.IsZero())
	assert.True(t, result.Summary.NetRevenue.IsZero())
	assert.Len(t, result.MonthlyTrends, 6)
	assert.Nil(t, result.Insights.MostActiveApartment)
	assert.Nil(t, result.Insights.LeastActiveApartment)
	assert.Nil(t, result.Insights.TopCleaner)
	assert.Empty(t, result.InvoicingData)
}

func TestAggregateWelcomePackScenario(t *testing.T) {
	a101 := testApartment("A101", "Sarah Johnson", dec("200"))
	jane := testCleaner("Jane Smith")

	// base 180 plus 50 welcome pack fee stored as a single 230 price
	sessions := []CleaningSessionDetail{
		testSession(a101, jane, "2025-03-01", dec("230")),
	}

	svc := NewAnalyticsServiceWithClock(fixedClock("2025-03-15"))
	result := svc.Aggregate(sessions, []Apartment{a101}, []Cleaner{jane}, SessionFilter{})

	assert.Equal(t, "230", result.Summary.TotalRevenue.String())
	assert.Equal(t, "200", result.Summary.TotalCleanerPayouts.String())
	assert.Equal(t, "30", result.Summary.NetRevenue.String())

	require.Len(t, result.CleanerEarnings, 1)
	assert.Equal(t, "200", result.CleanerEarnings[0].TotalEarnings.String())
}
