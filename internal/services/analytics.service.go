package services

import (
	"sort"
	"time"

	. "rightstay/internal/models"
	"rightstay/internal/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const trendMonths = 6

type AnalyticsSummary struct {
	TotalCleanings               int             `json:"total_cleanings"`
	ActiveApartments             int             `json:"active_apartments"`
	ActiveCleaners               int             `json:"active_cleaners"`
	AverageCleaningsPerApartment string          `json:"average_cleanings_per_apartment"`
	TotalRevenue                 decimal.Decimal `json:"total_revenue"`
	TotalCleanerPayouts          decimal.Decimal `json:"total_cleaner_payouts"`
	NetRevenue                   decimal.Decimal `json:"net_revenue"`
}

type ApartmentCleanings struct {
	ApartmentID     uuid.UUID `json:"apartment_id"`
	ApartmentNumber string    `json:"apartment_number"`
	OwnerName       string    `json:"owner_name"`
	CleaningCount   int       `json:"cleaning_count"`
}

type CleanerWorkload struct {
	CleanerID    uuid.UUID `json:"cleaner_id"`
	CleanerName  string    `json:"cleaner_name"`
	SessionCount int       `json:"session_count"`
}

type CleanerEarnings struct {
	CleanerID                 uuid.UUID       `json:"cleaner_id"`
	CleanerName               string          `json:"cleaner_name"`
	SessionCount              int             `json:"session_count"`
	TotalEarnings             decimal.Decimal `json:"total_earnings"`
	AverageEarningsPerSession decimal.Decimal `json:"average_earnings_per_session"`
}

type MonthlyTrend struct {
	Month            string `json:"month"`
	MonthKey         string `json:"month_key"`
	CleaningCount    int    `json:"cleaning_count"`
	UniqueApartments int    `json:"unique_apartments"`
	UniqueCleaners   int    `json:"unique_cleaners"`
}

type AnalyticsInsights struct {
	MostActiveApartment  *ApartmentCleanings `json:"most_active_apartment"`
	LeastActiveApartment *ApartmentCleanings `json:"least_active_apartment"`
	TopCleaner           *CleanerWorkload    `json:"top_cleaner"`
}

type InvoicingEntry struct {
	ApartmentID     uuid.UUID       `json:"apartment_id"`
	ApartmentNumber string          `json:"apartment_number"`
	OwnerName       string          `json:"owner_name"`
	CleaningCount   int             `json:"cleaning_count"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
}

type AnalyticsDateRange struct {
	Month         string `json:"month,omitempty"`
	Year          string `json:"year,omitempty"`
	TotalSessions int    `json:"total_sessions"`
}

type AnalyticsResult struct {
	Summary              AnalyticsSummary     `json:"summary"`
	CleaningsByApartment []ApartmentCleanings `json:"cleanings_by_apartment"`
	CleanerWorkload      []CleanerWorkload    `json:"cleaner_workload"`
	CleanerEarnings      []CleanerEarnings    `json:"cleaner_earnings"`
	MonthlyTrends        []MonthlyTrend       `json:"monthly_trends"`
	Insights             AnalyticsInsights    `json:"insights"`
	InvoicingData        []InvoicingEntry     `json:"invoicing_data"`
	DateRange            AnalyticsDateRange   `json:"date_range"`
}

// AnalyticsService aggregates cleaning sessions into the dashboard metrics.
// The clock is injected so the six month trend window is deterministic under
// test.
type AnalyticsService struct {
	pricing *PricingService
	now     func() time.Time
}

func NewAnalyticsService() *AnalyticsService {
	return &AnalyticsService{
		pricing: NewPricingService(),
		now:     time.Now,
	}
}

func NewAnalyticsServiceWithClock(now func() time.Time) *AnalyticsService {
	return &AnalyticsService{
		pricing: NewPricingService(),
		now:     now,
	}
}

// Aggregate computes period metrics over the filtered session set and trend
// metrics over the full set. It is read only; payouts are read live from each
// apartment's current configuration, not snapshotted on the session.
func (s *AnalyticsService) Aggregate(
	sessions []CleaningSessionDetail,
	apartments []Apartment,
	cleaners []Cleaner,
	filter SessionFilter,
) AnalyticsResult {
	filtered := filter.Apply(sessions)

	payoutByNumber := make(map[string]decimal.Decimal, len(apartments))
	for _, apt := range apartments {
		payoutByNumber[apt.ApartmentNumber] = apt.PayoutOrZero()
	}

	byApartment := s.cleaningsByApartment(filtered, apartments)
	workload := s.cleanerWorkload(filtered, cleaners)
	earnings := s.cleanerEarnings(filtered, cleaners, payoutByNumber)
	invoicing := s.invoicingData(filtered, byApartment)

	totalRevenue := decimal.Zero
	for _, entry := range invoicing {
		totalRevenue = totalRevenue.Add(entry.TotalAmount)
	}

	totalPayouts := decimal.Zero
	for _, session := range filtered {
		totalPayouts = totalPayouts.Add(payoutByNumber[session.ApartmentNumber])
	}

	average := "0"
	if len(apartments) > 0 {
		average = decimal.NewFromInt(int64(len(filtered))).
			Div(decimal.NewFromInt(int64(len(apartments)))).
			StringFixed(1)
	}

	return AnalyticsResult{
		Summary: AnalyticsSummary{
			TotalCleanings:               len(filtered),
			ActiveApartments:             len(apartments),
			ActiveCleaners:               len(cleaners),
			AverageCleaningsPerApartment: average,
			TotalRevenue:                 totalRevenue,
			TotalCleanerPayouts:          totalPayouts,
			NetRevenue:                   totalRevenue.Sub(totalPayouts),
		},
		CleaningsByApartment: byApartment,
		CleanerWorkload:      workload,
		CleanerEarnings:      earnings,
		MonthlyTrends:        s.monthlyTrends(sessions),
		Insights:             s.insights(byApartment, workload),
		InvoicingData:        invoicing,
		DateRange: AnalyticsDateRange{
			Month:         filter.Month,
			Year:          filter.Year,
			TotalSessions: len(sessions),
		},
	}
}

// cleaningsByApartment keeps zero count apartments so invoicing shows every
// unit, and sorts by count descending. The sort is stable so ties keep the
// apartment number ordering the store returned.
func (s *AnalyticsService) cleaningsByApartment(
	filtered []CleaningSessionDetail,
	apartments []Apartment,
) []ApartmentCleanings {
	counts := make(map[string]int, len(apartments))
	for _, session := range filtered {
		counts[session.ApartmentNumber]++
	}

	entries := make([]ApartmentCleanings, 0, len(apartments))
	for _, apt := range apartments {
		entries = append(entries, ApartmentCleanings{
			ApartmentID:     apt.ID,
			ApartmentNumber: apt.ApartmentNumber,
			OwnerName:       apt.OwnerName,
			CleaningCount:   counts[apt.ApartmentNumber],
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CleaningCount > entries[j].CleaningCount
	})

	return entries
}

// cleanerWorkload drops cleaners with no sessions in the period.
func (s *AnalyticsService) cleanerWorkload(
	filtered []CleaningSessionDetail,
	cleaners []Cleaner,
) []CleanerWorkload {
	counts := make(map[string]int, len(cleaners))
	for _, session := range filtered {
		counts[session.CleanerName]++
	}

	entries := make([]CleanerWorkload, 0, len(cleaners))
	for _, cleaner := range cleaners {
		if counts[cleaner.Name] == 0 {
			continue
		}
		entries = append(entries, CleanerWorkload{
			CleanerID:    cleaner.ID,
			CleanerName:  cleaner.Name,
			SessionCount: counts[cleaner.Name],
		})
	}

	return entries
}

func (s *AnalyticsService) cleanerEarnings(
	filtered []CleaningSessionDetail,
	cleaners []Cleaner,
	payoutByNumber map[string]decimal.Decimal,
) []CleanerEarnings {
	entries := make([]CleanerEarnings, 0, len(cleaners))
	for _, cleaner := range cleaners {
		var sessionCount int
		total := decimal.Zero
		for _, session := range filtered {
			if session.CleanerName != cleaner.Name {
				continue
			}
			sessionCount++
			total = total.Add(payoutByNumber[session.ApartmentNumber])
		}
		if sessionCount == 0 {
			continue
		}

		entries = append(entries, CleanerEarnings{
			CleanerID:                 cleaner.ID,
			CleanerName:               cleaner.Name,
			SessionCount:              sessionCount,
			TotalEarnings:             total,
			AverageEarningsPerSession: total.Div(decimal.NewFromInt(int64(sessionCount))),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TotalEarnings.GreaterThan(entries[j].TotalEarnings)
	})

	return entries
}

// monthlyTrends always covers the six calendar months ending at the current
// one, computed from the unfiltered set so the chart keeps its shape when a
// period filter is active.
func (s *AnalyticsService) monthlyTrends(sessions []CleaningSessionDetail) []MonthlyTrend {
	now := s.now()

	trends := make([]MonthlyTrend, 0, trendMonths)
	for i := trendMonths - 1; i >= 0; i-- {
		monthStart := utils.MonthStart(now, i)
		monthKey := utils.MonthKey(monthStart)

		var count int
		apartmentSet := make(map[string]struct{})
		cleanerSet := make(map[string]struct{})
		for _, session := range sessions {
			if len(session.CleaningDate) < len(monthKey) ||
				session.CleaningDate[:len(monthKey)] != monthKey {
				continue
			}
			count++
			apartmentSet[session.ApartmentNumber] = struct{}{}
			cleanerSet[session.CleanerName] = struct{}{}
		}

		trends = append(trends, MonthlyTrend{
			Month:            utils.MonthLabel(monthStart),
			MonthKey:         monthKey,
			CleaningCount:    count,
			UniqueApartments: len(apartmentSet),
			UniqueCleaners:   len(cleanerSet),
		})
	}

	return trends
}

func (s *AnalyticsService) insights(
	byApartment []ApartmentCleanings,
	workload []CleanerWorkload,
) AnalyticsInsights {
	var insights AnalyticsInsights

	if len(byApartment) > 0 {
		most := byApartment[0]
		insights.MostActiveApartment = &most
	}

	for i := len(byApartment) - 1; i >= 0; i-- {
		if byApartment[i].CleaningCount > 0 {
			least := byApartment[i]
			insights.LeastActiveApartment = &least
			break
		}
	}

	for i := range workload {
		if insights.TopCleaner == nil ||
			workload[i].SessionCount > insights.TopCleaner.SessionCount {
			top := workload[i]
			insights.TopCleaner = &top
		}
	}

	return insights
}

// invoicingData mirrors the cleanings_by_apartment ordering, summing each
// apartment's effective session prices for the period.
func (s *AnalyticsService) invoicingData(
	filtered []CleaningSessionDetail,
	byApartment []ApartmentCleanings,
) []InvoicingEntry {
	totals := make(map[string]decimal.Decimal, len(byApartment))
	for _, session := range filtered {
		totals[session.ApartmentNumber] = totals[session.ApartmentNumber].
			Add(s.pricing.EffectivePrice(session.Price))
	}

	entries := make([]InvoicingEntry, 0, len(byApartment))
	for _, apt := range byApartment {
		entries = append(entries, InvoicingEntry{
			ApartmentID:     apt.ApartmentID,
			ApartmentNumber: apt.ApartmentNumber,
			OwnerName:       apt.OwnerName,
			CleaningCount:   apt.CleaningCount,
			TotalAmount:     totals[apt.ApartmentNumber],
		})
	}

	return entries
}
