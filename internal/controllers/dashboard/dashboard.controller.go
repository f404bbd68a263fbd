package dashboardController

import (
	"context"
	"strings"
	"time"

	"rightstay/config"
	"rightstay/internal/database"
	"rightstay/internal/repositories"
	"rightstay/internal/utils"

	logger "github.com/Bparsons0904/goLogger"
)

const upcomingWindowDays = 7

type DashboardStats struct {
	TotalApartments   int `json:"total_apartments"`
	TotalCleaners     int `json:"total_cleaners"`
	TotalSessions     int `json:"total_sessions"`
	SessionsThisMonth int `json:"sessions_this_month"`
	UpcomingSessions  int `json:"upcoming_sessions"`
}

type DashboardController struct {
	apartmentRepo repositories.ApartmentRepository
	cleanerRepo   repositories.CleanerRepository
	sessionRepo   repositories.SessionRepository
	db            database.DB
	Config        config.Config
	log           logger.Logger
	now           func() time.Time
}

type DashboardControllerInterface interface {
	Stats(ctx context.Context) (*DashboardStats, error)
}

func New(
	repos repositories.Repository,
	config config.Config,
	db database.DB,
) DashboardControllerInterface {
	return &DashboardController{
		apartmentRepo: repos.Apartment,
		cleanerRepo:   repos.Cleaner,
		sessionRepo:   repos.Session,
		db:            db,
		Config:        config,
		log:           logger.New("dashboardController"),
		now:           time.Now,
	}
}

func (c *DashboardController) Stats(ctx context.Context) (*DashboardStats, error) {
	log := c.log.TraceFromContext(ctx).Function("Stats")

	apartments, err := c.apartmentRepo.GetAll(ctx, c.db.SQL)
	if err != nil {
		return nil, log.Err("failed to load apartments", err)
	}

	cleaners, err := c.cleanerRepo.GetAll(ctx, c.db.SQL)
	if err != nil {
		return nil, log.Err("failed to load cleaners", err)
	}

	sessions, err := c.sessionRepo.GetAllBasic(ctx, c.db.SQL)
	if err != nil {
		return nil, log.Err("failed to load cleaning sessions", err)
	}

	now := c.now()
	monthKey := utils.MonthKey(now)
	today := utils.DateKey(now)
	weekOut := utils.DateKey(now.AddDate(0, 0, upcomingWindowDays))

	stats := &DashboardStats{
		TotalApartments: len(apartments),
		TotalCleaners:   len(cleaners),
		TotalSessions:   len(sessions),
	}

	for _, session := range sessions {
		if strings.HasPrefix(session.CleaningDate, monthKey) {
			stats.SessionsThisMonth++
		}
		if session.CleaningDate >= today && session.CleaningDate <= weekOut {
			stats.UpcomingSessions++
		}
	}

	return stats, nil
}
