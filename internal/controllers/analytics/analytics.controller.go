package analyticsController

import (
	"context"
	"errors"

	"rightstay/config"
	"rightstay/internal/database"
	. "rightstay/internal/models"
	"rightstay/internal/repositories"
	"rightstay/internal/services"
	"rightstay/internal/utils"

	logger "github.com/Bparsons0904/goLogger"
)

var ErrValidation = errors.New("validation error")

type AnalyticsController struct {
	sessionRepo      repositories.SessionRepository
	apartmentRepo    repositories.ApartmentRepository
	cleanerRepo      repositories.CleanerRepository
	analyticsService *services.AnalyticsService
	db               database.DB
	Config           config.Config
	log              logger.Logger
}

type AnalyticsControllerInterface interface {
	Get(ctx context.Context, month, year string) (*services.AnalyticsResult, error)
}

func New(
	repos repositories.Repository,
	services services.Service,
	config config.Config,
	db database.DB,
) AnalyticsControllerInterface {
	return &AnalyticsController{
		sessionRepo:      repos.Session,
		apartmentRepo:    repos.Apartment,
		cleanerRepo:      repos.Cleaner,
		analyticsService: services.Analytics,
		db:               db,
		Config:           config,
		log:              logger.New("analyticsController"),
	}
}

// Get aggregates the dashboard metrics for an optional period. A month scopes
// tighter than a year, so month wins when both are supplied.
func (c *AnalyticsController) Get(
	ctx context.Context,
	month, year string,
) (*services.AnalyticsResult, error) {
	log := c.log.TraceFromContext(ctx).Function("Get")

	if month != "" && !utils.IsValidMonth(month) {
		return nil, log.ErrorWithType(ErrValidation, "invalid month, expected YYYY-MM")
	}
	if year != "" && !utils.IsValidYear(year) {
		return nil, log.ErrorWithType(ErrValidation, "invalid year, expected YYYY")
	}

	var filter SessionFilter
	if month != "" {
		filter.Month = month
	} else if year != "" {
		filter.Year = year
	}

	sessions, err := c.sessionRepo.GetAllDetailed(ctx, c.db.SQL)
	if err != nil {
		return nil, log.Err("failed to load cleaning sessions", err)
	}

	apartments, err := c.apartmentRepo.GetAll(ctx, c.db.SQL)
	if err != nil {
		return nil, log.Err("failed to load apartments", err)
	}

	cleaners, err := c.cleanerRepo.GetAll(ctx, c.db.SQL)
	if err != nil {
		return nil, log.Err("failed to load cleaners", err)
	}

	result := c.analyticsService.Aggregate(sessions, apartments, cleaners, filter)

	return &result, nil
}
