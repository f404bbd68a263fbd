package sessionController

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"rightstay/config"
	"rightstay/internal/database"
	. "rightstay/internal/models"
	"rightstay/internal/repositories"
	"rightstay/internal/services"
	"rightstay/internal/utils"

	logger "github.com/Bparsons0904/goLogger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
)

type SessionController struct {
	sessionRepo        repositories.SessionRepository
	apartmentRepo      repositories.ApartmentRepository
	cleanerRepo        repositories.CleanerRepository
	settingsRepo       repositories.SettingsRepository
	transactionService *services.TransactionService
	pricingService     *services.PricingService
	db                 database.DB
	Config             config.Config
	log                logger.Logger
	now                func() time.Time
}

type CreateSessionRequest struct {
	ApartmentID        uuid.UUID        `json:"apartment_id"`
	CleanerID          uuid.UUID        `json:"cleaner_id"`
	CleaningDate       string           `json:"cleaning_date"`
	Notes              string           `json:"notes,omitempty"`
	Price              *decimal.Decimal `json:"price,omitempty"`
	IncludeWelcomePack bool             `json:"include_welcome_pack,omitempty"`
}

type UpdateSessionRequest struct {
	ApartmentID  *uuid.UUID       `json:"apartment_id,omitempty"`
	CleanerID    *uuid.UUID       `json:"cleaner_id,omitempty"`
	CleaningDate *string          `json:"cleaning_date,omitempty"`
	Notes        *string          `json:"notes,omitempty"`
	Price        *decimal.Decimal `json:"price,omitempty"`
}

type SessionControllerInterface interface {
	List(ctx context.Context, filter SessionFilter) (SessionPage, error)
	Get(ctx context.Context, id uuid.UUID) (*CleaningSessionDetail, error)
	Upcoming(ctx context.Context) ([]CleaningSessionDetail, error)
	Create(ctx context.Context, request *CreateSessionRequest) (*CleaningSession, error)
	Update(ctx context.Context, id uuid.UUID, request *UpdateSessionRequest) (*CleaningSession, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

func New(
	repos repositories.Repository,
	services services.Service,
	config config.Config,
	db database.DB,
) SessionControllerInterface {
	return &SessionController{
		sessionRepo:        repos.Session,
		apartmentRepo:      repos.Apartment,
		cleanerRepo:        repos.Cleaner,
		settingsRepo:       repos.Settings,
		transactionService: services.Transaction,
		pricingService:     services.Pricing,
		db:                 db,
		Config:             config,
		log:                logger.New("sessionController"),
		now:                time.Now,
	}
}

// HasConflict reports whether another session already books the cleaner on the
// date. excludeID skips the session being updated; pass uuid.Nil on create.
func HasConflict(
	sessions []CleaningSession,
	cleanerID uuid.UUID,
	cleaningDate string,
	excludeID uuid.UUID,
) bool {
	for _, session := range sessions {
		if session.ID == excludeID {
			continue
		}
		if session.CleanerID == cleanerID && session.CleaningDate == cleaningDate {
			return true
		}
	}
	return false
}

func (c *SessionController) List(ctx context.Context, filter SessionFilter) (SessionPage, error) {
	log := c.log.TraceFromContext(ctx).Function("List")

	if err := validateFilter(filter); err != nil {
		return SessionPage{}, log.ErrorWithType(ErrValidation, err.Error())
	}

	sessions, err := c.sessionRepo.GetAllDetailed(ctx, c.db.SQL)
	if err != nil {
		return SessionPage{}, log.Err("failed to list cleaning sessions", err)
	}

	return filter.Paginate(filter.Apply(sessions)), nil
}

func validateFilter(filter SessionFilter) error {
	if filter.Month != "" && !utils.IsValidMonth(filter.Month) {
		return errors.New("invalid month, expected YYYY-MM")
	}
	if filter.Year != "" && !utils.IsValidYear(filter.Year) {
		return errors.New("invalid year, expected YYYY")
	}
	if filter.StartDate != "" && !utils.IsValidDate(filter.StartDate) {
		return errors.New("invalid start_date, expected YYYY-MM-DD")
	}
	if filter.EndDate != "" && !utils.IsValidDate(filter.EndDate) {
		return errors.New("invalid end_date, expected YYYY-MM-DD")
	}
	return nil
}

func (c *SessionController) Get(
	ctx context.Context,
	id uuid.UUID,
) (*CleaningSessionDetail, error) {
	log := c.log.TraceFromContext(ctx).Function("Get")

	if id == uuid.Nil {
		return nil, log.ErrorWithType(ErrValidation, "session id is required")
	}

	detail, err := c.sessionRepo.GetDetailByID(ctx, c.db.SQL, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, log.ErrorWithType(ErrNotFound, "cleaning session not found", "sessionID", id)
		}
		return nil, log.Err("failed to get cleaning session", err, "sessionID", id)
	}

	return detail, nil
}

// Upcoming lists sessions from today forward, soonest first.
func (c *SessionController) Upcoming(ctx context.Context) ([]CleaningSessionDetail, error) {
	log := c.log.TraceFromContext(ctx).Function("Upcoming")

	sessions, err := c.sessionRepo.GetAllDetailed(ctx, c.db.SQL)
	if err != nil {
		return nil, log.Err("failed to list cleaning sessions", err)
	}

	today := utils.DateKey(c.now())
	upcoming := make([]CleaningSessionDetail, 0)
	for _, session := range sessions {
		if session.CleaningDate >= today {
			upcoming = append(upcoming, session)
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].CleaningDate < upcoming[j].CleaningDate
	})

	return upcoming, nil
}

func (c *SessionController) Create(
	ctx context.Context,
	request *CreateSessionRequest,
) (*CleaningSession, error) {
	log := c.log.TraceFromContext(ctx).Function("Create")

	if request.ApartmentID == uuid.Nil {
		return nil, log.ErrorWithType(ErrValidation, "apartment_id is required")
	}
	if request.CleanerID == uuid.Nil {
		return nil, log.ErrorWithType(ErrValidation, "cleaner_id is required")
	}
	if !utils.IsValidDate(request.CleaningDate) {
		return nil, log.ErrorWithType(ErrValidation, "invalid cleaning_date, expected YYYY-MM-DD")
	}
	if len(request.Notes) > MaxNotesLength {
		return nil, log.ErrorWithType(ErrValidation, "notes exceed maximum length")
	}
	if request.Price != nil && request.Price.IsNegative() {
		return nil, log.ErrorWithType(ErrValidation, "price cannot be negative")
	}

	if _, err := c.apartmentRepo.GetByID(ctx, c.db.SQL, request.ApartmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, log.ErrorWithType(ErrNotFound, "Apartment not found")
		}
		return nil, log.Err("failed to verify apartment", err)
	}

	if _, err := c.cleanerRepo.GetByID(ctx, c.db.SQL, request.CleanerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, log.ErrorWithType(ErrNotFound, "Cleaner not found")
		}
		return nil, log.Err("failed to verify cleaner", err)
	}

	session := &CleaningSession{
		ApartmentID:  request.ApartmentID,
		CleanerID:    request.CleanerID,
		CleaningDate: request.CleaningDate,
		Notes:        strings.TrimSpace(request.Notes),
		Price:        request.Price,
	}

	if request.IncludeWelcomePack {
		fee, err := c.settingsRepo.GetWelcomePackFee(ctx, c.db.SQL)
		if err != nil {
			return nil, log.Err("failed to load welcome pack fee", err)
		}

		price := c.pricingService.ApplyWelcomePack(request.Price, fee)
		session.Price = &price
		session.WelcomePackFee = &fee
	}

	err := c.transactionService.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		existing, err := c.sessionRepo.GetAllBasic(ctx, tx)
		if err != nil {
			return log.Err("failed to load sessions for conflict check", err)
		}

		if HasConflict(existing, request.CleanerID, request.CleaningDate, uuid.Nil) {
			return log.ErrorWithType(
				ErrConflict,
				"Cleaner is already scheduled for this date",
				"cleanerID",
				request.CleanerID,
				"cleaningDate",
				request.CleaningDate,
			)
		}

		return c.sessionRepo.Create(ctx, tx, session)
	})
	if err != nil {
		return nil, err
	}

	log.Info(
		"Cleaning session created",
		"sessionID",
		session.ID,
		"apartmentID",
		session.ApartmentID,
		"cleanerID",
		session.CleanerID,
		"cleaningDate",
		session.CleaningDate,
	)

	return session, nil
}

func (c *SessionController) Update(
	ctx context.Context,
	id uuid.UUID,
	request *UpdateSessionRequest,
) (*CleaningSession, error) {
	log := c.log.TraceFromContext(ctx).Function("Update")

	if id == uuid.Nil {
		return nil, log.ErrorWithType(ErrValidation, "session id is required")
	}

	existing, err := c.sessionRepo.GetByID(ctx, c.db.SQL, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, log.ErrorWithType(ErrNotFound, "cleaning session not found", "sessionID", id)
		}
		return nil, log.Err("failed to retrieve cleaning session", err, "sessionID", id)
	}

	updates := make(map[string]any)

	if request.ApartmentID != nil {
		if _, err := c.apartmentRepo.GetByID(ctx, c.db.SQL, *request.ApartmentID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, log.ErrorWithType(ErrNotFound, "Apartment not found")
			}
			return nil, log.Err("failed to verify apartment", err)
		}
		updates["apartment_id"] = *request.ApartmentID
	}

	if request.CleanerID != nil {
		if _, err := c.cleanerRepo.GetByID(ctx, c.db.SQL, *request.CleanerID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, log.ErrorWithType(ErrNotFound, "Cleaner not found")
			}
			return nil, log.Err("failed to verify cleaner", err)
		}
		updates["cleaner_id"] = *request.CleanerID
	}

	if request.CleaningDate != nil {
		if !utils.IsValidDate(*request.CleaningDate) {
			return nil, log.ErrorWithType(ErrValidation, "invalid cleaning_date, expected YYYY-MM-DD")
		}
		updates["cleaning_date"] = *request.CleaningDate
	}

	if request.Notes != nil {
		if len(*request.Notes) > MaxNotesLength {
			return nil, log.ErrorWithType(ErrValidation, "notes exceed maximum length")
		}
		updates["notes"] = strings.TrimSpace(*request.Notes)
	}

	if request.Price != nil {
		if request.Price.IsNegative() {
			return nil, log.ErrorWithType(ErrValidation, "price cannot be negative")
		}
		updates["price"] = *request.Price
	}

	if len(updates) == 0 {
		return nil, log.ErrorWithType(ErrValidation, "no fields to update")
	}

	// effective post-update values: a changed field overrides, an unchanged
	// one falls back to the stored session
	effectiveCleanerID := existing.CleanerID
	if request.CleanerID != nil {
		effectiveCleanerID = *request.CleanerID
	}
	effectiveDate := existing.CleaningDate
	if request.CleaningDate != nil {
		effectiveDate = *request.CleaningDate
	}

	var updated *CleaningSession
	err = c.transactionService.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		if request.CleanerID != nil || request.CleaningDate != nil {
			sessions, err := c.sessionRepo.GetAllBasic(ctx, tx)
			if err != nil {
				return log.Err("failed to load sessions for conflict check", err)
			}

			if HasConflict(sessions, effectiveCleanerID, effectiveDate, id) {
				return log.ErrorWithType(
					ErrConflict,
					"Cleaner is already scheduled for this date",
					"cleanerID",
					effectiveCleanerID,
					"cleaningDate",
					effectiveDate,
				)
			}
		}

		var err error
		updated, err = c.sessionRepo.Update(ctx, tx, id, updates)
		return err
	})
	if err != nil {
		return nil, err
	}

	log.Info("Cleaning session updated", "sessionID", id)

	return updated, nil
}

func (c *SessionController) Delete(ctx context.Context, id uuid.UUID) error {
	log := c.log.TraceFromContext(ctx).Function("Delete")

	if id == uuid.Nil {
		return log.ErrorWithType(ErrValidation, "session id is required")
	}

	if err := c.sessionRepo.Delete(ctx, c.db.SQL, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return log.ErrorWithType(ErrNotFound, "cleaning session not found", "sessionID", id)
		}
		return log.Err("failed to delete cleaning session", err, "sessionID", id)
	}

	log.Info("Cleaning session deleted", "sessionID", id)

	return nil
}
