package apartmentController

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"rightstay/config"
	"rightstay/internal/database"
	. "rightstay/internal/models"
	"rightstay/internal/repositories"
	"rightstay/internal/services"

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

// DependentSessionsError blocks deletion while sessions still reference the
// apartment. It unwraps to ErrConflict and carries the count for the client.
type DependentSessionsError struct {
	SessionCount int64
	err          error
}

func (e *DependentSessionsError) Error() string { return e.err.Error() }
func (e *DependentSessionsError) Unwrap() error { return e.err }

type ApartmentController struct {
	apartmentRepo repositories.ApartmentRepository
	sessionRepo   repositories.SessionRepository
	db            database.DB
	Config        config.Config
	log           logger.Logger
}

type ListApartmentsRequest struct {
	Search string
	Limit  int
	Offset int
}

type CreateApartmentRequest struct {
	ApartmentNumber string           `json:"apartment_number"`
	OwnerName       string           `json:"owner_name"`
	OwnerEmail      *string          `json:"owner_email,omitempty"`
	Address         *string          `json:"address,omitempty"`
	CleanerPayout   *decimal.Decimal `json:"cleaner_payout,omitempty"`
}

type UpdateApartmentRequest struct {
	ApartmentNumber *string          `json:"apartment_number,omitempty"`
	OwnerName       *string          `json:"owner_name,omitempty"`
	OwnerEmail      *string          `json:"owner_email,omitempty"`
	Address         *string          `json:"address,omitempty"`
	CleanerPayout   *decimal.Decimal `json:"cleaner_payout,omitempty"`
}

type ApartmentControllerInterface interface {
	List(ctx context.Context, request ListApartmentsRequest) ([]Apartment, Pagination, error)
	Get(ctx context.Context, id uuid.UUID) (*Apartment, error)
	Create(ctx context.Context, request *CreateApartmentRequest) (*Apartment, error)
	Update(ctx context.Context, id uuid.UUID, request *UpdateApartmentRequest) (*Apartment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

func New(
	repos repositories.Repository,
	services services.Service,
	config config.Config,
	db database.DB,
) ApartmentControllerInterface {
	return &ApartmentController{
		apartmentRepo: repos.Apartment,
		sessionRepo:   repos.Session,
		db:            db,
		Config:        config,
		log:           logger.New("apartmentController"),
	}
}

func (c *ApartmentController) List(
	ctx context.Context,
	request ListApartmentsRequest,
) ([]Apartment, Pagination, error) {
	log := c.log.TraceFromContext(ctx).Function("List")

	apartments, err := c.apartmentRepo.GetAll(ctx, c.db.SQL)
	if err != nil {
		return nil, Pagination{}, log.Err("failed to list apartments", err)
	}

	if search := strings.ToLower(strings.TrimSpace(request.Search)); search != "" {
		matched := make([]Apartment, 0, len(apartments))
		for _, apt := range apartments {
			if matchesApartment(apt, search) {
				matched = append(matched, apt)
			}
		}
		apartments = matched
	}

	items, pagination := PaginateSlice(apartments, request.Limit, request.Offset)

	return items, pagination, nil
}

func matchesApartment(apt Apartment, search string) bool {
	if strings.Contains(strings.ToLower(apt.ApartmentNumber), search) {
		return true
	}
	if strings.Contains(strings.ToLower(apt.OwnerName), search) {
		return true
	}
	if apt.OwnerEmail != nil && strings.Contains(strings.ToLower(*apt.OwnerEmail), search) {
		return true
	}
	if apt.Address != nil && strings.Contains(strings.ToLower(*apt.Address), search) {
		return true
	}
	return false
}

func (c *ApartmentController) Get(ctx context.Context, id uuid.UUID) (*Apartment, error) {
	log := c.log.TraceFromContext(ctx).Function("Get")

	if id == uuid.Nil {
		return nil, log.ErrorWithType(ErrValidation, "apartment id is required")
	}

	apartment, err := c.apartmentRepo.GetByID(ctx, c.db.SQL, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, log.ErrorWithType(ErrNotFound, "apartment not found", "apartmentID", id)
		}
		return nil, log.Err("failed to get apartment", err, "apartmentID", id)
	}

	return apartment, nil
}

func (c *ApartmentController) Create(
	ctx context.Context,
	request *CreateApartmentRequest,
) (*Apartment, error) {
	log := c.log.TraceFromContext(ctx).Function("Create")

	if err := validateApartmentFields(request.ApartmentNumber, request.OwnerName, request.Address, request.CleanerPayout); err != nil {
		return nil, log.ErrorWithType(ErrValidation, err.Error())
	}

	exists, err := c.apartmentRepo.ExistsByNumber(ctx, c.db.SQL, request.ApartmentNumber, uuid.Nil)
	if err != nil {
		return nil, log.Err("failed to check for duplicate apartment number", err)
	}
	if exists {
		return nil, log.ErrorWithType(
			ErrConflict,
			"Apartment number already exists",
			"apartmentNumber",
			request.ApartmentNumber,
		)
	}

	apartment := &Apartment{
		ApartmentNumber: strings.TrimSpace(request.ApartmentNumber),
		OwnerName:       strings.TrimSpace(request.OwnerName),
		OwnerEmail:      request.OwnerEmail,
		Address:         request.Address,
		CleanerPayout:   request.CleanerPayout,
	}

	if err := c.apartmentRepo.Create(ctx, c.db.SQL, apartment); err != nil {
		return nil, log.Err("failed to create apartment", err)
	}

	log.Info("Apartment created", "apartmentID", apartment.ID, "apartmentNumber", apartment.ApartmentNumber)

	return apartment, nil
}

func (c *ApartmentController) Update(
	ctx context.Context,
	id uuid.UUID,
	request *UpdateApartmentRequest,
) (*Apartment, error) {
	log := c.log.TraceFromContext(ctx).Function("Update")

	if id == uuid.Nil {
		return nil, log.ErrorWithType(ErrValidation, "apartment id is required")
	}

	if _, err := c.apartmentRepo.GetByID(ctx, c.db.SQL, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, log.ErrorWithType(ErrNotFound, "apartment not found", "apartmentID", id)
		}
		return nil, log.Err("failed to retrieve apartment", err, "apartmentID", id)
	}

	updates := make(map[string]any)

	if request.ApartmentNumber != nil {
		number := strings.TrimSpace(*request.ApartmentNumber)
		if number == "" || len(number) > MaxApartmentNumberLength {
			return nil, log.ErrorWithType(ErrValidation, "invalid apartment number")
		}

		exists, err := c.apartmentRepo.ExistsByNumber(ctx, c.db.SQL, number, id)
		if err != nil {
			return nil, log.Err("failed to check for duplicate apartment number", err)
		}
		if exists {
			return nil, log.ErrorWithType(
				ErrConflict,
				"Apartment number already exists",
				"apartmentNumber",
				number,
			)
		}

		updates["apartment_number"] = number
	}

	if request.OwnerName != nil {
		name := strings.TrimSpace(*request.OwnerName)
		if name == "" || len(name) > MaxOwnerNameLength {
			return nil, log.ErrorWithType(ErrValidation, "invalid owner name")
		}
		updates["owner_name"] = name
	}

	if request.OwnerEmail != nil {
		updates["owner_email"] = *request.OwnerEmail
	}

	if request.Address != nil {
		if len(*request.Address) > MaxAddressLength {
			return nil, log.ErrorWithType(ErrValidation, "address exceeds maximum length")
		}
		updates["address"] = *request.Address
	}

	if request.CleanerPayout != nil {
		if request.CleanerPayout.IsNegative() {
			return nil, log.ErrorWithType(ErrValidation, "cleaner payout cannot be negative")
		}
		updates["cleaner_payout"] = *request.CleanerPayout
	}

	if len(updates) == 0 {
		return nil, log.ErrorWithType(ErrValidation, "no fields to update")
	}

	apartment, err := c.apartmentRepo.Update(ctx, c.db.SQL, id, updates)
	if err != nil {
		return nil, log.Err("failed to update apartment", err, "apartmentID", id)
	}

	log.Info("Apartment updated", "apartmentID", id)

	return apartment, nil
}

// Delete refuses while cleaning sessions still reference the apartment. The
// dependent count resolves through the detailed view, so only sessions whose
// joined apartment number matches are counted.
func (c *ApartmentController) Delete(ctx context.Context, id uuid.UUID) error {
	log := c.log.TraceFromContext(ctx).Function("Delete")

	if id == uuid.Nil {
		return log.ErrorWithType(ErrValidation, "apartment id is required")
	}

	apartment, err := c.apartmentRepo.GetByID(ctx, c.db.SQL, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return log.ErrorWithType(ErrNotFound, "apartment not found", "apartmentID", id)
		}
		return log.Err("failed to retrieve apartment", err, "apartmentID", id)
	}

	sessionCount, err := c.sessionRepo.CountByApartmentNumber(
		ctx,
		c.db.SQL,
		apartment.ApartmentNumber,
	)
	if err != nil {
		return log.Err("failed to count apartment sessions", err, "apartmentID", id)
	}
	if sessionCount > 0 {
		conflictErr := log.ErrorWithType(
			ErrConflict,
			fmt.Sprintf(
				"Cannot delete apartment. It has %d cleaning session(s). Please delete the sessions first.",
				sessionCount,
			),
			"sessionCount",
			sessionCount,
		)
		return &DependentSessionsError{SessionCount: sessionCount, err: conflictErr}
	}

	if err := c.apartmentRepo.Delete(ctx, c.db.SQL, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return log.ErrorWithType(ErrNotFound, "apartment not found", "apartmentID", id)
		}
		return log.Err("failed to delete apartment", err, "apartmentID", id)
	}

	log.Info("Apartment deleted", "apartmentID", id)

	return nil
}

func validateApartmentFields(
	number, owner string,
	address *string,
	payout *decimal.Decimal,
) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return errors.New("apartment number is required")
	}
	if len(number) > MaxApartmentNumberLength {
		return errors.New("apartment number exceeds maximum length")
	}

	owner = strings.TrimSpace(owner)
	if owner == "" {
		return errors.New("owner name is required")
	}
	if len(owner) > MaxOwnerNameLength {
		return errors.New("owner name exceeds maximum length")
	}

	if address != nil && len(*address) > MaxAddressLength {
		return errors.New("address exceeds maximum length")
	}

	if payout != nil && payout.IsNegative() {
		return errors.New("cleaner payout cannot be negative")
	}

	return nil
}
