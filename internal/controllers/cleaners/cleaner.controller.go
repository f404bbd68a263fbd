package cleanerController

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
	"gorm.io/gorm"
)

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
)

// DependentSessionsError blocks deletion while sessions still reference the
// cleaner. It unwraps to ErrConflict and carries the count for the client.
type DependentSessionsError struct {
	SessionCount int64
	err          error
}

func (e *DependentSessionsError) Error() string { return e.err.Error() }
func (e *DependentSessionsError) Unwrap() error { return e.err }

type CleanerController struct {
	cleanerRepo repositories.CleanerRepository
	sessionRepo repositories.SessionRepository
	db          database.DB
	Config      config.Config
	log         logger.Logger
}

type ListCleanersRequest struct {
	Search string
	Limit  int
	Offset int
}

type CreateCleanerRequest struct {
	Name  string  `json:"name"`
	Phone *string `json:"phone,omitempty"`
	Email *string `json:"email,omitempty"`
}

type UpdateCleanerRequest struct {
	Name  *string `json:"name,omitempty"`
	Phone *string `json:"phone,omitempty"`
	Email *string `json:"email,omitempty"`
}

type CleanerControllerInterface interface {
	List(ctx context.Context, request ListCleanersRequest) ([]Cleaner, Pagination, error)
	Get(ctx context.Context, id uuid.UUID) (*Cleaner, error)
	Create(ctx context.Context, request *CreateCleanerRequest) (*Cleaner, error)
	Update(ctx context.Context, id uuid.UUID, request *UpdateCleanerRequest) (*Cleaner, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

func New(
	repos repositories.Repository,
	services services.Service,
	config config.Config,
	db database.DB,
) CleanerControllerInterface {
	return &CleanerController{
		cleanerRepo: repos.Cleaner,
		sessionRepo: repos.Session,
		db:          db,
		Config:      config,
		log:         logger.New("cleanerController"),
	}
}

func (c *CleanerController) List(
	ctx context.Context,
	request ListCleanersRequest,
) ([]Cleaner, Pagination, error) {
	log := c.log.TraceFromContext(ctx).Function("List")

	cleaners, err := c.cleanerRepo.GetAll(ctx, c.db.SQL)
	if err != nil {
		return nil, Pagination{}, log.Err("failed to list cleaners", err)
	}

	if search := strings.ToLower(strings.TrimSpace(request.Search)); search != "" {
		matched := make([]Cleaner, 0, len(cleaners))
		for _, cleaner := range cleaners {
			if matchesCleaner(cleaner, search) {
				matched = append(matched, cleaner)
			}
		}
		cleaners = matched
	}

	items, pagination := PaginateSlice(cleaners, request.Limit, request.Offset)

	return items, pagination, nil
}

func matchesCleaner(cleaner Cleaner, search string) bool {
	if strings.Contains(strings.ToLower(cleaner.Name), search) {
		return true
	}
	if cleaner.Phone != nil && strings.Contains(strings.ToLower(*cleaner.Phone), search) {
		return true
	}
	if cleaner.Email != nil && strings.Contains(strings.ToLower(*cleaner.Email), search) {
		return true
	}
	return false
}

func (c *CleanerController) Get(ctx context.Context, id uuid.UUID) (*Cleaner, error) {
	log := c.log.TraceFromContext(ctx).Function("Get")

	if id == uuid.Nil {
		return nil, log.ErrorWithType(ErrValidation, "cleaner id is required")
	}

	cleaner, err := c.cleanerRepo.GetByID(ctx, c.db.SQL, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, log.ErrorWithType(ErrNotFound, "cleaner not found", "cleanerID", id)
		}
		return nil, log.Err("failed to get cleaner", err, "cleanerID", id)
	}

	return cleaner, nil
}

func (c *CleanerController) Create(
	ctx context.Context,
	request *CreateCleanerRequest,
) (*Cleaner, error) {
	log := c.log.TraceFromContext(ctx).Function("Create")

	name := strings.TrimSpace(request.Name)
	if name == "" {
		return nil, log.ErrorWithType(ErrValidation, "cleaner name is required")
	}
	if len(name) > MaxCleanerNameLength {
		return nil, log.ErrorWithType(ErrValidation, "cleaner name exceeds maximum length")
	}
	if request.Phone != nil && len(*request.Phone) > MaxPhoneLength {
		return nil, log.ErrorWithType(ErrValidation, "phone exceeds maximum length")
	}

	cleaner := &Cleaner{
		Name:  name,
		Phone: request.Phone,
		Email: request.Email,
	}

	if err := c.cleanerRepo.Create(ctx, c.db.SQL, cleaner); err != nil {
		return nil, log.Err("failed to create cleaner", err)
	}

	log.Info("Cleaner created", "cleanerID", cleaner.ID, "name", cleaner.Name)

	return cleaner, nil
}

func (c *CleanerController) Update(
	ctx context.Context,
	id uuid.UUID,
	request *UpdateCleanerRequest,
) (*Cleaner, error) {
	log := c.log.TraceFromContext(ctx).Function("Update")

	if id == uuid.Nil {
		return nil, log.ErrorWithType(ErrValidation, "cleaner id is required")
	}

	if _, err := c.cleanerRepo.GetByID(ctx, c.db.SQL, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, log.ErrorWithType(ErrNotFound, "cleaner not found", "cleanerID", id)
		}
		return nil, log.Err("failed to retrieve cleaner", err, "cleanerID", id)
	}

	updates := make(map[string]any)

	if request.Name != nil {
		name := strings.TrimSpace(*request.Name)
		if name == "" || len(name) > MaxCleanerNameLength {
			return nil, log.ErrorWithType(ErrValidation, "invalid cleaner name")
		}
		updates["name"] = name
	}

	if request.Phone != nil {
		if len(*request.Phone) > MaxPhoneLength {
			return nil, log.ErrorWithType(ErrValidation, "phone exceeds maximum length")
		}
		updates["phone"] = *request.Phone
	}

	if request.Email != nil {
		updates["email"] = *request.Email
	}

	if len(updates) == 0 {
		return nil, log.ErrorWithType(ErrValidation, "no fields to update")
	}

	cleaner, err := c.cleanerRepo.Update(ctx, c.db.SQL, id, updates)
	if err != nil {
		return nil, log.Err("failed to update cleaner", err, "cleanerID", id)
	}

	log.Info("Cleaner updated", "cleanerID", id)

	return cleaner, nil
}

// Delete refuses while cleaning sessions still reference the cleaner. The
// dependent count resolves through the detailed view by cleaner name.
func (c *CleanerController) Delete(ctx context.Context, id uuid.UUID) error {
	log := c.log.TraceFromContext(ctx).Function("Delete")

	if id == uuid.Nil {
		return log.ErrorWithType(ErrValidation, "cleaner id is required")
	}

	cleaner, err := c.cleanerRepo.GetByID(ctx, c.db.SQL, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return log.ErrorWithType(ErrNotFound, "cleaner not found", "cleanerID", id)
		}
		return log.Err("failed to retrieve cleaner", err, "cleanerID", id)
	}

	sessionCount, err := c.sessionRepo.CountByCleanerName(ctx, c.db.SQL, cleaner.Name)
	if err != nil {
		return log.Err("failed to count cleaner sessions", err, "cleanerID", id)
	}
	if sessionCount > 0 {
		conflictErr := log.ErrorWithType(
			ErrConflict,
			fmt.Sprintf(
				"Cannot delete cleaner. They have %d cleaning session(s). Please delete the sessions first.",
				sessionCount,
			),
			"sessionCount",
			sessionCount,
		)
		return &DependentSessionsError{SessionCount: sessionCount, err: conflictErr}
	}

	if err := c.cleanerRepo.Delete(ctx, c.db.SQL, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return log.ErrorWithType(ErrNotFound, "cleaner not found", "cleanerID", id)
		}
		return log.Err("failed to delete cleaner", err, "cleanerID", id)
	}

	log.Info("Cleaner deleted", "cleanerID", id)

	return nil
}
