package repositories

import (
	"context"
	"time"

	"rightstay/internal/database"
	. "rightstay/internal/models"

	logger "github.com/Bparsons0904/goLogger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	APARTMENTS_CACHE_PREFIX = "apartments"
	APARTMENTS_CACHE_KEY    = "all"
	APARTMENTS_CACHE_EXPIRY = 24 * time.Hour
)

type ApartmentRepository interface {
	GetAll(ctx context.Context, tx *gorm.DB) ([]Apartment, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*Apartment, error)
	ExistsByNumber(
		ctx context.Context,
		tx *gorm.DB,
		apartmentNumber string,
		excludeID uuid.UUID,
	) (bool, error)
	Create(ctx context.Context, tx *gorm.DB, apartment *Apartment) error
	Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, updates map[string]any) (*Apartment, error)
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
	ClearCache(ctx context.Context)
}

type apartmentRepository struct {
	cache database.CacheClient
	log   logger.Logger
}

func NewApartmentRepository(cache database.CacheClient) ApartmentRepository {
	return &apartmentRepository{
		cache: cache,
		log:   logger.New("apartmentRepository"),
	}
}

// GetAll returns apartments ordered by apartment_number ascending. That
// ordering is what keeps the analytics tie-break stable downstream.
func (r *apartmentRepository) GetAll(ctx context.Context, tx *gorm.DB) ([]Apartment, error) {
	log := r.log.TraceFromContext(ctx).Function("GetAll")

	var cached []Apartment
	found, err := database.NewCacheBuilder(r.cache, APARTMENTS_CACHE_KEY).
		WithContext(ctx).
		WithHash(APARTMENTS_CACHE_PREFIX).
		Get(&cached)
	if err != nil {
		log.Warn("failed to get apartments from cache", "error", err)
	}
	if found {
		return cached, nil
	}

	apartments, err := gorm.G[Apartment](tx).
		Order("apartment_number ASC").
		Find(ctx)
	if err != nil {
		return nil, log.Err("failed to get apartments", err)
	}

	err = database.NewCacheBuilder(r.cache, APARTMENTS_CACHE_KEY).
		WithContext(ctx).
		WithHash(APARTMENTS_CACHE_PREFIX).
		WithStruct(apartments).
		WithTTL(APARTMENTS_CACHE_EXPIRY).
		Set()
	if err != nil {
		log.Warn("failed to set apartments in cache", "error", err)
	}

	return apartments, nil
}

func (r *apartmentRepository) GetByID(
	ctx context.Context,
	tx *gorm.DB,
	id uuid.UUID,
) (*Apartment, error) {
	apartment, err := gorm.G[Apartment](tx).
		Where("id = ?", id).
		First(ctx)
	if err != nil {
		return nil, err
	}

	return &apartment, nil
}

// ExistsByNumber checks apartment numbers case-insensitively. Pass uuid.Nil
// as excludeID on create; the apartment's own ID on update.
func (r *apartmentRepository) ExistsByNumber(
	ctx context.Context,
	tx *gorm.DB,
	apartmentNumber string,
	excludeID uuid.UUID,
) (bool, error) {
	log := r.log.TraceFromContext(ctx).Function("ExistsByNumber")

	query := tx.WithContext(ctx).
		Model(&Apartment{}).
		Where("LOWER(apartment_number) = LOWER(?)", apartmentNumber)
	if excludeID != uuid.Nil {
		query = query.Where("id != ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, log.Err(
			"failed to count apartments by number",
			err,
			"apartmentNumber",
			apartmentNumber,
		)
	}

	return count > 0, nil
}

func (r *apartmentRepository) Create(
	ctx context.Context,
	tx *gorm.DB,
	apartment *Apartment,
) error {
	log := r.log.TraceFromContext(ctx).Function("Create")

	if err := gorm.G[Apartment](tx).Create(ctx, apartment); err != nil {
		return log.Err(
			"failed to create apartment",
			err,
			"apartmentNumber",
			apartment.ApartmentNumber,
		)
	}

	r.ClearCache(ctx)

	return nil
}

func (r *apartmentRepository) Update(
	ctx context.Context,
	tx *gorm.DB,
	id uuid.UUID,
	updates map[string]any,
) (*Apartment, error) {
	log := r.log.TraceFromContext(ctx).Function("Update")

	result := tx.WithContext(ctx).Model(&Apartment{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, log.Err("failed to update apartment", result.Error, "apartmentID", id)
	}

	apartment, err := gorm.G[Apartment](tx).
		Where("id = ?", id).
		First(ctx)
	if err != nil {
		return nil, log.Err("failed to retrieve updated apartment", err, "apartmentID", id)
	}

	r.ClearCache(ctx)

	return &apartment, nil
}

func (r *apartmentRepository) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	log := r.log.TraceFromContext(ctx).Function("Delete")

	rowsAffected, err := gorm.G[Apartment](tx).
		Where("id = ?", id).
		Delete(ctx)
	if err != nil {
		return log.Err("failed to delete apartment", err, "apartmentID", id)
	}

	if rowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.ClearCache(ctx)

	return nil
}

func (r *apartmentRepository) ClearCache(ctx context.Context) {
	err := database.NewCacheBuilder(r.cache, APARTMENTS_CACHE_KEY).
		WithContext(ctx).
		WithHash(APARTMENTS_CACHE_PREFIX).
		Delete()
	if err != nil {
		r.log.Warn("failed to clear apartments cache", "error", err)
	}
}
