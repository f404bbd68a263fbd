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
	CLEANERS_CACHE_PREFIX = "cleaners"
	CLEANERS_CACHE_KEY    = "all"
	CLEANERS_CACHE_EXPIRY = 24 * time.Hour
)

type CleanerRepository interface {
	GetAll(ctx context.Context, tx *gorm.DB) ([]Cleaner, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*Cleaner, error)
	Create(ctx context.Context, tx *gorm.DB, cleaner *Cleaner) error
	Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, updates map[string]any) (*Cleaner, error)
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
	ClearCache(ctx context.Context)
}

type cleanerRepository struct {
	cache database.CacheClient
	log   logger.Logger
}

func NewCleanerRepository(cache database.CacheClient) CleanerRepository {
	return &cleanerRepository{
		cache: cache,
		log:   logger.New("cleanerRepository"),
	}
}

func (r *cleanerRepository) GetAll(ctx context.Context, tx *gorm.DB) ([]Cleaner, error) {
	log := r.log.TraceFromContext(ctx).Function("GetAll")

	var cached []Cleaner
	found, err := database.NewCacheBuilder(r.cache, CLEANERS_CACHE_KEY).
		WithContext(ctx).
		WithHash(CLEANERS_CACHE_PREFIX).
		Get(&cached)
	if err != nil {
		log.Warn("failed to get cleaners from cache", "error", err)
	}
	if found {
		return cached, nil
	}

	cleaners, err := gorm.G[Cleaner](tx).
		Order("name ASC").
		Find(ctx)
	if err != nil {
		return nil, log.Err("failed to get cleaners", err)
	}

	err = database.NewCacheBuilder(r.cache, CLEANERS_CACHE_KEY).
		WithContext(ctx).
		WithHash(CLEANERS_CACHE_PREFIX).
		WithStruct(cleaners).
		WithTTL(CLEANERS_CACHE_EXPIRY).
		Set()
	if err != nil {
		log.Warn("failed to set cleaners in cache", "error", err)
	}

	return cleaners, nil
}

func (r *cleanerRepository) GetByID(
	ctx context.Context,
	tx *gorm.DB,
	id uuid.UUID,
) (*Cleaner, error) {
	cleaner, err := gorm.G[Cleaner](tx).
		Where("id = ?", id).
		First(ctx)
	if err != nil {
		return nil, err
	}

	return &cleaner, nil
}

func (r *cleanerRepository) Create(ctx context.Context, tx *gorm.DB, cleaner *Cleaner) error {
	log := r.log.TraceFromContext(ctx).Function("Create")

	if err := gorm.G[Cleaner](tx).Create(ctx, cleaner); err != nil {
		return log.Err("failed to create cleaner", err, "name", cleaner.Name)
	}

	r.ClearCache(ctx)

	return nil
}

func (r *cleanerRepository) Update(
	ctx context.Context,
	tx *gorm.DB,
	id uuid.UUID,
	updates map[string]any,
) (*Cleaner, error) {
	log := r.log.TraceFromContext(ctx).Function("Update")

	result := tx.WithContext(ctx).Model(&Cleaner{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, log.Err("failed to update cleaner", result.Error, "cleanerID", id)
	}

	cleaner, err := gorm.G[Cleaner](tx).
		Where("id = ?", id).
		First(ctx)
	if err != nil {
		return nil, log.Err("failed to retrieve updated cleaner", err, "cleanerID", id)
	}

	r.ClearCache(ctx)

	return &cleaner, nil
}

func (r *cleanerRepository) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	log := r.log.TraceFromContext(ctx).Function("Delete")

	rowsAffected, err := gorm.G[Cleaner](tx).
		Where("id = ?", id).
		Delete(ctx)
	if err != nil {
		return log.Err("failed to delete cleaner", err, "cleanerID", id)
	}

	if rowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.ClearCache(ctx)

	return nil
}

func (r *cleanerRepository) ClearCache(ctx context.Context) {
	err := database.NewCacheBuilder(r.cache, CLEANERS_CACHE_KEY).
		WithContext(ctx).
		WithHash(CLEANERS_CACHE_PREFIX).
		Delete()
	if err != nil {
		r.log.Warn("failed to clear cleaners cache", "error", err)
	}
}
