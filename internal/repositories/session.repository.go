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
	SESSIONS_CACHE_PREFIX = "sessions"
	SESSIONS_CACHE_KEY    = "detailed"
	SESSIONS_CACHE_EXPIRY = 12 * time.Hour
)

// detailSelect resolves apartment and cleaner attributes at query time, so a
// rename propagates to every historic session's displayed labels.
const detailSelect = `cleaning_sessions.id,
cleaning_sessions.apartment_id,
cleaning_sessions.cleaner_id,
cleaning_sessions.cleaning_date,
cleaning_sessions.notes,
cleaning_sessions.price,
cleaning_sessions.welcome_pack_fee,
cleaning_sessions.created_at,
cleaning_sessions.updated_at,
apartments.apartment_number,
apartments.owner_name,
apartments.owner_email,
apartments.address,
cleaners.name AS cleaner_name,
cleaners.phone AS cleaner_phone,
cleaners.email AS cleaner_email`

type SessionRepository interface {
	GetAllDetailed(ctx context.Context, tx *gorm.DB) ([]CleaningSessionDetail, error)
	GetAllBasic(ctx context.Context, tx *gorm.DB) ([]CleaningSession, error)
	GetDetailByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*CleaningSessionDetail, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*CleaningSession, error)
	CountByApartmentNumber(ctx context.Context, tx *gorm.DB, apartmentNumber string) (int64, error)
	CountByCleanerName(ctx context.Context, tx *gorm.DB, cleanerName string) (int64, error)
	Create(ctx context.Context, tx *gorm.DB, session *CleaningSession) error
	Update(
		ctx context.Context,
		tx *gorm.DB,
		id uuid.UUID,
		updates map[string]any,
	) (*CleaningSession, error)
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
	ClearCache(ctx context.Context)
}

type sessionRepository struct {
	cache database.CacheClient
	log   logger.Logger
}

func NewSessionRepository(cache database.CacheClient) SessionRepository {
	return &sessionRepository{
		cache: cache,
		log:   logger.New("sessionRepository"),
	}
}

func (r *sessionRepository) detailQuery(ctx context.Context, tx *gorm.DB) *gorm.DB {
	return tx.WithContext(ctx).
		Table("cleaning_sessions").
		Select(detailSelect).
		Joins("JOIN apartments ON apartments.id = cleaning_sessions.apartment_id").
		Joins("JOIN cleaners ON cleaners.id = cleaning_sessions.cleaner_id").
		Where("cleaning_sessions.deleted_at IS NULL").
		Where("apartments.deleted_at IS NULL").
		Where("cleaners.deleted_at IS NULL")
}

func (r *sessionRepository) GetAllDetailed(
	ctx context.Context,
	tx *gorm.DB,
) ([]CleaningSessionDetail, error) {
	log := r.log.TraceFromContext(ctx).Function("GetAllDetailed")

	var cached []CleaningSessionDetail
	found, err := database.NewCacheBuilder(r.cache, SESSIONS_CACHE_KEY).
		WithContext(ctx).
		WithHash(SESSIONS_CACHE_PREFIX).
		Get(&cached)
	if err != nil {
		log.Warn("failed to get detailed sessions from cache", "error", err)
	}
	if found {
		return cached, nil
	}

	var details []CleaningSessionDetail
	err = r.detailQuery(ctx, tx).
		Order("cleaning_sessions.cleaning_date DESC").
		Scan(&details).Error
	if err != nil {
		return nil, log.Err("failed to get detailed sessions", err)
	}

	err = database.NewCacheBuilder(r.cache, SESSIONS_CACHE_KEY).
		WithContext(ctx).
		WithHash(SESSIONS_CACHE_PREFIX).
		WithStruct(details).
		WithTTL(SESSIONS_CACHE_EXPIRY).
		Set()
	if err != nil {
		log.Warn("failed to set detailed sessions in cache", "error", err)
	}

	return details, nil
}

// GetAllBasic returns the raw foreign-key form, used for conflict pre-checks.
func (r *sessionRepository) GetAllBasic(
	ctx context.Context,
	tx *gorm.DB,
) ([]CleaningSession, error) {
	log := r.log.TraceFromContext(ctx).Function("GetAllBasic")

	sessions, err := gorm.G[CleaningSession](tx).
		Order("cleaning_date DESC").
		Find(ctx)
	if err != nil {
		return nil, log.Err("failed to get sessions", err)
	}

	return sessions, nil
}

func (r *sessionRepository) GetDetailByID(
	ctx context.Context,
	tx *gorm.DB,
	id uuid.UUID,
) (*CleaningSessionDetail, error) {
	var detail CleaningSessionDetail
	result := r.detailQuery(ctx, tx).
		Where("cleaning_sessions.id = ?", id).
		Limit(1).
		Scan(&detail)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	return &detail, nil
}

func (r *sessionRepository) GetByID(
	ctx context.Context,
	tx *gorm.DB,
	id uuid.UUID,
) (*CleaningSession, error) {
	session, err := gorm.G[CleaningSession](tx).
		Where("id = ?", id).
		First(ctx)
	if err != nil {
		return nil, err
	}

	return &session, nil
}

// CountByApartmentNumber counts sessions through the detailed projection, the
// same resolution deletion blocking uses for its dependent count.
func (r *sessionRepository) CountByApartmentNumber(
	ctx context.Context,
	tx *gorm.DB,
	apartmentNumber string,
) (int64, error) {
	log := r.log.TraceFromContext(ctx).Function("CountByApartmentNumber")

	var count int64
	err := r.detailQuery(ctx, tx).
		Where("apartments.apartment_number = ?", apartmentNumber).
		Count(&count).Error
	if err != nil {
		return 0, log.Err(
			"failed to count sessions by apartment number",
			err,
			"apartmentNumber",
			apartmentNumber,
		)
	}

	return count, nil
}

func (r *sessionRepository) CountByCleanerName(
	ctx context.Context,
	tx *gorm.DB,
	cleanerName string,
) (int64, error) {
	log := r.log.TraceFromContext(ctx).Function("CountByCleanerName")

	var count int64
	err := r.detailQuery(ctx, tx).
		Where("cleaners.name = ?", cleanerName).
		Count(&count).Error
	if err != nil {
		return 0, log.Err(
			"failed to count sessions by cleaner name",
			err,
			"cleanerName",
			cleanerName,
		)
	}

	return count, nil
}

func (r *sessionRepository) Create(
	ctx context.Context,
	tx *gorm.DB,
	session *CleaningSession,
) error {
	log := r.log.TraceFromContext(ctx).Function("Create")

	if err := gorm.G[CleaningSession](tx).Create(ctx, session); err != nil {
		return log.Err(
			"failed to create cleaning session",
			err,
			"apartmentID",
			session.ApartmentID,
			"cleanerID",
			session.CleanerID,
			"cleaningDate",
			session.CleaningDate,
		)
	}

	r.ClearCache(ctx)

	return nil
}

func (r *sessionRepository) Update(
	ctx context.Context,
	tx *gorm.DB,
	id uuid.UUID,
	updates map[string]any,
) (*CleaningSession, error) {
	log := r.log.TraceFromContext(ctx).Function("Update")

	result := tx.WithContext(ctx).Model(&CleaningSession{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, log.Err("failed to update cleaning session", result.Error, "sessionID", id)
	}

	session, err := gorm.G[CleaningSession](tx).
		Where("id = ?", id).
		First(ctx)
	if err != nil {
		return nil, log.Err("failed to retrieve updated cleaning session", err, "sessionID", id)
	}

	r.ClearCache(ctx)

	return &session, nil
}

// Delete removes the row outright rather than soft deleting it, so the unique
// (cleaner_id, cleaning_date) backstop index never traps tombstones.
func (r *sessionRepository) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	log := r.log.TraceFromContext(ctx).Function("Delete")

	result := tx.WithContext(ctx).Unscoped().Where("id = ?", id).Delete(&CleaningSession{})
	if result.Error != nil {
		return log.Err("failed to delete cleaning session", result.Error, "sessionID", id)
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.ClearCache(ctx)

	return nil
}

func (r *sessionRepository) ClearCache(ctx context.Context) {
	err := database.NewCacheBuilder(r.cache, SESSIONS_CACHE_KEY).
		WithContext(ctx).
		WithHash(SESSIONS_CACHE_PREFIX).
		Delete()
	if err != nil {
		r.log.Warn("failed to clear sessions cache", "error", err)
	}
}
