package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"rightstay/internal/database"
	. "rightstay/internal/models"

	logger "github.com/Bparsons0904/goLogger"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	SETTINGS_CACHE_PREFIX = "settings"
	SETTINGS_CACHE_EXPIRY = 24 * time.Hour
)

type SettingsRepository interface {
	GetWelcomePackFee(ctx context.Context, tx *gorm.DB) (decimal.Decimal, error)
	SetWelcomePackFee(ctx context.Context, tx *gorm.DB, fee decimal.Decimal) error
}

type settingsRepository struct {
	cache database.CacheClient
	log   logger.Logger
}

func NewSettingsRepository(cache database.CacheClient) SettingsRepository {
	return &settingsRepository{
		cache: cache,
		log:   logger.New("settingsRepository"),
	}
}

// GetWelcomePackFee returns the configured fee, or zero when it was never set.
func (r *settingsRepository) GetWelcomePackFee(
	ctx context.Context,
	tx *gorm.DB,
) (decimal.Decimal, error) {
	log := r.log.TraceFromContext(ctx).Function("GetWelcomePackFee")

	var cached decimal.Decimal
	found, err := database.NewCacheBuilder(r.cache, SettingWelcomePackFee).
		WithContext(ctx).
		WithHash(SETTINGS_CACHE_PREFIX).
		Get(&cached)
	if err != nil {
		log.Warn("failed to get welcome pack fee from cache", "error", err)
	}
	if found {
		return cached, nil
	}

	setting, err := gorm.G[Setting](tx).
		Where("key = ?", SettingWelcomePackFee).
		First(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return decimal.Zero, nil
		}
		return decimal.Zero, log.Err("failed to get welcome pack fee", err)
	}

	var fee decimal.Decimal
	if err := json.Unmarshal(setting.Value, &fee); err != nil {
		return decimal.Zero, log.Err("failed to decode welcome pack fee", err)
	}

	err = database.NewCacheBuilder(r.cache, SettingWelcomePackFee).
		WithContext(ctx).
		WithHash(SETTINGS_CACHE_PREFIX).
		WithStruct(fee).
		WithTTL(SETTINGS_CACHE_EXPIRY).
		Set()
	if err != nil {
		log.Warn("failed to set welcome pack fee in cache", "error", err)
	}

	return fee, nil
}

func (r *settingsRepository) SetWelcomePackFee(
	ctx context.Context,
	tx *gorm.DB,
	fee decimal.Decimal,
) error {
	log := r.log.TraceFromContext(ctx).Function("SetWelcomePackFee")

	value, err := json.Marshal(fee)
	if err != nil {
		return log.Err("failed to encode welcome pack fee", err)
	}

	setting := Setting{
		Key:   SettingWelcomePackFee,
		Value: datatypes.JSON(value),
	}

	err = tx.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&setting).Error
	if err != nil {
		return log.Err("failed to set welcome pack fee", err)
	}

	err = database.NewCacheBuilder(r.cache, SettingWelcomePackFee).
		WithContext(ctx).
		WithHash(SETTINGS_CACHE_PREFIX).
		Delete()
	if err != nil {
		log.Warn("failed to clear welcome pack fee cache", "error", err)
	}

	return nil
}
