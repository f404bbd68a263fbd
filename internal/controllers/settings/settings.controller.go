package settingsController

import (
	"context"
	"errors"

	"rightstay/config"
	"rightstay/internal/database"
	"rightstay/internal/repositories"

	logger "github.com/Bparsons0904/goLogger"

	"github.com/shopspring/decimal"
)

var ErrValidation = errors.New("validation error")

type SettingsController struct {
	settingsRepo repositories.SettingsRepository
	db           database.DB
	Config       config.Config
	log          logger.Logger
}

type SettingsControllerInterface interface {
	GetWelcomePackFee(ctx context.Context) (decimal.Decimal, error)
	SetWelcomePackFee(ctx context.Context, fee decimal.Decimal) error
}

func New(
	repos repositories.Repository,
	config config.Config,
	db database.DB,
) SettingsControllerInterface {
	return &SettingsController{
		settingsRepo: repos.Settings,
		db:           db,
		Config:       config,
		log:          logger.New("settingsController"),
	}
}

func (c *SettingsController) GetWelcomePackFee(ctx context.Context) (decimal.Decimal, error) {
	log := c.log.TraceFromContext(ctx).Function("GetWelcomePackFee")

	fee, err := c.settingsRepo.GetWelcomePackFee(ctx, c.db.SQL)
	if err != nil {
		return decimal.Zero, log.Err("failed to load welcome pack fee", err)
	}

	return fee, nil
}

// SetWelcomePackFee changes the fee applied to future welcome pack sessions.
// Already stored session prices are never recomputed.
func (c *SettingsController) SetWelcomePackFee(ctx context.Context, fee decimal.Decimal) error {
	log := c.log.TraceFromContext(ctx).Function("SetWelcomePackFee")

	if fee.IsNegative() {
		return log.ErrorWithType(ErrValidation, "Invalid fee")
	}

	if err := c.settingsRepo.SetWelcomePackFee(ctx, c.db.SQL, fee); err != nil {
		return log.Err("failed to update welcome pack fee", err)
	}

	log.Info("Welcome pack fee updated", "fee", fee)

	return nil
}
