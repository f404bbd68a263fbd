package settingsController

import (
	"context"
	"errors"
	"testing"

	"rightstay/config"
	"rightstay/internal/database"
	"rightstay/internal/repositories"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func newTestController(t *testing.T) SettingsControllerInterface {
	t.Helper()

	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	db := database.DB{SQL: gormDB}
	require.NoError(t, db.MigrateModels())

	return New(repositories.New(db), config.Config{}, db)
}

func TestWelcomePackFeeDefaultsToZero(t *testing.T) {
	controller := newTestController(t)

	fee, err := controller.GetWelcomePackFee(context.Background())
	require.NoError(t, err)
	assert.True(t, fee.IsZero())
}

func TestSetAndGetWelcomePackFee(t *testing.T) {
	controller := newTestController(t)
	ctx := context.Background()

	require.NoError(t, controller.SetWelcomePackFee(ctx, decimal.RequireFromString("50")))

	fee, err := controller.GetWelcomePackFee(ctx)
	require.NoError(t, err)
	assert.Equal(t, "50", fee.String())

	// overwriting replaces, not accumulates
	require.NoError(t, controller.SetWelcomePackFee(ctx, decimal.RequireFromString("75.50")))

	fee, err = controller.GetWelcomePackFee(ctx)
	require.NoError(t, err)
	assert.Equal(t, "75.5", fee.String())
}

func TestSetWelcomePackFeeRejectsNegative(t *testing.T) {
	controller := newTestController(t)

	err := controller.SetWelcomePackFee(context.Background(), decimal.RequireFromString("-10"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
}
