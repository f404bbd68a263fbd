package apartmentController

import (
	"context"
	"errors"
	"testing"

	"rightstay/config"
	"rightstay/internal/database"
	. "rightstay/internal/models"
	"rightstay/internal/repositories"
	"rightstay/internal/services"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

type testEnv struct {
	controller ApartmentControllerInterface
	repos      repositories.Repository
	db         database.DB
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()

	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	db := database.DB{SQL: gormDB}
	require.NoError(t, db.MigrateModels())

	repos := repositories.New(db)
	svcs := services.New(db)

	return testEnv{
		controller: New(repos, svcs, config.Config{}, db),
		repos:      repos,
		db:         db,
	}
}

func strPtr(s string) *string { return &s }

func TestCreateApartment(t *testing.T) {
	env := newTestEnv(t)

	payout := decimal.RequireFromString("200")
	apartment, err := env.controller.Create(context.Background(), &CreateApartmentRequest{
		ApartmentNumber: "A101",
		OwnerName:       "Sarah Johnson",
		OwnerEmail:      strPtr("sarah@example.com"),
		CleanerPayout:   &payout,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, apartment.ID)
	assert.Equal(t, "A101", apartment.ApartmentNumber)
	assert.Equal(t, "200", apartment.PayoutOrZero().String())
}

func TestCreateApartmentDuplicateNumberCaseInsensitive(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.controller.Create(ctx, &CreateApartmentRequest{
		ApartmentNumber: "A101",
		OwnerName:       "Sarah Johnson",
	})
	require.NoError(t, err)

	_, err = env.controller.Create(ctx, &CreateApartmentRequest{
		ApartmentNumber: "a101",
		OwnerName:       "Somebody Else",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConflict))
}

func TestCreateApartmentValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.controller.Create(ctx, &CreateApartmentRequest{OwnerName: "Sarah Johnson"})
	assert.True(t, errors.Is(err, ErrValidation))

	_, err = env.controller.Create(ctx, &CreateApartmentRequest{ApartmentNumber: "A101"})
	assert.True(t, errors.Is(err, ErrValidation))

	negative := decimal.RequireFromString("-1")
	_, err = env.controller.Create(ctx, &CreateApartmentRequest{
		ApartmentNumber: "A101",
		OwnerName:       "Sarah Johnson",
		CleanerPayout:   &negative,
	})
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestUpdateApartmentDuplicateExcludesSelf(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	a101, err := env.controller.Create(ctx, &CreateApartmentRequest{
		ApartmentNumber: "A101",
		OwnerName:       "Sarah Johnson",
	})
	require.NoError(t, err)

	_, err = env.controller.Create(ctx, &CreateApartmentRequest{
		ApartmentNumber: "B202",
		OwnerName:       "Mike Chen",
	})
	require.NoError(t, err)

	// keeping its own number is not a duplicate
	updated, err := env.controller.Update(ctx, a101.ID, &UpdateApartmentRequest{
		ApartmentNumber: strPtr("A101"),
		OwnerName:       strPtr("Sarah J. Johnson"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Sarah J. Johnson", updated.OwnerName)

	// taking another apartment's number is
	_, err = env.controller.Update(ctx, a101.ID, &UpdateApartmentRequest{
		ApartmentNumber: strPtr("b202"),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConflict))
}

func TestUpdateApartmentPersistsChanges(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	payout := decimal.RequireFromString("200")
	apartment, err := env.controller.Create(ctx, &CreateApartmentRequest{
		ApartmentNumber: "A101",
		OwnerName:       "Sarah Johnson",
		CleanerPayout:   &payout,
	})
	require.NoError(t, err)

	newPayout := decimal.RequireFromString("225")
	_, err = env.controller.Update(ctx, apartment.ID, &UpdateApartmentRequest{
		Address:       strPtr("12 Ocean View Drive"),
		CleanerPayout: &newPayout,
	})
	require.NoError(t, err)

	fetched, err := env.controller.Get(ctx, apartment.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched.Address)
	assert.Equal(t, "12 Ocean View Drive", *fetched.Address)
	assert.Equal(t, "225", fetched.PayoutOrZero().String())
	assert.Equal(t, "A101", fetched.ApartmentNumber)
}

func TestUpdateApartmentNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.controller.Update(context.Background(), uuid.New(), &UpdateApartmentRequest{
		OwnerName: strPtr("Nobody"),
	})
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestDeleteApartmentBlockedBySessions(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	apartment, err := env.controller.Create(ctx, &CreateApartmentRequest{
		ApartmentNumber: "A101",
		OwnerName:       "Sarah Johnson",
	})
	require.NoError(t, err)

	cleaner := &Cleaner{Name: "Jane Smith"}
	require.NoError(t, env.repos.Cleaner.Create(ctx, env.db.SQL, cleaner))

	for _, date := range []string{"2025-03-01", "2025-03-08", "2025-03-15"} {
		session := &CleaningSession{
			ApartmentID:  apartment.ID,
			CleanerID:    cleaner.ID,
			CleaningDate: date,
		}
		require.NoError(t, env.repos.Session.Create(ctx, env.db.SQL, session))
	}

	err = env.controller.Delete(ctx, apartment.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConflict))
	assert.Contains(t, err.Error(), "3 cleaning session(s)")

	// still present
	_, err = env.controller.Get(ctx, apartment.ID)
	assert.NoError(t, err)
}

func TestDeleteApartmentWithoutSessions(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	apartment, err := env.controller.Create(ctx, &CreateApartmentRequest{
		ApartmentNumber: "A101",
		OwnerName:       "Sarah Johnson",
	})
	require.NoError(t, err)

	require.NoError(t, env.controller.Delete(ctx, apartment.ID))

	_, err = env.controller.Get(ctx, apartment.ID)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestListApartmentsSearch(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	seed := []CreateApartmentRequest{
		{ApartmentNumber: "A101", OwnerName: "Sarah Johnson", OwnerEmail: strPtr("sarah@example.com")},
		{ApartmentNumber: "B202", OwnerName: "Mike Chen", Address: strPtr("12 Ocean View Drive")},
		{ApartmentNumber: "C303", OwnerName: "Lisa Park"},
	}
	for i := range seed {
		_, err := env.controller.Create(ctx, &seed[i])
		require.NoError(t, err)
	}

	items, pagination, err := env.controller.List(ctx, ListApartmentsRequest{})
	require.NoError(t, err)
	assert.Len(t, items, 3)
	assert.Equal(t, 3, pagination.Total)

	items, _, err = env.controller.List(ctx, ListApartmentsRequest{Search: "ocean"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "B202", items[0].ApartmentNumber)

	items, _, err = env.controller.List(ctx, ListApartmentsRequest{Search: "SARAH"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "A101", items[0].ApartmentNumber)

	items, pagination, err = env.controller.List(ctx, ListApartmentsRequest{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.True(t, pagination.HasMore)
}
