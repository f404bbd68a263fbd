package database

import (
	"testing"

	logger "github.com/Bparsons0904/goLogger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func TestCacheConstants(t *testing.T) {
	assert.Equal(t, 0, LISTINGS_CACHE_INDEX)
	assert.Equal(t, 1, GENERAL_CACHE_INDEX)
}

func TestDBStructCreation(t *testing.T) {
	log := logger.New("test")

	db := &DB{log: log}

	assert.NotNil(t, db)
	assert.Nil(t, db.SQL)
	assert.Nil(t, db.Cache.Listings)
}

// The model DDL has to be portable: the same tags migrate on Postgres in
// production and on SQLite in tests.
func TestMigrateModelsOnSQLite(t *testing.T) {
	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	db := DB{SQL: gormDB}
	require.NoError(t, db.MigrateModels())

	for _, table := range []string{"apartments", "cleaners", "cleaning_sessions", "settings"} {
		assert.True(t, gormDB.Migrator().HasTable(table), table)
	}
}

func TestIsKeyNotFoundError(t *testing.T) {
	assert.False(t, isKeyNotFoundError(nil))
	assert.False(t, isKeyNotFoundError(assert.AnError))
}
