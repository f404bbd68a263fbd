package database

import (
	"rightstay/internal/models"

	logger "github.com/Bparsons0904/goLogger"
)

// MigrateModels runs GORM AutoMigrate for all models.
func (db *DB) MigrateModels() error {
	log := logger.New("database").Function("MigrateModels")
	log.Info("Starting database migration")

	modelsToMigrate := []any{
		&models.Apartment{},
		&models.Cleaner{},
		&models.CleaningSession{},
		&models.Setting{},
	}

	for _, model := range modelsToMigrate {
		if err := db.SQL.AutoMigrate(model); err != nil {
			return log.Err("failed to migrate model", err, "model", model)
		}
	}

	log.Info("Database migration completed successfully")
	return nil
}

// CreateIndexes creates indexes that GORM tags cannot express. The
// case-insensitive apartment number uniqueness and the (cleaner_id,
// cleaning_date) pair are also checked in the controllers; these are the
// storage-level backstop.
func (db *DB) CreateIndexes() error {
	log := logger.New("database").Function("CreateIndexes")
	log.Info("Creating additional database indexes")

	indexes := []string{
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_apartments_number_lower ON apartments(lower(apartment_number)) WHERE deleted_at IS NULL",
		"CREATE INDEX IF NOT EXISTS idx_cleaning_sessions_date ON cleaning_sessions(cleaning_date)",
	}

	for _, indexSQL := range indexes {
		if err := db.SQL.Exec(indexSQL).Error; err != nil {
			log.Warn("Failed to create index", "sql", indexSQL, "error", err)
		}
	}

	log.Info("Additional database indexes created")
	return nil
}
