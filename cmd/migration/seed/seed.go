package seed

import (
	"rightstay/config"
	. "rightstay/internal/models"

	logger "github.com/Bparsons0904/goLogger"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func stringPtr(s string) *string {
	return &s
}

func decimalPtr(value string) *decimal.Decimal {
	d := decimal.RequireFromString(value)
	return &d
}

// Seed loads a small development dataset: three apartments, three cleaners
// and a few weeks of cleaning sessions.
func Seed(db *gorm.DB, config config.Config, log logger.Logger) error {
	log = log.Function("seed")
	log.Info("Seeding development data")

	apartments := []Apartment{
		{
			ApartmentNumber: "A101",
			OwnerName:       "Sarah Johnson",
			OwnerEmail:      stringPtr("sarah.johnson@example.com"),
			Address:         stringPtr("12 Ocean View Drive, Cape Town"),
			CleanerPayout:   decimalPtr("200"),
		},
		{
			ApartmentNumber: "B202",
			OwnerName:       "Mike Chen",
			OwnerEmail:      stringPtr("mike.chen@example.com"),
			Address:         stringPtr("48 Kloof Street, Cape Town"),
			CleanerPayout:   decimalPtr("120"),
		},
		{
			ApartmentNumber: "C303",
			OwnerName:       "Lisa Park",
		},
	}

	for i := range apartments {
		apartment := &apartments[i]
		var existing Apartment
		if err := db.First(&existing, "apartment_number = ?", apartment.ApartmentNumber).Error; err == nil {
			log.Info("Apartment already exists", "apartmentNumber", apartment.ApartmentNumber)
			apartments[i] = existing
			continue
		}
		log.Info("Seeding apartment", "apartmentNumber", apartment.ApartmentNumber)
		if err := db.Create(apartment).Error; err != nil {
			return log.Err(
				"failed to create apartment",
				err,
				"apartmentNumber",
				apartment.ApartmentNumber,
			)
		}
	}

	cleaners := []Cleaner{
		{
			Name:  "Jane Smith",
			Phone: stringPtr("+27 82 555 0100"),
			Email: stringPtr("jane.smith@example.com"),
		},
		{
			Name:  "Bob Wilson",
			Phone: stringPtr("+27 82 555 0101"),
		},
		{
			Name: "Carol Davis",
		},
	}

	for i := range cleaners {
		cleaner := &cleaners[i]
		var existing Cleaner
		if err := db.First(&existing, "name = ?", cleaner.Name).Error; err == nil {
			log.Info("Cleaner already exists", "name", cleaner.Name)
			cleaners[i] = existing
			continue
		}
		log.Info("Seeding cleaner", "name", cleaner.Name)
		if err := db.Create(cleaner).Error; err != nil {
			return log.Err("failed to create cleaner", err, "name", cleaner.Name)
		}
	}

	sessions := []CleaningSession{
		{
			ApartmentID:  apartments[0].ID,
			CleanerID:    cleaners[0].ID,
			CleaningDate: "2025-03-01",
			// 180 base plus 50 welcome pack
			Price:          decimalPtr("230"),
			WelcomePackFee: decimalPtr("50"),
		},
		{
			ApartmentID:  apartments[0].ID,
			CleanerID:    cleaners[1].ID,
			CleaningDate: "2025-03-08",
		},
		{
			ApartmentID:  apartments[1].ID,
			CleanerID:    cleaners[0].ID,
			CleaningDate: "2025-03-10",
			Price:        decimalPtr("150"),
			Notes:        "Deep clean after checkout",
		},
		{
			ApartmentID:  apartments[1].ID,
			CleanerID:    cleaners[1].ID,
			CleaningDate: "2025-02-15",
			Price:        decimalPtr("100"),
		},
	}

	for i := range sessions {
		session := &sessions[i]
		var existing CleaningSession
		err := db.First(
			&existing,
			"cleaner_id = ? AND cleaning_date = ?",
			session.CleanerID,
			session.CleaningDate,
		).Error
		if err == nil {
			log.Info("Session already exists", "cleaningDate", session.CleaningDate)
			continue
		}
		log.Info("Seeding cleaning session", "cleaningDate", session.CleaningDate)
		if err := db.Create(session).Error; err != nil {
			return log.Err(
				"failed to create cleaning session",
				err,
				"cleaningDate",
				session.CleaningDate,
			)
		}
	}

	if err := seedWelcomePackFee(db, decimal.RequireFromString("50"), log); err != nil {
		return err
	}

	log.Info("Seeding complete")
	return nil
}

func seedWelcomePackFee(db *gorm.DB, fee decimal.Decimal, log logger.Logger) error {
	var existing Setting
	if err := db.First(&existing, "key = ?", SettingWelcomePackFee).Error; err == nil {
		log.Info("Welcome pack fee already configured")
		return nil
	}

	value, err := fee.MarshalJSON()
	if err != nil {
		return log.Err("failed to encode welcome pack fee", err)
	}

	setting := Setting{Key: SettingWelcomePackFee, Value: datatypes.JSON(value)}
	if err := db.Create(&setting).Error; err != nil {
		return log.Err("failed to seed welcome pack fee", err)
	}

	log.Info("Seeded welcome pack fee", "fee", fee)
	return nil
}
