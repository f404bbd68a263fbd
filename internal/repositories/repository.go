package repositories

import (
	"rightstay/internal/database"
)

type Repository struct {
	Apartment ApartmentRepository
	Cleaner   CleanerRepository
	Session   SessionRepository
	Settings  SettingsRepository
}

func New(db database.DB) Repository {
	return Repository{
		Apartment: NewApartmentRepository(db.Cache.Listings),
		Cleaner:   NewCleanerRepository(db.Cache.Listings),
		Session:   NewSessionRepository(db.Cache.Listings),
		Settings:  NewSettingsRepository(db.Cache.General),
	}
}
