package controllers

import (
	"rightstay/config"
	"rightstay/internal/database"
	"rightstay/internal/repositories"
	"rightstay/internal/services"

	analyticsController "rightstay/internal/controllers/analytics"
	apartmentController "rightstay/internal/controllers/apartments"
	cleanerController "rightstay/internal/controllers/cleaners"
	dashboardController "rightstay/internal/controllers/dashboard"
	sessionController "rightstay/internal/controllers/sessions"
	settingsController "rightstay/internal/controllers/settings"
)

type Controllers struct {
	Apartment apartmentController.ApartmentControllerInterface
	Cleaner   cleanerController.CleanerControllerInterface
	Session   sessionController.SessionControllerInterface
	Analytics analyticsController.AnalyticsControllerInterface
	Settings  settingsController.SettingsControllerInterface
	Dashboard dashboardController.DashboardControllerInterface
}

func New(
	services services.Service,
	repos repositories.Repository,
	config config.Config,
	db database.DB,
) Controllers {
	return Controllers{
		Apartment: apartmentController.New(repos, services, config, db),
		Cleaner:   cleanerController.New(repos, services, config, db),
		Session:   sessionController.New(repos, services, config, db),
		Analytics: analyticsController.New(repos, services, config, db),
		Settings:  settingsController.New(repos, config, db),
		Dashboard: dashboardController.New(repos, config, db),
	}
}
