package app

import (
	"rightstay/config"
	"rightstay/internal/controllers"
	"rightstay/internal/database"
	"rightstay/internal/handlers/middleware"
	"rightstay/internal/repositories"
	"rightstay/internal/services"

	logger "github.com/Bparsons0904/goLogger"
)

type App struct {
	Database    database.DB
	Middleware  middleware.Middleware
	Config      config.Config
	Repos       repositories.Repository
	Services    services.Service
	Controllers controllers.Controllers
}

func New() (*App, error) {
	log := logger.New("app").Function("New")

	config, err := config.InitConfig()
	if err != nil {
		return &App{}, log.Err("failed to initialize config", err)
	}

	db, err := database.New(config)
	if err != nil {
		return &App{}, log.Err("failed to create database", err)
	}

	repos := repositories.New(db)
	services := services.New(db)
	middleware := middleware.New(db, config)
	controllers := controllers.New(services, repos, config, db)

	app := &App{
		Database:    db,
		Config:      config,
		Middleware:  middleware,
		Repos:       repos,
		Services:    services,
		Controllers: controllers,
	}

	if err := app.validate(); err != nil {
		return &App{}, log.Err("failed to validate app", err)
	}

	return app, nil
}

func (a *App) validate() error {
	log := logger.New("app").Function("validate")

	if a.Database.SQL == nil {
		return log.ErrMsg("database is nil")
	}

	if a.Config == (config.Config{}) {
		return log.ErrMsg("config is nil")
	}

	nilChecks := []any{
		a.Services.Transaction,
		a.Services.Pricing,
		a.Services.Analytics,
		a.Repos.Apartment,
		a.Repos.Cleaner,
		a.Repos.Session,
		a.Repos.Settings,
		a.Controllers.Apartment,
		a.Controllers.Cleaner,
		a.Controllers.Session,
		a.Controllers.Analytics,
		a.Controllers.Settings,
		a.Controllers.Dashboard,
	}

	for _, check := range nilChecks {
		if check == nil {
			return log.ErrMsg("nil check failed")
		}
	}

	return nil
}

func (a *App) Close() error {
	return a.Database.Close()
}
