package handlers

import (
	"rightstay/internal/app"
	"rightstay/internal/handlers/middleware"

	logger "github.com/Bparsons0904/goLogger"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	middleware middleware.Middleware
	log        logger.Logger
	router     fiber.Router
}

func Router(router fiber.Router, app *app.App) (err error) {
	api := router.Group("/api")
	api.Use(app.Middleware.TraceID())

	HealthHandler(api, app.Config)
	NewApartmentHandler(*app, api).Register()
	NewCleanerHandler(*app, api).Register()
	NewSessionHandler(*app, api).Register()
	NewAnalyticsHandler(*app, api).Register()
	NewDashboardHandler(*app, api).Register()
	NewSettingsHandler(*app, api).Register()

	return nil
}
