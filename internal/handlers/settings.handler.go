package handlers

import (
	"errors"

	"rightstay/internal/app"
	settingsController "rightstay/internal/controllers/settings"

	logger "github.com/Bparsons0904/goLogger"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type SettingsHandler struct {
	Handler
	settingsController settingsController.SettingsControllerInterface
}

type updateWelcomePackFeeRequest struct {
	Fee decimal.Decimal `json:"fee"`
}

func NewSettingsHandler(app app.App, router fiber.Router) *SettingsHandler {
	log := logger.New("handlers").File("settings_handler")
	return &SettingsHandler{
		settingsController: app.Controllers.Settings,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *SettingsHandler) Register() {
	settings := h.router.Group("/settings")
	settings.Get("/welcome-pack", h.getWelcomePackFee)
	settings.Put("/welcome-pack", h.setWelcomePackFee)
}

func (h *SettingsHandler) getWelcomePackFee(c *fiber.Ctx) error {
	fee, err := h.settingsController.GetWelcomePackFee(c.UserContext())
	if err != nil {
		return serverErrorResponse(c, "Failed to load welcome pack fee")
	}

	return successResponse(c, fiber.StatusOK, fiber.Map{"fee": fee}, "")
}

func (h *SettingsHandler) setWelcomePackFee(c *fiber.Ctx) error {
	var req updateWelcomePackFeeRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequestResponse(c, "Invalid fee")
	}

	if err := h.settingsController.SetWelcomePackFee(c.UserContext(), req.Fee); err != nil {
		if errors.Is(err, settingsController.ErrValidation) {
			return badRequestResponse(c, "Invalid fee")
		}
		return serverErrorResponse(c, "Failed to update welcome pack fee")
	}

	return successResponse(c, fiber.StatusOK, nil, "Welcome pack fee updated successfully")
}
