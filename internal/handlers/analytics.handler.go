package handlers

import (
	"errors"

	"rightstay/internal/app"
	analyticsController "rightstay/internal/controllers/analytics"

	logger "github.com/Bparsons0904/goLogger"

	"github.com/gofiber/fiber/v2"
)

type AnalyticsHandler struct {
	Handler
	analyticsController analyticsController.AnalyticsControllerInterface
}

func NewAnalyticsHandler(app app.App, router fiber.Router) *AnalyticsHandler {
	log := logger.New("handlers").File("analytics_handler")
	return &AnalyticsHandler{
		analyticsController: app.Controllers.Analytics,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *AnalyticsHandler) Register() {
	h.router.Get("/analytics", h.get)
}

func (h *AnalyticsHandler) get(c *fiber.Ctx) error {
	result, err := h.analyticsController.Get(c.UserContext(), c.Query("month"), c.Query("year"))
	if err != nil {
		if errors.Is(err, analyticsController.ErrValidation) {
			return badRequestResponse(c, err.Error())
		}
		return serverErrorResponse(c, "Failed to fetch analytics data")
	}

	return successResponse(c, fiber.StatusOK, result, "Analytics data retrieved successfully")
}
