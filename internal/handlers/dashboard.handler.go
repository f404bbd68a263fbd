package handlers

import (
	"rightstay/internal/app"
	dashboardController "rightstay/internal/controllers/dashboard"

	logger "github.com/Bparsons0904/goLogger"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	Handler
	dashboardController dashboardController.DashboardControllerInterface
}

func NewDashboardHandler(app app.App, router fiber.Router) *DashboardHandler {
	log := logger.New("handlers").File("dashboard_handler")
	return &DashboardHandler{
		dashboardController: app.Controllers.Dashboard,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *DashboardHandler) Register() {
	h.router.Get("/dashboard/stats", h.stats)
}

func (h *DashboardHandler) stats(c *fiber.Ctx) error {
	stats, err := h.dashboardController.Stats(c.UserContext())
	if err != nil {
		return serverErrorResponse(c, "Failed to fetch dashboard statistics")
	}

	return successResponse(c, fiber.StatusOK, stats, "Dashboard statistics retrieved successfully")
}
