package handlers

import (
	"errors"

	"rightstay/internal/app"
	cleanerController "rightstay/internal/controllers/cleaners"

	logger "github.com/Bparsons0904/goLogger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CleanerHandler struct {
	Handler
	cleanerController cleanerController.CleanerControllerInterface
}

func NewCleanerHandler(app app.App, router fiber.Router) *CleanerHandler {
	log := logger.New("handlers").File("cleaner_handler")
	return &CleanerHandler{
		cleanerController: app.Controllers.Cleaner,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *CleanerHandler) Register() {
	cleaners := h.router.Group("/cleaners")
	cleaners.Get("", h.list)
	cleaners.Post("", h.create)
	cleaners.Get("/:id", h.get)
	cleaners.Put("/:id", h.update)
	cleaners.Delete("/:id", h.delete)
}

func (h *CleanerHandler) list(c *fiber.Ctx) error {
	items, pagination, err := h.cleanerController.List(
		c.UserContext(),
		cleanerController.ListCleanersRequest{
			Search: c.Query("search"),
			Limit:  c.QueryInt("limit"),
			Offset: c.QueryInt("offset"),
		},
	)
	if err != nil {
		return h.respondError(c, err, "Failed to fetch cleaners")
	}

	return successPaginatedResponse(c, items, pagination, "Cleaners retrieved successfully")
}

func (h *CleanerHandler) get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequestResponse(c, "Invalid cleaner ID format")
	}

	cleaner, err := h.cleanerController.Get(c.UserContext(), id)
	if err != nil {
		return h.respondError(c, err, "Failed to fetch cleaner")
	}

	return successResponse(c, fiber.StatusOK, cleaner, "Cleaner retrieved successfully")
}

func (h *CleanerHandler) create(c *fiber.Ctx) error {
	var req cleanerController.CreateCleanerRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequestResponse(c, "Invalid request body")
	}

	cleaner, err := h.cleanerController.Create(c.UserContext(), &req)
	if err != nil {
		return h.respondError(c, err, "Failed to create cleaner")
	}

	return successResponse(c, fiber.StatusCreated, cleaner, "Cleaner created successfully")
}

func (h *CleanerHandler) update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequestResponse(c, "Invalid cleaner ID format")
	}

	var req cleanerController.UpdateCleanerRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequestResponse(c, "Invalid request body")
	}

	cleaner, err := h.cleanerController.Update(c.UserContext(), id, &req)
	if err != nil {
		return h.respondError(c, err, "Failed to update cleaner")
	}

	return successResponse(c, fiber.StatusOK, cleaner, "Cleaner updated successfully")
}

func (h *CleanerHandler) delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequestResponse(c, "Invalid cleaner ID format")
	}

	if err := h.cleanerController.Delete(c.UserContext(), id); err != nil {
		return h.respondError(c, err, "Failed to delete cleaner")
	}

	return successResponse(c, fiber.StatusOK, nil, "Cleaner deleted successfully")
}

func (h *CleanerHandler) respondError(c *fiber.Ctx, err error, fallback string) error {
	var depErr *cleanerController.DependentSessionsError
	if errors.As(err, &depErr) {
		return c.Status(fiber.StatusConflict).JSON(Response{
			Success: false,
			Error:   err.Error(),
			Details: fiber.Map{"sessionCount": depErr.SessionCount},
		})
	}

	switch {
	case errors.Is(err, cleanerController.ErrValidation):
		return badRequestResponse(c, err.Error())
	case errors.Is(err, cleanerController.ErrNotFound):
		return errorResponse(c, fiber.StatusNotFound, "Cleaner not found")
	case errors.Is(err, cleanerController.ErrConflict):
		return errorResponse(c, fiber.StatusConflict, err.Error())
	default:
		return serverErrorResponse(c, fallback)
	}
}
