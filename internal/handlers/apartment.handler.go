package handlers

import (
	"errors"

	"rightstay/internal/app"
	apartmentController "rightstay/internal/controllers/apartments"

	logger "github.com/Bparsons0904/goLogger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ApartmentHandler struct {
	Handler
	apartmentController apartmentController.ApartmentControllerInterface
}

func NewApartmentHandler(app app.App, router fiber.Router) *ApartmentHandler {
	log := logger.New("handlers").File("apartment_handler")
	return &ApartmentHandler{
		apartmentController: app.Controllers.Apartment,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *ApartmentHandler) Register() {
	apartments := h.router.Group("/apartments")
	apartments.Get("", h.list)
	apartments.Post("", h.create)
	apartments.Get("/:id", h.get)
	apartments.Put("/:id", h.update)
	apartments.Delete("/:id", h.delete)
}

func (h *ApartmentHandler) list(c *fiber.Ctx) error {
	items, pagination, err := h.apartmentController.List(
		c.UserContext(),
		apartmentController.ListApartmentsRequest{
			Search: c.Query("search"),
			Limit:  c.QueryInt("limit"),
			Offset: c.QueryInt("offset"),
		},
	)
	if err != nil {
		return h.respondError(c, err, "Failed to fetch apartments")
	}

	return successPaginatedResponse(c, items, pagination, "Apartments retrieved successfully")
}

func (h *ApartmentHandler) get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequestResponse(c, "Invalid apartment ID format")
	}

	apartment, err := h.apartmentController.Get(c.UserContext(), id)
	if err != nil {
		return h.respondError(c, err, "Failed to fetch apartment")
	}

	return successResponse(c, fiber.StatusOK, apartment, "Apartment retrieved successfully")
}

func (h *ApartmentHandler) create(c *fiber.Ctx) error {
	var req apartmentController.CreateApartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequestResponse(c, "Invalid request body")
	}

	apartment, err := h.apartmentController.Create(c.UserContext(), &req)
	if err != nil {
		return h.respondError(c, err, "Failed to create apartment")
	}

	return successResponse(c, fiber.StatusCreated, apartment, "Apartment created successfully")
}

func (h *ApartmentHandler) update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequestResponse(c, "Invalid apartment ID format")
	}

	var req apartmentController.UpdateApartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequestResponse(c, "Invalid request body")
	}

	apartment, err := h.apartmentController.Update(c.UserContext(), id, &req)
	if err != nil {
		return h.respondError(c, err, "Failed to update apartment")
	}

	return successResponse(c, fiber.StatusOK, apartment, "Apartment updated successfully")
}

func (h *ApartmentHandler) delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequestResponse(c, "Invalid apartment ID format")
	}

	if err := h.apartmentController.Delete(c.UserContext(), id); err != nil {
		return h.respondError(c, err, "Failed to delete apartment")
	}

	return successResponse(c, fiber.StatusOK, nil, "Apartment deleted successfully")
}

func (h *ApartmentHandler) respondError(c *fiber.Ctx, err error, fallback string) error {
	var depErr *apartmentController.DependentSessionsError
	if errors.As(err, &depErr) {
		return c.Status(fiber.StatusConflict).JSON(Response{
			Success: false,
			Error:   err.Error(),
			Details: fiber.Map{"sessionCount": depErr.SessionCount},
		})
	}

	switch {
	case errors.Is(err, apartmentController.ErrValidation):
		return badRequestResponse(c, err.Error())
	case errors.Is(err, apartmentController.ErrNotFound):
		return errorResponse(c, fiber.StatusNotFound, "Apartment not found")
	case errors.Is(err, apartmentController.ErrConflict):
		return errorResponse(c, fiber.StatusConflict, "Apartment number already exists")
	default:
		return serverErrorResponse(c, fallback)
	}
}
