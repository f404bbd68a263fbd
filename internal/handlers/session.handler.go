package handlers

import (
	"errors"

	"rightstay/internal/app"
	sessionController "rightstay/internal/controllers/sessions"
	. "rightstay/internal/models"

	logger "github.com/Bparsons0904/goLogger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type SessionHandler struct {
	Handler
	sessionController sessionController.SessionControllerInterface
}

func NewSessionHandler(app app.App, router fiber.Router) *SessionHandler {
	log := logger.New("handlers").File("session_handler")
	return &SessionHandler{
		sessionController: app.Controllers.Session,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *SessionHandler) Register() {
	sessions := h.router.Group("/cleaning-sessions")
	sessions.Get("", h.list)
	sessions.Post("", h.create)
	sessions.Get("/upcoming", h.upcoming)
	sessions.Get("/:id", h.get)
	sessions.Put("/:id", h.update)
	sessions.Delete("/:id", h.delete)
}

func (h *SessionHandler) list(c *fiber.Ctx) error {
	filter, err := parseSessionFilter(c)
	if err != nil {
		return badRequestResponse(c, err.Error())
	}

	page, err := h.sessionController.List(c.UserContext(), filter)
	if err != nil {
		return h.respondError(c, err, "Failed to fetch cleaning sessions")
	}

	return successPaginatedResponse(
		c,
		page.Items,
		page.Pagination,
		"Cleaning sessions retrieved successfully",
	)
}

func parseSessionFilter(c *fiber.Ctx) (SessionFilter, error) {
	filter := SessionFilter{
		ApartmentNumber: c.Query("apartment"),
		Month:           c.Query("month"),
		Year:            c.Query("year"),
		StartDate:       c.Query("start_date"),
		EndDate:         c.Query("end_date"),
		Limit:           c.QueryInt("limit"),
		Offset:          c.QueryInt("offset"),
	}

	if raw := c.Query("apartment_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return SessionFilter{}, errors.New("invalid apartment_id format")
		}
		filter.ApartmentID = &id
	}

	if raw := c.Query("cleaner_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return SessionFilter{}, errors.New("invalid cleaner_id format")
		}
		filter.CleanerID = &id
	}

	return filter, nil
}

func (h *SessionHandler) upcoming(c *fiber.Ctx) error {
	sessions, err := h.sessionController.Upcoming(c.UserContext())
	if err != nil {
		return h.respondError(c, err, "Failed to fetch upcoming cleaning sessions")
	}

	return successResponse(
		c,
		fiber.StatusOK,
		sessions,
		"Upcoming cleaning sessions retrieved successfully",
	)
}

func (h *SessionHandler) get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequestResponse(c, "Invalid session ID format")
	}

	session, err := h.sessionController.Get(c.UserContext(), id)
	if err != nil {
		return h.respondError(c, err, "Failed to fetch cleaning session")
	}

	return successResponse(c, fiber.StatusOK, session, "Cleaning session retrieved successfully")
}

func (h *SessionHandler) create(c *fiber.Ctx) error {
	var req sessionController.CreateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequestResponse(c, "Invalid request body")
	}

	session, err := h.sessionController.Create(c.UserContext(), &req)
	if err != nil {
		return h.respondError(c, err, "Failed to create cleaning session")
	}

	return successResponse(
		c,
		fiber.StatusCreated,
		session,
		"Cleaning session created successfully",
	)
}

func (h *SessionHandler) update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequestResponse(c, "Invalid session ID format")
	}

	var req sessionController.UpdateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequestResponse(c, "Invalid request body")
	}

	session, err := h.sessionController.Update(c.UserContext(), id, &req)
	if err != nil {
		return h.respondError(c, err, "Failed to update cleaning session")
	}

	return successResponse(c, fiber.StatusOK, session, "Cleaning session updated successfully")
}

func (h *SessionHandler) delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequestResponse(c, "Invalid session ID format")
	}

	if err := h.sessionController.Delete(c.UserContext(), id); err != nil {
		return h.respondError(c, err, "Failed to delete cleaning session")
	}

	return successResponse(c, fiber.StatusOK, nil, "Cleaning session deleted successfully")
}

func (h *SessionHandler) respondError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, sessionController.ErrValidation):
		return badRequestResponse(c, err.Error())
	case errors.Is(err, sessionController.ErrNotFound):
		return errorResponse(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, sessionController.ErrConflict):
		return errorResponse(c, fiber.StatusConflict, "Cleaner is already scheduled for this date")
	default:
		return serverErrorResponse(c, fallback)
	}
}
