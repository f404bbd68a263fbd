package handlers

import (
	. "rightstay/internal/models"

	"github.com/gofiber/fiber/v2"
)

// Response is the envelope every endpoint answers with. Paginated listings
// additionally carry the window that produced them.
type Response struct {
	Success    bool        `json:"success"`
	Data       any         `json:"data,omitempty"`
	Error      string      `json:"error,omitempty"`
	Message    string      `json:"message,omitempty"`
	Details    any         `json:"details,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

func successResponse(c *fiber.Ctx, status int, data any, message string) error {
	return c.Status(status).JSON(Response{
		Success: true,
		Data:    data,
		Message: message,
	})
}

func successPaginatedResponse(
	c *fiber.Ctx,
	data any,
	pagination Pagination,
	message string,
) error {
	return c.JSON(Response{
		Success:    true,
		Data:       data,
		Message:    message,
		Pagination: &pagination,
	})
}

func errorResponse(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(Response{
		Success: false,
		Error:   message,
	})
}

func badRequestResponse(c *fiber.Ctx, message string) error {
	return errorResponse(c, fiber.StatusBadRequest, message)
}

func serverErrorResponse(c *fiber.Ctx, message string) error {
	return errorResponse(c, fiber.StatusInternalServerError, message)
}
