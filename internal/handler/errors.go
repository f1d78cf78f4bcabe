package handler

import (
	"errors"
	"log"

	"camrent-backend/internal/repository"
	"camrent-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

// errorJSON maps service/repository errors to a stable {error, message}
// payload. Unknown errors are logged and surfaced as a generic 500 so storage
// internals never leak to clients.
func errorJSON(c *fiber.Ctx, err error) error {
	var stockErr *repository.InsufficientStockError

	switch {
	case errors.Is(err, service.ErrInvalidInput), errors.Is(err, service.ErrInvalidStatus):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid_input", "message": err.Error(),
		})
	case errors.As(err, &stockErr):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "insufficient_stock", "message": stockErr.Error(), "product_id": stockErr.ProductID,
		})
	case errors.Is(err, repository.ErrAlreadyPaid):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "already_paid", "message": err.Error(),
		})
	case errors.Is(err, repository.ErrProductNotFound),
		errors.Is(err, repository.ErrCartItemNotFound),
		errors.Is(err, repository.ErrTransactionNotFound),
		errors.Is(err, repository.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "not_found", "message": err.Error(),
		})
	case errors.Is(err, service.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "unauthorized", "message": err.Error(),
		})
	case errors.Is(err, service.ErrInvalidRole):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "forbidden", "message": err.Error(),
		})
	default:
		log.Printf("internal error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal", "message": "internal server error",
		})
	}
}
