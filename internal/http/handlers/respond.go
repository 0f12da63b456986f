package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"celustock/internal/domain"
	applog "celustock/internal/log"
)

// fail maps the service error taxonomy onto HTTP statuses: validation
// 400, unknown id 404, illegal transitions and empty structures 409.
// Anything else is logged and hidden behind a generic 500.
func fail(c *fiber.Ctx, err error) error {
	var (
		validation   *domain.ValidationError
		notFound     *domain.NotFoundError
		invalidState *domain.InvalidStateError
		inconsistent *domain.InconsistentStateError
	)
	switch {
	case errors.As(err, &validation):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validation.Error()})
	case errors.As(err, &notFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": notFound.Error()})
	case errors.As(err, &invalidState), errors.As(err, &inconsistent),
		errors.Is(err, domain.ErrEmptyLedger), errors.Is(err, domain.ErrEmptyQueue):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	}
	applog.Error(c, "request.fail", err, nil)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
}
