package handlers

import (
	"github.com/gofiber/fiber/v2"

	"celustock/internal/services"
	"celustock/internal/validate"
)

type StatsHandler struct {
	Stats *services.StatsService
}

// GET /api/stats
func (h *StatsHandler) Dashboard(c *fiber.Ctx) error {
	stats, err := h.Stats.Dashboard()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(stats)
}

// GET /api/stats/trend?periods=3|6|12
func (h *StatsHandler) Trend(c *fiber.Ctx) error {
	periods, ok := validate.Periods(c.Query("periods"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "periods must be 3, 6 or 12"})
	}
	points, err := h.Stats.Trend(periods)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(points)
}
