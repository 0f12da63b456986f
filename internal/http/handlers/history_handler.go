package handlers

import (
	"github.com/gofiber/fiber/v2"

	"celustock/internal/domain"
	applog "celustock/internal/log"
	"celustock/internal/services"
	"celustock/internal/validate"
)

type HistoryHandler struct {
	Undo *services.UndoService
}

// GET /api/history
func (h *HistoryHandler) List(c *fiber.Ctx) error {
	limit := validate.Limit(c.Query("limit"), 100)
	entries, err := h.Undo.History(limit)
	if err != nil {
		return fail(c, err)
	}
	if entries == nil {
		entries = []domain.HistoryEntry{}
	}
	return c.JSON(entries)
}

// POST /api/undo
func (h *HistoryHandler) UndoLast(c *fiber.Ctx) error {
	p, err := h.Undo.UndoLast()
	if err != nil {
		return fail(c, err)
	}
	applog.Audit(c, "history.undo", map[string]any{"id": p.ID, "estado": p.Estado})
	return c.JSON(p)
}
