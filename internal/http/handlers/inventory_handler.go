package handlers

import (
	"github.com/gofiber/fiber/v2"

	"celustock/internal/domain"
	applog "celustock/internal/log"
	"celustock/internal/services"
)

type InventoryHandler struct {
	Inv *services.InventoryService
}

type phoneInput struct {
	Modelo    string  `json:"modelo"`
	Capacidad string  `json:"capacidad"`
	Condicion string  `json:"condicion"`
	Precio    float64 `json:"precio"`
}

// GET /api/inventory
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	phones, err := h.Inv.List()
	if err != nil {
		return fail(c, err)
	}
	if phones == nil {
		phones = []domain.Phone{}
	}
	return c.JSON(phones)
}

// POST /api/inventory
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in phoneInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed body"})
	}
	p, err := h.Inv.Create(in.Modelo, in.Capacidad, in.Condicion, in.Precio)
	if err != nil {
		return fail(c, err)
	}
	applog.Audit(c, "inventory.create", map[string]any{"id": p.ID, "modelo": p.Modelo})
	return c.Status(fiber.StatusCreated).JSON(p)
}

// PUT /api/inventory/:id
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}
	var patch domain.PhonePatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed body"})
	}
	p, err := h.Inv.Update(int64(id), patch)
	if err != nil {
		return fail(c, err)
	}
	applog.Audit(c, "inventory.update", map[string]any{"id": p.ID})
	return c.JSON(p)
}

// POST /api/inventory/:id/sell
func (h *InventoryHandler) Sell(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}
	p, err := h.Inv.Sell(int64(id))
	if err != nil {
		return fail(c, err)
	}
	applog.Audit(c, "inventory.sell", map[string]any{"id": p.ID, "modelo": p.Modelo, "precio": p.Precio})
	return c.JSON(p)
}

// DELETE /api/inventory/:id
func (h *InventoryHandler) Remove(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}
	p, err := h.Inv.Remove(int64(id))
	if err != nil {
		return fail(c, err)
	}
	applog.Audit(c, "inventory.remove", map[string]any{"id": p.ID, "estado": p.Estado})
	return c.JSON(p)
}
