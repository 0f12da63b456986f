package handlers

import (
	"github.com/gofiber/fiber/v2"

	"celustock/internal/domain"
	applog "celustock/internal/log"
	"celustock/internal/services"
)

type QueueHandler struct {
	Queue *services.QueueService
}

type customerInput struct {
	Nombre        string `json:"nombre"`
	ModeloInteres string `json:"modelo_interes"`
}

// GET /api/queue
func (h *QueueHandler) List(c *fiber.Ctx) error {
	customers, err := h.Queue.List()
	if err != nil {
		return fail(c, err)
	}
	if customers == nil {
		customers = []domain.Customer{}
	}
	return c.JSON(customers)
}

// POST /api/queue
func (h *QueueHandler) Enqueue(c *fiber.Ctx) error {
	var in customerInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed body"})
	}
	cust, err := h.Queue.Enqueue(in.Nombre, in.ModeloInteres)
	if err != nil {
		return fail(c, err)
	}
	applog.Audit(c, "queue.enqueue", map[string]any{"customer": cust.ID})
	return c.Status(fiber.StatusCreated).JSON(cust)
}

// POST /api/queue/attend
func (h *QueueHandler) AttendNext(c *fiber.Ctx) error {
	cust, err := h.Queue.AttendNext()
	if err != nil {
		return fail(c, err)
	}
	applog.Audit(c, "queue.attend", map[string]any{"customer": cust.ID, "nombre": cust.Nombre})
	return c.JSON(cust)
}

// GET /api/queue/next
func (h *QueueHandler) PeekNext(c *fiber.Ctx) error {
	cust, ok, err := h.Queue.PeekNext()
	if err != nil {
		return fail(c, err)
	}
	if !ok {
		return c.JSON(nil)
	}
	return c.JSON(cust)
}
