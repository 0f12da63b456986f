package handlers

import (
	applog "celustock/internal/log"
	"celustock/internal/services"

	"github.com/gofiber/fiber/v2"
)

// RequireOperator guards the mutating routes: only a logged-in
// operator may change inventory, queue or history state.
func RequireOperator(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies("sid")
		if sid == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "login required"})
		}
		op, err := auth.Current(sid)
		if err != nil || op == nil {
			applog.Security(c, "access.denied", map[string]any{"sid": sid})
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "login required"})
		}
		c.Locals("operator", op)
		return c.Next()
	}
}
