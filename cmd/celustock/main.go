package main

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"celustock/internal/config"
	"celustock/internal/http/handlers"
	applog "celustock/internal/log"
	"celustock/internal/repos"
	"celustock/internal/services"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			log.SetOutput(io.MultiWriter(os.Stdout, f))
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}
	if err := repos.SeedIfEmpty(db, cfg.SeedSize); err != nil {
		log.Fatal(err)
	}
	if err := repos.EnsureOperator(db, cfg.OperatorEmail, "Operador", cfg.OperatorPassword); err != nil {
		log.Fatal(err)
	}

	authSvc := &services.AuthService{Operators: repos.NewOperatorRepo(db)}
	authH := &handlers.AuthHandler{Auth: authSvc}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			// Avoid leaking internals
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
		},
	})
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
	}))

	// ---------- Routes ----------
	deps := handlers.NewDeps(db, cfg)
	guard := handlers.RequireOperator(authSvc)

	api := app.Group("/api")

	api.Post("/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "too many attempts, retry later"})
		},
	}), authH.Login)
	api.Post("/logout", authH.Logout)

	api.Get("/inventory", deps.InventoryHandler.List)
	api.Post("/inventory", guard, deps.InventoryHandler.Create)
	api.Put("/inventory/:id", guard, deps.InventoryHandler.Update)
	api.Delete("/inventory/:id", guard, deps.InventoryHandler.Remove)
	api.Post("/inventory/:id/sell", guard, deps.InventoryHandler.Sell)

	api.Get("/history", deps.HistoryHandler.List)
	api.Post("/undo", guard, deps.HistoryHandler.UndoLast)

	api.Get("/queue", deps.QueueHandler.List)
	api.Get("/queue/next", deps.QueueHandler.PeekNext)
	api.Post("/queue", guard, deps.QueueHandler.Enqueue)
	api.Post("/queue/attend", guard, deps.QueueHandler.AttendNext)

	api.Get("/stats", deps.StatsHandler.Dashboard)
	api.Get("/stats/trend", deps.StatsHandler.Trend)

	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })

	log.Fatal(app.Listen(":" + cfg.Port))
}
