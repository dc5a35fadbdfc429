package server

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"WealthPlanner/internal/backtest"
	"WealthPlanner/internal/planner"
	"WealthPlanner/internal/recorder"
	"WealthPlanner/internal/universe"
)

// New builds the fiber app with all routes wired.
func New(eng *planner.Engine, sim *backtest.Simulator, store *universe.Store, rec recorder.Recorder) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "WealthPlanner",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))

	h := &handlers{eng: eng, sim: sim, store: store, rec: rec}

	app.Get("/health", h.health)

	v1 := app.Group("/v1")
	v1.Get("/funds", h.listFunds)
	v1.Post("/plan", h.plan)
	v1.Post("/backtest", h.backtest)

	return app
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}
