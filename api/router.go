package api

import (
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"cpu-scheduler-simulator/config"
)

func NewApp(cfg *config.SchedulerConfig) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:   "cpu-scheduler-simulator",
		BodyLimit: cfg.UploadMaxBytes,
	})
	app.Use(recover.New())
	app.Use(fiberlogger.New())

	RegisterRoutes(app, NewSchedulerHandlerImpl(cfg))
	return app
}

func RegisterRoutes(router fiber.Router, handler SchedulerHandler) {
	api := router.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Get("/health", func(ctx *fiber.Ctx) error {
			return ctx.JSON(fiber.Map{"status": "ok"})
		})
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/priority", handler.Priority)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/all", handler.AllAlgorithms)
		v1.Post("/simulate", handler.Simulate)
		v1.Post("/chart", handler.Chart)
	}
}
