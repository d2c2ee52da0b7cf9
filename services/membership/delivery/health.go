package delivery

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

func NewHealthHandler(app *fiber.App) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"success": true,
			"message": "Service is healthy",
			"data": fiber.Map{
				"status":    "ok",
				"timestamp": time.Now().Format(time.RFC3339),
			},
		})
	})
}
