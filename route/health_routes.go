package route

import (
	"github.com/gofiber/fiber/v2"

	"studentapi/app/model"
)

func HealthRoutes(app *fiber.App) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(model.Success(fiber.Map{
			"message": "Student CRUD API",
			"version": "1.0.0",
		}))
	})

	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(model.Success(fiber.Map{
			"status":  "ok",
			"message": "Server is running",
		}))
	})
}
