package route

import (
	"github.com/gofiber/fiber/v2"

	"studentapi/app/service"
)

// SetupRoutes registers every route on the app. The catch-all must come
// last so unknown paths fall through to it.
func SetupRoutes(app *fiber.App, studentSvc service.StudentService) {
	HealthRoutes(app)

	api := app.Group("/api")
	StudentRoutes(api.Group("/students"), studentSvc)

	app.Use(func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Route not found")
	})
}
