package config

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"studentapi/app/model"
	"studentapi/app/repository"
	"studentapi/app/service"
	"studentapi/app/validation"
	"studentapi/middleware"
)

// Origins the frontend dev servers run on. Overridden with the
// ALLOWED_ORIGINS variable (comma-separated); there is no
// environment-dependent bypass, the configured list is the list.
const defaultAllowedOrigins = "http://localhost:8080,http://localhost:5173"

// NewFiberApp builds the Fiber application with the global middleware chain
// and the error normalizer attached. Routes are registered by the caller.
func NewFiberApp() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Student Records API",
		BodyLimit:    10 * 1024,
		ErrorHandler: normalizeError,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     GetEnv("ALLOWED_ORIGINS", defaultAllowedOrigins),
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Content-Type",
		AllowCredentials: true,
	}))
	app.Use(middleware.RequestID())
	app.Use(logger.New(NewLoggerConfig()))
	app.Use(recover.New())

	return app
}

// normalizeError is the single place that translates failure causes into
// the uniform response envelope. Handlers never shape error responses
// themselves; they return the cause and it lands here.
func normalizeError(c *fiber.Ctx, err error) error {
	var validationErr *validation.Error
	if errors.As(err, &validationErr) {
		return c.Status(fiber.StatusBadRequest).JSON(model.WebResponse{
			Success: false,
			Error:   "Validation failed",
			Errors:  validationErr.Fields,
		})
	}

	var duplicateErr *repository.DuplicateKeyError
	if errors.As(err, &duplicateErr) {
		return c.Status(fiber.StatusBadRequest).JSON(model.Fail(duplicateErr.Error()))
	}

	switch {
	case errors.Is(err, service.ErrEmailExists),
		errors.Is(err, service.ErrInvalidStudentID):
		return c.Status(fiber.StatusBadRequest).JSON(model.Fail(err.Error()))
	case errors.Is(err, repository.ErrStudentNotFound):
		return c.Status(fiber.StatusNotFound).JSON(model.Fail(err.Error()))
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(model.Fail(fiberErr.Message))
	}

	resp := model.Fail("Internal server error")
	if GetEnv("GO_ENV", "development") != "production" {
		resp.Details = err.Error()
	}
	return c.Status(fiber.StatusInternalServerError).JSON(resp)
}
