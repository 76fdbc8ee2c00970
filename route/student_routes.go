package route

import (
	"github.com/gofiber/fiber/v2"

	"studentapi/app/model"
	"studentapi/app/service"
	"studentapi/app/validation"
	"studentapi/middleware"
)

// StudentRoutes wires the five student operations. Id-addressed routes get
// the identifier format check, create/update get body validation; the
// handlers behind them are straight-line orchestrations.
func StudentRoutes(r fiber.Router, svc service.StudentService) {
	validateID := middleware.ValidateObjectID()
	validateBody := middleware.ValidateStudentBody(validation.NewStudentValidator())

	r.Get("/", listStudents(svc))
	r.Post("/", validateBody, createStudent(svc))
	r.Get("/:id", validateID, getStudent(svc))
	r.Put("/:id", validateID, validateBody, updateStudent(svc))
	r.Delete("/:id", validateID, deleteStudent(svc))
}

func listStudents(svc service.StudentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		students, err := svc.ListStudents(c.Context())
		if err != nil {
			return err
		}
		return c.JSON(model.Success(students))
	}
}

func getStudent(svc service.StudentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		student, err := svc.GetStudent(c.Context(), c.Params("id"))
		if err != nil {
			return err
		}
		return c.JSON(model.Success(student))
	}
}

func createStudent(svc service.StudentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := c.Locals(middleware.StudentPayloadKey).(model.StudentRequest)

		student, err := svc.CreateStudent(c.Context(), req)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(model.Success(student))
	}
}

func updateStudent(svc service.StudentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := c.Locals(middleware.StudentPayloadKey).(model.StudentRequest)

		student, err := svc.UpdateStudent(c.Context(), c.Params("id"), req)
		if err != nil {
			return err
		}
		return c.JSON(model.Success(student))
	}
}

func deleteStudent(svc service.StudentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := svc.DeleteStudent(c.Context(), c.Params("id")); err != nil {
			return err
		}
		return c.JSON(model.Success(fiber.Map{"message": "Student deleted successfully"}))
	}
}
