package middleware

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"studentapi/app/model"
	"studentapi/app/service"
	"studentapi/app/validation"
)

// StudentPayloadKey is the locals key under which ValidateStudentBody stores
// the normalized payload for the handler behind it.
const StudentPayloadKey = "studentPayload"

// ValidateObjectID rejects a syntactically malformed :id parameter before
// the request can reach the repository.
func ValidateObjectID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := primitive.ObjectIDFromHex(c.Params("id")); err != nil {
			return service.ErrInvalidStudentID
		}
		return c.Next()
	}
}

// ValidateStudentBody parses and validates a create/update body. On any rule
// violation the request short-circuits into the error normalizer with the
// full error list; otherwise the normalized payload is handed to the next
// handler through locals.
func ValidateStudentBody(v *validation.StudentValidator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req model.StudentRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if fields := v.ValidateStudent(&req); len(fields) > 0 {
			return &validation.Error{Fields: fields}
		}

		c.Locals(StudentPayloadKey, req)
		return c.Next()
	}
}
