package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"studentapi/app/model"
)

// emailRegex is deliberately simple: non-whitespace local part, "@",
// non-whitespace domain containing at least one dot.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Error carries the full ordered list of field violations for one payload.
// It is classified by the error normalizer into a 400 response.
type Error struct {
	Fields []model.FieldError
}

func (e *Error) Error() string {
	return "Validation failed"
}

// StudentValidator checks the shape of an incoming student payload.
// It never consults persistence.
type StudentValidator struct {
	validate *validator.Validate
}

func NewStudentValidator() *StudentValidator {
	v := validator.New()

	// Report violations under the JSON field names, not the Go ones.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("student_email", func(fl validator.FieldLevel) bool {
		return emailRegex.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}

	return &StudentValidator{validate: v}
}

// ValidateStudent normalizes the payload in place (trimmed name, trimmed and
// lowercased email) and returns every rule violation, ordered by field. An
// empty result means the payload is safe to hand to the repository.
func (sv *StudentValidator) ValidateStudent(req *model.StudentRequest) []model.FieldError {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	err := sv.validate.Struct(req)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []model.FieldError{{Field: "payload", Message: err.Error()}}
	}

	fields := make([]model.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, model.FieldError{
			Field:   fe.Field(),
			Message: messageFor(fe),
		})
	}
	return fields
}

func messageFor(fe validator.FieldError) string {
	switch fe.Field() {
	case "name":
		if fe.Tag() == "max" {
			return "Name must be less than 100 characters"
		}
		return "Name must be at least 2 characters"
	case "email":
		return "Valid email is required"
	case "grade":
		return fmt.Sprintf("Grade must be one of: %s", strings.Join(model.ValidGrades, ", "))
	case "enrollmentDate":
		return "Enrollment date is required"
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
