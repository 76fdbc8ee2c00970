package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Valid values for the grade field. Any other value is rejected before it
// reaches the database.
const (
	Grade9  = "Grade 9"
	Grade10 = "Grade 10"
	Grade11 = "Grade 11"
	Grade12 = "Grade 12"
)

var ValidGrades = []string{Grade9, Grade10, Grade11, Grade12}

// Student is the persisted document in the students collection.
// The email field carries a unique index; enrollmentDate is stored as an
// opaque string, no calendar validation is performed on it.
type Student struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name           string             `json:"name" bson:"name"`
	Email          string             `json:"email" bson:"email"`
	Grade          string             `json:"grade" bson:"grade"`
	EnrollmentDate string             `json:"enrollmentDate" bson:"enrollmentDate"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// StudentRequest is the create/update payload. Validation tags are checked
// by app/validation after the fields have been normalized.
type StudentRequest struct {
	Name           string `json:"name" validate:"required,min=2,max=100"`
	Email          string `json:"email" validate:"required,student_email"`
	Grade          string `json:"grade" validate:"required,oneof='Grade 9' 'Grade 10' 'Grade 11' 'Grade 12'"`
	EnrollmentDate string `json:"enrollmentDate" validate:"required"`
}
