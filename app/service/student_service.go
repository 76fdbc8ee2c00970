package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"studentapi/app/model"
	"studentapi/app/repository"
)

// ErrInvalidStudentID signals a syntactically malformed identifier. It is
// raised before the repository is ever consulted.
var ErrInvalidStudentID = errors.New("Invalid student ID format")

// ErrEmailExists is the advisory duplicate signal. Two concurrent creates
// can both get past this check; the unique index then rejects the second
// write, which surfaces as repository.DuplicateKeyError instead.
var ErrEmailExists = errors.New("Email already exists")

// StudentService orchestrates identifier parsing, the email uniqueness
// check, and the repository operation for each API call. Payloads must
// already be normalized by the validator.
type StudentService interface {
	ListStudents(ctx context.Context) ([]model.Student, error)
	GetStudent(ctx context.Context, id string) (*model.Student, error)
	CreateStudent(ctx context.Context, req model.StudentRequest) (*model.Student, error)
	UpdateStudent(ctx context.Context, id string, req model.StudentRequest) (*model.Student, error)
	DeleteStudent(ctx context.Context, id string) (*model.Student, error)
}

type studentService struct {
	repo repository.StudentRepository
}

func NewStudentService(repo repository.StudentRepository) StudentService {
	return &studentService{repo: repo}
}

func (s *studentService) ListStudents(ctx context.Context) ([]model.Student, error) {
	return s.repo.GetAll(ctx)
}

func (s *studentService) GetStudent(ctx context.Context, id string) (*model.Student, error) {
	oid, err := parseStudentID(id)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, oid)
}

func (s *studentService) CreateStudent(ctx context.Context, req model.StudentRequest) (*model.Student, error) {
	inUse, err := s.repo.EmailInUse(ctx, req.Email, nil)
	if err != nil {
		return nil, err
	}
	if inUse {
		return nil, ErrEmailExists
	}
	return s.repo.Create(ctx, req)
}

func (s *studentService) UpdateStudent(ctx context.Context, id string, req model.StudentRequest) (*model.Student, error) {
	oid, err := parseStudentID(id)
	if err != nil {
		return nil, err
	}

	// Updating a record to its own current email is not a conflict.
	inUse, err := s.repo.EmailInUse(ctx, req.Email, &oid)
	if err != nil {
		return nil, err
	}
	if inUse {
		return nil, ErrEmailExists
	}
	return s.repo.UpdateByID(ctx, oid, req)
}

func (s *studentService) DeleteStudent(ctx context.Context, id string) (*model.Student, error) {
	oid, err := parseStudentID(id)
	if err != nil {
		return nil, err
	}
	return s.repo.DeleteByID(ctx, oid)
}

func parseStudentID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidStudentID
	}
	return oid, nil
}
