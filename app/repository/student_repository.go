package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"studentapi/app/model"
)

// ErrStudentNotFound signals that no document matched the given id.
var ErrStudentNotFound = errors.New("Student not found")

// DuplicateKeyError surfaces a violation of a unique index. The index is the
// authoritative uniqueness constraint; the service-level check is only a
// fast-fail in front of it.
type DuplicateKeyError struct {
	Field string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("%s already exists", e.Field)
}

// StudentRepository is the persistence boundary for student records.
type StudentRepository interface {
	GetAll(ctx context.Context) ([]model.Student, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Student, error)
	// EmailInUse reports whether any record other than excludeID holds the
	// given (already lowercased) email. Pass a nil excludeID for creates.
	EmailInUse(ctx context.Context, email string, excludeID *primitive.ObjectID) (bool, error)
	Create(ctx context.Context, req model.StudentRequest) (*model.Student, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, req model.StudentRequest) (*model.Student, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (*model.Student, error)
}

type mongoStudentRepo struct {
	collection *mongo.Collection
}

func NewMongoStudentRepository(coll *mongo.Collection) StudentRepository {
	return &mongoStudentRepo{collection: coll}
}

// EnsureStudentIndexes creates the unique index on email. Called once at
// startup, before the server accepts requests.
func EnsureStudentIndexes(ctx context.Context, coll *mongo.Collection) error {
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("mongo create email index failed: %w", err)
	}
	return nil
}

func (r *mongoStudentRepo) GetAll(ctx context.Context) ([]model.Student, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo find failed: %w", err)
	}
	defer cursor.Close(ctx)

	students := []model.Student{}
	if err := cursor.All(ctx, &students); err != nil {
		return nil, fmt.Errorf("mongo cursor decode failed: %w", err)
	}
	return students, nil
}

func (r *mongoStudentRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Student, error) {
	var student model.Student
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&student)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrStudentNotFound
		}
		return nil, fmt.Errorf("mongo find failed: %w", err)
	}
	return &student, nil
}

func (r *mongoStudentRepo) EmailInUse(ctx context.Context, email string, excludeID *primitive.ObjectID) (bool, error) {
	filter := bson.M{"email": email}
	if excludeID != nil {
		filter["_id"] = bson.M{"$ne": *excludeID}
	}

	err := r.collection.FindOne(ctx, filter).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, fmt.Errorf("mongo email lookup failed: %w", err)
	}
	return true, nil
}

func (r *mongoStudentRepo) Create(ctx context.Context, req model.StudentRequest) (*model.Student, error) {
	now := time.Now().UTC()
	student := model.Student{
		ID:             primitive.NewObjectID(),
		Name:           req.Name,
		Email:          req.Email,
		Grade:          req.Grade,
		EnrollmentDate: req.EnrollmentDate,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if _, err := r.collection.InsertOne(ctx, student); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, &DuplicateKeyError{Field: "email"}
		}
		return nil, fmt.Errorf("mongo insert failed: %w", err)
	}
	return &student, nil
}

func (r *mongoStudentRepo) UpdateByID(ctx context.Context, id primitive.ObjectID, req model.StudentRequest) (*model.Student, error) {
	update := bson.M{"$set": bson.M{
		"name":           req.Name,
		"email":          req.Email,
		"grade":          req.Grade,
		"enrollmentDate": req.EnrollmentDate,
		"updatedAt":      time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var student model.Student
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&student)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrStudentNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, &DuplicateKeyError{Field: "email"}
		}
		return nil, fmt.Errorf("mongo update failed: %w", err)
	}
	return &student, nil
}

func (r *mongoStudentRepo) DeleteByID(ctx context.Context, id primitive.ObjectID) (*model.Student, error) {
	var student model.Student
	err := r.collection.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&student)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrStudentNotFound
		}
		return nil, fmt.Errorf("mongo delete failed: %w", err)
	}
	return &student, nil
}
