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

	"github.com/CardozoMartin/distri-back/models"
)

// EmployeeRepository is the employee store contract.
type EmployeeRepository interface {
	FindAll(ctx context.Context) ([]models.Employee, error)
	FindByID(ctx context.Context, id string) (*models.Employee, error)
	Create(ctx context.Context, employee *models.Employee) error
	Update(ctx context.Context, id string, updates bson.M) (*models.Employee, error)
	Delete(ctx context.Context, id string) error
}

type MongoEmployeeRepository struct {
	collection *mongo.Collection
}

func NewMongoEmployeeRepository(db *mongo.Database) *MongoEmployeeRepository {
	return &MongoEmployeeRepository{collection: db.Collection("empleados")}
}

func (r *MongoEmployeeRepository) FindAll(ctx context.Context) ([]models.Employee, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find employees: %w", err)
	}
	defer cursor.Close(ctx)

	employees := []models.Employee{}
	if err := cursor.All(ctx, &employees); err != nil {
		return nil, fmt.Errorf("decode employees: %w", err)
	}
	return employees, nil
}

func (r *MongoEmployeeRepository) FindByID(ctx context.Context, id string) (*models.Employee, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var employee models.Employee
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&employee); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find employee %s: %w", id, err)
	}
	return &employee, nil
}

func (r *MongoEmployeeRepository) Create(ctx context.Context, employee *models.Employee) error {
	now := time.Now().UTC()
	employee.CreatedAt = now
	employee.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, employee)
	if err != nil {
		return fmt.Errorf("insert employee: %w", err)
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		employee.ID = oid
	}
	return nil
}

func (r *MongoEmployeeRepository) Update(ctx context.Context, id string, updates bson.M) (*models.Employee, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	updates["updatedAt"] = time.Now().UTC()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var employee models.Employee
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": updates}, opts).Decode(&employee)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update employee %s: %w", id, err)
	}
	return &employee, nil
}

func (r *MongoEmployeeRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete employee %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
