package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/CardozoMartin/distri-back/models"
)

// CustomerRepository is the customer store contract.
type CustomerRepository interface {
	FindAll(ctx context.Context) ([]models.Customer, error)
	FindByID(ctx context.Context, id string) (*models.Customer, error)
	FindByPhone(ctx context.Context, phone string) (*models.Customer, error)
	FindByEmail(ctx context.Context, email string) (*models.Customer, error)
	FindByDNI(ctx context.Context, dni string) (*models.Customer, error)
	Create(ctx context.Context, customer *models.Customer) error
	Update(ctx context.Context, id string, updates bson.M) (*models.Customer, error)
	Delete(ctx context.Context, id string) error
}

type MongoCustomerRepository struct {
	collection *mongo.Collection
}

func NewMongoCustomerRepository(db *mongo.Database) *MongoCustomerRepository {
	return &MongoCustomerRepository{collection: db.Collection("clientes")}
}

func (r *MongoCustomerRepository) FindAll(ctx context.Context) ([]models.Customer, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find customers: %w", err)
	}
	defer cursor.Close(ctx)

	customers := []models.Customer{}
	if err := cursor.All(ctx, &customers); err != nil {
		return nil, fmt.Errorf("decode customers: %w", err)
	}
	return customers, nil
}

func (r *MongoCustomerRepository) FindByID(ctx context.Context, id string) (*models.Customer, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *MongoCustomerRepository) FindByPhone(ctx context.Context, phone string) (*models.Customer, error) {
	return r.findOne(ctx, bson.M{"phone": phone})
}

func (r *MongoCustomerRepository) FindByEmail(ctx context.Context, email string) (*models.Customer, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *MongoCustomerRepository) FindByDNI(ctx context.Context, dni string) (*models.Customer, error) {
	return r.findOne(ctx, bson.M{"dni": dni})
}

func (r *MongoCustomerRepository) Create(ctx context.Context, customer *models.Customer) error {
	result, err := r.collection.InsertOne(ctx, customer)
	if err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		customer.ID = oid
	}
	return nil
}

func (r *MongoCustomerRepository) Update(ctx context.Context, id string, updates bson.M) (*models.Customer, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var customer models.Customer
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": updates}, opts).Decode(&customer)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update customer %s: %w", id, err)
	}
	return &customer, nil
}

func (r *MongoCustomerRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete customer %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoCustomerRepository) findOne(ctx context.Context, filter bson.M) (*models.Customer, error) {
	var customer models.Customer
	if err := r.collection.FindOne(ctx, filter).Decode(&customer); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find customer: %w", err)
	}
	return &customer, nil
}
