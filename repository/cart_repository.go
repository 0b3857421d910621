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

// CartRepository is the order store contract.
type CartRepository interface {
	Create(ctx context.Context, cart *models.Cart) error
	FindByID(ctx context.Context, id string) (*models.Cart, error)
	FindAll(ctx context.Context) ([]models.Cart, error)
	FindByCustomerID(ctx context.Context, customerID string) ([]models.Cart, error)
	Update(ctx context.Context, id string, updates bson.M) (*models.Cart, error)
	Delete(ctx context.Context, id string) error
	// FindPaidBetween returns carts whose date falls in [from, to) and
	// whose fulfillment status is the paid marker. Used by sales reports.
	FindPaidBetween(ctx context.Context, from, to time.Time) ([]models.Cart, error)
}

// MongoCartRepository implements CartRepository on a mongo collection.
type MongoCartRepository struct {
	collection *mongo.Collection
}

// NewMongoCartRepository creates a cart repository over db's "carts"
// collection.
func NewMongoCartRepository(db *mongo.Database) *MongoCartRepository {
	return &MongoCartRepository{collection: db.Collection("carts")}
}

func (r *MongoCartRepository) Create(ctx context.Context, cart *models.Cart) error {
	result, err := r.collection.InsertOne(ctx, cart)
	if err != nil {
		return fmt.Errorf("insert cart: %w", err)
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		cart.ID = oid
	}
	return nil
}

func (r *MongoCartRepository) FindByID(ctx context.Context, id string) (*models.Cart, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var cart models.Cart
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&cart); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find cart %s: %w", id, err)
	}
	return &cart, nil
}

func (r *MongoCartRepository) FindAll(ctx context.Context) ([]models.Cart, error) {
	return r.findWhere(ctx, bson.M{})
}

func (r *MongoCartRepository) FindByCustomerID(ctx context.Context, customerID string) ([]models.Cart, error) {
	return r.findWhere(ctx, bson.M{"user.id": customerID})
}

func (r *MongoCartRepository) Update(ctx context.Context, id string, updates bson.M) (*models.Cart, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var cart models.Cart
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": updates}, opts).Decode(&cart)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update cart %s: %w", id, err)
	}
	return &cart, nil
}

func (r *MongoCartRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete cart %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoCartRepository) FindPaidBetween(ctx context.Context, from, to time.Time) ([]models.Cart, error) {
	return r.findWhere(ctx, bson.M{
		"fecha":  bson.M{"$gte": from, "$lt": to},
		"status": models.StatusPaid,
	})
}

func (r *MongoCartRepository) findWhere(ctx context.Context, filter bson.M) ([]models.Cart, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find carts: %w", err)
	}
	defer cursor.Close(ctx)

	carts := []models.Cart{}
	if err := cursor.All(ctx, &carts); err != nil {
		return nil, fmt.Errorf("decode carts: %w", err)
	}
	return carts, nil
}
