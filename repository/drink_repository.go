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

// DrinkRepository is the catalog store contract.
type DrinkRepository interface {
	FindAll(ctx context.Context) ([]models.Drink, error)
	FindByID(ctx context.Context, id string) (*models.Drink, error)
	FindByBrand(ctx context.Context, brand string) ([]models.Drink, error)
	Create(ctx context.Context, drink *models.Drink) error
	Update(ctx context.Context, id string, updates bson.M) (*models.Drink, error)
	Delete(ctx context.Context, id string) error
	ToggleActive(ctx context.Context, id string) (*models.Drink, error)
	// AdjustStock applies stock = stock + delta as a single server-side
	// update. A negative delta fails with ErrInsufficientStock when the
	// current stock is lower than the requested decrement.
	AdjustStock(ctx context.Context, id string, delta int) (*models.Drink, error)
}

// MongoDrinkRepository implements DrinkRepository on a mongo collection.
type MongoDrinkRepository struct {
	collection *mongo.Collection
}

// NewMongoDrinkRepository creates a drink repository over db's "bebidas"
// collection.
func NewMongoDrinkRepository(db *mongo.Database) *MongoDrinkRepository {
	return &MongoDrinkRepository{collection: db.Collection("bebidas")}
}

func (r *MongoDrinkRepository) FindAll(ctx context.Context) ([]models.Drink, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find drinks: %w", err)
	}
	defer cursor.Close(ctx)

	drinks := []models.Drink{}
	if err := cursor.All(ctx, &drinks); err != nil {
		return nil, fmt.Errorf("decode drinks: %w", err)
	}
	return drinks, nil
}

func (r *MongoDrinkRepository) FindByID(ctx context.Context, id string) (*models.Drink, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var drink models.Drink
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&drink); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find drink %s: %w", id, err)
	}
	return &drink, nil
}

func (r *MongoDrinkRepository) FindByBrand(ctx context.Context, brand string) ([]models.Drink, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"marca": brand})
	if err != nil {
		return nil, fmt.Errorf("find drinks by brand %s: %w", brand, err)
	}
	defer cursor.Close(ctx)

	drinks := []models.Drink{}
	if err := cursor.All(ctx, &drinks); err != nil {
		return nil, fmt.Errorf("decode drinks: %w", err)
	}
	return drinks, nil
}

func (r *MongoDrinkRepository) Create(ctx context.Context, drink *models.Drink) error {
	now := time.Now().UTC()
	drink.CreatedAt = now
	drink.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, drink)
	if err != nil {
		return fmt.Errorf("insert drink: %w", err)
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		drink.ID = oid
	}
	return nil
}

func (r *MongoDrinkRepository) Update(ctx context.Context, id string, updates bson.M) (*models.Drink, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	updates["updatedAt"] = time.Now().UTC()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var drink models.Drink
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": updates}, opts).Decode(&drink)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update drink %s: %w", id, err)
	}
	return &drink, nil
}

func (r *MongoDrinkRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete drink %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoDrinkRepository) ToggleActive(ctx context.Context, id string) (*models.Drink, error) {
	drink, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return r.Update(ctx, id, bson.M{"isActive": !drink.IsActive})
}

func (r *MongoDrinkRepository) AdjustStock(ctx context.Context, id string, delta int) (*models.Drink, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	// The stock guard lives in the filter so the decrement and the check
	// are one server-side operation. Concurrent orders cannot interleave
	// a read-modify-write here.
	filter := bson.M{"_id": oid}
	if delta < 0 {
		filter["stock"] = bson.M{"$gte": -delta}
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var drink models.Drink
	err = r.collection.FindOneAndUpdate(ctx, filter,
		bson.M{
			"$inc": bson.M{"stock": delta},
			"$set": bson.M{"updatedAt": time.Now().UTC()},
		}, opts).Decode(&drink)
	if err == nil {
		return &drink, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("adjust stock for drink %s: %w", id, err)
	}

	// No match: either the drink is gone or the guard rejected the
	// decrement. Re-fetch to tell the two apart.
	if _, ferr := r.FindByID(ctx, id); ferr != nil {
		return nil, ferr
	}
	return nil, ErrInsufficientStock
}
