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

// BrandRepository is the brand store contract.
type BrandRepository interface {
	FindAll(ctx context.Context) ([]models.Brand, error)
	FindByID(ctx context.Context, id string) (*models.Brand, error)
	FindByName(ctx context.Context, name string) (*models.Brand, error)
	Create(ctx context.Context, brand *models.Brand) error
	Update(ctx context.Context, id string, updates bson.M) (*models.Brand, error)
	Delete(ctx context.Context, id string) error
}

type MongoBrandRepository struct {
	collection *mongo.Collection
}

func NewMongoBrandRepository(db *mongo.Database) *MongoBrandRepository {
	return &MongoBrandRepository{collection: db.Collection("marcas")}
}

func (r *MongoBrandRepository) FindAll(ctx context.Context) ([]models.Brand, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find brands: %w", err)
	}
	defer cursor.Close(ctx)

	brands := []models.Brand{}
	if err := cursor.All(ctx, &brands); err != nil {
		return nil, fmt.Errorf("decode brands: %w", err)
	}
	return brands, nil
}

func (r *MongoBrandRepository) FindByID(ctx context.Context, id string) (*models.Brand, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *MongoBrandRepository) FindByName(ctx context.Context, name string) (*models.Brand, error) {
	return r.findOne(ctx, bson.M{"name": name})
}

func (r *MongoBrandRepository) Create(ctx context.Context, brand *models.Brand) error {
	result, err := r.collection.InsertOne(ctx, brand)
	if err != nil {
		return fmt.Errorf("insert brand: %w", err)
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		brand.ID = oid
	}
	return nil
}

func (r *MongoBrandRepository) Update(ctx context.Context, id string, updates bson.M) (*models.Brand, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var brand models.Brand
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": updates}, opts).Decode(&brand)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update brand %s: %w", id, err)
	}
	return &brand, nil
}

func (r *MongoBrandRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete brand %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoBrandRepository) findOne(ctx context.Context, filter bson.M) (*models.Brand, error) {
	var brand models.Brand
	if err := r.collection.FindOne(ctx, filter).Decode(&brand); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find brand: %w", err)
	}
	return &brand, nil
}
