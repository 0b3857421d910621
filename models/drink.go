package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Drink categories sold by the distributor.
const (
	CategorySoda          = "gaseosa"
	CategoryBeer          = "cerveza"
	CategoryJuice         = "jugo"
	CategoryFlavoredWater = "agua saborizada"
	CategoryMineralWater  = "agua mineral"
	CategoryWine          = "vino"
)

// ValidCategory reports whether tipo is one of the known drink categories.
func ValidCategory(tipo string) bool {
	switch tipo {
	case CategorySoda, CategoryBeer, CategoryJuice,
		CategoryFlavoredWater, CategoryMineralWater, CategoryWine:
		return true
	}
	return false
}

// Drink is a catalog item. Price and stock are authoritative here and are
// never trusted from client input when building orders.
type Drink struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description" bson:"description"`
	Price       float64            `json:"price" bson:"price"`
	Stock       int                `json:"stock" bson:"stock"`
	Brand       string             `json:"marca" bson:"marca"`
	Image       string             `json:"imagen" bson:"imagen"`
	Flavor      string             `json:"sabor" bson:"sabor"`
	Category    string             `json:"tipo" bson:"tipo"`
	IsActive    bool               `json:"isActive" bson:"isActive"`
	CreatedAt   time.Time          `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt   time.Time          `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// CreateDrinkRequest is the payload for creating a drink.
type CreateDrinkRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Stock       int     `json:"stock" binding:"gte=0"`
	Brand       string  `json:"marca" binding:"required"`
	Image       string  `json:"imagen" binding:"required"`
	Flavor      string  `json:"sabor" binding:"required"`
	Category    string  `json:"tipo" binding:"required"`
}

// UpdateDrinkRequest is a partial update; nil fields are left untouched.
type UpdateDrinkRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" binding:"omitempty,gt=0"`
	Stock       *int     `json:"stock" binding:"omitempty,gte=0"`
	Brand       *string  `json:"marca"`
	Image       *string  `json:"imagen"`
	Flavor      *string  `json:"sabor"`
	Category    *string  `json:"tipo"`
}
