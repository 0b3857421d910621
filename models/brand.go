package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Brand groups drinks by manufacturer.
type Brand struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	LogoImage string             `json:"logoImage,omitempty" bson:"logoImage,omitempty"`
}

// CreateBrandRequest is the payload for creating a brand.
type CreateBrandRequest struct {
	Name      string `json:"name" binding:"required"`
	LogoImage string `json:"logoImage"`
}

// UpdateBrandRequest is a partial brand update.
type UpdateBrandRequest struct {
	Name      *string `json:"name"`
	LogoImage *string `json:"logoImage"`
}
