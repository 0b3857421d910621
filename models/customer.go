package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Customer is a registered client of the distributor.
type Customer struct {
	ID      primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name    string             `json:"name" bson:"name"`
	Surname string             `json:"surname" bson:"surname"`
	Email   string             `json:"email" bson:"email"`
	Address string             `json:"address" bson:"address"`
	Phone   string             `json:"phone" bson:"phone"`
	DNI     string             `json:"dni" bson:"dni"`
}

// CreateCustomerRequest is the payload for registering a customer.
type CreateCustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Surname string `json:"surname" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Address string `json:"address" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	DNI     string `json:"dni" binding:"required"`
}

// UpdateCustomerRequest is a partial customer update.
type UpdateCustomerRequest struct {
	Name    *string `json:"name"`
	Surname *string `json:"surname"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
	DNI     *string `json:"dni"`
}
