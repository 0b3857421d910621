package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Employee is a staff member of the distributor.
type Employee struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"nombre" bson:"nombre"`
	Age       int                `json:"edad" bson:"edad"`
	Phone     string             `json:"phone" bson:"phone"`
	Email     string             `json:"email" bson:"email"`
	Address   string             `json:"direccion" bson:"direccion"`
	City      string             `json:"ciudad" bson:"ciudad"`
	CreatedAt time.Time          `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt time.Time          `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// CreateEmployeeRequest is the payload for hiring an employee.
type CreateEmployeeRequest struct {
	Name    string `json:"nombre" binding:"required"`
	Age     int    `json:"edad" binding:"required,gt=0"`
	Phone   string `json:"phone" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Address string `json:"direccion" binding:"required"`
	City    string `json:"ciudad" binding:"required"`
}

// UpdateEmployeeRequest is a partial employee update.
type UpdateEmployeeRequest struct {
	Name    *string `json:"nombre"`
	Age     *int    `json:"edad" binding:"omitempty,gt=0"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Address *string `json:"direccion"`
	City    *string `json:"ciudad"`
}
