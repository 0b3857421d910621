package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartLine is a validated order line. Price and Name are snapshots taken
// from the catalog at validation time, never from the client.
type CartLine struct {
	DrinkID  string  `json:"id" bson:"id"`
	Quantity int     `json:"quantity" bson:"quantity"`
	Price    float64 `json:"price" bson:"price"`
	Name     string  `json:"name" bson:"name"`
}

// Subtotal is price * quantity for the line.
func (l CartLine) Subtotal() float64 {
	return l.Price * float64(l.Quantity)
}

// CartCustomer is an embedded customer snapshot, not a live join.
type CartCustomer struct {
	ID    string `json:"id" bson:"id"`
	Name  string `json:"name" bson:"name"`
	Email string `json:"email" bson:"email"`
	Phone string `json:"phone" bson:"phone"`
}

// Cart is a customer order. The storefront historically stores the
// customer as a list; Recipient returns the effective one.
type Cart struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Lines          []CartLine         `json:"productos" bson:"productos"`
	Total          float64            `json:"total" bson:"total"`
	Customer       []CartCustomer     `json:"user" bson:"user"`
	Status         Status             `json:"status" bson:"status"`
	Date           time.Time          `json:"fecha" bson:"fecha"`
	PaymentMethod  string             `json:"paymentMethod" bson:"paymentMethod"`
	Delivered      bool               `json:"delivered" bson:"delivered"`
	ApprovalStatus ApprovalStatus     `json:"statusOrder" bson:"statusOrder"`
}

// Recipient returns the first customer entry, or nil when none is stored.
func (c *Cart) Recipient() *CartCustomer {
	if len(c.Customer) == 0 {
		return nil
	}
	return &c.Customer[0]
}

// CartLineRequest is a requested line: drink reference plus quantity.
// Price is deliberately absent; the server computes it.
type CartLineRequest struct {
	DrinkID  string `json:"id" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
}

// CreateCartRequest is the payload for creating an order.
type CreateCartRequest struct {
	Lines    []CartLineRequest `json:"productos" binding:"required,min=1,dive"`
	Customer []CartCustomer    `json:"user" binding:"required,min=1,dive"`
}

// UpdateCartRequest replaces the cart's lines and/or changes its
// fulfillment status. Both fields are optional.
type UpdateCartRequest struct {
	Lines  []CartLineRequest `json:"productos" binding:"omitempty,min=1,dive"`
	Status *Status           `json:"status"`
}

// PaymentRequest records the payment method used for a cart.
type PaymentRequest struct {
	PaymentMethod string `json:"paymentMethod" binding:"required"`
}

// ApprovalRequest carries the admin accept/cancel decision.
type ApprovalRequest struct {
	Decision ApprovalStatus `json:"statusOrder" binding:"required,oneof=accepted cancelled"`
}

// SalesSummary is the result of a sales aggregation window.
type SalesSummary struct {
	TotalSales  float64 `json:"totalSales"`
	TotalOrders int     `json:"totalOrders"`
}

// SalesComparison pairs two aggregation windows.
type SalesComparison struct {
	Current  SalesSummary `json:"current"`
	Previous SalesSummary `json:"previous"`
}
