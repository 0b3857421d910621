package repository

import "errors"

var (
	// ErrNotFound is returned when a document does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrInsufficientStock is returned when a stock decrement would leave
	// a drink with negative stock. The decrement is rejected server-side.
	ErrInsufficientStock = errors.New("insufficient stock")
)
