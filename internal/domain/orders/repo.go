package orders

import (
	"context"
)

// Repository defines storage operations for the order register.
type Repository interface {
	// Insert stores a new order.
	Insert(ctx context.Context, order *Order) error

	// GetByNumber returns one order or a NotFound error.
	GetByNumber(ctx context.Context, number string) (*Order, error)

	// UpdateStatus updates the status in place; NotFound if number absent.
	UpdateStatus(ctx context.Context, number string, status Status) error

	// List returns orders matching the filter, newest delivery first.
	List(ctx context.Context, filter ListFilter) ([]*Order, error)
}
