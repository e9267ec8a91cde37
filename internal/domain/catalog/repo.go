package catalog

import (
	"context"

	"colibri/internal/core/types"
)

// SaleDelta is one stock adjustment from a completed sale.
type SaleDelta struct {
	SKU      string
	Quantity int
}

// Repository defines storage operations for the product catalog.
type Repository interface {
	// List returns all products in load order.
	List(ctx context.Context) ([]*Product, error)

	// GetBySKU returns one product or a NotFound error.
	GetBySKU(ctx context.Context, sku string) (*Product, error)

	// Insert adds a new product; Duplicate error on an existing SKU.
	Insert(ctx context.Context, product *Product) error

	// UpdatePrice replaces the price in place, preserving all other fields.
	// NotFound error if the SKU is absent.
	UpdatePrice(ctx context.Context, sku string, price types.Money) error

	// ApplyDeltas applies sale adjustments: for each delta the stock is
	// decremented by Quantity (floored at 0) and the sold counter is
	// incremented by Quantity. Deltas are applied independently; a missing
	// SKU is reported as NotFound after the remaining deltas have been
	// applied. There is no rollback.
	ApplyDeltas(ctx context.Context, deltas []SaleDelta) error
}
