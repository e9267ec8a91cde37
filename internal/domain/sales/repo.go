package sales

import (
	"context"
)

// Repository defines storage operations for the sale ledger.
// The ledger is append-only: no update or delete operations exist.
type Repository interface {
	// Append stores a completed sale with its items.
	Append(ctx context.Context, sale *Sale) error

	// List returns all sales in chronological order.
	List(ctx context.Context) ([]*Sale, error)

	// ListBetween returns sales whose date falls in the half-open range.
	ListBetween(ctx context.Context, rng DateRange) ([]*Sale, error)

	// ExistsReceipt reports whether a sale with the receipt number exists.
	ExistsReceipt(ctx context.Context, receiptNumber string) (bool, error)
}
