// Package numerator provides the domain contract for document auto-numbering.
// Implementations live in the storage layer (in-memory counter or a
// database-backed sequence table).
package numerator

import (
	"context"
)

// Generator generates sequential document numbers.
//
// Pattern: PREFIX-NNN (e.g. PED-001, SALE-042). The counter is per prefix
// and survives for the lifetime of the backing store.
type Generator interface {
	// GetNextNumber generates the next document number for cfg.Prefix.
	GetNextNumber(ctx context.Context, cfg Config) (string, error)

	// SetNextNumber sets the next counter value (for seeding and migration).
	SetNextNumber(ctx context.Context, cfg Config, value int64) error
}
