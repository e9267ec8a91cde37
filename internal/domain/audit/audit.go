// Package audit provides the domain contract for the mutation audit trail.
// The PostgreSQL implementation lives in the storage layer; the in-memory
// driver runs without one.
package audit

import (
	"context"
	"encoding/json"
	"time"

	"colibri/internal/core/id"
)

// Action represents the type of audited operation.
type Action string

const (
	ActionPriceChange  Action = "price_change"
	ActionStatusChange Action = "status_change"
	ActionSaleClosed   Action = "sale_closed"
	ActionOrderCreated Action = "order_created"
)

// Entry describes one audited mutation.
type Entry struct {
	// EntityType names the mutated record kind ("product", "order", "sale")
	EntityType string

	// EntityKey is the business key of the record (SKU, order number, ...)
	EntityKey string

	// Action is the operation performed
	Action Action

	// Changes holds before/after values and operation payload
	Changes map[string]any
}

// Recorder records audit entries. Implementations must not fail the
// business operation: recording errors are logged, never propagated.
type Recorder interface {
	Record(ctx context.Context, entry Entry)
}

// Row is one stored audit entry as read back from the trail.
type Row struct {
	ID         id.ID
	EntityType string
	EntityKey  string
	Action     Action
	UserID     string
	Changes    json.RawMessage
	CreatedAt  time.Time
}

// Reader reads the recorded trail back, newest first.
type Reader interface {
	ListByEntity(ctx context.Context, entityType, entityKey string, limit int) ([]Row, error)
}

// Nop is a Recorder and Reader backed by nothing: entries are discarded
// and the trail always reads empty.
type Nop struct{}

// Record implements Recorder.
func (Nop) Record(context.Context, Entry) {}

// ListByEntity implements Reader.
func (Nop) ListByEntity(context.Context, string, string, int) ([]Row, error) {
	return nil, nil
}

var (
	_ Recorder = Nop{}
	_ Reader   = Nop{}
)
