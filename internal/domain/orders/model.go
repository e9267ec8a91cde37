// Package orders provides the custom-order register: customer orders with a
// delivery date, a deposit and a two-state status.
package orders

import (
	"context"
	"time"

	"colibri/internal/core/apperror"
	"colibri/internal/core/id"
	"colibri/internal/core/types"
)

// Status is the order lifecycle state.
type Status string

const (
	StatusPending   Status = "pending"
	StatusDelivered Status = "delivered"
)

// IsValid reports whether s is one of the two known states.
func (s Status) IsValid() bool {
	return s == StatusPending || s == StatusDelivered
}

// Order represents a customer order. Orders are never deleted; only the
// status is mutated after creation.
type Order struct {
	ID id.ID `db:"id" json:"id"`

	// Number is the public sequential identifier (PED-NNN)
	Number string `db:"number" json:"number"`

	ClientName  string    `db:"client_name" json:"clientName"`
	Phone       string    `db:"phone" json:"phone,omitempty"`
	DeliveryDate time.Time `db:"delivery_date" json:"deliveryDate"`
	Description string    `db:"description" json:"description,omitempty"`

	// Deposit is the advance payment, coerced to a non-negative amount
	Deposit types.Money `db:"deposit" json:"deposit"`

	Status Status `db:"status" json:"status"`

	CreatedBy string    `db:"created_by" json:"createdBy,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// Validate checks order invariants.
func (o *Order) Validate(ctx context.Context) error {
	if o.ClientName == "" {
		return apperror.NewValidation("client name is required").
			WithDetail("field", "clientName")
	}

	if o.DeliveryDate.IsZero() {
		return apperror.NewValidation("delivery date is required").
			WithDetail("field", "deliveryDate")
	}

	if !o.Status.IsValid() {
		return apperror.NewValidation("invalid order status").
			WithDetail("field", "status").
			WithDetail("value", string(o.Status))
	}

	return nil
}

// ListFilter narrows List results. Zero values match everything.
type ListFilter struct {
	// Search matches client name or description, case-insensitive substring
	Search string

	// Status filters on the exact state
	Status *Status

	// DeliveryDay matches orders whose delivery date falls on the given
	// calendar date (format 2006-01-02)
	DeliveryDay string
}
