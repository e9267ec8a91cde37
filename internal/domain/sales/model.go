// Package sales provides the append-only sale ledger: completed sales with
// their receipt number, payment method and frozen line items.
package sales

import (
	"context"
	"time"

	"colibri/internal/core/apperror"
	"colibri/internal/core/id"
	"colibri/internal/core/types"
)

// Payment methods. Free-form values are accepted from the register but the
// seed and the default use these.
const (
	PaymentCash     = "cash"
	PaymentCard     = "card"
	PaymentTransfer = "transfer"
)

// SaleItem is one frozen line of a completed sale. It carries the product
// name and unit price as they were at the moment of sale.
type SaleItem struct {
	SKU       string      `db:"sku" json:"sku"`
	Name      string      `db:"name" json:"name"`
	UnitPrice types.Money `db:"unit_price" json:"unitPrice"`
	Quantity  int         `db:"quantity" json:"quantity"`
}

// Subtotal returns unit price x quantity.
func (i SaleItem) Subtotal() types.Money {
	return types.LineTotal(i.UnitPrice, i.Quantity)
}

// Sale is one completed, immutable sale record.
type Sale struct {
	ID id.ID `db:"id" json:"id"`

	// Number is the internal sequential identifier (SALE-NNN)
	Number string `db:"number" json:"number"`

	// ReceiptNumber is the cashier-entered receipt identifier, unique
	// across the ledger
	ReceiptNumber string `db:"receipt_number" json:"receiptNumber"`

	PaymentMethod string      `db:"payment_method" json:"paymentMethod"`
	Total         types.Money `db:"total" json:"total"`
	Date          time.Time   `db:"date" json:"date"`
	CreatedBy     string      `db:"created_by" json:"createdBy,omitempty"`

	Items []SaleItem `db:"-" json:"items"`
}

// Validate checks sale invariants.
func (s *Sale) Validate(ctx context.Context) error {
	if s.ReceiptNumber == "" {
		return apperror.NewValidation("receipt number is required").
			WithDetail("field", "receiptNumber")
	}

	if len(s.Items) == 0 {
		return apperror.NewValidation("sale must have at least one item")
	}

	return nil
}

// DateRange is a half-open interval [From, To) over sale dates.
type DateRange struct {
	From time.Time
	To   time.Time
}

// Contains reports whether t falls inside the range.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.From) && t.Before(r.To)
}
