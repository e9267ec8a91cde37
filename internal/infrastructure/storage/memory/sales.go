package memory

import (
	"context"
	"sync"

	"colibri/internal/core/apperror"
	"colibri/internal/domain/sales"
)

// SaleRepository is the in-memory sales.Repository. Append-only: the slice
// keeps sales in arrival order, which is chronological.
type SaleRepository struct {
	mu       sync.RWMutex
	sales    []*sales.Sale
	receipts map[string]struct{}
}

// NewSaleRepository creates an empty in-memory sale ledger.
func NewSaleRepository() *SaleRepository {
	return &SaleRepository{
		receipts: make(map[string]struct{}),
	}
}

// Append implements sales.Repository. The receipt-number check and the
// insert happen under one lock, so two concurrent appends with the same
// receipt cannot both land.
func (r *SaleRepository) Append(_ context.Context, sale *sales.Sale) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.receipts[sale.ReceiptNumber]; ok {
		return apperror.NewDuplicate("sale", "receipt number", sale.ReceiptNumber)
	}

	copied := *sale
	copied.Items = make([]sales.SaleItem, len(sale.Items))
	copy(copied.Items, sale.Items)

	r.sales = append(r.sales, &copied)
	r.receipts[sale.ReceiptNumber] = struct{}{}
	return nil
}

// List implements sales.Repository.
func (r *SaleRepository) List(_ context.Context) ([]*sales.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*sales.Sale, 0, len(r.sales))
	for _, s := range r.sales {
		copied := *s
		out = append(out, &copied)
	}
	return out, nil
}

// ListBetween implements sales.Repository.
func (r *SaleRepository) ListBetween(_ context.Context, rng sales.DateRange) ([]*sales.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*sales.Sale
	for _, s := range r.sales {
		if rng.Contains(s.Date) {
			copied := *s
			out = append(out, &copied)
		}
	}
	return out, nil
}

// ExistsReceipt implements sales.Repository.
func (r *SaleRepository) ExistsReceipt(_ context.Context, receiptNumber string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.receipts[receiptNumber]
	return ok, nil
}

var _ sales.Repository = (*SaleRepository)(nil)
