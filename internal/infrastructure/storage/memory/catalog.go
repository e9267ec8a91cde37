// Package memory provides the in-process storage driver. All repositories
// keep their records in mutex-guarded maps; state lives for the process
// lifetime and is seeded from fixtures at startup.
package memory

import (
	"context"
	"sync"

	"colibri/internal/core/apperror"
	"colibri/internal/core/types"
	"colibri/internal/domain/catalog"
)

// CatalogRepository is the in-memory catalog.Repository.
type CatalogRepository struct {
	mu       sync.RWMutex
	products map[string]*catalog.Product
	order    []string // SKUs in insertion order
}

// NewCatalogRepository creates an empty in-memory catalog.
func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{
		products: make(map[string]*catalog.Product),
	}
}

// List implements catalog.Repository.
func (r *CatalogRepository) List(_ context.Context) ([]*catalog.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*catalog.Product, 0, len(r.order))
	for _, sku := range r.order {
		p := *r.products[sku]
		out = append(out, &p)
	}
	return out, nil
}

// GetBySKU implements catalog.Repository.
func (r *CatalogRepository) GetBySKU(_ context.Context, sku string) (*catalog.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[sku]
	if !ok {
		return nil, apperror.NewNotFound("product", sku)
	}
	copied := *p
	return &copied, nil
}

// Insert implements catalog.Repository.
func (r *CatalogRepository) Insert(_ context.Context, product *catalog.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[product.SKU]; ok {
		return apperror.NewDuplicate("product", "sku", product.SKU)
	}

	copied := *product
	r.products[product.SKU] = &copied
	r.order = append(r.order, product.SKU)
	return nil
}

// UpdatePrice implements catalog.Repository.
func (r *CatalogRepository) UpdatePrice(_ context.Context, sku string, price types.Money) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[sku]
	if !ok {
		return apperror.NewNotFound("product", sku)
	}
	p.Price = price
	return nil
}

// ApplyDeltas implements catalog.Repository. Each delta is applied on its
// own; a missing SKU is remembered and reported after the rest went through.
func (r *CatalogRepository) ApplyDeltas(_ context.Context, deltas []catalog.SaleDelta) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var missing error
	for _, d := range deltas {
		p, ok := r.products[d.SKU]
		if !ok {
			missing = apperror.NewNotFound("product", d.SKU)
			continue
		}
		p.Stock -= d.Quantity
		if p.Stock < 0 {
			p.Stock = 0
		}
		p.Sold += d.Quantity
	}
	return missing
}

var _ catalog.Repository = (*CatalogRepository)(nil)
