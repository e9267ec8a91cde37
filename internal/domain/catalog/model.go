// Package catalog provides the product catalog: the sellable products and
// their price/stock state.
package catalog

import (
	"context"

	"colibri/internal/core/apperror"
	"colibri/internal/core/id"
	"colibri/internal/core/types"
)

// Product represents a sellable item.
//
// Stock and Sold are mutated only by sale completion; Price only by an
// explicit price update.
type Product struct {
	ID id.ID `db:"id" json:"id"`

	// SKU is the unique business key
	SKU string `db:"sku" json:"sku"`

	Name     string `db:"name" json:"name"`
	Category string `db:"category" json:"category"`

	// Price is the current unit price (2-decimal currency, never negative)
	Price types.Money `db:"price" json:"price"`

	// Stock is the remaining units; floored at 0 on sale
	Stock int `db:"stock" json:"stock"`

	// Sold is the cumulative units sold over the product's lifetime
	Sold int `db:"sold" json:"sold"`
}

// NewProduct creates a Product with a generated ID.
func NewProduct(sku, name, category string, price types.Money, stock int) *Product {
	return &Product{
		ID:       id.New(),
		SKU:      sku,
		Name:     name,
		Category: category,
		Price:    types.RoundCurrency(price),
		Stock:    stock,
	}
}

// Validate checks product invariants.
func (p *Product) Validate(ctx context.Context) error {
	if p.SKU == "" {
		return apperror.NewValidation("sku is required").
			WithDetail("field", "sku")
	}

	if p.Name == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}

	if p.Price.IsNegative() {
		return apperror.NewValidation("price cannot be negative").
			WithDetail("field", "price")
	}

	if p.Stock < 0 {
		return apperror.NewValidation("stock cannot be negative").
			WithDetail("field", "stock")
	}

	return nil
}

// IsLowStock reports whether remaining units fall at or below threshold.
func (p *Product) IsLowStock(threshold int) bool {
	return p.Stock <= threshold
}
