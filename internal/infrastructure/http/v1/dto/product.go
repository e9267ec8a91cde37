package dto

import (
	"github.com/shopspring/decimal"

	"colibri/internal/domain/catalog"
)

// ProductResponse carries one catalog product.
type ProductResponse struct {
	SKU      string          `json:"sku"`
	Name     string          `json:"nombre"`
	Category string          `json:"categoria"`
	Price    decimal.Decimal `json:"precio"`
	Stock    int             `json:"stock"`
	Sold     int             `json:"vendidos"`
}

// FromProduct creates ProductResponse from a domain product.
func FromProduct(p *catalog.Product) ProductResponse {
	return ProductResponse{
		SKU:      p.SKU,
		Name:     p.Name,
		Category: p.Category,
		Price:    p.Price,
		Stock:    p.Stock,
		Sold:     p.Sold,
	}
}

// FromProducts converts a product slice.
func FromProducts(products []*catalog.Product) []ProductResponse {
	out := make([]ProductResponse, len(products))
	for i, p := range products {
		out[i] = FromProduct(p)
	}
	return out
}

// UpdatePriceRequest is the request body for PATCH /productos/:sku/precio.
type UpdatePriceRequest struct {
	Price decimal.Decimal `json:"precio" binding:"required"`
}

// CreateProductRequest is the request body for POST /productos.
type CreateProductRequest struct {
	SKU      string          `json:"sku" binding:"required"`
	Name     string          `json:"nombre" binding:"required"`
	Category string          `json:"categoria"`
	Price    decimal.Decimal `json:"precio"`
	Stock    int             `json:"stock"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateProductRequest) ToEntity() *catalog.Product {
	return catalog.NewProduct(r.SKU, r.Name, r.Category, r.Price, r.Stock)
}
