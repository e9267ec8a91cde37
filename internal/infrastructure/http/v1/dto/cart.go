package dto

import (
	"github.com/shopspring/decimal"

	"colibri/internal/domain/cart"
)

// CartLineResponse carries one cart line with its captured price.
type CartLineResponse struct {
	SKU      string          `json:"sku"`
	Name     string          `json:"nombre"`
	Price    decimal.Decimal `json:"precio"`
	Quantity int             `json:"cantidad"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// CartResponse carries the sale in progress.
type CartResponse struct {
	Lines []CartLineResponse `json:"items"`
	Total decimal.Decimal    `json:"total"`
}

// FromCart creates CartResponse from a domain cart.
func FromCart(c *cart.Cart) CartResponse {
	lines := c.Lines()
	out := make([]CartLineResponse, len(lines))
	for i, l := range lines {
		out[i] = CartLineResponse{
			SKU:      l.SKU,
			Name:     l.Name,
			Price:    l.Price,
			Quantity: l.Quantity,
			Subtotal: l.Subtotal(),
		}
	}
	return CartResponse{Lines: out, Total: c.Total()}
}

// AddCartItemRequest is the request body for POST /carrito/items.
type AddCartItemRequest struct {
	SKU string `json:"sku" binding:"required"`
}

// SetCartQuantityRequest is the request body for PUT /carrito/items/:sku.
type SetCartQuantityRequest struct {
	Quantity int `json:"cantidad"`
}
