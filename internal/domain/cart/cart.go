// Package cart provides the in-progress sale: the ordered, not-yet-committed
// line items for one cashier.
package cart

import (
	"sync"

	"colibri/internal/core/types"
	"colibri/internal/domain/catalog"
)

// Line is one (product, quantity) entry. Price and Name are snapshotted
// from the catalog when the product is first added, so a later price update
// does not change a sale already being rung up.
type Line struct {
	SKU      string      `json:"sku"`
	Name     string      `json:"name"`
	Price    types.Money `json:"price"`
	Quantity int         `json:"quantity"`
}

// Subtotal returns price x quantity for the line.
func (l Line) Subtotal() types.Money {
	return types.LineTotal(l.Price, l.Quantity)
}

// Cart holds the ordered line items for one sale in progress.
// All operations are guarded by a mutex: the cart is the one collection
// that is mutated from concurrent requests of the same cashier session.
type Cart struct {
	mu    sync.Mutex
	lines []Line
}

// New creates an empty cart.
func New() *Cart {
	return &Cart{}
}

// Add puts one unit of product into the cart. A repeat add of the same SKU
// increments the existing line instead of creating a second one. No stock
// check happens here: availability is reconciled at sale completion.
func (c *Cart) Add(product *catalog.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].SKU == product.SKU {
			c.lines[i].Quantity++
			return
		}
	}

	c.lines = append(c.lines, Line{
		SKU:      product.SKU,
		Name:     product.Name,
		Price:    product.Price,
		Quantity: 1,
	})
}

// SetQuantity sets the quantity of an existing line. A quantity of zero or
// less removes the line entirely; a zero-quantity line is never kept.
// Unknown SKUs with a positive quantity report found=false.
func (c *Cart) SetQuantity(sku string, quantity int) (found bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].SKU != sku {
			continue
		}
		if quantity <= 0 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
		} else {
			c.lines[i].Quantity = quantity
		}
		return true
	}

	// Removing an absent line is a no-op, not an error.
	return quantity <= 0
}

// Clear removes all lines.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}

// Total returns the sum of price x quantity over surviving lines,
// using each line's captured price.
func (c *Cart) Total() types.Money {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := types.Zero()
	for _, l := range c.lines {
		total = total.Add(l.Subtotal())
	}
	return types.RoundCurrency(total)
}

// Lines returns a copy of the current lines in insertion order.
func (c *Cart) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines) == 0
}
