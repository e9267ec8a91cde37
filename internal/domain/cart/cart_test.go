package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"colibri/internal/core/types"
	"colibri/internal/domain/catalog"
)

func product(sku, name string, price string) *catalog.Product {
	return catalog.NewProduct(sku, name, "Pasteles", types.MustMoney(price), 10)
}

func TestCart_AddSameSKUMergesLines(t *testing.T) {
	c := New()
	p := product("PAST-001", "Pastel de Vainilla", "18.50")

	c.Add(p)
	c.Add(p)

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, "37", c.Total().String())
}

func TestCart_TotalSumsSurvivingLines(t *testing.T) {
	c := New()
	c.Add(product("PAST-001", "Pastel de Vainilla", "18.50"))
	c.Add(product("GALL-021", "Galletas de Mantequilla", "8.50"))
	c.Add(product("CHOC-005", "Bombones de Frambuesa", "12.00"))

	require.True(t, c.SetQuantity("GALL-021", 3))
	require.True(t, c.SetQuantity("CHOC-005", 0)) // removed

	// 18.50 + 3*8.50 = 44.00
	assert.Equal(t, "44", c.Total().String())
	assert.Len(t, c.Lines(), 2)
}

func TestCart_SetQuantityZeroRemovesLine(t *testing.T) {
	c := New()
	c.Add(product("PAST-001", "Pastel de Vainilla", "18.50"))

	require.True(t, c.SetQuantity("PAST-001", 0))

	// The line is gone entirely, not kept at quantity zero.
	assert.Empty(t, c.Lines())
	assert.True(t, c.IsEmpty())
	assert.True(t, c.Total().IsZero())
}

func TestCart_SetQuantityNegativeRemovesLine(t *testing.T) {
	c := New()
	c.Add(product("PAST-001", "Pastel de Vainilla", "18.50"))

	require.True(t, c.SetQuantity("PAST-001", -4))
	assert.True(t, c.IsEmpty())
}

func TestCart_SetQuantityUnknownSKU(t *testing.T) {
	c := New()
	c.Add(product("PAST-001", "Pastel de Vainilla", "18.50"))

	assert.False(t, c.SetQuantity("NOPE-999", 2))
	// Removing an absent line is an idempotent no-op.
	assert.True(t, c.SetQuantity("NOPE-999", 0))
	assert.Len(t, c.Lines(), 1)
}

func TestCart_PriceSnapshotAtAddTime(t *testing.T) {
	c := New()
	p := product("PAST-001", "Pastel de Vainilla", "18.50")
	c.Add(p)

	// Catalog price changes after the product went into the cart.
	p.Price = types.MustMoney("25.00")
	c.Add(p)

	// The line keeps the captured price for both units.
	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "18.5", lines[0].Price.String())
	assert.Equal(t, "37", c.Total().String())
}

func TestCart_ClearRemovesEverything(t *testing.T) {
	c := New()
	c.Add(product("PAST-001", "Pastel de Vainilla", "18.50"))
	c.Add(product("GALL-021", "Galletas de Mantequilla", "8.50"))

	c.Clear()

	assert.True(t, c.IsEmpty())
	assert.True(t, c.Total().IsZero())
}

func TestManager_OneCartPerCashier(t *testing.T) {
	m := NewManager()

	a := m.Get("user-a")
	b := m.Get("user-b")
	require.NotSame(t, a, b)

	a.Add(product("PAST-001", "Pastel de Vainilla", "18.50"))

	assert.False(t, m.Get("user-a").IsEmpty())
	assert.True(t, m.Get("user-b").IsEmpty())
	assert.Same(t, a, m.Get("user-a"))
}
