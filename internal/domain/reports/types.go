// Package reports provides read-only analytics over the catalog, the sale
// ledger and the order register, plus CSV export of the raw records.
package reports

import (
	"colibri/internal/core/types"
)

// Summary is the dashboard snapshot for a single calendar day.
type Summary struct {
	// Date is the calendar day the summary covers (2006-01-02)
	Date string `json:"date"`

	// SalesTotal is the sum of sale totals for the day
	SalesTotal types.Money `json:"salesTotal"`

	// SalesCount is the number of sales for the day
	SalesCount int `json:"salesCount"`

	// AverageTicket is SalesTotal / SalesCount, zero when no sales
	AverageTicket types.Money `json:"averageTicket"`

	// PendingOrders is the count of orders still waiting for delivery
	PendingOrders int `json:"pendingOrders"`

	// LowStockCount is the number of products at or below the threshold
	LowStockCount int `json:"lowStockCount"`
}

// TopProduct is one row of a best-seller ranking.
type TopProduct struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`

	// Revenue is only populated for ledger-based rankings; the lifetime
	// ranking has no per-sale price information
	Revenue types.Money `json:"revenue"`
}
