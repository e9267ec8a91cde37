package dto

import (
	"github.com/shopspring/decimal"

	"colibri/internal/domain/reports"
)

// SummaryResponse is the dashboard snapshot.
type SummaryResponse struct {
	Date          string          `json:"fecha"`
	SalesTotal    decimal.Decimal `json:"total_ventas"`
	SalesCount    int             `json:"cantidad_ventas"`
	AverageTicket decimal.Decimal `json:"ticket_promedio"`
	PendingOrders int             `json:"pedidos_pendientes"`
	LowStockCount int             `json:"stock_bajo"`
}

// FromSummary creates SummaryResponse from a domain summary.
func FromSummary(s *reports.Summary) SummaryResponse {
	return SummaryResponse{
		Date:          s.Date,
		SalesTotal:    s.SalesTotal,
		SalesCount:    s.SalesCount,
		AverageTicket: s.AverageTicket,
		PendingOrders: s.PendingOrders,
		LowStockCount: s.LowStockCount,
	}
}

// TopProductResponse is one best-seller row.
type TopProductResponse struct {
	Name     string          `json:"nombre"`
	Quantity int             `json:"cantidad"`
	Revenue  decimal.Decimal `json:"ingresos"`
}

// FromTopProducts converts a ranking.
func FromTopProducts(list []reports.TopProduct) []TopProductResponse {
	out := make([]TopProductResponse, len(list))
	for i, p := range list {
		out[i] = TopProductResponse{Name: p.Name, Quantity: p.Quantity, Revenue: p.Revenue}
	}
	return out
}

// DateRangeRequest narrows report queries. Dates are calendar days.
type DateRangeRequest struct {
	From string `form:"desde"`
	To   string `form:"hasta"`
}
