package reports

import (
	"context"
	"sort"
	"time"

	"colibri/internal/core/types"
	"colibri/internal/domain/catalog"
	"colibri/internal/domain/orders"
	"colibri/internal/domain/sales"

	"github.com/shopspring/decimal"
)

// DefaultTopLimit is the ranking size when the caller does not ask for one.
const DefaultTopLimit = 10

// Service computes reports. It only reads; all repositories are used
// through their query operations.
type Service struct {
	catalog   catalog.Repository
	orders    orders.Repository
	sales     sales.Repository
	threshold int
}

// NewService creates a reporting service. threshold is the low-stock
// boundary, inclusive.
func NewService(catalogRepo catalog.Repository, orderRepo orders.Repository, saleRepo sales.Repository, threshold int) *Service {
	return &Service{
		catalog:   catalogRepo,
		orders:    orderRepo,
		sales:     saleRepo,
		threshold: threshold,
	}
}

// DayRange returns the half-open range covering day's calendar date in UTC.
func DayRange(day time.Time) sales.DateRange {
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	return sales.DateRange{From: from, To: from.AddDate(0, 0, 1)}
}

// Summary builds the dashboard snapshot for day's calendar date.
func (s *Service) Summary(ctx context.Context, day time.Time) (*Summary, error) {
	rng := DayRange(day)

	daySales, err := s.sales.ListBetween(ctx, rng)
	if err != nil {
		return nil, err
	}

	total := types.Zero()
	for _, sale := range daySales {
		total = total.Add(sale.Total)
	}
	total = types.RoundCurrency(total)

	avg := types.Zero()
	if len(daySales) > 0 {
		avg = types.RoundCurrency(total.Div(decimal.NewFromInt(int64(len(daySales)))))
	}

	pending := orders.StatusPending
	pendingOrders, err := s.orders.List(ctx, orders.ListFilter{Status: &pending})
	if err != nil {
		return nil, err
	}

	lowStock, err := s.LowStockProducts(ctx)
	if err != nil {
		return nil, err
	}

	return &Summary{
		Date:          rng.From.Format("2006-01-02"),
		SalesTotal:    total,
		SalesCount:    len(daySales),
		AverageTicket: avg,
		PendingOrders: len(pendingOrders),
		LowStockCount: len(lowStock),
	}, nil
}

// LowStockProducts returns products whose stock is at or below the
// configured threshold, in catalog order.
func (s *Service) LowStockProducts(ctx context.Context) ([]*catalog.Product, error) {
	products, err := s.catalog.List(ctx)
	if err != nil {
		return nil, err
	}

	var out []*catalog.Product
	for _, p := range products {
		if p.IsLowStock(s.threshold) {
			out = append(out, p)
		}
	}
	return out, nil
}

// TopProducts ranks best sellers. With a nil range the ranking uses each
// product's lifetime sold counter; with a range it aggregates the ledger
// items inside the range by product name, which also covers products that
// have since left the catalog. Ties keep their original encounter order.
func (s *Service) TopProducts(ctx context.Context, limit int, rng *sales.DateRange) ([]TopProduct, error) {
	if limit <= 0 {
		limit = DefaultTopLimit
	}

	var ranking []TopProduct
	if rng == nil {
		products, err := s.catalog.List(ctx)
		if err != nil {
			return nil, err
		}
		for _, p := range products {
			ranking = append(ranking, TopProduct{Name: p.Name, Quantity: p.Sold, Revenue: types.Zero()})
		}
	} else {
		rangeSales, err := s.sales.ListBetween(ctx, *rng)
		if err != nil {
			return nil, err
		}

		index := make(map[string]int)
		for _, sale := range rangeSales {
			for _, item := range sale.Items {
				i, ok := index[item.Name]
				if !ok {
					i = len(ranking)
					index[item.Name] = i
					ranking = append(ranking, TopProduct{Name: item.Name, Revenue: types.Zero()})
				}
				ranking[i].Quantity += item.Quantity
				ranking[i].Revenue = ranking[i].Revenue.Add(item.Subtotal())
			}
		}
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Quantity > ranking[j].Quantity
	})

	if len(ranking) > limit {
		ranking = ranking[:limit]
	}
	return ranking, nil
}

// ListSales returns ledger entries, optionally restricted to a date range.
func (s *Service) ListSales(ctx context.Context, rng *sales.DateRange) ([]*sales.Sale, error) {
	if rng == nil {
		return s.sales.List(ctx)
	}
	return s.sales.ListBetween(ctx, *rng)
}

// ExportSalesCSV renders the ledger (optionally range-restricted) as CSV.
// Headers use the same wire names as the JSON API.
func (s *Service) ExportSalesCSV(ctx context.Context, rng *sales.DateRange) (string, error) {
	list, err := s.ListSales(ctx, rng)
	if err != nil {
		return "", err
	}

	rows := [][]any{{"numero", "numero_boleta", "fecha", "medio_pago", "total"}}
	for _, sale := range list {
		rows = append(rows, []any{
			sale.Number,
			sale.ReceiptNumber,
			sale.Date.Format("2006-01-02 15:04"),
			sale.PaymentMethod,
			sale.Total,
		})
	}
	return EncodeCSV(rows), nil
}

// ExportOrdersCSV renders the order register as CSV.
func (s *Service) ExportOrdersCSV(ctx context.Context, filter orders.ListFilter) (string, error) {
	list, err := s.orders.List(ctx, filter)
	if err != nil {
		return "", err
	}

	rows := [][]any{{"numero", "cliente_nombre", "cliente_telefono", "fecha_entrega", "descripcion", "anticipo", "estado"}}
	for _, o := range list {
		var phone any
		if o.Phone != "" {
			phone = o.Phone
		}
		rows = append(rows, []any{
			o.Number,
			o.ClientName,
			phone,
			o.DeliveryDate.Format("2006-01-02"),
			o.Description,
			o.Deposit,
			string(o.Status),
		})
	}
	return EncodeCSV(rows), nil
}
