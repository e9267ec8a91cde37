package reports

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"colibri/internal/core/apperror"
	"colibri/internal/core/types"
	"colibri/internal/domain/catalog"
	"colibri/internal/domain/orders"
	"colibri/internal/domain/sales"
)

type stubCatalog struct {
	products []*catalog.Product
}

func (r *stubCatalog) List(context.Context) ([]*catalog.Product, error) { return r.products, nil }
func (r *stubCatalog) GetBySKU(_ context.Context, sku string) (*catalog.Product, error) {
	for _, p := range r.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, apperror.NewNotFound("product", sku)
}
func (r *stubCatalog) Insert(_ context.Context, p *catalog.Product) error {
	r.products = append(r.products, p)
	return nil
}
func (r *stubCatalog) UpdatePrice(context.Context, string, types.Money) error { return nil }
func (r *stubCatalog) ApplyDeltas(context.Context, []catalog.SaleDelta) error { return nil }

type stubOrders struct {
	orders []*orders.Order
}

func (r *stubOrders) Insert(_ context.Context, o *orders.Order) error {
	r.orders = append(r.orders, o)
	return nil
}
func (r *stubOrders) GetByNumber(_ context.Context, number string) (*orders.Order, error) {
	return nil, apperror.NewNotFound("order", number)
}
func (r *stubOrders) UpdateStatus(context.Context, string, orders.Status) error { return nil }
func (r *stubOrders) List(_ context.Context, filter orders.ListFilter) ([]*orders.Order, error) {
	var out []*orders.Order
	for _, o := range r.orders {
		if filter.Status != nil && o.Status != *filter.Status {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

type stubSales struct {
	sales []*sales.Sale
}

func (r *stubSales) Append(_ context.Context, s *sales.Sale) error {
	r.sales = append(r.sales, s)
	return nil
}
func (r *stubSales) List(context.Context) ([]*sales.Sale, error) { return r.sales, nil }
func (r *stubSales) ListBetween(_ context.Context, rng sales.DateRange) ([]*sales.Sale, error) {
	var out []*sales.Sale
	for _, s := range r.sales {
		if rng.Contains(s.Date) {
			out = append(out, s)
		}
	}
	return out, nil
}
func (r *stubSales) ExistsReceipt(context.Context, string) (bool, error) { return false, nil }

func product(sku, name string, stock, sold int) *catalog.Product {
	p := catalog.NewProduct(sku, name, "panes", types.MustMoney("1"), stock)
	p.Sold = sold
	return p
}

func saleOn(day time.Time, total string, items ...sales.SaleItem) *sales.Sale {
	return &sales.Sale{
		Date:  day,
		Total: types.MustMoney(total),
		Items: items,
	}
}

func TestService_LowStock_ThresholdInclusive(t *testing.T) {
	cat := &stubCatalog{products: []*catalog.Product{
		product("A", "Pan francés", 4, 0),
		product("B", "Torta helada", 5, 0),
		product("C", "Alfajor", 6, 0),
	}}
	svc := NewService(cat, &stubOrders{}, &stubSales{}, 5)

	low, err := svc.LowStockProducts(context.Background())
	require.NoError(t, err)

	require.Len(t, low, 2)
	assert.Equal(t, "A", low[0].SKU)
	assert.Equal(t, "B", low[1].SKU)
}

func TestService_Summary_CalendarDayBoundary(t *testing.T) {
	day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	ledger := &stubSales{sales: []*sales.Sale{
		saleOn(day.Add(9*time.Hour), "10"),
		saleOn(day.Add(23*time.Hour+59*time.Minute), "15"),
		saleOn(day.AddDate(0, 0, 1), "99"),            // next day
		saleOn(day.Add(-1*time.Minute), "99"),         // previous day
	}}
	reg := &stubOrders{orders: []*orders.Order{
		{Number: "PED-001", Status: orders.StatusPending},
		{Number: "PED-002", Status: orders.StatusDelivered},
	}}
	svc := NewService(&stubCatalog{}, reg, ledger, 5)

	summary, err := svc.Summary(context.Background(), day.Add(12*time.Hour))
	require.NoError(t, err)

	assert.Equal(t, "2025-06-10", summary.Date)
	assert.Equal(t, "25", summary.SalesTotal.String())
	assert.Equal(t, 2, summary.SalesCount)
	assert.Equal(t, "12.5", summary.AverageTicket.String())
	assert.Equal(t, 1, summary.PendingOrders)
}

func TestService_Summary_NoSales(t *testing.T) {
	svc := NewService(&stubCatalog{}, &stubOrders{}, &stubSales{}, 5)

	summary, err := svc.Summary(context.Background(), time.Now().UTC())
	require.NoError(t, err)

	assert.True(t, summary.SalesTotal.IsZero())
	assert.True(t, summary.AverageTicket.IsZero())
	assert.Equal(t, 0, summary.SalesCount)
}

func TestService_TopProducts_LifetimeCounters(t *testing.T) {
	cat := &stubCatalog{products: []*catalog.Product{
		product("A", "Pan francés", 10, 3),
		product("B", "Torta helada", 10, 7),
		product("C", "Alfajor", 10, 0),
		product("D", "Empanada", 10, 3),
	}}
	svc := NewService(cat, &stubOrders{}, &stubSales{}, 5)

	top, err := svc.TopProducts(context.Background(), 0, nil)
	require.NoError(t, err)

	require.Len(t, top, 4)
	assert.Equal(t, "Torta helada", top[0].Name)
	// Tie between A and D keeps catalog order.
	assert.Equal(t, "Pan francés", top[1].Name)
	assert.Equal(t, "Empanada", top[2].Name)
	// A product that never sold still ranks, at the bottom.
	assert.Equal(t, "Alfajor", top[3].Name)
	assert.Equal(t, 0, top[3].Quantity)
}

func TestService_TopProducts_LedgerRange(t *testing.T) {
	day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	ledger := &stubSales{sales: []*sales.Sale{
		saleOn(day, "10",
			sales.SaleItem{Name: "Pan francés", UnitPrice: types.MustMoney("0.5"), Quantity: 10},
			sales.SaleItem{Name: "Torta helada", UnitPrice: types.MustMoney("18.5"), Quantity: 1},
		),
		saleOn(day.Add(2*time.Hour), "5",
			sales.SaleItem{Name: "Pan francés", UnitPrice: types.MustMoney("0.5"), Quantity: 4},
		),
		saleOn(day.AddDate(0, 0, 5), "99",
			sales.SaleItem{Name: "Alfajor", UnitPrice: types.MustMoney("2"), Quantity: 50},
		),
	}}
	svc := NewService(&stubCatalog{}, &stubOrders{}, ledger, 5)

	rng := DayRange(day)
	top, err := svc.TopProducts(context.Background(), 10, &rng)
	require.NoError(t, err)

	require.Len(t, top, 2)
	assert.Equal(t, "Pan francés", top[0].Name)
	assert.Equal(t, 14, top[0].Quantity)
	assert.Equal(t, "7", top[0].Revenue.String())
	assert.Equal(t, "Torta helada", top[1].Name)
	assert.Equal(t, "18.5", top[1].Revenue.String())
}

func TestService_TopProducts_LimitApplies(t *testing.T) {
	cat := &stubCatalog{products: []*catalog.Product{
		product("A", "Uno", 1, 5),
		product("B", "Dos", 1, 4),
		product("C", "Tres", 1, 3),
	}}
	svc := NewService(cat, &stubOrders{}, &stubSales{}, 5)

	top, err := svc.TopProducts(context.Background(), 2, nil)
	require.NoError(t, err)
	require.Len(t, top, 2)
}

func TestService_ExportSalesCSV(t *testing.T) {
	day := time.Date(2025, 6, 10, 14, 30, 0, 0, time.UTC)
	ledger := &stubSales{sales: []*sales.Sale{
		{Number: "SALE-001", ReceiptNumber: "B-001", PaymentMethod: "cash",
			Total: types.MustMoney("20"), Date: day},
	}}
	svc := NewService(&stubCatalog{}, &stubOrders{}, ledger, 5)

	out, err := svc.ExportSalesCSV(context.Background(), nil)
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "numero,numero_boleta,fecha,medio_pago,total", lines[0])
	assert.Equal(t, "SALE-001,B-001,2025-06-10 14:30,cash,20", lines[1])
}

func TestService_ExportOrdersCSV_EmptyPhoneRendersEmpty(t *testing.T) {
	reg := &stubOrders{orders: []*orders.Order{
		{Number: "PED-001", ClientName: "María", Phone: "",
			DeliveryDate: time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC),
			Deposit:      types.MustMoney("15"), Status: orders.StatusPending},
	}}
	svc := NewService(&stubCatalog{}, reg, &stubSales{}, 5)

	out, err := svc.ExportOrdersCSV(context.Background(), orders.ListFilter{})
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "PED-001,María,,2025-06-14,,15,pending", lines[1])
}
