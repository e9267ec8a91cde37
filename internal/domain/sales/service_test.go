package sales

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"colibri/internal/core/apperror"
	"colibri/internal/core/numerator"
	"colibri/internal/core/types"
	"colibri/internal/domain/cart"
	"colibri/internal/domain/catalog"

	appctx "colibri/internal/core/context"
)

// fakeLedger is an in-memory Repository for service tests.
type fakeLedger struct {
	sales []*Sale
}

func (r *fakeLedger) Append(_ context.Context, sale *Sale) error {
	r.sales = append(r.sales, sale)
	return nil
}

func (r *fakeLedger) List(_ context.Context) ([]*Sale, error) {
	return r.sales, nil
}

func (r *fakeLedger) ListBetween(_ context.Context, rng DateRange) ([]*Sale, error) {
	var out []*Sale
	for _, s := range r.sales {
		if rng.Contains(s.Date) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeLedger) ExistsReceipt(_ context.Context, receipt string) (bool, error) {
	for _, s := range r.sales {
		if s.ReceiptNumber == receipt {
			return true, nil
		}
	}
	return false, nil
}

// fakeCatalog is an in-memory catalog.Repository sufficient for delta tests.
type fakeCatalog struct {
	products map[string]*catalog.Product
}

func (r *fakeCatalog) List(_ context.Context) ([]*catalog.Product, error) {
	var out []*catalog.Product
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeCatalog) GetBySKU(_ context.Context, sku string) (*catalog.Product, error) {
	if p, ok := r.products[sku]; ok {
		return p, nil
	}
	return nil, apperror.NewNotFound("product", sku)
}

func (r *fakeCatalog) Insert(_ context.Context, p *catalog.Product) error {
	r.products[p.SKU] = p
	return nil
}

func (r *fakeCatalog) UpdatePrice(_ context.Context, sku string, price types.Money) error {
	p, ok := r.products[sku]
	if !ok {
		return apperror.NewNotFound("product", sku)
	}
	p.Price = price
	return nil
}

func (r *fakeCatalog) ApplyDeltas(_ context.Context, deltas []catalog.SaleDelta) error {
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

type fixture struct {
	svc    *Service
	ledger *fakeLedger
	cat    *fakeCatalog
	carts  *cart.Manager
	ctx    context.Context
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	cat := &fakeCatalog{products: map[string]*catalog.Product{}}
	ledger := &fakeLedger{}
	carts := cart.NewManager()

	svc := NewService(ledger, catalog.NewService(cat, nil), carts, numerator.NewMemoryGenerator(), nil)

	ctx := appctx.WithUser(context.Background(), &appctx.UserContext{
		UserID:   "u-1",
		Username: "cajero",
		Role:     appctx.RoleCashier,
	})

	return &fixture{svc: svc, ledger: ledger, cat: cat, carts: carts, ctx: ctx}
}

func (f *fixture) addProduct(sku, name, price string, stock int) *catalog.Product {
	p := catalog.NewProduct(sku, name, "pasteles", types.MustMoney(price), stock)
	f.cat.products[sku] = p
	return p
}

func TestService_Close_FreezesCartIntoLedger(t *testing.T) {
	f := newFixture(t)
	p := f.addProduct("X1", "Torta de chocolate", "10", 3)

	userCart := f.carts.Get("u-1")
	userCart.Add(p)
	userCart.Add(p)

	require.Equal(t, "20", userCart.Total().String())

	sale, err := f.svc.Close(f.ctx, CloseInput{ReceiptNumber: "B-001"})
	require.NoError(t, err)

	assert.Equal(t, "SALE-001", sale.Number)
	assert.Equal(t, "B-001", sale.ReceiptNumber)
	assert.Equal(t, PaymentCash, sale.PaymentMethod)
	assert.Equal(t, "20", sale.Total.String())
	require.Len(t, sale.Items, 1)
	assert.Equal(t, 2, sale.Items[0].Quantity)

	// Stock adjusted, sold counted, cart emptied.
	assert.Equal(t, 1, p.Stock)
	assert.Equal(t, 2, p.Sold)
	assert.True(t, userCart.IsEmpty())

	require.Len(t, f.ledger.sales, 1)
}

func TestService_Close_RequiresReceiptNumber(t *testing.T) {
	f := newFixture(t)
	p := f.addProduct("X1", "Torta de chocolate", "10", 3)
	f.carts.Get("u-1").Add(p)

	_, err := f.svc.Close(f.ctx, CloseInput{ReceiptNumber: ""})
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
	assert.Empty(t, f.ledger.sales)
}

func TestService_Close_EmptyCart(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Close(f.ctx, CloseInput{ReceiptNumber: "B-001"})
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}

func TestService_Close_DuplicateReceipt(t *testing.T) {
	f := newFixture(t)
	p := f.addProduct("X1", "Torta de chocolate", "10", 10)

	f.carts.Get("u-1").Add(p)
	_, err := f.svc.Close(f.ctx, CloseInput{ReceiptNumber: "B-001"})
	require.NoError(t, err)

	f.carts.Get("u-1").Add(p)
	_, err = f.svc.Close(f.ctx, CloseInput{ReceiptNumber: "B-001"})
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeDuplicate, appErr.Code)

	// The second cart stays intact so the cashier can fix the receipt.
	assert.False(t, f.carts.Get("u-1").IsEmpty())
}

func TestService_Close_StockClampsAtZero(t *testing.T) {
	f := newFixture(t)
	p := f.addProduct("X1", "Empanada de pollo", "2.5", 1)

	userCart := f.carts.Get("u-1")
	userCart.Add(p)
	userCart.SetQuantity("X1", 5)

	sale, err := f.svc.Close(f.ctx, CloseInput{ReceiptNumber: "B-002", PaymentMethod: PaymentCard})
	require.NoError(t, err)

	assert.Equal(t, "12.50", sale.Total.StringFixed(2))
	assert.Equal(t, PaymentCard, sale.PaymentMethod)
	assert.Equal(t, 0, p.Stock)
	assert.Equal(t, 5, p.Sold)
}

func TestService_Close_MissingProductKeepsSale(t *testing.T) {
	f := newFixture(t)
	p := f.addProduct("X1", "Pan francés", "0.5", 100)

	userCart := f.carts.Get("u-1")
	userCart.Add(p)

	// Product disappears from the catalog between add and close.
	delete(f.cat.products, "X1")

	sale, err := f.svc.Close(f.ctx, CloseInput{ReceiptNumber: "B-003"})
	require.NoError(t, err)
	require.NotNil(t, sale)

	// The ledger record survives even though the adjustment failed.
	require.Len(t, f.ledger.sales, 1)
	assert.True(t, userCart.IsEmpty())
}

func TestService_ListBetween(t *testing.T) {
	f := newFixture(t)

	day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	f.ledger.sales = []*Sale{
		{Number: "SALE-001", Date: day.Add(10 * time.Hour)},
		{Number: "SALE-002", Date: day.AddDate(0, 0, 1)},
	}

	got, err := f.svc.ListBetween(f.ctx, DateRange{From: day, To: day.AddDate(0, 0, 1)})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "SALE-001", got[0].Number)
}

func TestService_Close_ConcurrentDoubleSubmitCommitsOnce(t *testing.T) {
	f := newFixture(t)
	p := f.addProduct("X1", "Torta de chocolate", "10", 10)

	userCart := f.carts.Get("u-1")
	userCart.Add(p)
	userCart.Add(p)

	errs := make([]error, 2)
	var wg sync.WaitGroup
	wg.Add(2)
	for i, receipt := range []string{"B-001", "B-002"} {
		go func(i int, receipt string) {
			defer wg.Done()
			_, errs[i] = f.svc.Close(f.ctx, CloseInput{ReceiptNumber: receipt})
		}(i, receipt)
	}
	wg.Wait()

	// Exactly one of the racing closes wins; the other finds the cart
	// already drained and fails validation.
	var failures int
	for _, err := range errs {
		if err != nil {
			failures++
			assert.True(t, apperror.IsValidation(err))
		}
	}
	assert.Equal(t, 1, failures)

	require.Len(t, f.ledger.sales, 1)
	assert.Equal(t, 8, p.Stock)
	assert.Equal(t, 2, p.Sold)
	assert.True(t, userCart.IsEmpty())
}
