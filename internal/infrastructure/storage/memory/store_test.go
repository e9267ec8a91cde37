package memory

import (
	"context"
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

func TestStore_Seed(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	require.NoError(t, store.Seed(ctx))

	products, err := store.Catalog.List(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 10)
	assert.Equal(t, "PAST-001", products[0].SKU)
	assert.Equal(t, "18.5", products[0].Price.String())

	allOrders, err := store.Orders.List(ctx, orders.ListFilter{})
	require.NoError(t, err)
	require.Len(t, allOrders, 2)
	// Newest delivery first.
	assert.Equal(t, "PED-001", allOrders[0].Number)

	user, err := store.Users.GetByUsername(ctx, "cajero")
	require.NoError(t, err)
	assert.True(t, user.CheckPassword("cajero123"))
	assert.False(t, user.CheckPassword("wrong"))
}

func TestCatalogRepository_ApplyDeltas(t *testing.T) {
	repo := NewCatalogRepository()
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, catalog.NewProduct("A", "Pan", "Panes", types.MustMoney("1"), 3)))
	require.NoError(t, repo.Insert(ctx, catalog.NewProduct("B", "Torta", "Tortas", types.MustMoney("20"), 5)))

	err := repo.ApplyDeltas(ctx, []catalog.SaleDelta{
		{SKU: "A", Quantity: 5}, // over stock
		{SKU: "X", Quantity: 1}, // unknown
		{SKU: "B", Quantity: 2},
	})

	// Unknown SKU reported, but the surviving deltas still landed.
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))

	a, err := repo.GetBySKU(ctx, "A")
	require.NoError(t, err)
	assert.Equal(t, 0, a.Stock)
	assert.Equal(t, 5, a.Sold)

	b, err := repo.GetBySKU(ctx, "B")
	require.NoError(t, err)
	assert.Equal(t, 3, b.Stock)
	assert.Equal(t, 2, b.Sold)
}

func TestCatalogRepository_ListReturnsCopies(t *testing.T) {
	repo := NewCatalogRepository()
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, catalog.NewProduct("A", "Pan", "Panes", types.MustMoney("1"), 3)))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	list[0].Stock = 999

	stored, err := repo.GetBySKU(ctx, "A")
	require.NoError(t, err)
	assert.Equal(t, 3, stored.Stock)
}

func TestCatalogRepository_DuplicateSKU(t *testing.T) {
	repo := NewCatalogRepository()
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, catalog.NewProduct("A", "Pan", "Panes", types.MustMoney("1"), 3)))
	err := repo.Insert(ctx, catalog.NewProduct("A", "Otro", "Panes", types.MustMoney("2"), 1))

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeDuplicate, appErr.Code)
}

func TestOrderRepository_ListFilters(t *testing.T) {
	repo := NewOrderRepository()
	ctx := context.Background()

	mk := func(number, client, desc string, day time.Time, status orders.Status) {
		require.NoError(t, repo.Insert(ctx, &orders.Order{
			Number: number, ClientName: client, Description: desc,
			DeliveryDate: day, Status: status,
		}))
	}
	day1 := time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 6, 12, 10, 0, 0, 0, time.UTC)
	mk("PED-001", "Lucía Rojas", "Torta fondant", day1, orders.StatusPending)
	mk("PED-002", "Javier Soto", "Cupcakes", day2, orders.StatusDelivered)

	pending := orders.StatusPending
	got, err := repo.List(ctx, orders.ListFilter{Status: &pending})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "PED-001", got[0].Number)

	got, err = repo.List(ctx, orders.ListFilter{Search: "javier"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "PED-002", got[0].Number)

	got, err = repo.List(ctx, orders.ListFilter{DeliveryDay: "2025-06-12"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "PED-002", got[0].Number)

	got, err = repo.List(ctx, orders.ListFilter{})
	require.NoError(t, err)
	require.Len(t, got, 2)
	// Newest delivery first.
	assert.Equal(t, "PED-002", got[0].Number)
}

func TestSaleRepository_ReceiptIndex(t *testing.T) {
	repo := NewSaleRepository()
	ctx := context.Background()

	exists, err := repo.ExistsReceipt(ctx, "B-001")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.Append(ctx, &sales.Sale{
		Number: "SALE-001", ReceiptNumber: "B-001",
		Total: types.MustMoney("20"), Date: time.Now().UTC(),
	}))

	exists, err = repo.ExistsReceipt(ctx, "B-001")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestSaleRepository_AppendRejectsDuplicateReceipt(t *testing.T) {
	repo := NewSaleRepository()
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, &sales.Sale{
		Number: "SALE-001", ReceiptNumber: "B-001",
		Total: types.MustMoney("20"), Date: time.Now().UTC(),
	}))

	err := repo.Append(ctx, &sales.Sale{
		Number: "SALE-002", ReceiptNumber: "B-001",
		Total: types.MustMoney("5"), Date: time.Now().UTC(),
	})
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeDuplicate, appErr.Code)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
