package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"colibri/internal/core/apperror"
	"colibri/internal/core/types"
)

// fakeRepo is an in-memory Repository for service tests.
type fakeRepo struct {
	products []*Product
}

func (r *fakeRepo) List(_ context.Context) ([]*Product, error) {
	return r.products, nil
}

func (r *fakeRepo) GetBySKU(_ context.Context, sku string) (*Product, error) {
	for _, p := range r.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, apperror.NewNotFound("product", sku)
}

func (r *fakeRepo) Insert(_ context.Context, product *Product) error {
	for _, p := range r.products {
		if p.SKU == product.SKU {
			return apperror.NewDuplicate("product", "sku", product.SKU)
		}
	}
	r.products = append(r.products, product)
	return nil
}

func (r *fakeRepo) UpdatePrice(ctx context.Context, sku string, price types.Money) error {
	p, err := r.GetBySKU(ctx, sku)
	if err != nil {
		return err
	}
	p.Price = price
	return nil
}

func (r *fakeRepo) ApplyDeltas(ctx context.Context, deltas []SaleDelta) error {
	var missing []string
	for _, d := range deltas {
		p, err := r.GetBySKU(ctx, d.SKU)
		if err != nil {
			missing = append(missing, d.SKU)
			continue
		}
		p.Stock -= d.Quantity
		if p.Stock < 0 {
			p.Stock = 0
		}
		p.Sold += d.Quantity
	}
	if len(missing) > 0 {
		return apperror.NewNotFound("product", missing[0])
	}
	return nil
}

func TestServiceCreateRoundsPrice(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, nil)

	p := NewProduct("PAST-100", "Tarta de Manzana", "Pasteles", types.MustMoney("12.345"), 8)
	require.NoError(t, svc.Create(context.Background(), p))

	stored, err := svc.GetBySKU(context.Background(), "PAST-100")
	require.NoError(t, err)
	assert.Equal(t, "12.35", stored.Price.StringFixed(2))
}

func TestServiceCreateValidates(t *testing.T) {
	svc := NewService(&fakeRepo{}, nil)

	err := svc.Create(context.Background(), &Product{SKU: "", Name: "sin sku"})
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))

	err = svc.Create(context.Background(), &Product{
		SKU:   "NEG-001",
		Name:  "Precio negativo",
		Price: types.MustMoney("-1"),
	})
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}

func TestServiceCreateRejectsDuplicateSKU(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, nil)

	first := NewProduct("GALL-100", "Alfajores", "Galletas", types.MustMoney("6"), 10)
	require.NoError(t, svc.Create(context.Background(), first))

	second := NewProduct("GALL-100", "Alfajores Grandes", "Galletas", types.MustMoney("9"), 5)
	err := svc.Create(context.Background(), second)
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeDuplicate, appErr.Code)
}

func TestServiceSetPrice(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, nil)

	p := NewProduct("TORT-100", "Torta Selva Negra", "Tortas", types.MustMoney("30"), 3)
	require.NoError(t, svc.Create(context.Background(), p))

	require.NoError(t, svc.SetPrice(context.Background(), "TORT-100", types.MustMoney("32.509")))

	stored, err := svc.GetBySKU(context.Background(), "TORT-100")
	require.NoError(t, err)
	assert.Equal(t, "32.51", stored.Price.StringFixed(2))
}

func TestServiceSetPriceRejectsNegative(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, nil)

	p := NewProduct("TORT-100", "Torta Selva Negra", "Tortas", types.MustMoney("30"), 3)
	require.NoError(t, svc.Create(context.Background(), p))

	err := svc.SetPrice(context.Background(), "TORT-100", types.MustMoney("-5"))
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))

	stored, getErr := svc.GetBySKU(context.Background(), "TORT-100")
	require.NoError(t, getErr)
	assert.Equal(t, "30.00", stored.Price.StringFixed(2))
}

func TestServiceSetPriceUnknownSKU(t *testing.T) {
	svc := NewService(&fakeRepo{}, nil)

	err := svc.SetPrice(context.Background(), "NOPE-001", types.MustMoney("10"))
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestServiceApplySaleDeltas(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, nil)

	p := NewProduct("CHOC-100", "Trufas", "Chocolates", types.MustMoney("11"), 5)
	p.Sold = 40
	require.NoError(t, svc.Create(context.Background(), p))

	err := svc.ApplySaleDeltas(context.Background(), []SaleDelta{
		{SKU: "CHOC-100", Quantity: 2},
	})
	require.NoError(t, err)

	stored, err := svc.GetBySKU(context.Background(), "CHOC-100")
	require.NoError(t, err)
	assert.Equal(t, 3, stored.Stock)
	assert.Equal(t, 42, stored.Sold)
}

func TestServiceApplySaleDeltasRejectsNonPositiveQuantity(t *testing.T) {
	svc := NewService(&fakeRepo{}, nil)

	err := svc.ApplySaleDeltas(context.Background(), []SaleDelta{
		{SKU: "CHOC-100", Quantity: 0},
	})
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}

func TestServiceApplySaleDeltasEmptyIsNoop(t *testing.T) {
	svc := NewService(&fakeRepo{}, nil)
	assert.NoError(t, svc.ApplySaleDeltas(context.Background(), nil))
}

func TestIsLowStock(t *testing.T) {
	p := NewProduct("POST-100", "Brazo de Reina", "Postres", types.MustMoney("14"), 5)

	assert.True(t, p.IsLowStock(5))
	p.Stock = 6
	assert.False(t, p.IsLowStock(5))
	p.Stock = 0
	assert.True(t, p.IsLowStock(5))
}
