package orders

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"colibri/internal/core/apperror"
	"colibri/internal/core/id"
	"colibri/internal/core/numerator"
	"colibri/internal/core/types"
)

// fakeRepo is an in-memory Repository for service tests.
type fakeRepo struct {
	orders []*Order
}

func (r *fakeRepo) Insert(_ context.Context, order *Order) error {
	r.orders = append(r.orders, order)
	return nil
}

func (r *fakeRepo) GetByNumber(_ context.Context, number string) (*Order, error) {
	for _, o := range r.orders {
		if o.Number == number {
			return o, nil
		}
	}
	return nil, apperror.NewNotFound("order", number)
}

func (r *fakeRepo) UpdateStatus(ctx context.Context, number string, status Status) error {
	o, err := r.GetByNumber(ctx, number)
	if err != nil {
		return err
	}
	o.Status = status
	return nil
}

func (r *fakeRepo) List(_ context.Context, _ ListFilter) ([]*Order, error) {
	return r.orders, nil
}

func newTestService(repo *fakeRepo) *Service {
	return NewService(repo, numerator.NewMemoryGenerator(), nil)
}

func validInput() CreateInput {
	return CreateInput{
		ClientName:   "María Torres",
		Phone:        "987654321",
		DeliveryDate: time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC),
		Description:  "Torta tres leches 20 personas",
		Deposit:      types.MustMoney("15.00"),
	}
}

func TestService_Create_AssignsSequentialNumbers(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)
	ctx := context.Background()

	first, err := svc.Create(ctx, validInput())
	require.NoError(t, err)
	second, err := svc.Create(ctx, validInput())
	require.NoError(t, err)

	assert.Equal(t, "PED-001", first.Number)
	assert.Equal(t, "PED-002", second.Number)
	assert.Equal(t, StatusPending, first.Status)
	assert.False(t, id.IsNil(first.ID))
}

func TestService_Create_ClampsNegativeDeposit(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)

	input := validInput()
	input.Deposit = types.MustMoney("-10")

	order, err := svc.Create(context.Background(), input)
	require.NoError(t, err)

	assert.True(t, order.Deposit.IsZero())
}

func TestService_Create_RequiresClientName(t *testing.T) {
	svc := newTestService(&fakeRepo{})

	input := validInput()
	input.ClientName = ""

	_, err := svc.Create(context.Background(), input)
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}

func TestService_Create_RequiresDeliveryDate(t *testing.T) {
	svc := newTestService(&fakeRepo{})

	input := validInput()
	input.DeliveryDate = time.Time{}

	_, err := svc.Create(context.Background(), input)
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}

func TestService_SetStatus_TransitionsToDelivered(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, validInput())
	require.NoError(t, err)

	updated, err := svc.SetStatus(ctx, created.Number, StatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, StatusDelivered, updated.Status)

	stored, err := repo.GetByNumber(ctx, created.Number)
	require.NoError(t, err)
	assert.Equal(t, StatusDelivered, stored.Status)
}

func TestService_SetStatus_RejectsUnknownStatus(t *testing.T) {
	svc := newTestService(&fakeRepo{})

	_, err := svc.SetStatus(context.Background(), "PED-001", Status("cancelled"))
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}

func TestService_SetStatus_UnknownOrder(t *testing.T) {
	svc := newTestService(&fakeRepo{})

	_, err := svc.SetStatus(context.Background(), "PED-999", StatusDelivered)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}
