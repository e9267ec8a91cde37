package orders

import (
	"context"
	"fmt"
	"time"

	"colibri/internal/core/apperror"
	"colibri/internal/core/id"
	"colibri/internal/core/numerator"
	"colibri/internal/core/types"
	"colibri/internal/domain/audit"
	"colibri/pkg/logger"

	appctx "colibri/internal/core/context"
)

// numberPrefix is the order numbering series (PED-001, PED-002, ...).
var numberConfig = numerator.DefaultConfig("PED")

// CreateInput carries the caller-supplied order fields.
type CreateInput struct {
	ClientName   string
	Phone        string
	DeliveryDate time.Time
	Description  string
	Deposit      types.Money
	Status       Status // empty defaults to pending
}

// Service provides business logic for the order register.
type Service struct {
	repo      Repository
	numerator numerator.Generator
	auditor   audit.Recorder
}

// NewService creates an order service. auditor may be audit.Nop{}.
func NewService(repo Repository, gen numerator.Generator, auditor audit.Recorder) *Service {
	if auditor == nil {
		auditor = audit.Nop{}
	}
	return &Service{repo: repo, numerator: gen, auditor: auditor}
}

// Create registers a new order and returns the stored record including the
// assigned number. The deposit is coerced to a non-negative currency value;
// status defaults to pending unless explicitly delivered.
func (s *Service) Create(ctx context.Context, input CreateInput) (*Order, error) {
	status := input.Status
	if status == "" {
		status = StatusPending
	}

	order := &Order{
		ID:           id.New(),
		ClientName:   input.ClientName,
		Phone:        input.Phone,
		DeliveryDate: input.DeliveryDate,
		Description:  input.Description,
		Deposit:      types.RoundCurrency(types.ClampNonNegative(input.Deposit)),
		Status:       status,
		CreatedBy:    appctx.GetUserID(ctx),
		CreatedAt:    time.Now().UTC(),
	}

	if err := order.Validate(ctx); err != nil {
		return nil, err
	}

	number, err := s.numerator.GetNextNumber(ctx, numberConfig)
	if err != nil {
		return nil, fmt.Errorf("generate order number: %w", err)
	}
	order.Number = number

	if err := s.repo.Insert(ctx, order); err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}

	s.auditor.Record(ctx, audit.Entry{
		EntityType: "order",
		EntityKey:  order.Number,
		Action:     audit.ActionOrderCreated,
		Changes: map[string]any{
			"client":        order.ClientName,
			"delivery_date": order.DeliveryDate,
			"deposit":       order.Deposit.String(),
		},
	})

	logger.Info(ctx, "order registered",
		"number", order.Number,
		"client", order.ClientName,
	)

	return order, nil
}

// SetStatus transitions an order to the given state.
func (s *Service) SetStatus(ctx context.Context, number string, status Status) (*Order, error) {
	if !status.IsValid() {
		return nil, apperror.NewValidation("invalid order status").
			WithDetail("field", "status").
			WithDetail("value", string(status))
	}

	previous, err := s.repo.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateStatus(ctx, number, status); err != nil {
		return nil, err
	}

	s.auditor.Record(ctx, audit.Entry{
		EntityType: "order",
		EntityKey:  number,
		Action:     audit.ActionStatusChange,
		Changes: map[string]any{
			"old_status": string(previous.Status),
			"new_status": string(status),
		},
	})

	updated := *previous
	updated.Status = status
	return &updated, nil
}

// Get returns one order by number.
func (s *Service) Get(ctx context.Context, number string) (*Order, error) {
	return s.repo.GetByNumber(ctx, number)
}

// List returns orders matching the optional filter. Pure read.
func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Order, error) {
	return s.repo.List(ctx, filter)
}
