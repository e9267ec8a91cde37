package sales

import (
	"context"
	"fmt"
	"sync"
	"time"

	"colibri/internal/core/apperror"
	"colibri/internal/core/id"
	"colibri/internal/core/numerator"
	"colibri/internal/domain/audit"
	"colibri/internal/domain/cart"
	"colibri/internal/domain/catalog"
	"colibri/pkg/logger"

	appctx "colibri/internal/core/context"
)

var numberConfig = numerator.DefaultConfig("SALE")

// CloseInput carries the cashier-entered fields for completing a sale.
type CloseInput struct {
	ReceiptNumber string
	PaymentMethod string // empty defaults to cash
}

// Service provides business logic for the sale ledger.
type Service struct {
	repo      Repository
	catalog   *catalog.Service
	carts     *cart.Manager
	numerator numerator.Generator
	auditor   audit.Recorder

	mu      sync.Mutex
	closing map[string]*sync.Mutex
}

// NewService creates a sales service. auditor may be audit.Nop{}.
func NewService(repo Repository, catalogSvc *catalog.Service, carts *cart.Manager, gen numerator.Generator, auditor audit.Recorder) *Service {
	if auditor == nil {
		auditor = audit.Nop{}
	}
	return &Service{
		repo:      repo,
		catalog:   catalogSvc,
		carts:     carts,
		numerator: gen,
		auditor:   auditor,
		closing:   make(map[string]*sync.Mutex),
	}
}

// closeLock returns the per-cashier mutex that serializes Close.
func (s *Service) closeLock(userID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.closing[userID]
	if !ok {
		l = &sync.Mutex{}
		s.closing[userID] = l
	}
	return l
}

// Close completes the calling cashier's sale in progress: the cart lines are
// frozen into an immutable ledger record, stock and sold counters are
// adjusted, and the cart is cleared.
//
// The ledger append and the stock adjustment are two separate steps. If the
// adjustment fails after the sale is recorded, the sale stays in the ledger
// and the discrepancy is logged; the cart is cleared either way.
//
// Closes for the same cashier are serialized: a second request racing the
// first (a double-submit) waits, then fails on the now-empty cart instead
// of committing the same lines twice.
func (s *Service) Close(ctx context.Context, input CloseInput) (*Sale, error) {
	if input.ReceiptNumber == "" {
		return nil, apperror.NewValidation("receipt number is required").
			WithDetail("field", "receiptNumber")
	}

	userID := appctx.GetUserID(ctx)
	lock := s.closeLock(userID)
	lock.Lock()
	defer lock.Unlock()

	userCart := s.carts.Get(userID)
	lines := userCart.Lines()
	if len(lines) == 0 {
		return nil, apperror.NewValidation("cart is empty")
	}

	exists, err := s.repo.ExistsReceipt(ctx, input.ReceiptNumber)
	if err != nil {
		return nil, fmt.Errorf("check receipt number: %w", err)
	}
	if exists {
		return nil, apperror.NewDuplicate("sale", "receipt number", input.ReceiptNumber)
	}

	payment := input.PaymentMethod
	if payment == "" {
		payment = PaymentCash
	}

	number, err := s.numerator.GetNextNumber(ctx, numberConfig)
	if err != nil {
		return nil, fmt.Errorf("generate sale number: %w", err)
	}

	items := make([]SaleItem, 0, len(lines))
	deltas := make([]catalog.SaleDelta, 0, len(lines))
	for _, l := range lines {
		items = append(items, SaleItem{
			SKU:       l.SKU,
			Name:      l.Name,
			UnitPrice: l.Price,
			Quantity:  l.Quantity,
		})
		deltas = append(deltas, catalog.SaleDelta{SKU: l.SKU, Quantity: l.Quantity})
	}

	sale := &Sale{
		ID:            id.New(),
		Number:        number,
		ReceiptNumber: input.ReceiptNumber,
		PaymentMethod: payment,
		Total:         userCart.Total(),
		Date:          time.Now().UTC(),
		CreatedBy:     userID,
		Items:         items,
	}

	if err := s.repo.Append(ctx, sale); err != nil {
		return nil, fmt.Errorf("append sale: %w", err)
	}

	if err := s.catalog.ApplySaleDeltas(ctx, deltas); err != nil {
		logger.Warn(ctx, "stock adjustment failed after sale was recorded",
			"sale", sale.Number,
			"error", err,
		)
	}

	userCart.Clear()

	s.auditor.Record(ctx, audit.Entry{
		EntityType: "sale",
		EntityKey:  sale.Number,
		Action:     audit.ActionSaleClosed,
		Changes: map[string]any{
			"receipt_number": sale.ReceiptNumber,
			"total":          sale.Total.String(),
			"lines":          len(sale.Items),
		},
	})

	logger.Info(ctx, "sale closed",
		"number", sale.Number,
		"receipt", sale.ReceiptNumber,
		"total", sale.Total.String(),
	)

	return sale, nil
}

// List returns the full ledger in chronological order.
func (s *Service) List(ctx context.Context) ([]*Sale, error) {
	return s.repo.List(ctx)
}

// ListBetween returns ledger entries inside the half-open date range.
func (s *Service) ListBetween(ctx context.Context, rng DateRange) ([]*Sale, error) {
	return s.repo.ListBetween(ctx, rng)
}
