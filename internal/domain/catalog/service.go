package catalog

import (
	"context"
	"fmt"

	"colibri/internal/core/apperror"
	"colibri/internal/core/types"
	"colibri/internal/domain/audit"
	"colibri/pkg/logger"
)

// Service provides business logic for the product catalog.
type Service struct {
	repo    Repository
	auditor audit.Recorder
}

// NewService creates a catalog service. auditor may be audit.Nop{}.
func NewService(repo Repository, auditor audit.Recorder) *Service {
	if auditor == nil {
		auditor = audit.Nop{}
	}
	return &Service{repo: repo, auditor: auditor}
}

// List returns the current product sequence in load order.
func (s *Service) List(ctx context.Context) ([]*Product, error) {
	return s.repo.List(ctx)
}

// GetBySKU returns a single product.
func (s *Service) GetBySKU(ctx context.Context, sku string) (*Product, error) {
	return s.repo.GetBySKU(ctx, sku)
}

// Create registers a new product in the catalog.
func (s *Service) Create(ctx context.Context, product *Product) error {
	if err := product.Validate(ctx); err != nil {
		return err
	}
	product.Price = types.RoundCurrency(product.Price)

	if err := s.repo.Insert(ctx, product); err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// SetPrice replaces a product's price in place. The new price is validated
// and rounded to currency precision; the change is visible to the next List.
func (s *Service) SetPrice(ctx context.Context, sku string, price types.Money) error {
	if price.IsNegative() {
		return apperror.NewValidation("price cannot be negative").
			WithDetail("field", "price").
			WithDetail("value", price.String())
	}
	price = types.RoundCurrency(price)

	existing, err := s.repo.GetBySKU(ctx, sku)
	if err != nil {
		return err
	}

	if err := s.repo.UpdatePrice(ctx, sku, price); err != nil {
		return err
	}

	s.auditor.Record(ctx, audit.Entry{
		EntityType: "product",
		EntityKey:  sku,
		Action:     audit.ActionPriceChange,
		Changes: map[string]any{
			"old_price": existing.Price.String(),
			"new_price": price.String(),
		},
	})

	logger.Info(ctx, "product price updated",
		"sku", sku,
		"price", price.String(),
	)

	return nil
}

// ApplySaleDeltas adjusts stock and sold counters for a completed sale.
// Quantities must be positive; the per-delta clamping and the lenient
// missing-SKU handling live in the repository.
func (s *Service) ApplySaleDeltas(ctx context.Context, deltas []SaleDelta) error {
	if len(deltas) == 0 {
		return nil
	}

	for i, d := range deltas {
		if d.Quantity <= 0 {
			return apperror.NewValidation(fmt.Sprintf("delta %d: quantity must be positive", i)).
				WithDetail("sku", d.SKU)
		}
	}

	if err := s.repo.ApplyDeltas(ctx, deltas); err != nil {
		return err
	}

	logger.Info(ctx, "applied sale deltas", "lines", len(deltas))
	return nil
}
