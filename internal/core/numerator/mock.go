package numerator

import (
	"context"
)

// MockGenerator is a test implementation of Generator.
// Use in unit tests to pin the generated numbers.
type MockGenerator struct {
	GetNextNumberFunc func(ctx context.Context, cfg Config) (string, error)
	SetNextNumberFunc func(ctx context.Context, cfg Config, value int64) error
}

// GetNextNumber implements Generator.
func (m *MockGenerator) GetNextNumber(ctx context.Context, cfg Config) (string, error) {
	if m.GetNextNumberFunc != nil {
		return m.GetNextNumberFunc(ctx, cfg)
	}
	return cfg.Format(1), nil
}

// SetNextNumber implements Generator.
func (m *MockGenerator) SetNextNumber(ctx context.Context, cfg Config, value int64) error {
	if m.SetNextNumberFunc != nil {
		return m.SetNextNumberFunc(ctx, cfg, value)
	}
	return nil
}

// Ensure compile-time interface compliance.
var _ Generator = (*MockGenerator)(nil)
