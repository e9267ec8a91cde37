package postgres

import (
	"context"
	"fmt"

	corenumerator "colibri/internal/core/numerator"
)

// NumeratorService implements numbering on top of a sys_sequences table.
// Every call goes to the database; the UPSERT with RETURNING makes the
// counter safe under concurrent registers.
type NumeratorService struct {
	txManager *TxManager
}

// NewNumeratorService creates a database-backed number generator.
func NewNumeratorService(txManager *TxManager) *NumeratorService {
	return &NumeratorService{txManager: txManager}
}

var _ corenumerator.Generator = (*NumeratorService)(nil)

// GetNextNumber implements numerator.Generator.
func (s *NumeratorService) GetNextNumber(ctx context.Context, cfg corenumerator.Config) (string, error) {
	querier := s.txManager.GetQuerier(ctx)

	var num int64
	err := querier.QueryRow(ctx, `
        INSERT INTO sys_sequences (key, current_val)
        VALUES ($1, 1)
        ON CONFLICT (key) DO UPDATE SET current_val = sys_sequences.current_val + 1
        RETURNING current_val
	`, cfg.Prefix).Scan(&num)
	if err != nil {
		return "", fmt.Errorf("next number for %s: %w", cfg.Prefix, err)
	}

	return cfg.Format(num), nil
}

// SetNextNumber implements numerator.Generator.
func (s *NumeratorService) SetNextNumber(ctx context.Context, cfg corenumerator.Config, value int64) error {
	querier := s.txManager.GetQuerier(ctx)

	_, err := querier.Exec(ctx, `
        INSERT INTO sys_sequences (key, current_val)
        VALUES ($1, $2)
        ON CONFLICT (key) DO UPDATE SET current_val = $2
	`, cfg.Prefix, value-1)
	if err != nil {
		return fmt.Errorf("set number for %s: %w", cfg.Prefix, err)
	}
	return nil
}
