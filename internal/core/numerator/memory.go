package numerator

import (
	"context"
	"sync"
)

// MemoryGenerator is a mutex-guarded in-process counter per prefix.
// Used by the in-memory storage driver and in tests.
type MemoryGenerator struct {
	mu       sync.Mutex
	counters map[string]int64
}

// NewMemoryGenerator creates an in-memory number generator.
func NewMemoryGenerator() *MemoryGenerator {
	return &MemoryGenerator{
		counters: make(map[string]int64),
	}
}

// GetNextNumber implements Generator.
func (g *MemoryGenerator) GetNextNumber(_ context.Context, cfg Config) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.counters[cfg.Prefix]++
	return cfg.Format(g.counters[cfg.Prefix]), nil
}

// SetNextNumber implements Generator. The next generated number will be value.
func (g *MemoryGenerator) SetNextNumber(_ context.Context, cfg Config, value int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.counters[cfg.Prefix] = value - 1
	return nil
}

// Ensure compile-time interface compliance.
var _ Generator = (*MemoryGenerator)(nil)
