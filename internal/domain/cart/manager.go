package cart

import (
	"sync"
)

// Manager owns one cart per cashier, keyed by user ID. Carts live for the
// process lifetime; closing a sale clears the cart rather than dropping it.
type Manager struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

// NewManager creates an empty cart manager.
func NewManager() *Manager {
	return &Manager{carts: make(map[string]*Cart)}
}

// Get returns the cart for userID, creating it on first use.
func (m *Manager) Get(userID string) *Cart {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.carts[userID]
	if !ok {
		c = New()
		m.carts[userID] = c
	}
	return c
}
