package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"colibri/internal/core/apperror"
	"colibri/internal/domain/orders"
)

// OrderRepository is the in-memory orders.Repository.
type OrderRepository struct {
	mu     sync.RWMutex
	orders map[string]*orders.Order // keyed by number
}

// NewOrderRepository creates an empty in-memory order register.
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{
		orders: make(map[string]*orders.Order),
	}
}

// Insert implements orders.Repository.
func (r *OrderRepository) Insert(_ context.Context, order *orders.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[order.Number]; ok {
		return apperror.NewDuplicate("order", "number", order.Number)
	}

	copied := *order
	r.orders[order.Number] = &copied
	return nil
}

// GetByNumber implements orders.Repository.
func (r *OrderRepository) GetByNumber(_ context.Context, number string) (*orders.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.orders[number]
	if !ok {
		return nil, apperror.NewNotFound("order", number)
	}
	copied := *o
	return &copied, nil
}

// UpdateStatus implements orders.Repository.
func (r *OrderRepository) UpdateStatus(_ context.Context, number string, status orders.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[number]
	if !ok {
		return apperror.NewNotFound("order", number)
	}
	o.Status = status
	return nil
}

// List implements orders.Repository: filtered, newest delivery first.
func (r *OrderRepository) List(_ context.Context, filter orders.ListFilter) ([]*orders.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*orders.Order
	for _, o := range r.orders {
		if !matches(o, filter) {
			continue
		}
		copied := *o
		out = append(out, &copied)
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].DeliveryDate.Equal(out[j].DeliveryDate) {
			return out[i].DeliveryDate.After(out[j].DeliveryDate)
		}
		return out[i].Number < out[j].Number
	})
	return out, nil
}

func matches(o *orders.Order, filter orders.ListFilter) bool {
	if filter.Status != nil && o.Status != *filter.Status {
		return false
	}
	if filter.DeliveryDay != "" && o.DeliveryDate.Format("2006-01-02") != filter.DeliveryDay {
		return false
	}
	if filter.Search != "" {
		needle := strings.ToLower(filter.Search)
		if !strings.Contains(strings.ToLower(o.ClientName), needle) &&
			!strings.Contains(strings.ToLower(o.Description), needle) {
			return false
		}
	}
	return true
}

var _ orders.Repository = (*OrderRepository)(nil)
