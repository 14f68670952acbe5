package order

import (
	"context"
	"sync"
)

// InMemoryRepository keeps placed orders for the process lifetime.
// Used when no DATABASE_URL is configured, and in tests.
type InMemoryRepository struct {
	mu     sync.Mutex
	orders []Order
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) Save(ctx context.Context, o *Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders = append(r.orders, *o)
	return nil
}

func (r *InMemoryRepository) List(ctx context.Context) ([]Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Order, 0, len(r.orders))
	for i := len(r.orders) - 1; i >= 0; i-- {
		out = append(out, r.orders[i])
	}
	return out, nil
}
