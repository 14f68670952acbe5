package catalog

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// InMemoryRepository backs the catalog when no document store is
// configured. Seeded with the sample menu unless constructed empty.
type InMemoryRepository struct {
	mu    sync.RWMutex
	items map[string]MenuItem
}

func NewInMemoryRepository(seed []MenuItem) *InMemoryRepository {
	items := make(map[string]MenuItem, len(seed))
	for _, item := range seed {
		items[item.ID] = item
	}
	return &InMemoryRepository{items: items}
}

func (r *InMemoryRepository) ListAll(ctx context.Context) ([]MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]MenuItem, 0, len(r.items))
	for _, item := range r.items {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })

	return items, nil
}

func (r *InMemoryRepository) Upsert(ctx context.Context, item *MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	r.items[item.ID] = *item
	return nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return errors.New("menu item not found")
	}
	delete(r.items, id)
	return nil
}

func (r *InMemoryRepository) SetImageURL(ctx context.Context, id, url string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok {
		return errors.New("menu item not found")
	}
	item.ImageURL = url
	r.items[id] = item
	return nil
}
