package catalog

import (
	"context"
	"errors"
	"sync"
)

var ErrItemNotFound = errors.New("menu item not found")

// InMemoryRepository keeps the catalog in process memory. It is the
// default when no DATABASE_URL is configured, and the repository used
// by tests.
type InMemoryRepository struct {
	mu    sync.RWMutex
	order []string
	items map[string]Item
}

func NewInMemoryRepository(seed []Item) *InMemoryRepository {
	r := &InMemoryRepository{
		items: make(map[string]Item, len(seed)),
	}
	for _, item := range seed {
		r.order = append(r.order, item.Name)
		r.items[item.Name] = item
	}
	return r
}

func (r *InMemoryRepository) List(ctx context.Context) ([]Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Item, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.items[name])
	}
	return out, nil
}

func (r *InMemoryRepository) Get(ctx context.Context, name string) (*Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[name]
	if !ok {
		return nil, ErrItemNotFound
	}
	return &item, nil
}

func (r *InMemoryRepository) Upsert(ctx context.Context, item Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.Name]; !exists {
		r.order = append(r.order, item.Name)
	}
	r.items[item.Name] = item
	return nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[name]; !exists {
		return ErrItemNotFound
	}
	delete(r.items, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
