package product

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// memoryRepo is an in-memory Repository, used in tests and local development.
type memoryRepo struct {
	mu       sync.RWMutex
	products map[uuid.UUID]Product
}

// NewMemoryRepository creates an in-memory product repository.
func NewMemoryRepository() Repository {
	return &memoryRepo{products: make(map[uuid.UUID]Product)}
}

func (r *memoryRepo) Create(ctx context.Context, p *Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	r.products[p.ID] = *p
	return nil
}

func (r *memoryRepo) FindByID(ctx context.Context, id string) (*Product, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.products[uid]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (r *memoryRepo) FindByName(ctx context.Context, name string) (*Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.products {
		if p.Name == name {
			p := p
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryRepo) FindAllByID(ctx context.Context, ids []string) ([]*Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := make(map[uuid.UUID]bool, len(ids))
	var products []*Product
	for _, id := range ids {
		uid, err := uuid.Parse(id)
		if err != nil || seen[uid] {
			continue
		}
		seen[uid] = true
		if p, ok := r.products[uid]; ok {
			p := p
			products = append(products, &p)
		}
	}
	return products, nil
}

func (r *memoryRepo) List(ctx context.Context) ([]*Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	products := make([]*Product, 0, len(r.products))
	for _, p := range r.products {
		p := p
		products = append(products, &p)
	}
	sort.Slice(products, func(i, j int) bool {
		return products[i].CreatedAt.After(products[j].CreatedAt)
	})
	return products, nil
}

func (r *memoryRepo) UpdateQuantity(ctx context.Context, updates []StockUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range updates {
		if _, ok := r.products[u.ID]; !ok {
			return fmt.Errorf("%w: %s", ErrNotFound, u.ID)
		}
		if u.Quantity < 0 {
			return fmt.Errorf("quantity must not be negative for product %s", u.ID)
		}
	}
	for _, u := range updates {
		p := r.products[u.ID]
		p.Quantity = u.Quantity
		p.UpdatedAt = time.Now().UTC()
		r.products[u.ID] = p
	}
	return nil
}

func (r *memoryRepo) DecrementStock(ctx context.Context, decs []StockDecrement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range decs {
		p, ok := r.products[d.ID]
		if !ok {
			return fmt.Errorf("%w: %s", ErrNotFound, d.ID)
		}
		if p.Quantity <= d.By {
			return fmt.Errorf("%w: product %s", ErrStockConflict, d.ID)
		}
	}
	for _, d := range decs {
		p := r.products[d.ID]
		p.Quantity -= d.By
		p.UpdatedAt = time.Now().UTC()
		r.products[d.ID] = p
	}
	return nil
}
