package customer

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// memoryRepo is an in-memory Repository, used in tests and local development.
type memoryRepo struct {
	mu        sync.RWMutex
	customers map[uuid.UUID]Customer
}

// NewMemoryRepository creates an in-memory customer repository.
func NewMemoryRepository() Repository {
	return &memoryRepo{customers: make(map[uuid.UUID]Customer)}
}

func (r *memoryRepo) Create(ctx context.Context, c *Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now
	r.customers[c.ID] = *c
	return nil
}

func (r *memoryRepo) FindByID(ctx context.Context, id string) (*Customer, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.customers[uid]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (r *memoryRepo) FindByEmail(ctx context.Context, email string) (*Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.customers {
		if c.Email == email {
			c := c
			return &c, nil
		}
	}
	return nil, ErrNotFound
}
