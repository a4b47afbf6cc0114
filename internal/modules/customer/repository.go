package customer

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no customer matches the given id or email.
var ErrNotFound = errors.New("customer not found")

// Repository defines data access for customers.
type Repository interface {
	// Create persists a new customer.
	Create(ctx context.Context, c *Customer) error

	// FindByID retrieves a customer by UUID. Returns ErrNotFound when absent.
	FindByID(ctx context.Context, id string) (*Customer, error)

	// FindByEmail retrieves a customer by email. Returns ErrNotFound when absent.
	FindByEmail(ctx context.Context, email string) (*Customer, error)
}
