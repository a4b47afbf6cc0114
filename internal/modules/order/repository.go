package order

import (
	"context"
	"errors"

	"github.com/netoudi/orders-backend/internal/modules/customer"
	"github.com/netoudi/orders-backend/internal/modules/product"
)

// ErrNotFound is returned when no order matches the given id.
var ErrNotFound = errors.New("order not found")

// Repository defines data access for orders.
type Repository interface {
	// Create persists a new order and its line items atomically in a transaction.
	Create(ctx context.Context, o *Order) error

	// GetByID retrieves an order with its line items by UUID.
	GetByID(ctx context.Context, id string) (*Order, error)

	// ListByCustomer returns all orders placed by a customer, newest first.
	ListByCustomer(ctx context.Context, customerID string) ([]*Order, error)
}

// CustomerLookup resolves customers for checkout. Satisfied by customer.Repository.
type CustomerLookup interface {
	FindByID(ctx context.Context, id string) (*customer.Customer, error)
}

// ProductCatalog resolves products and applies stock writes for checkout.
// Satisfied by product.Repository.
type ProductCatalog interface {
	FindAllByID(ctx context.Context, ids []string) ([]*product.Product, error)
	DecrementStock(ctx context.Context, decs []product.StockDecrement) error
}
