package product

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when no product matches the given id or name.
	ErrNotFound = errors.New("product not found")

	// ErrStockConflict is returned when a conditional stock decrement finds
	// insufficient quantity at write time.
	ErrStockConflict = errors.New("stock conflict")
)

// Repository defines data access for products.
type Repository interface {
	// Create persists a new product.
	Create(ctx context.Context, p *Product) error

	// FindByID retrieves a product by UUID. Returns ErrNotFound when absent.
	FindByID(ctx context.Context, id string) (*Product, error)

	// FindByName retrieves a product by its unique name. Returns ErrNotFound when absent.
	FindByName(ctx context.Context, name string) (*Product, error)

	// FindAllByID returns the products whose ids are in the given set.
	// Unknown or malformed ids are simply absent from the result; duplicates
	// in the input yield a single entry.
	FindAllByID(ctx context.Context, ids []string) ([]*Product, error)

	// List returns all products, newest first.
	List(ctx context.Context) ([]*Product, error)

	// UpdateQuantity applies absolute stock quantities in one batch.
	UpdateQuantity(ctx context.Context, updates []StockUpdate) error

	// DecrementStock applies conditional stock decrements in one batch.
	// Each decrement requires quantity > by at write time; if any item fails
	// the precondition, nothing is applied and ErrStockConflict is returned.
	DecrementStock(ctx context.Context, decs []StockDecrement) error
}
