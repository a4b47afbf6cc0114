package product

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Service defines product catalog business logic.
type Service interface {
	// CreateProduct registers a new product. Name must be unique.
	CreateProduct(ctx context.Context, req CreateProductRequest) (*Product, error)

	// GetProduct retrieves a product by UUID.
	GetProduct(ctx context.Context, id string) (*Product, error)

	// ListProducts returns all products.
	ListProducts(ctx context.Context) ([]*Product, error)

	// UpdateQuantity applies absolute stock quantities in one batch.
	UpdateQuantity(ctx context.Context, req UpdateQuantityRequest) error
}

// CreateProductRequest holds the data for registering a product.
type CreateProductRequest struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// UpdateQuantityRequest holds a batch of absolute stock writes.
type UpdateQuantityRequest struct {
	Updates []QuantityUpdate `json:"updates"`
}

// QuantityUpdate sets one product's stock to an absolute quantity.
type QuantityUpdate struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

type service struct{ repo Repository }

// NewService creates a new product service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) CreateProduct(ctx context.Context, req CreateProductRequest) (*Product, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if req.Price < 0 {
		return nil, fmt.Errorf("price must not be negative")
	}
	if req.Quantity < 0 {
		return nil, fmt.Errorf("quantity must not be negative")
	}

	if _, err := s.repo.FindByName(ctx, name); err == nil {
		return nil, fmt.Errorf("product %s already exists", name)
	} else if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("lookup name: %w", err)
	}

	p := &Product{
		ID:       uuid.New(),
		Name:     name,
		Price:    req.Price,
		Quantity: req.Quantity,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to persist product: %w", err)
	}
	return p, nil
}

func (s *service) GetProduct(ctx context.Context, id string) (*Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) ListProducts(ctx context.Context) ([]*Product, error) {
	return s.repo.List(ctx)
}

func (s *service) UpdateQuantity(ctx context.Context, req UpdateQuantityRequest) error {
	if len(req.Updates) == 0 {
		return fmt.Errorf("at least one update is required")
	}
	updates := make([]StockUpdate, 0, len(req.Updates))
	for _, u := range req.Updates {
		uid, err := uuid.Parse(u.ID)
		if err != nil {
			return fmt.Errorf("invalid product id %s: %w", u.ID, err)
		}
		if u.Quantity < 0 {
			return fmt.Errorf("quantity must not be negative for product %s", u.ID)
		}
		updates = append(updates, StockUpdate{ID: uid, Quantity: u.Quantity})
	}
	return s.repo.UpdateQuantity(ctx, updates)
}
