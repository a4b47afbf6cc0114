package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/netoudi/orders-backend/internal/modules/customer"
	"github.com/netoudi/orders-backend/internal/modules/product"
)

// Service defines the checkout business logic.
type Service interface {
	// CreateOrder validates the customer, the products and their stock,
	// snapshots prices into line items, persists the order, and decrements
	// stock. All-or-nothing: any failed check rejects the whole order.
	CreateOrder(ctx context.Context, req CreateOrderRequest) (*Order, error)

	// GetOrder retrieves a full order with its line items by UUID.
	GetOrder(ctx context.Context, id string) (*Order, error)

	// ListCustomerOrders returns all orders placed by a customer.
	ListCustomerOrders(ctx context.Context, customerID string) ([]*Order, error)
}

type service struct {
	repo      Repository
	products  ProductCatalog
	customers CustomerLookup
}

// NewService creates a new order service with its three collaborators.
func NewService(repo Repository, products ProductCatalog, customers CustomerLookup) Service {
	return &service{repo: repo, products: products, customers: customers}
}

func (s *service) CreateOrder(ctx context.Context, req CreateOrderRequest) (*Order, error) {
	cust, err := s.customers.FindByID(ctx, req.CustomerID)
	if err != nil {
		if errors.Is(err, customer.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrCustomerNotFound, req.CustomerID)
		}
		return nil, fmt.Errorf("lookup customer: %w", err)
	}

	ids := make([]string, len(req.Items))
	for i, item := range req.Items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity must be positive for product %s", ErrInvalidProducts, item.ProductID)
		}
		ids[i] = item.ProductID
	}

	selected, err := s.products.FindAllByID(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("fetch products: %w", err)
	}
	if len(req.Items) == 0 || len(selected) != len(req.Items) {
		return nil, fmt.Errorf("%w: requested %d, found %d", ErrInvalidProducts, len(req.Items), len(selected))
	}

	byID := make(map[string]*product.Product, len(selected))
	for _, p := range selected {
		byID[p.ID.String()] = p
	}

	// Stock must be strictly greater than the requested quantity; an order
	// can never drain a product to exactly zero through this path.
	for _, item := range req.Items {
		p, ok := byID[item.ProductID]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrProductNotFound, item.ProductID)
		}
		if p.Quantity <= item.Quantity {
			return nil, fmt.Errorf("%w: product %s has %d in stock, %d requested",
				ErrInsufficientStock, item.ProductID, p.Quantity, item.Quantity)
		}
	}

	items := make([]LineItem, 0, len(req.Items))
	var total float64
	for _, item := range req.Items {
		p := byID[item.ProductID]
		items = append(items, LineItem{
			ProductID: p.ID,
			Price:     p.Price,
			Quantity:  item.Quantity,
		})
		total += p.Price * float64(item.Quantity)
	}

	o := &Order{
		ID:       uuid.New(),
		Customer: *cust,
		Items:    items,
		Total:    round2(total),
	}
	if err := s.repo.Create(ctx, o); err != nil {
		return nil, fmt.Errorf("failed to persist order: %w", err)
	}

	decs := make([]product.StockDecrement, 0, len(req.Items))
	for _, item := range req.Items {
		decs = append(decs, product.StockDecrement{
			ID: byID[item.ProductID].ID,
			By: item.Quantity,
		})
	}
	if err := s.products.DecrementStock(ctx, decs); err != nil {
		if errors.Is(err, product.ErrStockConflict) {
			return nil, fmt.Errorf("%w: order %s", ErrStockConflict, o.ID)
		}
		return nil, fmt.Errorf("decrement stock: %w", err)
	}

	return o, nil
}

func (s *service) GetOrder(ctx context.Context, id string) (*Order, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListCustomerOrders(ctx context.Context, customerID string) ([]*Order, error) {
	return s.repo.ListByCustomer(ctx, customerID)
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
