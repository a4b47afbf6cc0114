package order

import (
	"time"

	"github.com/google/uuid"

	"github.com/netoudi/orders-backend/internal/modules/customer"
)

// Order is a customer's purchase with prices captured at checkout time.
type Order struct {
	ID        uuid.UUID         `json:"id"`
	Customer  customer.Customer `json:"customer"`
	Items     []LineItem        `json:"products"`
	Total     float64           `json:"total"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// LineItem is a single product entry within an order. Price is snapshotted
// from the product at order time, not referenced live.
type LineItem struct {
	ProductID uuid.UUID `json:"product_id"`
	Price     float64   `json:"price"`
	Quantity  int       `json:"quantity"`
}

// RequestItem is one requested product within a checkout.
type RequestItem struct {
	ProductID string `json:"id"`
	Quantity  int    `json:"quantity"`
}

// CreateOrderRequest is the payload for placing an order.
type CreateOrderRequest struct {
	CustomerID string        `json:"customer_id"`
	Items      []RequestItem `json:"products"`
}
