package product

import (
	"time"

	"github.com/google/uuid"
)

// Product is a sellable item with its current stock on hand.
type Product struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StockUpdate sets a product's stock to an absolute quantity.
type StockUpdate struct {
	ID       uuid.UUID `json:"id"`
	Quantity int       `json:"quantity"`
}

// StockDecrement lowers a product's stock by a delta, only when
// the remaining stock stays above zero.
type StockDecrement struct {
	ID uuid.UUID `json:"id"`
	By int       `json:"by"`
}
