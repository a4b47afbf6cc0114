package order

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/netoudi/orders-backend/internal/modules/customer"
	"github.com/netoudi/orders-backend/internal/modules/product"
)

// TestPostgresCheckoutFlow exercises the postgres repositories end to end:
// persistence, the order/items transaction, and the conditional decrement.
func TestPostgresCheckoutFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}
	ctx := context.Background()

	pgC, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("orders"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(2*time.Minute)),
	)
	require.NoError(t, err)
	defer func() { _ = pgC.Terminate(ctx) }()

	dsn, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, db.Ping())

	schema, err := os.ReadFile("../../../migrations/0001_init.sql")
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, string(schema))
	require.NoError(t, err)

	customerRepo := customer.NewPostgresRepository(db)
	productRepo := product.NewPostgresRepository(db)
	orderRepo := NewPostgresRepository(db)

	customerService := customer.NewService(customerRepo)
	productService := product.NewService(productRepo)
	orderService := NewService(orderRepo, productRepo, customerRepo)

	c, err := customerService.CreateCustomer(ctx, customer.CreateCustomerRequest{
		Name: "Alice", Email: "alice@example.com",
	})
	require.NoError(t, err)

	p, err := productService.CreateProduct(ctx, product.CreateProductRequest{
		Name: "Keyboard", Price: 10.0, Quantity: 5,
	})
	require.NoError(t, err)

	t.Run("checkout decrements stock", func(t *testing.T) {
		o, err := orderService.CreateOrder(ctx, CreateOrderRequest{
			CustomerID: c.ID.String(),
			Items:      []RequestItem{{ProductID: p.ID.String(), Quantity: 3}},
		})
		require.NoError(t, err)
		assert.Equal(t, 30.0, o.Total)

		got, err := productRepo.FindByID(ctx, p.ID.String())
		require.NoError(t, err)
		assert.Equal(t, 2, got.Quantity)

		fetched, err := orderService.GetOrder(ctx, o.ID.String())
		require.NoError(t, err)
		require.Len(t, fetched.Items, 1)
		assert.Equal(t, p.ID, fetched.Items[0].ProductID)
		assert.Equal(t, 10.0, fetched.Items[0].Price)
		assert.Equal(t, 3, fetched.Items[0].Quantity)
		assert.Equal(t, c.Email, fetched.Customer.Email)
	})

	t.Run("remaining stock too low", func(t *testing.T) {
		_, err := orderService.CreateOrder(ctx, CreateOrderRequest{
			CustomerID: c.ID.String(),
			Items:      []RequestItem{{ProductID: p.ID.String(), Quantity: 3}},
		})
		require.ErrorIs(t, err, ErrInsufficientStock)
	})

	t.Run("conditional decrement conflicts and rolls back", func(t *testing.T) {
		other, err := productService.CreateProduct(ctx, product.CreateProductRequest{
			Name: "Mouse", Price: 5.0, Quantity: 10,
		})
		require.NoError(t, err)

		// stock is 2 after the first checkout; a decrement of 2 violates the
		// strict write-time precondition and must leave both rows untouched
		err = productRepo.DecrementStock(ctx, []product.StockDecrement{
			{ID: other.ID, By: 1},
			{ID: p.ID, By: 2},
		})
		require.ErrorIs(t, err, product.ErrStockConflict)

		gotOther, err := productRepo.FindByID(ctx, other.ID.String())
		require.NoError(t, err)
		assert.Equal(t, 10, gotOther.Quantity)
	})

	t.Run("orders listed per customer", func(t *testing.T) {
		orders, err := orderService.ListCustomerOrders(ctx, c.ID.String())
		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, c.ID, orders[0].Customer.ID)
	})
}
