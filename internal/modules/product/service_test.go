package product

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, repo Repository, name string, price float64, quantity int) *Product {
	t.Helper()
	p := &Product{ID: uuid.New(), Name: name, Price: price, Quantity: quantity}
	require.NoError(t, repo.Create(context.Background(), p))
	return p
}

func TestCreateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("registers and lists", func(t *testing.T) {
		s := NewService(NewMemoryRepository())
		p, err := s.CreateProduct(ctx, CreateProductRequest{Name: "Keyboard", Price: 10.0, Quantity: 5})
		require.NoError(t, err)

		got, err := s.GetProduct(ctx, p.ID.String())
		require.NoError(t, err)
		assert.Equal(t, 10.0, got.Price)
		assert.Equal(t, 5, got.Quantity)

		all, err := s.ListProducts(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("rejects duplicate name", func(t *testing.T) {
		s := NewService(NewMemoryRepository())
		_, err := s.CreateProduct(ctx, CreateProductRequest{Name: "Keyboard", Price: 10.0, Quantity: 5})
		require.NoError(t, err)

		_, err = s.CreateProduct(ctx, CreateProductRequest{Name: "Keyboard", Price: 12.0, Quantity: 1})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")
	})

	t.Run("rejects negative price and quantity", func(t *testing.T) {
		s := NewService(NewMemoryRepository())
		_, err := s.CreateProduct(ctx, CreateProductRequest{Name: "Keyboard", Price: -1})
		require.Error(t, err)
		_, err = s.CreateProduct(ctx, CreateProductRequest{Name: "Keyboard", Quantity: -1})
		require.Error(t, err)
	})
}

func TestUpdateQuantity(t *testing.T) {
	ctx := context.Background()

	t.Run("writes absolute quantities", func(t *testing.T) {
		repo := NewMemoryRepository()
		s := NewService(repo)
		p := seed(t, repo, "Keyboard", 10.0, 5)

		err := s.UpdateQuantity(ctx, UpdateQuantityRequest{
			Updates: []QuantityUpdate{{ID: p.ID.String(), Quantity: 2}},
		})
		require.NoError(t, err)

		got, err := repo.FindByID(ctx, p.ID.String())
		require.NoError(t, err)
		assert.Equal(t, 2, got.Quantity)
	})

	t.Run("rejects unknown product", func(t *testing.T) {
		s := NewService(NewMemoryRepository())
		err := s.UpdateQuantity(ctx, UpdateQuantityRequest{
			Updates: []QuantityUpdate{{ID: uuid.NewString(), Quantity: 2}},
		})
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestMemoryRepository_FindAllByID(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	p1 := seed(t, repo, "Keyboard", 10.0, 5)
	p2 := seed(t, repo, "Mouse", 5.0, 3)

	t.Run("returns only existing ids", func(t *testing.T) {
		got, err := repo.FindAllByID(ctx, []string{p1.ID.String(), uuid.NewString(), "not-a-uuid"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, p1.ID, got[0].ID)
	})

	t.Run("collapses duplicate ids", func(t *testing.T) {
		got, err := repo.FindAllByID(ctx, []string{p2.ID.String(), p2.ID.String()})
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})
}

func TestMemoryRepository_DecrementStock(t *testing.T) {
	ctx := context.Background()

	t.Run("applies the whole batch", func(t *testing.T) {
		repo := NewMemoryRepository()
		p1 := seed(t, repo, "Keyboard", 10.0, 5)
		p2 := seed(t, repo, "Mouse", 5.0, 4)

		err := repo.DecrementStock(ctx, []StockDecrement{
			{ID: p1.ID, By: 3},
			{ID: p2.ID, By: 1},
		})
		require.NoError(t, err)

		got1, _ := repo.FindByID(ctx, p1.ID.String())
		got2, _ := repo.FindByID(ctx, p2.ID.String())
		assert.Equal(t, 2, got1.Quantity)
		assert.Equal(t, 3, got2.Quantity)
	})

	t.Run("exact exhaustion conflicts", func(t *testing.T) {
		repo := NewMemoryRepository()
		p := seed(t, repo, "Keyboard", 10.0, 3)

		err := repo.DecrementStock(ctx, []StockDecrement{{ID: p.ID, By: 3}})
		require.ErrorIs(t, err, ErrStockConflict)

		got, _ := repo.FindByID(ctx, p.ID.String())
		assert.Equal(t, 3, got.Quantity)
	})

	t.Run("one conflict rolls back the batch", func(t *testing.T) {
		repo := NewMemoryRepository()
		p1 := seed(t, repo, "Keyboard", 10.0, 5)
		p2 := seed(t, repo, "Mouse", 5.0, 2)

		err := repo.DecrementStock(ctx, []StockDecrement{
			{ID: p1.ID, By: 1},
			{ID: p2.ID, By: 2},
		})
		require.ErrorIs(t, err, ErrStockConflict)

		got1, _ := repo.FindByID(ctx, p1.ID.String())
		assert.Equal(t, 5, got1.Quantity)
	})
}
