package product

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a new PostgreSQL product repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Create(ctx context.Context, p *Product) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO products (id, name, price, quantity)
		VALUES ($1, $2, $3, $4)`,
		p.ID, p.Name, p.Price, p.Quantity)
	return err
}

func (r *postgresRepo) FindByID(ctx context.Context, id string) (*Product, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}
	return scanProduct(r.db.QueryRowContext(ctx, `
		SELECT id, name, price, quantity, created_at, updated_at
		FROM products WHERE id=$1`, uid).Scan)
}

func (r *postgresRepo) FindByName(ctx context.Context, name string) (*Product, error) {
	return scanProduct(r.db.QueryRowContext(ctx, `
		SELECT id, name, price, quantity, created_at, updated_at
		FROM products WHERE name=$1`, name).Scan)
}

func (r *postgresRepo) FindAllByID(ctx context.Context, ids []string) ([]*Product, error) {
	uids := make([]string, 0, len(ids))
	for _, id := range ids {
		uid, err := uuid.Parse(id)
		if err != nil {
			continue // malformed ids are treated as absent
		}
		uids = append(uids, uid.String())
	}
	if len(uids) == 0 {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, price, quantity, created_at, updated_at
		FROM products WHERE id = ANY($1::uuid[])`, pq.Array(uids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectProducts(rows)
}

func (r *postgresRepo) List(ctx context.Context) ([]*Product, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, price, quantity, created_at, updated_at
		FROM products ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectProducts(rows)
}

// UpdateQuantity writes absolute quantities for the whole batch in one transaction.
func (r *postgresRepo) UpdateQuantity(ctx context.Context, updates []StockUpdate) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, u := range updates {
		res, err := tx.ExecContext(ctx,
			`UPDATE products SET quantity=$1, updated_at=NOW() WHERE id=$2`,
			u.Quantity, u.ID)
		if err != nil {
			return fmt.Errorf("update quantity: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return fmt.Errorf("%w: %s", ErrNotFound, u.ID)
		}
	}
	return tx.Commit()
}

// DecrementStock applies each decrement only while quantity stays strictly
// above the requested amount; the whole batch rolls back on the first failure.
func (r *postgresRepo) DecrementStock(ctx context.Context, decs []StockDecrement) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, d := range decs {
		res, err := tx.ExecContext(ctx, `
			UPDATE products SET quantity = quantity - $1, updated_at=NOW()
			WHERE id=$2 AND quantity > $1`,
			d.By, d.ID)
		if err != nil {
			return fmt.Errorf("decrement stock: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return fmt.Errorf("%w: product %s", ErrStockConflict, d.ID)
		}
	}
	return tx.Commit()
}

// ── helpers ──────────────────────────────────────────────────────────────────

func scanProduct(scan func(...interface{}) error) (*Product, error) {
	p := &Product{}
	err := scan(&p.ID, &p.Name, &p.Price, &p.Quantity, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func collectProducts(rows *sql.Rows) ([]*Product, error) {
	var products []*Product
	for rows.Next() {
		p, err := scanProduct(rows.Scan)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
