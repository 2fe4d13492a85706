package repos

import (
	"context"

	"github.com/shopspring/decimal"

	"grocery/internal/domain"
)

type ProductRepo struct{ db Queryer }

func NewProductRepo(db Queryer) *ProductRepo { return &ProductRepo{db: db} }

const productCols = `
    p.id, p.name, p.price_per_unit, p.uom_id, u.name AS uom_name, p.is_active, p.created_at
  FROM products p
  JOIN unit_of_measures u ON u.id = p.uom_id`

// ListActive returns products that have not been soft-deleted.
func (r *ProductRepo) ListActive(ctx context.Context) ([]domain.Product, error) {
	out := []domain.Product{}
	err := r.db.SelectContext(ctx, &out, `
  SELECT`+productCols+`
  WHERE p.is_active
  ORDER BY p.name, p.id
`)
	return out, err
}

// Get returns a product regardless of is_active, or sql.ErrNoRows.
func (r *ProductRepo) Get(ctx context.Context, id int64) (domain.Product, error) {
	var p domain.Product
	err := r.db.GetContext(ctx, &p, r.db.Rebind(`
  SELECT`+productCols+`
  WHERE p.id = ?
`), id)
	return p, err
}

// Price returns the current price_per_unit, or sql.ErrNoRows.
func (r *ProductRepo) Price(ctx context.Context, id int64) (decimal.Decimal, error) {
	var price decimal.Decimal
	err := r.db.GetContext(ctx, &price, r.db.Rebind(`SELECT price_per_unit FROM products WHERE id = ?`), id)
	return price, err
}

func (r *ProductRepo) Create(ctx context.Context, name string, price decimal.Decimal, uomID int64) (int64, error) {
	var id int64
	err := r.db.GetContext(ctx, &id, r.db.Rebind(`
		INSERT INTO products(name, price_per_unit, uom_id) VALUES (?, ?, ?) RETURNING id
	`), name, price, uomID)
	return id, err
}

// Update overwrites name, price and unit; returns rows affected.
func (r *ProductRepo) Update(ctx context.Context, id int64, name string, price decimal.Decimal, uomID int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, r.db.Rebind(`
		UPDATE products SET name = ?, price_per_unit = ?, uom_id = ? WHERE id = ?
	`), name, price, uomID, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// SoftDelete clears is_active; the row stays for historical order items.
func (r *ProductRepo) SoftDelete(ctx context.Context, id int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, r.db.Rebind(`UPDATE products SET is_active = ? WHERE id = ?`), false, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
