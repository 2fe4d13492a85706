package repos

import (
	"context"

	"github.com/shopspring/decimal"

	"grocery/internal/domain"
)

type OrderRepo struct{ db Queryer }

func NewOrderRepo(db Queryer) *OrderRepo { return &OrderRepo{db: db} }

// List returns order headers, newest first. Items are loaded only by Items.
func (r *OrderRepo) List(ctx context.Context) ([]domain.Order, error) {
	out := []domain.Order{}
	err := r.db.SelectContext(ctx, &out, `
		SELECT id, customer_name, total_amount, created_at
		FROM orders
		ORDER BY created_at DESC, id DESC
	`)
	return out, err
}

// Get returns the order header or sql.ErrNoRows.
func (r *OrderRepo) Get(ctx context.Context, id int64) (domain.Order, error) {
	var o domain.Order
	err := r.db.GetContext(ctx, &o, r.db.Rebind(`
		SELECT id, customer_name, total_amount, created_at
		FROM orders
		WHERE id = ?
	`), id)
	return o, err
}

// Items returns the lines of an order with product and unit names.
func (r *OrderRepo) Items(ctx context.Context, orderID int64) ([]domain.OrderItem, error) {
	out := []domain.OrderItem{}
	err := r.db.SelectContext(ctx, &out, r.db.Rebind(`
		SELECT oi.id, oi.order_id, oi.product_id, p.name AS product_name, u.name AS uom_name,
		       oi.quantity, oi.unit_price, oi.total_price
		FROM order_items oi
		JOIN products p ON p.id = oi.product_id
		JOIN unit_of_measures u ON u.id = p.uom_id
		WHERE oi.order_id = ?
		ORDER BY p.name, oi.id
	`), orderID)
	return out, err
}

// Create inserts the order header and returns its id.
func (r *OrderRepo) Create(ctx context.Context, customer string, total decimal.Decimal) (int64, error) {
	var id int64
	err := r.db.GetContext(ctx, &id, r.db.Rebind(`
		INSERT INTO orders(customer_name, total_amount) VALUES (?, ?) RETURNING id
	`), customer, total)
	return id, err
}

// InsertItem inserts a single line item.
func (r *OrderRepo) InsertItem(ctx context.Context, it domain.OrderItem) (int64, error) {
	var id int64
	err := r.db.GetContext(ctx, &id, r.db.Rebind(`
		INSERT INTO order_items(order_id, product_id, quantity, unit_price, total_price)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id
	`), it.OrderID, it.ProductID, it.Quantity, it.UnitPrice, it.TotalPrice)
	return id, err
}

func (r *OrderRepo) DeleteItems(ctx context.Context, orderID int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM order_items WHERE order_id = ?`), orderID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Delete removes the header only; call DeleteItems first in the same tx.
func (r *OrderRepo) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM orders WHERE id = ?`), id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
