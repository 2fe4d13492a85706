package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"grocery/internal/domain"
	"grocery/internal/repos"
	"grocery/internal/validate"
)

type OrderService struct {
	DB     *sqlx.DB
	Orders *repos.OrderRepo
}

func NewOrderService(db *sqlx.DB) *OrderService {
	return &OrderService{DB: db, Orders: repos.NewOrderRepo(db)}
}

// List returns order headers, newest first.
func (s *OrderService) List(ctx context.Context) ([]domain.Order, error) {
	return s.Orders.List(ctx)
}

// Get returns the header with its items.
func (s *OrderService) Get(ctx context.Context, id int64) (domain.Order, error) {
	o, err := s.Orders.Get(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Order{}, domain.NotFound("Order not found")
	}
	if err != nil {
		return domain.Order{}, err
	}
	if o.Items, err = s.Orders.Items(ctx, id); err != nil {
		return domain.Order{}, err
	}
	return o, nil
}

// Create writes the header and every item in one transaction. The header's
// total_amount is the sum of the line totals, fixed before any row is written.
func (s *OrderService) Create(ctx context.Context, in domain.OrderInput) (int64, error) {
	customer, ok := validate.Name(in.CustomerName)
	if !ok {
		return 0, domain.Invalid("Missing required fields")
	}
	if len(in.Items) == 0 {
		return 0, domain.Invalid("Order must have at least one item")
	}
	for i, it := range in.Items {
		switch {
		case it.ProductID <= 0:
			return 0, domain.Invalid("order_items[%d]: product_id is required", i)
		case !validate.Qty(it.Quantity):
			return 0, domain.Invalid("order_items[%d]: quantity must be greater than 0", i)
		case !validate.UnitPrice(it.UnitPrice):
			return 0, domain.Invalid("order_items[%d]: unit_price must not be negative", i)
		}
	}

	var orderID int64
	err := repos.WithTx(ctx, s.DB, func(tx *sqlx.Tx) error {
		products := repos.NewProductRepo(tx)
		orders := repos.NewOrderRepo(tx)

		lines := make([]domain.OrderItem, 0, len(in.Items))
		total := decimal.Zero
		for _, it := range in.Items {
			current, err := products.Price(ctx, it.ProductID)
			if errors.Is(err, sql.ErrNoRows) {
				return domain.Invalid("Product %d does not exist", it.ProductID)
			}
			if err != nil {
				return err
			}
			price := current
			if it.UnitPrice != nil {
				price = *it.UnitPrice
			}
			line := domain.OrderItem{
				ProductID:  it.ProductID,
				Quantity:   it.Quantity,
				UnitPrice:  price,
				TotalPrice: domain.LineTotal(it.Quantity, price),
			}
			total = total.Add(line.TotalPrice)
			lines = append(lines, line)
		}

		id, err := orders.Create(ctx, customer, total)
		if err != nil {
			return err
		}
		for _, line := range lines {
			line.OrderID = id
			if _, err := orders.InsertItem(ctx, line); err != nil {
				return err
			}
		}
		orderID = id
		return nil
	})
	if err != nil {
		return 0, err
	}
	return orderID, nil
}

// Delete removes the items and then the header in one transaction.
func (s *OrderService) Delete(ctx context.Context, id int64) error {
	return repos.WithTx(ctx, s.DB, func(tx *sqlx.Tx) error {
		orders := repos.NewOrderRepo(tx)
		if _, err := orders.DeleteItems(ctx, id); err != nil {
			return err
		}
		rows, err := orders.Delete(ctx, id)
		if err != nil {
			return err
		}
		if rows == 0 {
			return domain.NotFound("Order not found")
		}
		return nil
	})
}
