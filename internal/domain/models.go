package domain

import "github.com/shopspring/decimal"

func init() {
	// The frontend formats amounts with parseFloat; emit plain JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

type UnitOfMeasure struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

type Product struct {
	ID           int64           `db:"id" json:"id"`
	Name         string          `db:"name" json:"name"`
	PricePerUnit decimal.Decimal `db:"price_per_unit" json:"price_per_unit"`
	UomID        int64           `db:"uom_id" json:"uom_id"`
	UomName      string          `db:"uom_name" json:"uom_name"`
	IsActive     bool            `db:"is_active" json:"is_active"`
	CreatedAt    string          `db:"created_at" json:"created_at"`
}

type Order struct {
	ID           int64           `db:"id" json:"id"`
	CustomerName string          `db:"customer_name" json:"customer_name"`
	TotalAmount  decimal.Decimal `db:"total_amount" json:"total_amount"`
	CreatedAt    string          `db:"created_at" json:"created_at"`
	Items        []OrderItem     `db:"-" json:"items,omitempty"`
}

// OrderItem is immutable once written; TotalPrice is Quantity * UnitPrice at order time.
type OrderItem struct {
	ID          int64           `db:"id" json:"id"`
	OrderID     int64           `db:"order_id" json:"order_id"`
	ProductID   int64           `db:"product_id" json:"product_id"`
	ProductName string          `db:"product_name" json:"product_name"`
	UomName     string          `db:"uom_name" json:"uom_name"`
	Quantity    decimal.Decimal `db:"quantity" json:"quantity"`
	UnitPrice   decimal.Decimal `db:"unit_price" json:"unit_price"`
	TotalPrice  decimal.Decimal `db:"total_price" json:"total_price"`
}

// ProductInput is the body of product create/update. Pointer fields
// distinguish "absent" from zero.
type ProductInput struct {
	Name         string           `json:"name"`
	PricePerUnit *decimal.Decimal `json:"price_per_unit"`
	UomID        *int64           `json:"uom_id"`
}

// OrderItemInput is one requested line. A nil UnitPrice means "use the
// product's current price".
type OrderItemInput struct {
	ProductID int64            `json:"product_id"`
	Quantity  decimal.Decimal  `json:"quantity"`
	UnitPrice *decimal.Decimal `json:"unit_price"`
}

type OrderInput struct {
	CustomerName string           `json:"customer_name"`
	Items        []OrderItemInput `json:"order_items"`
}

// LineTotal returns quantity * unit price.
func LineTotal(qty, price decimal.Decimal) decimal.Decimal {
	return qty.Mul(price)
}
