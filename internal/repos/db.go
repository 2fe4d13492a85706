package repos

import (
	"context"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"
)

// Queryer is satisfied by both *sqlx.DB and *sqlx.Tx so repos can run
// inside or outside a transaction.
type Queryer interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
}

// OpenDB connects with driver ("sqlite" or "pgx") and makes sure the schema exists.
func OpenDB(driver, dsn string) (*sqlx.DB, error) {
	var schema string
	switch driver {
	case "sqlite":
		schema = sqliteSchema
	case "pgx":
		schema = postgresSchema
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}

	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, err
	}
	if driver == "sqlite" {
		// One shared connection: keeps :memory: databases alive and the
		// foreign_keys pragma in effect for every statement.
		db.SetMaxOpenConns(1)
	}
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return db, nil
}

// WithTx runs fn in a transaction, committing only if fn returns nil.
func WithTx(ctx context.Context, db *sqlx.DB, fn func(tx *sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

const sqliteSchema = `
PRAGMA foreign_keys = ON;

CREATE TABLE IF NOT EXISTS unit_of_measures(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_uoms_name_nocase ON unit_of_measures(LOWER(name));

CREATE TABLE IF NOT EXISTS products(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  price_per_unit NUMERIC NOT NULL CHECK (price_per_unit > 0),
  uom_id INTEGER NOT NULL REFERENCES unit_of_measures(id) ON DELETE RESTRICT,
  is_active INTEGER NOT NULL DEFAULT 1,
  created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_products_uom  ON products(uom_id);
CREATE INDEX IF NOT EXISTS idx_products_name ON products(name);

CREATE TABLE IF NOT EXISTS orders(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  customer_name TEXT NOT NULL,
  total_amount NUMERIC NOT NULL,
  created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders(created_at);

CREATE TABLE IF NOT EXISTS order_items(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  order_id INTEGER NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
  product_id INTEGER NOT NULL REFERENCES products(id),
  quantity NUMERIC NOT NULL CHECK (quantity > 0),
  unit_price NUMERIC NOT NULL CHECK (unit_price >= 0),
  total_price NUMERIC NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id);
`

const postgresSchema = `
CREATE TABLE IF NOT EXISTS unit_of_measures(
  id BIGSERIAL PRIMARY KEY,
  name TEXT NOT NULL
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_uoms_name_nocase ON unit_of_measures(LOWER(name));

CREATE TABLE IF NOT EXISTS products(
  id BIGSERIAL PRIMARY KEY,
  name TEXT NOT NULL,
  price_per_unit NUMERIC(14,4) NOT NULL CHECK (price_per_unit > 0),
  uom_id BIGINT NOT NULL REFERENCES unit_of_measures(id) ON DELETE RESTRICT,
  is_active BOOLEAN NOT NULL DEFAULT TRUE,
  created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_products_uom  ON products(uom_id);
CREATE INDEX IF NOT EXISTS idx_products_name ON products(name);

CREATE TABLE IF NOT EXISTS orders(
  id BIGSERIAL PRIMARY KEY,
  customer_name TEXT NOT NULL,
  total_amount NUMERIC(16,4) NOT NULL,
  created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders(created_at);

CREATE TABLE IF NOT EXISTS order_items(
  id BIGSERIAL PRIMARY KEY,
  order_id BIGINT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
  product_id BIGINT NOT NULL REFERENCES products(id),
  quantity NUMERIC(14,4) NOT NULL CHECK (quantity > 0),
  unit_price NUMERIC(14,4) NOT NULL CHECK (unit_price >= 0),
  total_price NUMERIC(16,4) NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id);
`

// SeedDemo inserts a few units and products when the UOM table is empty.
// Safe to run on every startup.
func SeedDemo(ctx context.Context, db *sqlx.DB) error {
	var n int
	if err := db.GetContext(ctx, &n, `SELECT COUNT(*) FROM unit_of_measures`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo units/products")

	return WithTx(ctx, db, func(tx *sqlx.Tx) error {
		uoms := NewUomRepo(tx)
		products := NewProductRepo(tx)
		ids := map[string]int64{}
		for _, name := range []string{"kg", "piece", "litre"} {
			id, err := uoms.Create(ctx, name)
			if err != nil {
				return err
			}
			ids[name] = id
		}
		demo := []struct {
			name, price, uom string
		}{
			{"Rice", "60", "kg"},
			{"Toothpaste", "45.5", "piece"},
			{"Milk", "28", "litre"},
			{"Onion", "32.75", "kg"},
		}
		for _, d := range demo {
			if _, err := products.Create(ctx, d.name, decimal.RequireFromString(d.price), ids[d.uom]); err != nil {
				return err
			}
		}
		return nil
	})
}
