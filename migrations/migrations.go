package migrations

import (
	"database/sql"
	"time"
)

// AutoMigrate creates the tables and the adjust_stock function the service
// depends on when they do not exist. The schema is owned by the remote store
// in production; this bootstrap keeps development databases usable. The
// products table (or view) is deliberately not created here.
func AutoMigrate(db *sql.DB) error {
	statements := []string{
		ordersTable,
		orderItemsTable,
		riderLocationsTable,
		adjustStockFunction,
	}
	for _, stmt := range statements {
		if err := execWithRetry(db, stmt, 3); err != nil {
			return err
		}
	}
	return nil
}

func execWithRetry(db *sql.DB, stmt string, retries int) error {
	_, err := db.Exec(stmt)
	for i := 0; err != nil && i < retries; i++ {
		time.Sleep(1 * time.Second)
		_, err = db.Exec(stmt)
	}
	return err
}

const ordersTable = `
	CREATE TABLE IF NOT EXISTS orders (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id TEXT,
		address TEXT NOT NULL,
		coordinates JSONB,
		payment_method TEXT NOT NULL DEFAULT 'COD',
		status TEXT NOT NULL DEFAULT 'PENDING',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
`

const orderItemsTable = `
	CREATE TABLE IF NOT EXISTS order_items (
		id BIGSERIAL PRIMARY KEY,
		order_id UUID NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
		product_id TEXT NOT NULL,
		quantity INT NOT NULL CHECK (quantity >= 1)
	);
`

const riderLocationsTable = `
	CREATE TABLE IF NOT EXISTS rider_locations (
		rider_id TEXT PRIMARY KEY,
		order_id TEXT,
		lon DOUBLE PRECISION NOT NULL,
		lat DOUBLE PRECISION NOT NULL,
		speed DOUBLE PRECISION,
		heading DOUBLE PRECISION,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
`

const adjustStockFunction = `
	CREATE OR REPLACE FUNCTION adjust_stock(p_id TEXT, delta INT)
	RETURNS INT AS $$
	DECLARE
		new_stock INT;
	BEGIN
		UPDATE products SET stock = stock + delta WHERE id::text = p_id
		RETURNING stock INTO new_stock;
		RETURN new_stock;
	END;
	$$ LANGUAGE plpgsql;
`
