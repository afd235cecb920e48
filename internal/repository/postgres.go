package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"quickcommerce/internal/apperr"
	"quickcommerce/internal/entity"
)

// PostgresStore is backed by the remote database. The *sql.DB is opened and
// pooled by the caller.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Configured() bool { return true }

func (s *PostgresStore) ListProducts(ctx context.Context, filter ProductFilter) ([]entity.Product, error) {
	query := `SELECT * FROM products`
	var (
		clauses []string
		args    []any
	)
	if filter.Query != "" {
		args = append(args, "%"+filter.Query+"%")
		clauses = append(clauses, fmt.Sprintf("name ILIKE $%d", len(args)))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		clauses = append(clauses, fmt.Sprintf("category = $%d", len(args)))
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	args = append(args, filter.Limit)
	query += fmt.Sprintf(" LIMIT $%d", len(args))

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var products []entity.Product
	for rows.Next() {
		values := make([]any, len(cols))
		for i := range values {
			values[i] = new(any)
		}
		if err := rows.Scan(values...); err != nil {
			return nil, err
		}
		row := make(map[string]any, len(cols))
		for i, col := range cols {
			row[col] = *(values[i].(*any))
		}
		products = append(products, productFromRow(row))
	}
	return products, rows.Err()
}

// CreateOrder writes the order header and its line items in one transaction;
// a failed items insert rolls the header back.
func (s *PostgresStore) CreateOrder(ctx context.Context, req *entity.CreateOrderRequest) (*entity.OrderReceipt, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	headerQuery := `INSERT INTO orders (user_id, address, coordinates, payment_method, status) VALUES ($1, $2, $3, $4, $5) RETURNING id`

	var orderID string
	err = tx.QueryRowContext(ctx, headerQuery,
		nullString(req.UserID), req.Address, coordsJSON(req.Coordinates), req.PaymentMethod, "PENDING",
	).Scan(&orderID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if len(req.Items) > 0 {
		itemQuery := `INSERT INTO order_items (order_id, product_id, quantity) VALUES `

		var values []any
		for i, item := range req.Items {
			n := i * 3
			itemQuery += fmt.Sprintf("($%d, $%d, $%d),", n+1, n+2, n+3)
			values = append(values, orderID, item.ProductID, item.Quantity)
		}
		itemQuery = itemQuery[:len(itemQuery)-1]

		if _, err := tx.ExecContext(ctx, itemQuery, values...); err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &entity.OrderReceipt{Status: "ok", OrderID: orderID}, nil
}

func (s *PostgresStore) GetOrder(ctx context.Context, orderID string) (*entity.Order, error) {
	orderQuery := `SELECT id, user_id, address, coordinates, payment_method, status, created_at FROM orders WHERE id = $1`
	itemQuery := `SELECT product_id, quantity FROM order_items WHERE order_id = $1`

	order := &entity.Order{}
	var (
		userID    sql.NullString
		coords    sql.NullString
		createdAt sql.NullTime
	)
	err := s.db.QueryRowContext(ctx, orderQuery, orderID).Scan(
		&order.OrderID, &userID, &order.Address, &coords, &order.PaymentMethod, &order.Status, &createdAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("order %s: %w", orderID, apperr.ErrNotFound)
		}
		return nil, err
	}
	if userID.Valid {
		order.UserID = userID.String
	}
	if coords.Valid {
		// Stored as a jsonb [lon, lat] pair; a malformed value just leaves
		// coordinates empty.
		_ = json.Unmarshal([]byte(coords.String), &order.Coordinates)
	}
	if createdAt.Valid {
		order.CreatedAt = &createdAt.Time
	}

	rows, err := s.db.QueryContext(ctx, itemQuery, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item entity.CartItem
		if err := rows.Scan(&item.ProductID, &item.Quantity); err != nil {
			return nil, err
		}
		order.Items = append(order.Items, item)
	}
	return order, rows.Err()
}

// AdjustStock delegates the delta to the remote adjust_stock procedure, which
// owns atomicity and any stock floor; the new stock level is relayed back.
func (s *PostgresStore) AdjustStock(ctx context.Context, productID string, delta int) (*entity.Ack, error) {
	var result int
	err := s.db.QueryRowContext(ctx, `SELECT adjust_stock($1, $2)`, productID, delta).Scan(&result)
	if err != nil {
		return nil, err
	}
	return &entity.Ack{Status: "ok", Result: result}, nil
}

func (s *PostgresStore) UpsertRiderLocation(ctx context.Context, loc *entity.RiderLocation) (*entity.Ack, error) {
	query := `
		INSERT INTO rider_locations (rider_id, order_id, lon, lat, speed, heading, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())
		ON CONFLICT (rider_id) DO UPDATE SET
			order_id = EXCLUDED.order_id,
			lon = EXCLUDED.lon,
			lat = EXCLUDED.lat,
			speed = EXCLUDED.speed,
			heading = EXCLUDED.heading,
			updated_at = now()`

	_, err := s.db.ExecContext(ctx, query,
		loc.RiderID, nullString(loc.OrderID), loc.Lon, loc.Lat, loc.Speed, loc.Heading,
	)
	if err != nil {
		return nil, err
	}
	return &entity.Ack{Status: "ok"}, nil
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// coordsJSON serializes a [lon, lat] pair for the jsonb coordinates column.
func coordsJSON(coords []float64) any {
	if len(coords) == 0 {
		return nil
	}
	b, err := json.Marshal(coords)
	if err != nil {
		return nil
	}
	return string(b)
}
