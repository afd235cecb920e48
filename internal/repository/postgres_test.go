package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickcommerce/internal/apperr"
	"quickcommerce/internal/entity"
)

func newMockStore(t *testing.T) (*PostgresStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresStore(db), mock
}

func TestPostgresCreateOrderInsertsHeaderAndItems(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO orders \(user_id, address, coordinates, payment_method, status\) VALUES \(\$1, \$2, \$3, \$4, \$5\) RETURNING id`).
		WithArgs("u-9", "12 Main Road", `[77.59,12.97]`, "COD", "PENDING").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("ord-1"))
	mock.ExpectExec(`INSERT INTO order_items \(order_id, product_id, quantity\) VALUES \(\$1, \$2, \$3\),\(\$4, \$5, \$6\)`).
		WithArgs("ord-1", "p-1", 2, "ord-1", "p-2", 1).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	receipt, err := store.CreateOrder(context.Background(), &entity.CreateOrderRequest{
		UserID:        "u-9",
		Address:       "12 Main Road",
		Coordinates:   []float64{77.59, 12.97},
		PaymentMethod: "COD",
		Items: []entity.CartItem{
			{ProductID: "p-1", Quantity: 2},
			{ProductID: "p-2", Quantity: 1},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", receipt.Status)
	assert.Equal(t, "ord-1", receipt.OrderID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCreateOrderEmptyItemsSkipsItemsInsert(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO orders`).
		WithArgs(nil, "12 Main Road", nil, "COD", "PENDING").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("ord-2"))
	mock.ExpectCommit()

	receipt, err := store.CreateOrder(context.Background(), &entity.CreateOrderRequest{
		Address:       "12 Main Road",
		PaymentMethod: "COD",
	})
	require.NoError(t, err)
	assert.Equal(t, "ord-2", receipt.OrderID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCreateOrderRollsBackWhenItemsInsertFails(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO orders`).
		WithArgs(nil, "12 Main Road", nil, "COD", "PENDING").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("ord-3"))
	mock.ExpectExec(`INSERT INTO order_items`).
		WithArgs("ord-3", "p-1", 1).
		WillReturnError(errors.New("constraint violation"))
	mock.ExpectRollback()

	_, err := store.CreateOrder(context.Background(), &entity.CreateOrderRequest{
		Address:       "12 Main Road",
		PaymentMethod: "COD",
		Items:         []entity.CartItem{{ProductID: "p-1", Quantity: 1}},
	})
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresGetOrderLoadsHeaderAndItems(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT id, user_id, address, coordinates, payment_method, status, created_at FROM orders WHERE id = \$1`).
		WithArgs("ord-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "address", "coordinates", "payment_method", "status", "created_at"}).
			AddRow("ord-1", "u-9", "12 Main Road", `[77.59,12.97]`, "COD", "PENDING", nil))
	mock.ExpectQuery(`SELECT product_id, quantity FROM order_items WHERE order_id = \$1`).
		WithArgs("ord-1").
		WillReturnRows(sqlmock.NewRows([]string{"product_id", "quantity"}).
			AddRow("p-1", 2).
			AddRow("p-2", 1))

	order, err := store.GetOrder(context.Background(), "ord-1")
	require.NoError(t, err)
	assert.Equal(t, "ord-1", order.OrderID)
	assert.Equal(t, "u-9", order.UserID)
	assert.Equal(t, []float64{77.59, 12.97}, order.Coordinates)
	assert.Equal(t, "PENDING", order.Status)
	require.Len(t, order.Items, 2)
	assert.Equal(t, entity.CartItem{ProductID: "p-1", Quantity: 2}, order.Items[0])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresGetOrderNotFound(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT id, user_id, address, coordinates, payment_method, status, created_at FROM orders`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := store.GetOrder(context.Background(), "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestPostgresListProductsAppliesFilters(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT \* FROM products WHERE name ILIKE \$1 AND category = \$2 LIMIT \$3`).
		WithArgs("%milk%", "Dairy", 10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "category", "price", "stock"}).
			AddRow("2", "Milk 1L", "Dairy", 1.49, int64(32)))

	products, err := store.ListProducts(context.Background(), ProductFilter{Query: "milk", Category: "Dairy", Limit: 10})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Milk 1L", products[0].Name)
	assert.Equal(t, 32, products[0].Stock)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresListProductsNormalizesHeterogeneousRows(t *testing.T) {
	store, mock := newMockStore(t)

	// Rows carrying title/quantity instead of name/stock, with a missing
	// price, must still map onto the canonical shape.
	mock.ExpectQuery(`SELECT \* FROM products LIMIT \$1`).
		WithArgs(50).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "quantity", "price"}).
			AddRow(int64(7), "Choco Spread", int64(4), nil).
			AddRow(int64(8), nil, nil, 2.5))

	products, err := store.ListProducts(context.Background(), ProductFilter{Limit: 50})
	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, "7", products[0].ID)
	assert.Equal(t, "Choco Spread", products[0].Name)
	assert.Equal(t, 4, products[0].Stock)
	assert.Equal(t, 0.0, products[0].Price)

	assert.Equal(t, "Item", products[1].Name)
	assert.Equal(t, 0, products[1].Stock)
	assert.Equal(t, 2.5, products[1].Price)
}

func TestPostgresAdjustStockCallsProcedure(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT adjust_stock\(\$1, \$2\)`).
		WithArgs("p-1", -3).
		WillReturnRows(sqlmock.NewRows([]string{"adjust_stock"}).AddRow(int64(17)))

	ack, err := store.AdjustStock(context.Background(), "p-1", -3)
	require.NoError(t, err)
	assert.Equal(t, "ok", ack.Status)
	assert.Equal(t, 17, ack.Result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUpsertRiderLocationKeyedOnRider(t *testing.T) {
	store, mock := newMockStore(t)

	speed := 22.5
	upsert := `(?s)INSERT INTO rider_locations.*ON CONFLICT \(rider_id\) DO UPDATE`
	mock.ExpectExec(upsert).
		WithArgs("r-1", "ord-1", 77.59, 12.97, speed, nil).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(upsert).
		WithArgs("r-1", "ord-1", 77.61, 12.99, nil, nil).
		WillReturnResult(sqlmock.NewResult(0, 1))

	_, err := store.UpsertRiderLocation(context.Background(), &entity.RiderLocation{
		RiderID: "r-1", OrderID: "ord-1", Lon: 77.59, Lat: 12.97, Speed: &speed,
	})
	require.NoError(t, err)

	ack, err := store.UpsertRiderLocation(context.Background(), &entity.RiderLocation{
		RiderID: "r-1", OrderID: "ord-1", Lon: 77.61, Lat: 12.99,
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", ack.Status)
	assert.False(t, ack.Demo)
	assert.NoError(t, mock.ExpectationsWereMet())
}
