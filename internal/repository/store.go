package repository

import (
	"context"

	"quickcommerce/internal/entity"
)

// ProductFilter narrows a catalog listing. Zero values mean no constraint;
// Limit caps the result count in every implementation.
type ProductFilter struct {
	Query    string
	Category string
	Limit    int
}

// Store is the storage capability behind every endpoint. Two implementations
// exist: MemoryStore serves canned demo data, PostgresStore is backed by the
// remote database. One of them is selected once at startup, so handlers never
// branch on configuration state.
type Store interface {
	ListProducts(ctx context.Context, filter ProductFilter) ([]entity.Product, error)
	CreateOrder(ctx context.Context, req *entity.CreateOrderRequest) (*entity.OrderReceipt, error)
	GetOrder(ctx context.Context, orderID string) (*entity.Order, error)
	AdjustStock(ctx context.Context, productID string, delta int) (*entity.Ack, error)
	UpsertRiderLocation(ctx context.Context, loc *entity.RiderLocation) (*entity.Ack, error)

	// Configured reports whether the store is backed by the remote database.
	Configured() bool
}
