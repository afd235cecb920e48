package repository

import (
	"context"
	"strings"

	"quickcommerce/internal/entity"
)

// demoProducts is the canned catalog served when no remote store is
// configured. Order is fixed.
var demoProducts = []entity.Product{
	{ID: "1", Name: "Bananas", SKU: "BN-1", Category: "Fruits", Price: 0.99, ImageURL: "https://images.unsplash.com/photo-1571772805064-207c8435df79?w=400", Stock: 120},
	{ID: "2", Name: "Milk 1L", SKU: "ML-1L", Category: "Dairy", Price: 1.49, ImageURL: "https://images.unsplash.com/photo-1580910051074-3eb694886505?w=400", Stock: 32},
	{ID: "3", Name: "Brown Bread", SKU: "BR-01", Category: "Bakery", Price: 1.99, ImageURL: "https://images.unsplash.com/photo-1608198093002-ad4e005484ec?w=400", Stock: 8},
}

const demoOrderID = "demo-123"

// MemoryStore serves static data so the service stays runnable without any
// infrastructure. Writes are acknowledged but nothing is persisted.
type MemoryStore struct{}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Configured() bool { return false }

func (s *MemoryStore) ListProducts(ctx context.Context, filter ProductFilter) ([]entity.Product, error) {
	out := make([]entity.Product, 0, len(demoProducts))
	for _, p := range demoProducts {
		if filter.Query != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(filter.Query)) {
			continue
		}
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		out = append(out, p)
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
	}
	return out, nil
}

func (s *MemoryStore) CreateOrder(ctx context.Context, req *entity.CreateOrderRequest) (*entity.OrderReceipt, error) {
	return &entity.OrderReceipt{
		Status:     "ok",
		OrderID:    demoOrderID,
		EtaMinutes: clampETA(req.DeliveryWindowMinutes),
		Tracking:   &entity.Tracking{Status: "PENDING"},
		Demo:       true,
	}, nil
}

// GetOrder returns the same canned status regardless of the identifier.
func (s *MemoryStore) GetOrder(ctx context.Context, orderID string) (*entity.Order, error) {
	return &entity.Order{
		OrderID:    orderID,
		Status:     "OUT_FOR_DELIVERY",
		EtaMinutes: 12,
	}, nil
}

func (s *MemoryStore) AdjustStock(ctx context.Context, productID string, delta int) (*entity.Ack, error) {
	return &entity.Ack{Status: "ok", Demo: true}, nil
}

func (s *MemoryStore) UpsertRiderLocation(ctx context.Context, loc *entity.RiderLocation) (*entity.Ack, error) {
	return &entity.Ack{Status: "ok", Demo: true}, nil
}

// clampETA bounds the requested delivery window to [10, 20] minutes.
func clampETA(window int) int {
	if window < 10 {
		return 10
	}
	if window > 20 {
		return 20
	}
	return window
}
