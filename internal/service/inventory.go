package service

import (
	"context"

	"quickcommerce/internal/entity"
	"quickcommerce/internal/repository"
)

// InventoryService applies delta-based stock mutations. Atomicity and any
// non-negative floor live in the remote adjust_stock procedure, not here.
type InventoryService struct {
	store repository.Store
}

func NewInventoryService(store repository.Store) *InventoryService {
	return &InventoryService{store: store}
}

func (s *InventoryService) AdjustStock(ctx context.Context, productID string, delta int) (*entity.Ack, error) {
	ack, err := s.store.AdjustStock(ctx, productID, delta)
	if err != nil {
		logger.Error().Err(err).Str("product_id", productID).Int("delta", delta).Msg("Error adjusting stock")
		return nil, err
	}
	stockAdjustments.Inc()
	return ack, nil
}
