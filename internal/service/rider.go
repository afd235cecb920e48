package service

import (
	"context"

	"quickcommerce/internal/entity"
	"quickcommerce/internal/repository"
)

// RiderService records rider last-known positions. No history is kept; each
// upsert overwrites the rider's previous row.
type RiderService struct {
	store repository.Store
}

func NewRiderService(store repository.Store) *RiderService {
	return &RiderService{store: store}
}

func (s *RiderService) UpsertLocation(ctx context.Context, loc *entity.RiderLocation) (*entity.Ack, error) {
	ack, err := s.store.UpsertRiderLocation(ctx, loc)
	if err != nil {
		logger.Error().Err(err).Str("rider_id", loc.RiderID).Msg("Error upserting rider location")
		return nil, err
	}
	return ack, nil
}
