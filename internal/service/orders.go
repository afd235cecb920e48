package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/segmentio/kafka-go"

	"quickcommerce/internal/apperr"
	"quickcommerce/internal/entity"
	"quickcommerce/internal/repository"
)

const idempotentKeyTTL = 24 * time.Hour

// OrderService creates and looks up orders.
type OrderService struct {
	store       repository.Store
	kafkaWriter *kafka.Writer
	rdb         *redis.Client
}

// NewOrderService creates a new instance of OrderService. kafkaWriter and rdb
// may be nil; event publishing and idempotency checks are then skipped.
func NewOrderService(store repository.Store, kafkaWriter *kafka.Writer, rdb *redis.Client) *OrderService {
	return &OrderService{
		store:       store,
		kafkaWriter: kafkaWriter,
		rdb:         rdb,
	}
}

// CreateOrder persists a new order. A non-empty idempotentKey is claimed
// before the write; reuse fails with ErrDuplicate.
func (s *OrderService) CreateOrder(ctx context.Context, req *entity.CreateOrderRequest, idempotentKey string) (*entity.OrderReceipt, error) {
	if idempotentKey != "" {
		claimed, err := s.claimIdempotentKey(ctx, idempotentKey)
		if err != nil {
			return nil, err
		}
		if !claimed {
			return nil, fmt.Errorf("idempotent key %q already used: %w", idempotentKey, apperr.ErrDuplicate)
		}
	}

	receipt, err := s.store.CreateOrder(ctx, req)
	if err != nil {
		logger.Error().Err(err).Msg("Error creating order")
		return nil, err
	}

	ordersCreated.Inc()

	// The order is committed at this point; a failed publish is logged, not
	// surfaced.
	if err := s.publishOrderEvent(ctx, receipt); err != nil {
		logger.Warn().Err(err).Str("order_id", receipt.OrderID).Msg("Error publishing order event")
	}

	return receipt, nil
}

func (s *OrderService) GetOrder(ctx context.Context, orderID string) (*entity.Order, error) {
	order, err := s.store.GetOrder(ctx, orderID)
	if err != nil {
		logger.Error().Err(err).Str("order_id", orderID).Msg("Error getting order")
		return nil, err
	}
	return order, nil
}

func (s *OrderService) publishOrderEvent(ctx context.Context, receipt *entity.OrderReceipt) error {
	if s.kafkaWriter == nil {
		return nil
	}

	payload, err := json.Marshal(receipt)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(fmt.Sprintf("order-created-%s", receipt.OrderID)),
		Value: payload,
	}
	return s.kafkaWriter.WriteMessages(ctx, msg)
}

// claimIdempotentKey marks the key as seen for 24 hours. The claim and the
// check are one SETNX so concurrent submissions cannot both pass.
func (s *OrderService) claimIdempotentKey(ctx context.Context, key string) (bool, error) {
	if s.rdb == nil {
		return true, nil
	}
	redisKey := fmt.Sprintf("idempotent-key:%s", key)
	return s.rdb.SetNX(ctx, redisKey, "exists", idempotentKeyTTL).Result()
}
