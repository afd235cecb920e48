package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"

	"quickcommerce/internal/entity"
	"quickcommerce/internal/repository"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

const productCacheTTL = 1 * time.Minute

// CatalogService lists and filters the product catalog.
type CatalogService struct {
	store repository.Store
	rdb   *redis.Client
}

// NewCatalogService creates a new instance of CatalogService. rdb may be nil,
// in which case listings always go to the store.
func NewCatalogService(store repository.Store, rdb *redis.Client) *CatalogService {
	return &CatalogService{store: store, rdb: rdb}
}

// ListProducts returns the filtered catalog, reading through the Redis cache
// when one is configured.
func (s *CatalogService) ListProducts(ctx context.Context, filter repository.ProductFilter) ([]entity.Product, error) {
	if s.rdb == nil {
		return s.store.ListProducts(ctx, filter)
	}

	key := fmt.Sprintf("products:%s:%s:%d", filter.Query, filter.Category, filter.Limit)
	cached, err := s.rdb.Get(ctx, key).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		logger.Error().Err(err).Msg("Error reading product listing from cache")
	}
	if cached != "" {
		var products []entity.Product
		if err := json.Unmarshal([]byte(cached), &products); err == nil {
			return products, nil
		}
		logger.Warn().Str("key", key).Msg("Discarding malformed product cache entry")
	}

	products, err := s.store.ListProducts(ctx, filter)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing products")
		return nil, err
	}

	if payload, err := json.Marshal(products); err == nil {
		if err := s.rdb.Set(ctx, key, payload, productCacheTTL).Err(); err != nil {
			logger.Error().Err(err).Msg("Error caching product listing")
		}
	}
	return products, nil
}
