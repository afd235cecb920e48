package main

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
	"golang.org/x/time/rate"

	"quickcommerce/internal/api"
	"quickcommerce/internal/config"
	"quickcommerce/internal/repository"
	"quickcommerce/internal/service"
	"quickcommerce/migrations"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

func connectStore(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	var pingErr error
	for i := 0; i < 5; i++ {
		if pingErr = db.Ping(); pingErr == nil {
			return db, nil
		}
		logger.Warn().Err(pingErr).Msgf("Retry %d: remote store not reachable", i+1)
		time.Sleep(3 * time.Second)
	}
	return nil, fmt.Errorf("remote store unreachable after retries: %w", pingErr)
}

func main() {
	cfg := config.Load()

	// The store implementation is chosen once per process lifetime; changed
	// environment variables require a restart.
	var store repository.Store
	if cfg.StoreConfigured() {
		dsn, err := cfg.StoreDSN()
		if err != nil {
			logger.Fatal().Err(err).Msg("Invalid store configuration")
		}
		db, err := connectStore(dsn)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to connect to remote store")
		}
		if err := migrations.AutoMigrate(db); err != nil {
			logger.Fatal().Err(err).Msg("Failed to bootstrap store schema")
		}
		store = repository.NewPostgresStore(db)
		logger.Info().Msg("Remote store configured")
	} else {
		store = repository.NewMemoryStore()
		logger.Warn().Msg("Remote store not configured, serving demo data")
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr: cfg.RedisAddr,
		})
	}

	var kafkaWriter *kafka.Writer
	if len(cfg.KafkaBrokers) > 0 {
		kafkaWriter = config.NewKafkaWriter(cfg.KafkaBrokers, "order-events")
	}

	catalogService := service.NewCatalogService(store, rdb)
	orderService := service.NewOrderService(store, kafkaWriter, rdb)
	inventoryService := service.NewInventoryService(store)
	routeService := service.NewRouteService(cfg.OSRMBaseURL)
	riderService := service.NewRiderService(store)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = api.HTTPErrorHandler

	limiterConfig := middleware.RateLimiterConfig{
		Skipper: middleware.DefaultSkipper,
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(
			middleware.RateLimiterMemoryStoreConfig{
				Rate:      rate.Limit(20),
				Burst:     50,
				ExpiresIn: 3 * time.Minute,
			}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(429, map[string]string{"error": "rate limit exceeded"})
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return c.JSON(429, map[string]string{"error": "rate limit exceeded"})
		},
	}

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RateLimiterWithConfig(limiterConfig))

	api.Register(e, api.Handlers{
		System:    api.NewSystemHandler(store, cfg.StoreURL != ""),
		Products:  api.NewProductHandler(catalogService),
		Orders:    api.NewOrderHandler(orderService),
		Inventory: api.NewInventoryHandler(inventoryService),
		Route:     api.NewRouteHandler(routeService),
		Rider:     api.NewRiderHandler(riderService),
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
