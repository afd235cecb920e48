package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ordersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "quickcommerce_orders_created_total",
		Help: "Orders accepted by the order service.",
	})
	stockAdjustments = promauto.NewCounter(prometheus.CounterOpts{
		Name: "quickcommerce_stock_adjustments_total",
		Help: "Stock delta adjustments forwarded to the store.",
	})
	routeRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quickcommerce_route_requests_total",
		Help: "Routing proxy requests by outcome.",
	}, []string{"outcome"})
)
