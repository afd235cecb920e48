package api

import "github.com/labstack/echo/v4"

// Handlers groups every handler wired at startup.
type Handlers struct {
	System    *SystemHandler
	Products  *ProductHandler
	Orders    *OrderHandler
	Inventory *InventoryHandler
	Route     *RouteHandler
	Rider     *RiderHandler
}

// Register mounts the HTTP surface on e.
func Register(e *echo.Echo, h Handlers) {
	e.GET("/", h.System.Health)
	e.GET("/test", h.System.Diagnostics)

	e.GET("/api/products", h.Products.ListProducts)
	e.POST("/api/inventory/update", h.Inventory.UpdateInventory)
	e.POST("/api/orders", h.Orders.CreateOrder)
	e.GET("/api/orders/:order_id", h.Orders.GetOrder)
	e.GET("/api/route", h.Route.Route)
	e.POST("/api/rider/location", h.Rider.UpsertLocation)
}
