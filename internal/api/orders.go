package api

import (
	"github.com/labstack/echo/v4"

	"quickcommerce/internal/entity"
	"quickcommerce/internal/service"
)

type OrderHandler struct {
	orderService *service.OrderService
}

func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// CreateOrder handles POST /api/orders. An optional Idempotent-Key header
// guards against duplicate submissions.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	// Defaults apply when the payload omits the fields.
	req := entity.CreateOrderRequest{
		PaymentMethod:         "COD",
		DeliveryWindowMinutes: 20,
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}
	if req.Address == "" {
		return c.JSON(400, map[string]string{"error": "address is required"})
	}
	if len(req.Coordinates) != 0 && len(req.Coordinates) != 2 {
		return c.JSON(400, map[string]string{"error": "coordinates must be [lon, lat]"})
	}
	for _, item := range req.Items {
		if item.ProductID == "" || item.Quantity < 1 {
			return c.JSON(400, map[string]string{"error": "each item needs a product_id and a quantity of at least 1"})
		}
	}
	if req.PaymentMethod == "" {
		req.PaymentMethod = "COD"
	}

	idempotentKey := c.Request().Header.Get("Idempotent-Key")

	receipt, err := h.orderService.CreateOrder(c.Request().Context(), &req, idempotentKey)
	if err != nil {
		return err
	}
	return c.JSON(200, receipt)
}

// GetOrder handles GET /api/orders/:order_id.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	order, err := h.orderService.GetOrder(c.Request().Context(), c.Param("order_id"))
	if err != nil {
		return err
	}
	return c.JSON(200, order)
}
