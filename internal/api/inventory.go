package api

import (
	"github.com/labstack/echo/v4"

	"quickcommerce/internal/service"
)

type InventoryHandler struct {
	inventoryService *service.InventoryService
}

func NewInventoryHandler(inventoryService *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// UpdateInventory handles POST /api/inventory/update. product_id and delta
// are accepted as query parameters or as a JSON body; body values win.
func (h *InventoryHandler) UpdateInventory(c echo.Context) error {
	payload := struct {
		ProductID string `json:"product_id" query:"product_id"`
		Delta     *int   `json:"delta" query:"delta"`
	}{}

	binder := &echo.DefaultBinder{}
	if err := binder.BindQueryParams(c, &payload); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid query parameters"})
	}
	if c.Request().ContentLength > 0 {
		if err := binder.BindBody(c, &payload); err != nil {
			return c.JSON(400, map[string]string{"error": "Invalid request payload"})
		}
	}
	if payload.ProductID == "" || payload.Delta == nil {
		return c.JSON(400, map[string]string{"error": "product_id and delta are required"})
	}

	ack, err := h.inventoryService.AdjustStock(c.Request().Context(), payload.ProductID, *payload.Delta)
	if err != nil {
		return err
	}
	return c.JSON(200, ack)
}
