package api

import (
	"github.com/labstack/echo/v4"

	"quickcommerce/internal/entity"
	"quickcommerce/internal/service"
)

type RiderHandler struct {
	riderService *service.RiderService
}

func NewRiderHandler(riderService *service.RiderService) *RiderHandler {
	return &RiderHandler{riderService: riderService}
}

// UpsertLocation handles POST /api/rider/location.
func (h *RiderHandler) UpsertLocation(c echo.Context) error {
	loc := entity.RiderLocation{}
	if err := c.Bind(&loc); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}
	if loc.RiderID == "" {
		return c.JSON(400, map[string]string{"error": "rider_id is required"})
	}

	ack, err := h.riderService.UpsertLocation(c.Request().Context(), &loc)
	if err != nil {
		return err
	}
	return c.JSON(200, ack)
}
