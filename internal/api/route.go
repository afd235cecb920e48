package api

import (
	"github.com/labstack/echo/v4"

	"quickcommerce/internal/service"
)

type RouteHandler struct {
	routeService *service.RouteService
}

func NewRouteHandler(routeService *service.RouteService) *RouteHandler {
	return &RouteHandler{routeService: routeService}
}

// Route handles GET /api/route --> start="lon,lat", end="lon,lat"
func (h *RouteHandler) Route(c echo.Context) error {
	start := c.QueryParam("start")
	end := c.QueryParam("end")
	if start == "" || end == "" {
		return c.JSON(400, map[string]string{"error": "start and end are required"})
	}

	geometry, err := h.routeService.Route(c.Request().Context(), start, end)
	if err != nil {
		return err
	}
	return c.JSONBlob(200, geometry)
}
