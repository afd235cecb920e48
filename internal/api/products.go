package api

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"quickcommerce/internal/entity"
	"quickcommerce/internal/repository"
	"quickcommerce/internal/service"
)

const defaultProductLimit = 50

type ProductHandler struct {
	catalogService *service.CatalogService
}

func NewProductHandler(catalogService *service.CatalogService) *ProductHandler {
	return &ProductHandler{catalogService: catalogService}
}

// ListProducts handles GET /api/products --> q, category, limit (default 50)
func (h *ProductHandler) ListProducts(c echo.Context) error {
	filter := repository.ProductFilter{
		Query:    c.QueryParam("q"),
		Category: c.QueryParam("category"),
		Limit:    defaultProductLimit,
	}
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return c.JSON(400, map[string]string{"error": "Invalid limit"})
		}
		filter.Limit = limit
	}

	products, err := h.catalogService.ListProducts(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	if products == nil {
		products = []entity.Product{}
	}
	return c.JSON(200, products)
}
