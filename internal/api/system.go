package api

import (
	"github.com/labstack/echo/v4"

	"quickcommerce/internal/repository"
)

// SystemHandler serves the liveness and diagnostics endpoints.
type SystemHandler struct {
	store       repository.Store
	storeURLSet bool
}

func NewSystemHandler(store repository.Store, storeURLSet bool) *SystemHandler {
	return &SystemHandler{store: store, storeURLSet: storeURLSet}
}

// Health handles GET /.
func (h *SystemHandler) Health(c echo.Context) error {
	return c.JSON(200, map[string]string{
		"service": "quickcommerce-api",
		"status":  "ok",
	})
}

// Diagnostics handles GET /test and reports whether the remote store is
// configured.
func (h *SystemHandler) Diagnostics(c echo.Context) error {
	storeStatus := "not configured (demo mode)"
	if h.store.Configured() {
		storeStatus = "configured"
	}
	return c.JSON(200, map[string]any{
		"backend":       "running",
		"store":         storeStatus,
		"store_url_set": h.storeURLSet,
	})
}
