package api

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"quickcommerce/internal/apperr"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// HTTPErrorHandler maps the service error taxonomy onto HTTP statuses and
// renders every failure as {"error": detail}. Anything outside the taxonomy
// propagates as a 500.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	detail := err.Error()

	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		code = httpErr.Code
		detail = fmt.Sprintf("%v", httpErr.Message)
	case errors.Is(err, apperr.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, apperr.ErrUpstream):
		code = http.StatusBadGateway
	case errors.Is(err, apperr.ErrNotConfigured):
		code = http.StatusNotImplemented
	case errors.Is(err, apperr.ErrDuplicate):
		code = http.StatusConflict
	case errors.Is(err, apperr.ErrInvalid):
		code = http.StatusBadRequest
	}

	if code == http.StatusInternalServerError {
		logger.Error().Err(err).Str("path", c.Request().URL.Path).Msg("Unhandled request error")
	}

	if err := c.JSON(code, map[string]string{"error": detail}); err != nil {
		logger.Error().Err(err).Msg("Error writing error response")
	}
}
