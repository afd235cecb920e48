package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"quickcommerce/internal/apperr"
)

const routeTimeout = 10 * time.Second

// RouteService proxies route computation to an OSRM-compatible backend. It
// adds no routing logic of its own: connection, timeout, and error
// translation only.
type RouteService struct {
	baseURL string
	client  *http.Client
}

func NewRouteService(baseURL string) *RouteService {
	return &RouteService{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: routeTimeout},
	}
}

// Route forwards both coordinate pairs to the routing backend and relays its
// GeoJSON body untouched. Any non-200 upstream answer fails with ErrUpstream.
func (s *RouteService) Route(ctx context.Context, start, end string) (json.RawMessage, error) {
	startPair, err := parseCoordPair(start)
	if err != nil {
		return nil, err
	}
	endPair, err := parseCoordPair(end)
	if err != nil {
		return nil, err
	}

	routeURL := fmt.Sprintf("%s/route/v1/driving/%s;%s?overview=full&geometries=geojson", s.baseURL, startPair, endPair)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, routeURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		routeRequests.WithLabelValues("unreachable").Inc()
		logger.Error().Err(err).Msg("Error reaching routing backend")
		return nil, fmt.Errorf("routing backend unreachable: %w", apperr.ErrUpstream)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		routeRequests.WithLabelValues("upstream_error").Inc()
		return nil, fmt.Errorf("routing backend returned %d: %w", resp.StatusCode, apperr.ErrUpstream)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	routeRequests.WithLabelValues("ok").Inc()
	return body, nil
}

// parseCoordPair validates a "lon,lat" pair and reformats it so only numeric
// coordinates reach the upstream URL path.
func parseCoordPair(pair string) (string, error) {
	parts := strings.Split(pair, ",")
	if len(parts) != 2 {
		return "", fmt.Errorf("coordinate pair %q must be \"lon,lat\": %w", pair, apperr.ErrInvalid)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return "", fmt.Errorf("longitude %q: %w", parts[0], apperr.ErrInvalid)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return "", fmt.Errorf("latitude %q: %w", parts[1], apperr.ErrInvalid)
	}
	return fmt.Sprintf("%g,%g", lon, lat), nil
}
