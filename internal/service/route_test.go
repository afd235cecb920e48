package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickcommerce/internal/apperr"
)

func TestRouteRelaysUpstreamBody(t *testing.T) {
	const geometry = `{"code":"Ok","routes":[{"geometry":{"type":"LineString"}}]}`

	var gotPath, gotQuery string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(geometry))
	}))
	defer upstream.Close()

	svc := NewRouteService(upstream.URL)
	body, err := svc.Route(context.Background(), "77.59,12.97", "77.61,12.99")
	require.NoError(t, err)

	assert.Equal(t, geometry, string(body))
	assert.Equal(t, "/route/v1/driving/77.59,12.97;77.61,12.99", gotPath)
	assert.Equal(t, "overview=full&geometries=geojson", gotQuery)
}

func TestRouteNonSuccessUpstreamFailsWithUpstreamError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer upstream.Close()

	svc := NewRouteService(upstream.URL)
	body, err := svc.Route(context.Background(), "77.59,12.97", "77.61,12.99")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrUpstream)
	assert.Nil(t, body)
}

func TestRouteUnreachableUpstreamFailsWithUpstreamError(t *testing.T) {
	svc := NewRouteService("http://127.0.0.1:1")

	_, err := svc.Route(context.Background(), "77.59,12.97", "77.61,12.99")
	assert.ErrorIs(t, err, apperr.ErrUpstream)
}

func TestRouteRejectsMalformedCoordinatePairs(t *testing.T) {
	calls := 0
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer upstream.Close()

	svc := NewRouteService(upstream.URL)
	for _, pair := range []string{"77.59", "a,b", "1,2,3", ""} {
		_, err := svc.Route(context.Background(), pair, "77.61,12.99")
		assert.ErrorIs(t, err, apperr.ErrInvalid, "start %q", pair)
	}
	_, err := svc.Route(context.Background(), "77.59,12.97", "not-a-pair")
	assert.ErrorIs(t, err, apperr.ErrInvalid)

	assert.Zero(t, calls, "malformed input must not reach the upstream")
}
