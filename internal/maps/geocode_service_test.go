package maps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"googlemaps.github.io/maps"

	"farecast/internal/modules/location"
)

func newTestService(t *testing.T, body string) *GeocodeService {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	svc, err := NewGeocodeService("test-key", location.NewYorkRegion, maps.WithBaseURL(srv.URL))
	require.NoError(t, err)
	return svc
}

func TestResolve_InRegion(t *testing.T) {
	svc := newTestService(t, `{"status":"OK","results":[{"formatted_address":"JFK Airport, Queens, NY","geometry":{"location":{"lat":40.6413,"lng":-73.7781}}}]}`)
	c, err := svc.Resolve(context.Background(), "JFK")
	require.NoError(t, err)
	assert.Equal(t, -73.7781, c.Lng)
	assert.Equal(t, 40.6413, c.Lat)
}

func TestResolve_OutOfRegion(t *testing.T) {
	svc := newTestService(t, `{"status":"OK","results":[{"geometry":{"location":{"lat":34.0522,"lng":-118.2437}}}]}`)
	_, err := svc.Resolve(context.Background(), "Los Angeles")
	assert.ErrorIs(t, err, ErrOutOfRegion)
}

func TestResolve_NoResults(t *testing.T) {
	svc := newTestService(t, `{"status":"ZERO_RESULTS","results":[]}`)
	_, err := svc.Resolve(context.Background(), "nowhere at all")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolve_APIError(t *testing.T) {
	svc := newTestService(t, `{"status":"REQUEST_DENIED","error_message":"bad key","results":[]}`)
	_, err := svc.Resolve(context.Background(), "JFK")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}
