package maps

import (
	"context"
	"errors"
	"fmt"

	"googlemaps.github.io/maps"

	"farecast/internal/modules/location"
	"farecast/internal/types"
)

var (
	ErrNotFound    = errors.New("address not found")
	ErrOutOfRegion = errors.New("address outside service region")
)

// GeocodeService resolves free-form addresses with the Google Geocoding API.
type GeocodeService struct {
	client *maps.Client
	region location.Bounds
}

// NewGeocodeService creates a new GeocodeService with the given API Key.
// Extra client options (e.g. maps.WithBaseURL) are passed through.
func NewGeocodeService(apiKey string, region location.Bounds, opts ...maps.ClientOption) (*GeocodeService, error) {
	opts = append([]maps.ClientOption{maps.WithAPIKey(apiKey)}, opts...)
	client, err := maps.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &GeocodeService{client: client, region: region}, nil
}

// Resolve returns the first result for address, biased to the service
// region. Results outside the region are rejected.
func (s *GeocodeService) Resolve(ctx context.Context, address string) (types.Coordinate, error) {
	r := &maps.GeocodingRequest{
		Address: address,
		Bounds: &maps.LatLngBounds{
			NorthEast: maps.LatLng{Lat: s.region.MaxLat, Lng: s.region.MaxLng},
			SouthWest: maps.LatLng{Lat: s.region.MinLat, Lng: s.region.MinLng},
		},
		Region: "us",
	}

	results, err := s.client.Geocode(ctx, r)
	if err != nil {
		return types.Coordinate{}, fmt.Errorf("maps api error: %w", err)
	}
	if len(results) == 0 {
		return types.Coordinate{}, fmt.Errorf("%w: %q", ErrNotFound, address)
	}

	loc := results[0].Geometry.Location
	c := types.Coordinate{Lng: loc.Lng, Lat: loc.Lat}
	if !s.region.Contains(c) {
		return types.Coordinate{}, fmt.Errorf("%w: %q resolved to %.4f,%.4f", ErrOutOfRegion, address, c.Lat, c.Lng)
	}
	return c, nil
}
