package location

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"farecast/internal/types"
)

func TestDistanceAndDeltas_KnownDistances(t *testing.T) {
	tests := []struct {
		name        string
		lon1, lat1  float64
		lon2, lat2  float64
		wantKm      float64
		wantLonDiff float64
		wantLatDiff float64
		tolerance   float64
	}{
		{
			name: "same point",
			lon1: -73.9855, lat1: 40.7580,
			lon2: -73.9855, lat2: 40.7580,
			wantKm: 0, wantLonDiff: 0, wantLatDiff: 0,
			tolerance: 1e-9,
		},
		{
			name: "Queens short hop (form defaults)",
			lon1: -73.8443, lat1: 40.7213,
			lon2: -73.8416, lat2: 40.7122,
			wantKm: 1.04, wantLonDiff: 0.0027, wantLatDiff: 0.0091,
			tolerance: 0.01,
		},
		{
			name: "Midtown to JFK (~21km)",
			lon1: -73.9855, lat1: 40.7580,
			lon2: -73.7781, lat2: 40.6413,
			wantKm: 21.76, wantLonDiff: 0.2074, wantLatDiff: 0.1167,
			tolerance: 0.05,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			km, lonDiff, latDiff := DistanceAndDeltas(tt.lon1, tt.lat1, tt.lon2, tt.lat2)
			assert.InDelta(t, tt.wantKm, km, tt.tolerance)
			assert.InDelta(t, tt.wantLonDiff, lonDiff, 1e-4)
			assert.InDelta(t, tt.wantLatDiff, latDiff, 1e-4)
		})
	}
}

// The model was trained on cos(lat1)^2, so the result must differ from the
// textbook haversine whenever the latitudes differ.
func TestDistanceAndDeltas_UsesPickupLatitudeTwice(t *testing.T) {
	got, _, _ := DistanceAndDeltas(-74.0, 40.5, -73.0, 44.5)
	assert.InDelta(t, 452.7516, got, 1e-3)

	textbook := haversineTextbook(-74.0, 40.5, -73.0, 44.5)
	assert.InDelta(t, 452.2613, textbook, 1e-3)
	assert.Greater(t, math.Abs(got-textbook), 0.1)
}

func haversineTextbook(lon1, lat1, lon2, lat2 float64) float64 {
	r1, r2 := degreesToRadians(lat1), degreesToRadians(lat2)
	dLat := r2 - r1
	dLng := degreesToRadians(lon2) - degreesToRadians(lon1)
	a := math.Pow(math.Sin(dLat/2), 2) + math.Cos(r1)*math.Cos(r2)*math.Pow(math.Sin(dLng/2), 2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

func TestDistanceAndDeltas_IdenticalPoints(t *testing.T) {
	for _, p := range []types.Coordinate{
		{Lng: -73.8443, Lat: 40.7213},
		{Lng: -79.4554, Lat: 45.0042},
		{Lng: 0, Lat: 0},
		{Lng: 179.9, Lat: -89.9},
	} {
		km, lonDiff, latDiff := DistanceAndDeltas(p.Lng, p.Lat, p.Lng, p.Lat)
		assert.Zero(t, km)
		assert.Zero(t, lonDiff)
		assert.Zero(t, latDiff)
	}
}

func TestDistanceAndDeltas_Symmetry(t *testing.T) {
	d1, lon1, lat1 := DistanceAndDeltas(-73.99, 40.73, -73.87, 40.77)
	d2, lon2, lat2 := DistanceAndDeltas(-73.87, 40.77, -73.99, 40.73)

	assert.Equal(t, lon1, lon2)
	assert.Equal(t, lat1, lat2)
	// cos(lat1)^2 makes the distance depend slightly on which end is the pickup.
	assert.InEpsilon(t, d1, d2, 1e-3)
}

func TestDistanceAndDeltas_NonNegative(t *testing.T) {
	d, lonDiff, latDiff := DistanceAndDeltas(-71.5, 45.0, -79.4, 40.3)
	assert.GreaterOrEqual(t, d, 0.0)
	assert.GreaterOrEqual(t, lonDiff, 0.0)
	assert.GreaterOrEqual(t, latDiff, 0.0)
}

func TestDistanceAndDeltas_NearAntipodalIsFinite(t *testing.T) {
	d, _, _ := DistanceAndDeltas(0, 0, 179.999, 0)
	assert.False(t, math.IsNaN(d))
	assert.InDelta(t, math.Pi*earthRadiusKm, d, 1.0)
}

func TestBounds_Contains(t *testing.T) {
	r := NewYorkRegion
	assert.True(t, r.Contains(types.Coordinate{Lng: -73.8443, Lat: 40.7213}))
	assert.True(t, r.Contains(types.Coordinate{Lng: r.MinLng, Lat: r.MaxLat}))
	assert.False(t, r.Contains(types.Coordinate{Lng: -80, Lat: 41}))
	assert.False(t, r.Contains(types.Coordinate{Lng: -73, Lat: 46}))
}
