package features

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farecast/internal/modules/location"
	"farecast/internal/modules/trip"
	"farecast/internal/types"
)

func TestDecompose(t *testing.T) {
	got := Decompose(trip.Date{Year: 2009, Month: time.June, Day: 15}, trip.Clock{Hour: 17, Minute: 26})
	assert.Equal(t, Temporal{Year: 2009, Month: 6, Day: 15, Hour: 17, Minute: 26}, got)
}

func TestDecompose_Midnight(t *testing.T) {
	got := Decompose(trip.Date{Year: 2012, Month: time.February, Day: 29}, trip.Clock{})
	assert.Equal(t, Temporal{Year: 2012, Month: 2, Day: 29}, got)
}

func TestBuild_ColumnOrder(t *testing.T) {
	r := trip.Defaults()
	v := Build(r)

	require.Len(t, v.Slice(), 13)
	km, lonDiff, latDiff := location.DistanceAndDeltas(-73.8443, 40.7213, -73.8416, 40.7122)
	want := Vector{
		-73.8443, 40.7213, -73.8416, 40.7122,
		1,
		2009, 6, 15, 17, 26,
		km, lonDiff, latDiff,
	}
	assert.Equal(t, want, v)
	assert.InDelta(t, 1.04, v[10], 0.01)
}

func TestBuild_Deterministic(t *testing.T) {
	r := trip.Request{
		Pickup:     types.Coordinate{Lng: -73.99, Lat: 40.73},
		Dropoff:    types.Coordinate{Lng: -73.87, Lat: 40.77},
		Passengers: 4,
		Date:       trip.Date{Year: 2015, Month: time.January, Day: 27},
		Clock:      trip.Clock{Hour: 13, Minute: 8},
	}
	assert.Equal(t, Build(r), Build(r))
	assert.Equal(t, 4.0, Build(r)[4])
}

func TestColumns_MatchTrainingLayout(t *testing.T) {
	assert.Equal(t, "pickup_longitude", Columns[0])
	assert.Equal(t, "passenger_count", Columns[4])
	assert.Equal(t, "minute", Columns[9])
	assert.Equal(t, "lat_diff", Columns[Width-1])
}

func TestSlice_IsACopy(t *testing.T) {
	v := Build(trip.Defaults())
	s := v.Slice()
	s[0] = 0
	assert.Equal(t, -73.8443, v[0])
}

func TestSummarize(t *testing.T) {
	r := trip.Defaults()
	s := Summarize(r, Derive(r))
	assert.Equal(t, 0.0027, s.LonDiff)
	assert.Equal(t, 0.0091, s.LatDiff)
	assert.Equal(t, 1.0371, s.DistanceKm)
	assert.Equal(t, "2009-06-15", s.PickupDate)
	assert.Equal(t, "1726 hrs", s.PickupTime)
}
