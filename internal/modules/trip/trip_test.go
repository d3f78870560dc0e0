package trip

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farecast/internal/types"
)

func TestDefaults_AreValid(t *testing.T) {
	d := Defaults()
	require.NoError(t, Validate(d))
	assert.Equal(t, "2009-06-15", d.Date.String())
	assert.Equal(t, "17:26", d.Clock.String())
}

func TestNewRequest_RejectsOutOfRegion(t *testing.T) {
	d := Defaults()
	_, err := NewRequest(types.Coordinate{Lng: -80.0, Lat: 40.7}, d.Dropoff, 1, d.Date, d.Clock)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidRequest))
	assert.Contains(t, err.Error(), "pickup_longitude")
}

func TestNewRequest_ReportsEveryViolation(t *testing.T) {
	d := Defaults()
	_, err := NewRequest(
		types.Coordinate{Lng: -73.9, Lat: 39.0},
		types.Coordinate{Lng: -70.0, Lat: 46.0},
		7, d.Date, d.Clock,
	)
	require.Error(t, err)
	msg := err.Error()
	for _, field := range []string{"pickup_latitude", "dropoff_longitude", "dropoff_latitude", "passenger_count"} {
		assert.Contains(t, msg, field)
	}
	assert.NotContains(t, msg, "pickup_longitude")
}

func TestNewRequest_PassengerLimits(t *testing.T) {
	d := Defaults()
	for _, n := range []int{MinPassengers, MaxPassengers} {
		_, err := NewRequest(d.Pickup, d.Dropoff, n, d.Date, d.Clock)
		assert.NoError(t, err, "passengers=%d", n)
	}
	for _, n := range []int{0, -1, MaxPassengers + 1} {
		_, err := NewRequest(d.Pickup, d.Dropoff, n, d.Date, d.Clock)
		assert.ErrorIs(t, err, ErrInvalidRequest, "passengers=%d", n)
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2009-06-15")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2009, Month: time.June, Day: 15}, got)

	for _, bad := range []string{"2009-02-30", "15/06/2009", "", "2009-13-01"} {
		_, err := ParseDate(bad)
		assert.ErrorIs(t, err, ErrInvalidRequest, bad)
	}
}

func TestParseClock(t *testing.T) {
	got, err := ParseClock("17:26")
	require.NoError(t, err)
	assert.Equal(t, Clock{Hour: 17, Minute: 26}, got)

	for _, bad := range []string{"24:00", "17:60", "5pm", ""} {
		_, err := ParseClock(bad)
		assert.ErrorIs(t, err, ErrInvalidRequest, bad)
	}
}

func TestValidate_RejectsImpossibleDate(t *testing.T) {
	r := Defaults()
	r.Date = Date{Year: 2010, Month: time.February, Day: 29}
	assert.ErrorIs(t, Validate(r), ErrInvalidRequest)
}
