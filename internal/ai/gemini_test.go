package ai

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDraft_Complete(t *testing.T) {
	raw := "```json\n" + `{"pickup_address":"Penn Station, New York, NY","dropoff_address":"JFK Airport, New York, NY",
"passenger_count":2,"iso_time":"2024-05-01T08:30:00","reply":"Got it."}` + "\n```"

	d, err := decodeDraft(raw)
	require.NoError(t, err)
	assert.Equal(t, "Penn Station, New York, NY", *d.PickupAddress)
	assert.Equal(t, 2, d.PassengerCount)
	assert.Empty(t, d.Missing())

	pt, err := d.PickupTime()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 1, 8, 30, 0, 0, time.UTC), pt)
}

func TestDecodeDraft_DefaultsPassengers(t *testing.T) {
	d, err := decodeDraft(`{"dropoff_address":"Times Square","reply":"Where from?"}`)
	require.NoError(t, err)
	assert.Equal(t, 1, d.PassengerCount)
	assert.Equal(t, []string{"pickup_address", "iso_time"}, d.Missing())
}

func TestDecodeDraft_BadJSON(t *testing.T) {
	_, err := decodeDraft("I am not JSON")
	assert.Error(t, err)
}

func TestPickupTime_KeepsWallClock(t *testing.T) {
	s := "2024-05-01T08:30:00-04:00"
	d := TripDraft{ISOTime: &s}
	pt, err := d.PickupTime()
	require.NoError(t, err)
	assert.Equal(t, 8, pt.Hour())
	assert.Equal(t, 30, pt.Minute())
}

func TestMissing_UnparseableTime(t *testing.T) {
	a, b, ts := "A", "B", "next tuesday"
	d := TripDraft{PickupAddress: &a, DropoffAddress: &b, ISOTime: &ts}
	assert.Equal(t, []string{"iso_time"}, d.Missing())
}

func TestBuildSystemPrompt(t *testing.T) {
	p := buildSystemPrompt(map[string]string{"current_time": "2024-05-01T07:00:00"})
	assert.Contains(t, p, "2024-05-01T07:00:00")
	assert.Contains(t, buildSystemPrompt(nil), "UNKNOWN_TIME")
}
