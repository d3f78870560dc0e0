// README: Held-out sample rows scored for the examples table.
package samples

import (
	"errors"

	"farecast/internal/modules/trip"
)

const (
	ColKey              = "key"
	ColPickupDatetime   = "pickup_datetime"
	ColPickupLongitude  = "pickup_longitude"
	ColPickupLatitude   = "pickup_latitude"
	ColDropoffLongitude = "dropoff_longitude"
	ColDropoffLatitude  = "dropoff_latitude"
	ColPassengerCount   = "passenger_count"
)

var requiredColumns = []string{
	ColPickupDatetime,
	ColPickupLongitude,
	ColPickupLatitude,
	ColDropoffLongitude,
	ColDropoffLatitude,
	ColPassengerCount,
}

var (
	ErrMissingColumn = errors.New("missing required column")
	ErrBadRow        = errors.New("malformed row")
)

// Row is one parsed sample. Line is the 1-based line number in the file
// (the header is line 1). Sample rows are not checked against the service
// region.
type Row struct {
	Line           int          `json:"line"`
	Key            string       `json:"key,omitempty"`
	PickupDatetime string       `json:"pickup_datetime"`
	Request        trip.Request `json:"-"`
}

// Skipped records a row that could not be parsed.
type Skipped struct {
	Line   int    `json:"line"`
	Key    string `json:"key,omitempty"`
	Reason string `json:"reason"`
}

type Table struct {
	Rows    []Row
	Skipped []Skipped
}
