package features

import (
	"fmt"
	"math"

	"farecast/internal/modules/trip"
)

// Summary is the human-facing view of a request and its derived features.
type Summary struct {
	PickupLongitude  float64 `json:"pickup_longitude"`
	DropoffLongitude float64 `json:"dropoff_longitude"`
	LonDiff          float64 `json:"longitude_difference"`
	PickupLatitude   float64 `json:"pickup_latitude"`
	DropoffLatitude  float64 `json:"dropoff_latitude"`
	LatDiff          float64 `json:"latitude_difference"`
	Passengers       int     `json:"passenger_count"`
	PickupDate       string  `json:"pickup_date"`
	PickupTime       string  `json:"pickup_time"`
	DistanceKm       float64 `json:"travel_distance_km"`
}

// Summarize rounds coordinates and distances to 4 decimal places.
func Summarize(r trip.Request, d Derived) Summary {
	return Summary{
		PickupLongitude:  round4(r.Pickup.Lng),
		DropoffLongitude: round4(r.Dropoff.Lng),
		LonDiff:          round4(d.LonDiff),
		PickupLatitude:   round4(r.Pickup.Lat),
		DropoffLatitude:  round4(r.Dropoff.Lat),
		LatDiff:          round4(d.LatDiff),
		Passengers:       r.Passengers,
		PickupDate:       r.Date.String(),
		PickupTime:       fmt.Sprintf("%02d%02d hrs", r.Clock.Hour, r.Clock.Minute),
		DistanceKm:       round4(d.DistanceKm),
	}
}

func round4(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}
