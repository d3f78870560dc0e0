// README: Feature vector builder composing the geo and temporal components.
package features

import (
	"farecast/internal/modules/location"
	"farecast/internal/modules/trip"
)

func Derive(r trip.Request) Derived {
	km, lonDiff, latDiff := location.DistanceAndDeltas(r.Pickup.Lng, r.Pickup.Lat, r.Dropoff.Lng, r.Dropoff.Lat)
	return Derived{
		DistanceKm: km,
		LonDiff:    lonDiff,
		LatDiff:    latDiff,
		Temporal:   Decompose(r.Date, r.Clock),
	}
}

// Build assembles the model input for r in Columns order.
func Build(r trip.Request) Vector {
	return Assemble(r, Derive(r))
}

func Assemble(r trip.Request, d Derived) Vector {
	return Vector{
		r.Pickup.Lng,
		r.Pickup.Lat,
		r.Dropoff.Lng,
		r.Dropoff.Lat,
		float64(r.Passengers),
		float64(d.Year),
		float64(d.Month),
		float64(d.Day),
		float64(d.Hour),
		float64(d.Minute),
		d.DistanceKm,
		d.LonDiff,
		d.LatDiff,
	}
}
