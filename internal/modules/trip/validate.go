// README: Input boundary checks applied before a request reaches the feature builder.
package trip

import (
	"errors"
	"fmt"

	"farecast/internal/modules/location"
	"farecast/internal/types"
)

var ErrInvalidRequest = errors.New("invalid trip request")

// NewRequest checks every field against the service region and passenger
// limits and reports all violations at once.
func NewRequest(pickup, dropoff types.Coordinate, passengers int, date Date, clock Clock) (Request, error) {
	r := Request{
		Pickup:     pickup,
		Dropoff:    dropoff,
		Passengers: passengers,
		Date:       date,
		Clock:      clock,
	}
	if err := Validate(r); err != nil {
		return Request{}, err
	}
	return r, nil
}

func Validate(r Request) error {
	region := location.NewYorkRegion
	var errs []error
	check := func(ok bool, field string, v float64, lo, hi float64) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %s %.4f outside [%.4f, %.4f]", ErrInvalidRequest, field, v, lo, hi))
		}
	}
	check(region.ContainsLng(r.Pickup.Lng), "pickup_longitude", r.Pickup.Lng, region.MinLng, region.MaxLng)
	check(region.ContainsLat(r.Pickup.Lat), "pickup_latitude", r.Pickup.Lat, region.MinLat, region.MaxLat)
	check(region.ContainsLng(r.Dropoff.Lng), "dropoff_longitude", r.Dropoff.Lng, region.MinLng, region.MaxLng)
	check(region.ContainsLat(r.Dropoff.Lat), "dropoff_latitude", r.Dropoff.Lat, region.MinLat, region.MaxLat)

	if r.Passengers < MinPassengers || r.Passengers > MaxPassengers {
		errs = append(errs, fmt.Errorf("%w: passenger_count %d outside [%d, %d]", ErrInvalidRequest, r.Passengers, MinPassengers, MaxPassengers))
	}
	if r.Clock.Hour < 0 || r.Clock.Hour > 23 || r.Clock.Minute < 0 || r.Clock.Minute > 59 {
		errs = append(errs, fmt.Errorf("%w: pickup_time %s", ErrInvalidRequest, r.Clock))
	}
	if !validDate(r.Date) {
		errs = append(errs, fmt.Errorf("%w: pickup_date %s", ErrInvalidRequest, r.Date))
	}
	return errors.Join(errs...)
}

func validDate(d Date) bool {
	if d.Month < 1 || d.Month > 12 || d.Day < 1 {
		return false
	}
	_, err := ParseDate(d.String())
	return err == nil
}
