// README: Trip request value object handed to the feature builder.
package trip

import (
	"fmt"
	"time"

	"farecast/internal/types"
)

const (
	MinPassengers = 1
	MaxPassengers = 6

	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// Date is a calendar date without a time zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// Clock is a 24h wall-clock time with minute resolution.
type Clock struct {
	Hour   int
	Minute int
}

// Request is one fare prediction input. Build it with NewRequest so the
// input boundary has been checked; it is passed and stored by value.
type Request struct {
	Pickup     types.Coordinate
	Dropoff    types.Coordinate
	Passengers int
	Date       Date
	Clock      Clock
}

// ParseDate accepts YYYY-MM-DD and rejects impossible dates (2009-02-30).
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: pickup_date %q: want YYYY-MM-DD", ErrInvalidRequest, s)
	}
	return DateOf(t), nil
}

// ParseClock accepts HH:MM in 24h form.
func ParseClock(s string) (Clock, error) {
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return Clock{}, fmt.Errorf("%w: pickup_time %q: want HH:MM", ErrInvalidRequest, s)
	}
	return ClockOf(t), nil
}

// DateOf takes the wall-clock date of t, ignoring its location.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// ClockOf takes the wall-clock hour and minute of t, ignoring its location.
func ClockOf(t time.Time) Clock {
	return Clock{Hour: t.Hour(), Minute: t.Minute()}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Defaults are the values the form opens with.
func Defaults() Request {
	return Request{
		Pickup:     types.Coordinate{Lng: -73.8443, Lat: 40.7213},
		Dropoff:    types.Coordinate{Lng: -73.8416, Lat: 40.7122},
		Passengers: 1,
		Date:       Date{Year: 2009, Month: time.June, Day: 15},
		Clock:      Clock{Hour: 17, Minute: 26},
	}
}
