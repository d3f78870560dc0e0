package features

import "farecast/internal/modules/trip"

// Decompose splits a pickup date and time into its numeric components.
// No time zone conversion is applied.
func Decompose(d trip.Date, c trip.Clock) Temporal {
	return Temporal{
		Year:   d.Year,
		Month:  int(d.Month),
		Day:    d.Day,
		Hour:   c.Hour,
		Minute: c.Minute,
	}
}
