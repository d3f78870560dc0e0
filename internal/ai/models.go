package ai

import (
	"time"
)

// TripDraft captures the structured output from the AI model.
type TripDraft struct {
	// PickupAddress and DropoffAddress are free-form places to geocode.
	PickupAddress  *string `json:"pickup_address,omitempty"`
	DropoffAddress *string `json:"dropoff_address,omitempty"`

	// PassengerCount defaults to 1 when the rider did not say.
	PassengerCount int `json:"passenger_count"`

	// ISOTime is the pickup time as YYYY-MM-DDTHH:mm:ss, resolved against
	// the current time given in context.
	ISOTime *string `json:"iso_time,omitempty"`

	// Reply is a short, polite response to the rider.
	Reply string `json:"reply"`
}

// Missing lists the fields still needed before a fare can be quoted.
func (d TripDraft) Missing() []string {
	var missing []string
	if blank(d.PickupAddress) {
		missing = append(missing, "pickup_address")
	}
	if blank(d.DropoffAddress) {
		missing = append(missing, "dropoff_address")
	}
	if blank(d.ISOTime) {
		missing = append(missing, "iso_time")
	} else if _, err := d.PickupTime(); err != nil {
		missing = append(missing, "iso_time")
	}
	return missing
}

// PickupTime parses ISOTime keeping its wall-clock value.
func (d TripDraft) PickupTime() (time.Time, error) {
	if d.ISOTime == nil {
		return time.Time{}, ErrIncompleteTrip
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04"} {
		if t, err := time.Parse(layout, *d.ISOTime); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrIncompleteTrip
}

func blank(s *string) bool {
	return s == nil || *s == ""
}
