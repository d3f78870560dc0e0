package ai

import (
	"context"
)

// TripParser turns a rider's free-text trip description into a structured
// draft. This interface allows for swapping AI providers.
type TripParser interface {
	// ParseTrip extracts trip fields from message. currentContext carries
	// dynamic information like "current_time".
	ParseTrip(ctx context.Context, message string, currentContext map[string]string) (*TripDraft, error)
}
