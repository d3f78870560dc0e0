// README: Trip assistant turns a free-text trip description into a fare quote.
package assistant

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"farecast/internal/ai"
	"farecast/internal/modules/pricing"
	"farecast/internal/modules/trip"
	"farecast/internal/types"
)

type Geocoder interface {
	Resolve(ctx context.Context, address string) (types.Coordinate, error)
}

type Service struct {
	parser   ai.TripParser
	geocoder Geocoder
	pricing  *pricing.Service
	log      *zap.Logger
	now      func() time.Time
}

func NewService(parser ai.TripParser, geocoder Geocoder, pricingSvc *pricing.Service, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		parser:   parser,
		geocoder: geocoder,
		pricing:  pricingSvc,
		log:      log,
		now:      time.Now,
	}
}

// Result is a parsed draft plus, once every field is known, the quote.
type Result struct {
	Draft   *ai.TripDraft     `json:"draft"`
	Missing []string          `json:"missing,omitempty"`
	Pickup  *types.Coordinate `json:"pickup,omitempty"`
	Dropoff *types.Coordinate `json:"dropoff,omitempty"`
	Quote   *pricing.Quote    `json:"quote,omitempty"`
}

// Estimate parses message and quotes it when complete. An incomplete
// description is not an error: the result lists what is missing and the
// draft carries a follow-up question.
func (s *Service) Estimate(ctx context.Context, message string) (Result, error) {
	draft, err := s.parser.ParseTrip(ctx, message, map[string]string{
		"current_time": s.now().Format("2006-01-02T15:04:05"),
	})
	if err != nil {
		return Result{}, fmt.Errorf("parsing trip description: %w", err)
	}

	res := Result{Draft: draft, Missing: draft.Missing()}
	if len(res.Missing) > 0 {
		s.log.Debug("trip description incomplete", zap.Strings("missing", res.Missing))
		return res, nil
	}

	pickup, err := s.geocoder.Resolve(ctx, *draft.PickupAddress)
	if err != nil {
		return Result{}, fmt.Errorf("pickup: %w", err)
	}
	dropoff, err := s.geocoder.Resolve(ctx, *draft.DropoffAddress)
	if err != nil {
		return Result{}, fmt.Errorf("dropoff: %w", err)
	}
	res.Pickup, res.Dropoff = &pickup, &dropoff

	at, err := draft.PickupTime()
	if err != nil {
		return Result{}, err
	}
	req, err := trip.NewRequest(pickup, dropoff, draft.PassengerCount, trip.DateOf(at), trip.ClockOf(at))
	if err != nil {
		return Result{}, err
	}

	q, err := s.pricing.Quote(ctx, req)
	if err != nil {
		return Result{}, err
	}
	res.Quote = &q
	return res, nil
}
