// README: Pricing service turns trip requests into model-predicted fares.
package pricing

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"farecast/internal/modules/features"
	"farecast/internal/modules/predictor"
	"farecast/internal/modules/samples"
	"farecast/internal/modules/trip"
	"farecast/internal/types"
)

// Cache memoises model outputs by feature vector. Implementations must
// treat a miss as (0, false, nil).
type Cache interface {
	Get(ctx context.Context, v features.Vector) (float64, bool, error)
	Set(ctx context.Context, v features.Vector, fare float64) error
}

type Service struct {
	model predictor.Predictor
	cache Cache
	log   *zap.Logger
}

// NewService wires the loaded model. cache may be nil.
func NewService(model predictor.Predictor, cache Cache, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{model: model, cache: cache, log: log}
}

// Quote predicts the fare for a single validated request.
func (s *Service) Quote(ctx context.Context, r trip.Request) (Quote, error) {
	if err := trip.Validate(r); err != nil {
		return Quote{}, err
	}

	derived := features.Derive(r)
	vec := features.Assemble(r, derived)
	q := Quote{
		Features: features.Summarize(r, derived),
		Vector:   vec,
	}

	if fare, ok := s.cached(ctx, vec); ok {
		q.Cached = true
		return fill(q, fare), nil
	}

	out, err := s.predict(ctx, [][]float64{vec.Slice()})
	if err != nil {
		return Quote{}, err
	}
	fare := out[0]
	s.store(ctx, vec, fare)
	return fill(q, fare), nil
}

// ScoreBatch builds a vector for every row and scores them in one model
// call. Rows that failed to parse never reach here; the reader reports them.
func (s *Service) ScoreBatch(ctx context.Context, rows []samples.Row) (BatchResult, error) {
	res := BatchResult{Rows: make([]ScoredRow, 0, len(rows))}
	if len(rows) == 0 {
		return res, nil
	}

	batch := make([][]float64, len(rows))
	for i, row := range rows {
		batch[i] = features.Build(row.Request).Slice()
	}
	out, err := s.predict(ctx, batch)
	if err != nil {
		return BatchResult{}, err
	}

	for i, row := range rows {
		r := row.Request
		res.Rows = append(res.Rows, ScoredRow{
			Row:              row,
			PickupLongitude:  r.Pickup.Lng,
			PickupLatitude:   r.Pickup.Lat,
			DropoffLongitude: r.Dropoff.Lng,
			DropoffLatitude:  r.Dropoff.Lat,
			Passengers:       r.Passengers,
			FareAmount:       out[i],
		})
	}
	s.log.Info("scored sample batch", zap.Int("rows", len(res.Rows)))
	return res, nil
}

func (s *Service) predict(ctx context.Context, batch [][]float64) ([]float64, error) {
	if s.model == nil {
		return nil, fmt.Errorf("%w: no model loaded", predictor.ErrUnavailable)
	}
	out, err := s.model.Predict(ctx, batch)
	if err != nil {
		if !errors.Is(err, predictor.ErrUnavailable) {
			err = fmt.Errorf("%w: %v", predictor.ErrUnavailable, err)
		}
		s.log.Error("prediction failed", zap.Int("rows", len(batch)), zap.Error(err))
		return nil, err
	}
	if len(out) != len(batch) {
		return nil, fmt.Errorf("%w: model returned %d predictions for %d rows", predictor.ErrUnavailable, len(out), len(batch))
	}
	return out, nil
}

func (s *Service) cached(ctx context.Context, v features.Vector) (float64, bool) {
	if s.cache == nil {
		return 0, false
	}
	fare, ok, err := s.cache.Get(ctx, v)
	if err != nil {
		s.log.Warn("quote cache read failed", zap.Error(err))
		return 0, false
	}
	return fare, ok
}

func (s *Service) store(ctx context.Context, v features.Vector, fare float64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, v, fare); err != nil {
		s.log.Warn("quote cache write failed", zap.Error(err))
	}
}

func fill(q Quote, fare float64) Quote {
	q.Amount = fare
	q.Fare = types.USD(fare)
	q.Display = q.Fare.String()
	return q
}
