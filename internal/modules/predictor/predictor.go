// Package predictor loads the externally trained fare model and exposes it
// behind a single batch prediction call. The model is opaque to the rest of
// the service.
package predictor

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// ErrUnavailable is wrapped by every prediction failure so callers can tell
// a broken model or environment apart from bad input.
var ErrUnavailable = errors.New("prediction unavailable")

// Predictor scores rows of features, returning one output per row in order.
type Predictor interface {
	Predict(ctx context.Context, rows [][]float64) ([]float64, error)
}

// Info identifies a loaded artifact.
type Info struct {
	Name     string
	Version  int
	Kind     string
	Checksum string
}

// Model is a loaded artifact together with its identity.
type Model struct {
	Predictor
	Info Info
}

type unavailable struct {
	err error
}

// Unavailable returns a predictor that fails every call with cause. It
// stands in for a model that could not be loaded at startup.
func Unavailable(cause error) Predictor {
	return unavailable{err: cause}
}

func (u unavailable) Predict(context.Context, [][]float64) ([]float64, error) {
	return nil, fmt.Errorf("%w: %v", ErrUnavailable, u.err)
}

func checkRows(rows [][]float64, width int) error {
	if len(rows) == 0 {
		return fmt.Errorf("%w: empty batch", ErrUnavailable)
	}
	for i, row := range rows {
		if len(row) != width {
			return fmt.Errorf("%w: row %d has %d features, model expects %d", ErrUnavailable, i, len(row), width)
		}
	}
	return nil
}

func checkOutputs(out []float64, want int) error {
	if len(out) != want {
		return fmt.Errorf("%w: model returned %d predictions for %d rows", ErrUnavailable, len(out), want)
	}
	for i, v := range out {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite prediction for row %d", ErrUnavailable, i)
		}
	}
	return nil
}
