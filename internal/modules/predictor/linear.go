package predictor

import "context"

// Linear is y = intercept + coefficients·x.
type Linear struct {
	Intercept    float64
	Coefficients []float64
}

func (m *Linear) Predict(_ context.Context, rows [][]float64) ([]float64, error) {
	if err := checkRows(rows, len(m.Coefficients)); err != nil {
		return nil, err
	}
	out := make([]float64, len(rows))
	for i, row := range rows {
		y := m.Intercept
		for j, x := range row {
			y += m.Coefficients[j] * x
		}
		out[i] = y
	}
	return out, checkOutputs(out, len(rows))
}
