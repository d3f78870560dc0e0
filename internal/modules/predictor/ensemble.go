// README: Tree ensemble evaluator for random forest and gradient boosted exports.
package predictor

import (
	"context"
	"fmt"
)

const (
	AggregateSum  = "sum"
	AggregateMean = "mean"
)

// Node is one entry of a flattened decision tree. Rows with
// x[Feature] < Threshold go to Left, otherwise to Right.
type Node struct {
	Feature   int     `json:"feature"`
	Threshold float64 `json:"threshold"`
	Left      int     `json:"left"`
	Right     int     `json:"right"`
	Value     float64 `json:"value"`
	Leaf      bool    `json:"leaf"`
}

type Tree struct {
	Nodes []Node `json:"nodes"`
}

// Ensemble adds BaseScore to the sum (gradient boosting) or mean (random
// forest) of its trees' leaf values.
type Ensemble struct {
	BaseScore float64
	Aggregate string
	Trees     []Tree
	Width     int
}

func (e *Ensemble) validate() error {
	if len(e.Trees) == 0 {
		return fmt.Errorf("ensemble has no trees")
	}
	if e.Aggregate != AggregateSum && e.Aggregate != AggregateMean {
		return fmt.Errorf("unknown aggregate %q", e.Aggregate)
	}
	for ti, t := range e.Trees {
		if len(t.Nodes) == 0 {
			return fmt.Errorf("tree %d is empty", ti)
		}
		for ni, n := range t.Nodes {
			if n.Leaf {
				continue
			}
			if n.Feature < 0 || n.Feature >= e.Width {
				return fmt.Errorf("tree %d node %d: feature %d out of range", ti, ni, n.Feature)
			}
			// children must come later so evaluation always terminates
			if n.Left <= ni || n.Right <= ni || n.Left >= len(t.Nodes) || n.Right >= len(t.Nodes) {
				return fmt.Errorf("tree %d node %d: bad child index", ti, ni)
			}
		}
	}
	return nil
}

func (e *Ensemble) Predict(_ context.Context, rows [][]float64) ([]float64, error) {
	if err := checkRows(rows, e.Width); err != nil {
		return nil, err
	}
	out := make([]float64, len(rows))
	for i, row := range rows {
		var sum float64
		for _, t := range e.Trees {
			sum += t.leaf(row)
		}
		if e.Aggregate == AggregateMean {
			sum /= float64(len(e.Trees))
		}
		out[i] = e.BaseScore + sum
	}
	return out, checkOutputs(out, len(rows))
}

func (t Tree) leaf(row []float64) float64 {
	i := 0
	for {
		n := t.Nodes[i]
		if n.Leaf {
			return n.Value
		}
		if row[n.Feature] < n.Threshold {
			i = n.Left
		} else {
			i = n.Right
		}
	}
}
