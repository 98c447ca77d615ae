// Package optim searches simulation parameters for the best-scoring
// configuration. The only tunable with a real quality trade-off here is
// the timestep: too large loses energy conservation, too small wastes
// compute, and the sweet spot moves with star count and scheme.
package optim

import (
	"context"
	"errors"
	"math"
)

// Point is one evaluated sweep sample.
type Point struct {
	Dt    float64
	Score float64
}

// EvalFunc builds and runs a fresh simulation at the given timestep and
// returns its score. Lower is better; Divergence-prone configurations
// should return the drift magnitude so blowups rank last.
type EvalFunc func(dt float64) (float64, error)

var ErrSweepRange = errors.New("optim: sweep needs 0 < from <= to and at least 2 points")

// SweepDt evaluates geometrically spaced timesteps between from and to,
// inclusive. It returns every sample plus the best one. The context
// cancels a long sweep between evaluations.
func SweepDt(ctx context.Context, from, to float64, points int, eval EvalFunc) ([]Point, Point, error) {
	if from <= 0 || to < from || points < 2 {
		return nil, Point{}, ErrSweepRange
	}

	ratio := math.Pow(to/from, 1/float64(points-1))
	best := Point{Score: math.Inf(1)}
	out := make([]Point, 0, points)

	dt := from
	for i := 0; i < points; i++ {
		if err := ctx.Err(); err != nil {
			return out, best, err
		}

		score, err := eval(dt)
		if err != nil {
			return out, best, err
		}
		p := Point{Dt: dt, Score: score}
		out = append(out, p)

		// NaN never wins; a diverged run scores worse than any number.
		if p.Score < best.Score {
			best = p
		}
		dt *= ratio
	}

	if math.IsInf(best.Score, 1) {
		best = out[len(out)-1]
	}
	return out, best, nil
}
