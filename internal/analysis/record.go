package analysis

import (
	"errors"

	"github.com/oranellis/universe-simulation/internal/sim"
)

var ErrStarIndex = errors.New("analysis: star index out of range")

// Record advances the simulation by steps and returns the x coordinate
// of one star after each step. An orbiting star traces a sinusoid in x,
// which is what DominantPeriod expects.
func Record(s *sim.Simulation, star, steps int) ([]float64, error) {
	path, err := Path(s, star, steps)
	if err != nil {
		return nil, err
	}
	series := make([]float64, len(path))
	for i, p := range path {
		series[i] = p.X
	}
	return series, nil
}
