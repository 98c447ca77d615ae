package metrics

import (
	"math"

	"github.com/oranellis/universe-simulation/internal/gravity"
	"github.com/oranellis/universe-simulation/internal/stars"
)

// EnergyDrift tracks the worst relative deviation of total mechanical
// energy from its value at the first observed state. Symplectic schemes
// should keep it bounded; a growing value means the timestep is too
// coarse for the configuration.
type EnergyDrift struct {
	name     string
	field    *gravity.Field
	initial  float64
	current  float64
	maxDrift float64
	samples  int
}

func NewEnergyDrift(field *gravity.Field) *EnergyDrift {
	return &EnergyDrift{
		name:  "energy_drift",
		field: field,
	}
}

func (e *EnergyDrift) Name() string { return e.name }

func (e *EnergyDrift) Observe(s *stars.State) {
	energy := e.field.Energy(s.Stars)

	if e.samples == 0 {
		e.initial = energy
	}
	e.current = energy
	e.samples++

	if e.initial != 0 {
		drift := math.Abs(energy-e.initial) / math.Abs(e.initial)
		e.maxDrift = math.Max(e.maxDrift, drift)
	}
}

func (e *EnergyDrift) Value() float64 {
	return e.maxDrift
}

func (e *EnergyDrift) Reset() {
	e.initial = 0
	e.current = 0
	e.maxDrift = 0
	e.samples = 0
}
