package metrics

import (
	"math"

	"github.com/oranellis/universe-simulation/internal/stars"
)

// MomentumDrift tracks how far total linear momentum has wandered from
// its value at the first observed state. The drift is scaled by the sum
// of per-star momentum magnitudes at that first state, so a system
// starting at rest falls back to absolute drift.
type MomentumDrift struct {
	name     string
	initial  stars.Vec2
	scale    float64
	maxDrift float64
	samples  int
}

func NewMomentumDrift() *MomentumDrift {
	return &MomentumDrift{name: "momentum_drift"}
}

func (m *MomentumDrift) Name() string { return m.name }

func (m *MomentumDrift) Observe(s *stars.State) {
	p := stars.Momentum(s.Stars)

	if m.samples == 0 {
		m.initial = p
		for i := range s.Stars {
			m.scale += s.Stars[i].Vel.Norm() * s.Stars[i].Mass
		}
	}
	m.samples++

	drift := p.Sub(m.initial).Norm()
	if m.scale > 0 {
		drift /= m.scale
	}
	m.maxDrift = math.Max(m.maxDrift, drift)
}

func (m *MomentumDrift) Value() float64 {
	return m.maxDrift
}

func (m *MomentumDrift) Reset() {
	m.initial = stars.Vec2{}
	m.scale = 0
	m.maxDrift = 0
	m.samples = 0
}
