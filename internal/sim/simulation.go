package sim

import (
	"math"

	"github.com/oranellis/universe-simulation/internal/integrators"
	"github.com/oranellis/universe-simulation/internal/stars"
)

// Params configures a Simulation.
type Params struct {
	System     stars.System
	Integrator integrators.Integrator
	Dt         float64
	Domain     stars.Domain
}

// Simulation advances a star state with a fixed timestep. The state
// lives in two fixed-capacity buffers: each Step writes the next state
// into the back buffer from the front one and then flips, so no star is
// ever read and written within the same sweep. Callers only ever see
// the front buffer.
type Simulation struct {
	buf     [2]*stars.State
	front   int
	sys     stars.System
	integ   integrators.Integrator
	dt      float64
	domain  stars.Domain
	steps   uint64
	metrics []Metric
}

// New validates the configuration and initial conditions, failing fast
// before any stepping can happen. The initial slice is copied; callers
// keep ownership of theirs.
func New(initial []stars.Star, p Params) (*Simulation, error) {
	if p.System == nil {
		return nil, ErrNilSystem
	}
	if p.Integrator == nil {
		return nil, ErrNilIntegrator
	}
	if p.Dt <= 0 || math.IsNaN(p.Dt) || math.IsInf(p.Dt, 0) {
		return nil, ErrTimestep
	}

	front, err := stars.NewState(append([]stars.Star(nil), initial...))
	if err != nil {
		return nil, err
	}

	return &Simulation{
		buf:    [2]*stars.State{front, front.Clone()},
		sys:    p.System,
		integ:  p.Integrator,
		dt:     p.Dt,
		domain: p.Domain,
	}, nil
}

// Step advances the simulation by one timestep.
func (s *Simulation) Step() {
	cur := s.buf[s.front]
	next := s.buf[1-s.front]

	s.integ.Step(next, cur, s.sys, s.dt)

	s.front = 1 - s.front
	s.steps++

	for _, m := range s.metrics {
		m.Observe(s.buf[s.front])
	}
}

// View returns the current state. The pointer is only valid until the
// next Step and must not be retained or written through; cross-thread
// consumers use Snapshot or a Shared cell instead.
func (s *Simulation) View() *stars.State {
	return s.buf[s.front]
}

// Snapshot copies the current stars into dst, growing it as needed, and
// returns the filled slice. The append-style contract lets callers
// reuse one buffer across frames.
func (s *Simulation) Snapshot(dst []stars.Star) []stars.Star {
	return append(dst[:0], s.buf[s.front].Stars...)
}

func (s *Simulation) N() int               { return s.buf[s.front].N() }
func (s *Simulation) Dt() float64          { return s.dt }
func (s *Simulation) Time() float64        { return s.buf[s.front].Time }
func (s *Simulation) Steps() uint64        { return s.steps }
func (s *Simulation) Domain() stars.Domain { return s.domain }

// Valid reports whether the current state is free of NaN and Inf.
func (s *Simulation) Valid() bool {
	return s.buf[s.front].IsValid()
}
