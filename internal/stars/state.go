package stars

import "math"

// State is the full simulation state at one instant: an ordered slice of
// stars plus the simulation clock. Star order is irrelevant to physics
// but must be preserved 1:1 by index across timesteps and across any
// parallel buffers used by derivative stages. No star is added or
// removed over a simulation's lifetime.
type State struct {
	Stars []Star
	Time  float64
}

// NewState validates every star and wraps the slice in a state. The
// slice is owned by the state afterwards.
func NewState(ss []Star) (*State, error) {
	if len(ss) == 0 {
		return nil, ErrEmptyState
	}
	for i, s := range ss {
		if err := s.Validate(); err != nil {
			return nil, &StarError{Index: i, ID: s.ID, Wrapped: err}
		}
	}
	return &State{Stars: ss}, nil
}

func (s *State) N() int { return len(s.Stars) }

// Clone returns a deep copy sharing no memory with the receiver.
func (s *State) Clone() *State {
	c := &State{Stars: make([]Star, len(s.Stars)), Time: s.Time}
	copy(c.Stars, s.Stars)
	return c
}

// CopyFrom overwrites the receiver with src, reusing the star buffer
// when capacity allows.
func (s *State) CopyFrom(src *State) {
	s.Stars = append(s.Stars[:0], src.Stars...)
	s.Time = src.Time
}

// IsValid scans the state for NaN or Inf.
func (s *State) IsValid() bool {
	for i := range s.Stars {
		st := &s.Stars[i]
		if !st.Pos.IsFinite() || !st.Vel.IsFinite() ||
			math.IsNaN(st.Mass) || math.IsInf(st.Mass, 0) {
			return false
		}
	}
	return true
}

// Shift writes receiver + d*h into dst: positions advance along d.Vel,
// velocities along d.Acc, mass and display attributes carry over. The
// receiver is never mutated, so each stage of a multi-stage integrator
// evaluates against an immutable base. dst must not alias the receiver.
func (s *State) Shift(dst *State, d *Derivative, h float64) {
	dst.Stars = append(dst.Stars[:0], s.Stars...)
	for i := range dst.Stars {
		dst.Stars[i].Pos = s.Stars[i].Pos.Add(d.Vel[i].Scale(h))
		dst.Stars[i].Vel = s.Stars[i].Vel.Add(d.Acc[i].Scale(h))
	}
	dst.Time = s.Time + h
}

// Derivative holds d(state)/dt at one evaluation point: per star, the
// velocity (d pos/dt) and acceleration (d vel/dt), paired by index with
// the state it was evaluated against.
type Derivative struct {
	Vel []Vec2
	Acc []Vec2
}

// Resize adjusts the derivative to hold n stars, reusing the underlying
// arrays when capacity allows.
func (d *Derivative) Resize(n int) {
	if cap(d.Vel) < n {
		d.Vel = make([]Vec2, n)
		d.Acc = make([]Vec2, n)
		return
	}
	d.Vel = d.Vel[:n]
	d.Acc = d.Acc[:n]
}

// System evaluates the (position, velocity) -> (velocity, acceleration)
// map over a whole state, writing per-star derivatives into dst. The
// production implementation is the gravity field; tests substitute
// analytic systems.
type System interface {
	Derive(dst *Derivative, s *State)
}
