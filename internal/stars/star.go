package stars

import "math"

// Star is a point mass. Pos and Vel are simulation-space meters and
// meters/second, Mass is kilograms (or normalized units in analytic
// presets). ID is assigned once at creation and never reused; pairwise
// iteration skips self-pairs by comparing IDs, never positions, because
// two distinct stars may legitimately occupy the same coordinates.
//
// Luminosity and Temperature only affect rendering. A luminosity of 0
// marks a non-luminous body such as a black hole; Temperature (kelvin)
// is meaningless for those.
type Star struct {
	ID          uint64
	Pos         Vec2
	Vel         Vec2
	Mass        float64
	Luminosity  float64
	Temperature float64
}

// NewStar builds a star and rejects invalid physics up front: mass must
// be strictly positive and finite, position and velocity finite.
func NewStar(id uint64, pos, vel Vec2, mass float64) (Star, error) {
	s := Star{ID: id, Pos: pos, Vel: vel, Mass: mass}
	if err := s.Validate(); err != nil {
		return Star{}, err
	}
	return s, nil
}

// Validate reports the first physical invariant the star violates.
func (s Star) Validate() error {
	if math.IsNaN(s.Mass) || math.IsInf(s.Mass, 0) || s.Mass <= 0 {
		return ErrMass
	}
	if !s.Pos.IsFinite() || !s.Vel.IsFinite() {
		return ErrNotFinite
	}
	return nil
}

// Domain is the rectangular simulation-space extent, in meters, plus
// the target display size in pixels used for aspect-correct mapping.
// Immutable after construction.
type Domain struct {
	Width   float64
	Height  float64
	TargetW int
	TargetH int
}
