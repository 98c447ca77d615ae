// Package genesis builds initial star configurations: the procedural
// anchor-plus-cloud galaxy and the analytic presets used for tests and
// demos. All generation goes through an injected rand source so callers
// control determinism.
package genesis

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/oranellis/universe-simulation/internal/stars"
)

// VelocityMode selects how cloud stars get their initial velocity.
type VelocityMode string

const (
	// VelocityZero starts every star at rest. The canonical choice.
	VelocityZero VelocityMode = "zero"
	// VelocityUniform draws each component uniformly from ±Range.
	VelocityUniform VelocityMode = "uniform"
	// VelocityOrbital puts each star on a circular orbit about the
	// anchor, speed sqrt(G*M/r) perpendicular to the radius.
	VelocityOrbital VelocityMode = "orbital"
)

// ErrVelocityMode is returned for an unrecognized velocity mode.
var ErrVelocityMode = errors.New("genesis: unknown velocity mode")

// CloudSpec parameterizes the procedural generator. Positions are drawn
// per axis from Normal(0, extent/8) and clamped to ±extent/2; masses
// from Normal(MassMean, MassSigma), redrawn on the (astronomically
// unlikely) non-positive tail.
type CloudSpec struct {
	N             int
	Width, Height float64
	AnchorMass    float64
	MassMean      float64
	MassSigma     float64
	Luminosity    float64
	Temperature   float64
	Mode          VelocityMode
	VelRange      float64
	G             float64
}

// Cloud produces one anchor star fixed at the origin plus N-1 cloud
// stars. The anchor is non-luminous (a black hole); IDs are assigned
// sequentially from 0 and never reused.
func Cloud(spec CloudSpec, rng *rand.Rand) ([]stars.Star, error) {
	switch spec.Mode {
	case VelocityZero, VelocityUniform, VelocityOrbital, "":
	default:
		return nil, fmt.Errorf("%w %q", ErrVelocityMode, spec.Mode)
	}

	out := make([]stars.Star, 0, spec.N)
	out = append(out, stars.Star{
		ID:   0,
		Mass: spec.AnchorMass,
	})

	for i := 1; i < spec.N; i++ {
		pos := stars.Vec2{
			X: clamp(rng.NormFloat64()*spec.Width/8, spec.Width/2),
			Y: clamp(rng.NormFloat64()*spec.Height/8, spec.Height/2),
		}

		mass := rng.NormFloat64()*spec.MassSigma + spec.MassMean
		for mass <= 0 {
			mass = rng.NormFloat64()*spec.MassSigma + spec.MassMean
		}

		out = append(out, stars.Star{
			ID:          uint64(i),
			Pos:         pos,
			Vel:         velocity(spec, pos, rng),
			Mass:        mass,
			Luminosity:  spec.Luminosity,
			Temperature: spec.Temperature,
		})
	}

	return out, nil
}

func velocity(spec CloudSpec, pos stars.Vec2, rng *rand.Rand) stars.Vec2 {
	switch spec.Mode {
	case VelocityUniform:
		return stars.Vec2{
			X: (rng.Float64()*2 - 1) * spec.VelRange,
			Y: (rng.Float64()*2 - 1) * spec.VelRange,
		}
	case VelocityOrbital:
		r := pos.Norm()
		if r == 0 || spec.AnchorMass <= 0 {
			return stars.Vec2{}
		}
		v := math.Sqrt(spec.G * spec.AnchorMass / r)
		return stars.Vec2{X: -pos.Y / r, Y: pos.X / r}.Scale(v)
	}
	return stars.Vec2{}
}

func clamp(v, half float64) float64 {
	if v > half {
		return half
	}
	if v < -half {
		return -half
	}
	return v
}

// Binary places two equal masses symmetrically about the origin on the
// x axis, at rest. Mirror symmetry makes it the fixture for
// symmetry-preservation checks and the simplest bound system.
func Binary(separation, mass float64) []stars.Star {
	h := separation / 2
	return []stars.Star{
		{ID: 0, Pos: stars.Vec2{X: -h}, Mass: mass, Luminosity: 1, Temperature: 5000},
		{ID: 1, Pos: stars.Vec2{X: h}, Mass: mass, Luminosity: 1, Temperature: 5000},
	}
}
