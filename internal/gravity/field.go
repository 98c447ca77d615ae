package gravity

import (
	"math"

	"github.com/oranellis/universe-simulation/internal/stars"
)

// Field is the Newtonian gravitational force law.
//
// MinSeparation floors the distance used in every pair evaluation: r² is
// clamped to MinSeparation² before inversion, so two coincident stars
// exchange a large finite force instead of poisoning the state with NaN.
// Pairs separated by more than the floor feel the exact G*m1*m2/r² law.
// With a zero floor, exactly coincident pairs contribute no force.
//
// Workers > 1 enables the chunked parallel sweep for states with at
// least parallelMin stars. The zero value of Workers keeps every sweep
// serial.
type Field struct {
	G             float64
	MinSeparation float64
	Workers       int
}

func NewField(g, minSeparation float64) *Field {
	return &Field{G: g, MinSeparation: minSeparation}
}

// ForceOn returns the gravitational force exerted on a by b: magnitude
// G*ma*mb/r², directed along the displacement from a toward b. Callers
// iterating over pairs must skip self-pairs by ID, not by position,
// since distinct stars may share coordinates.
func (f *Field) ForceOn(a, b stars.Star) stars.Vec2 {
	r := b.Pos.Sub(a.Pos)
	r2 := r.NormSq()
	if min2 := f.MinSeparation * f.MinSeparation; r2 < min2 {
		r2 = min2
	}
	if r2 == 0 {
		return stars.Vec2{}
	}
	mag := f.G * a.Mass * b.Mass / r2
	return r.Normalize().Scale(mag)
}

// AccelerationOn sums the force on s from every other star in the set
// and divides by s's own mass. Stars whose ID equals s.ID are skipped,
// so passing a slice that contains s itself is fine and a single-star
// set yields the zero vector.
func (f *Field) AccelerationOn(s stars.Star, others []stars.Star) stars.Vec2 {
	var force stars.Vec2
	for i := range others {
		if others[i].ID == s.ID {
			continue
		}
		force = force.Add(f.ForceOn(s, others[i]))
	}
	return force.Scale(1 / s.Mass)
}

// Accelerations fills dst with the acceleration on every star in ss.
// len(dst) must equal len(ss); prior contents are overwritten. This is
// the hot path of a timestep: O(N²) pair evaluations, halved by
// Newton's third law on the serial path.
func (f *Field) Accelerations(dst []stars.Vec2, ss []stars.Star) {
	n := len(ss)
	for i := range dst[:n] {
		dst[i] = stars.Vec2{}
	}

	if f.Workers > 1 && n >= parallelMin {
		f.sweepParallel(dst, ss)
		return
	}
	f.sweepSerial(dst, ss)
}

func (f *Field) sweepSerial(dst []stars.Vec2, ss []stars.Star) {
	n := len(ss)
	min2 := f.MinSeparation * f.MinSeparation

	for i := 0; i < n; i++ {
		pi := ss[i].Pos

		for j := i + 1; j < n; j++ {
			if ss[j].ID == ss[i].ID {
				continue
			}

			rx := ss[j].Pos.X - pi.X
			ry := ss[j].Pos.Y - pi.Y
			r2 := rx*rx + ry*ry
			if r2 < min2 {
				r2 = min2
			}
			if r2 == 0 {
				continue
			}

			rInv := 1.0 / math.Sqrt(r2)
			r3Inv := rInv * rInv * rInv

			aij := f.G * ss[j].Mass * r3Inv
			dst[i].X += aij * rx
			dst[i].Y += aij * ry

			aji := f.G * ss[i].Mass * r3Inv
			dst[j].X -= aji * rx
			dst[j].Y -= aji * ry
		}
	}
}

// Derive implements stars.System: d(pos)/dt is the current velocity,
// d(vel)/dt the gravitational acceleration from the full set.
func (f *Field) Derive(dst *stars.Derivative, s *stars.State) {
	dst.Resize(s.N())
	for i := range s.Stars {
		dst.Vel[i] = s.Stars[i].Vel
	}
	f.Accelerations(dst.Acc, s.Stars)
}
