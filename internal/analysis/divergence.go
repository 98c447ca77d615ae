package analysis

import (
	"math"

	"github.com/oranellis/universe-simulation/internal/integrators"
	"github.com/oranellis/universe-simulation/internal/stars"
)

// Divergence estimates the largest Lyapunov exponent of a configuration
// using the trajectory separation method:
//
//  1. Advance the reference state and a copy with one star's position
//     nudged by perturbation.
//  2. Accumulate the log of their separation growth per step.
//  3. Renormalize the pair whenever it drifts three decades apart, so
//     the estimate keeps probing the local flow instead of saturating.
//
// The result is an index, not a calibrated exponent: compare values
// between configurations run with identical dt, steps and perturbation.
func Divergence(initial []stars.Star, sys stars.System, integ integrators.Integrator, dt float64, steps int, perturbation float64) (float64, error) {
	ref, err := stars.NewState(append([]stars.Star(nil), initial...))
	if err != nil {
		return 0, err
	}
	if steps <= 0 || dt <= 0 || perturbation <= 0 {
		return 0, nil
	}

	pert := ref.Clone()
	pert.Stars[0].Pos.X += perturbation

	refNext := ref.Clone()
	pertNext := pert.Clone()

	d0 := perturbation
	sumLog := 0.0
	count := 0

	for i := 0; i < steps; i++ {
		integ.Step(refNext, ref, sys, dt)
		integ.Step(pertNext, pert, sys, dt)
		ref, refNext = refNext, ref
		pert, pertNext = pertNext, pert

		sep := separation(ref.Stars, pert.Stars)
		if sep > 0 && d0 > 0 {
			sumLog += math.Log(sep / d0)
			count++
		}

		if sep > 1e3*d0 {
			scale := d0 / sep
			for j := range pert.Stars {
				dp := pert.Stars[j].Pos.Sub(ref.Stars[j].Pos)
				pert.Stars[j].Pos = ref.Stars[j].Pos.Add(dp.Scale(scale))
				dv := pert.Stars[j].Vel.Sub(ref.Stars[j].Vel)
				pert.Stars[j].Vel = ref.Stars[j].Vel.Add(dv.Scale(scale))
			}
		}
	}

	if count == 0 {
		return 0, nil
	}
	return sumLog / (float64(count) * dt), nil
}

// separation is the Euclidean distance between two star sets across all
// position and velocity components.
func separation(a, b []stars.Star) float64 {
	sum := 0.0
	for i := range a {
		sum += b[i].Pos.Sub(a[i].Pos).NormSq()
		sum += b[i].Vel.Sub(a[i].Vel).NormSq()
	}
	return math.Sqrt(sum)
}
