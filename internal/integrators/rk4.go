package integrators

import "github.com/oranellis/universe-simulation/internal/stars"

// RK4 is the classical 4th-order Runge-Kutta scheme over the
// (position, velocity) -> (velocity, acceleration) map. Four stage
// derivatives are evaluated: k1 at the source state, k2 and k3 at
// half-step states shifted along the previous stage, k4 at the full
// step, then blended as dt/6 * (k1 + 2k2 + 2k3 + k4).
//
// Every stage is a full O(N²) force sweep, so one RK4 step costs four
// times a Verlet step. That buys 4th-order local accuracy; it is a
// deliberate tradeoff, not overhead to optimize away.
type RK4 struct {
	k1, k2, k3, k4 stars.Derivative
	scratch        stars.State
}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) Name() string { return "rk4" }

func (r *RK4) Step(dst, src *stars.State, sys stars.System, dt float64) {
	sys.Derive(&r.k1, src)

	src.Shift(&r.scratch, &r.k1, dt*0.5)
	sys.Derive(&r.k2, &r.scratch)

	src.Shift(&r.scratch, &r.k2, dt*0.5)
	sys.Derive(&r.k3, &r.scratch)

	src.Shift(&r.scratch, &r.k3, dt)
	sys.Derive(&r.k4, &r.scratch)

	dt6 := dt / 6.0
	dst.Stars = append(dst.Stars[:0], src.Stars...)
	for i := range dst.Stars {
		dPos := r.k1.Vel[i].
			Add(r.k2.Vel[i].Scale(2)).
			Add(r.k3.Vel[i].Scale(2)).
			Add(r.k4.Vel[i])
		dVel := r.k1.Acc[i].
			Add(r.k2.Acc[i].Scale(2)).
			Add(r.k3.Acc[i].Scale(2)).
			Add(r.k4.Acc[i])

		dst.Stars[i].Pos = src.Stars[i].Pos.Add(dPos.Scale(dt6))
		dst.Stars[i].Vel = src.Stars[i].Vel.Add(dVel.Scale(dt6))
	}
	dst.Time = src.Time + dt
}
