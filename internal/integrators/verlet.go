package integrators

import "github.com/oranellis/universe-simulation/internal/stars"

// Verlet is the explicit velocity-Verlet update. Position and velocity
// both advance on the single pre-step acceleration:
//
//	pos' = pos + vel*dt + a*dt²/2
//	vel' = vel + a*dt
//
// One force sweep per step, against RK4's four; the usual pick for long
// orbital runs where energy behavior matters more than per-step order.
type Verlet struct {
	d stars.Derivative
}

func NewVerlet() *Verlet {
	return &Verlet{}
}

func (v *Verlet) Name() string { return "verlet" }

func (v *Verlet) Step(dst, src *stars.State, sys stars.System, dt float64) {
	sys.Derive(&v.d, src)

	halfDt2 := 0.5 * dt * dt
	dst.Stars = append(dst.Stars[:0], src.Stars...)
	for i := range dst.Stars {
		a := v.d.Acc[i]
		dst.Stars[i].Pos = src.Stars[i].Pos.
			Add(src.Stars[i].Vel.Scale(dt)).
			Add(a.Scale(halfDt2))
		dst.Stars[i].Vel = src.Stars[i].Vel.Add(a.Scale(dt))
	}
	dst.Time = src.Time + dt
}
