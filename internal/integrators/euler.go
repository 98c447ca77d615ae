package integrators

import "github.com/oranellis/universe-simulation/internal/stars"

// Euler is the average-velocity semi-implicit scheme: each position
// advances along the mean of its old and new velocity, then the
// velocity takes the full acceleration kick. The position update must
// read the pre-kick velocity; writing the velocity first changes the
// scheme.
type Euler struct {
	d stars.Derivative
}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Name() string { return "euler" }

func (e *Euler) Step(dst, src *stars.State, sys stars.System, dt float64) {
	sys.Derive(&e.d, src)

	dst.Stars = append(dst.Stars[:0], src.Stars...)
	for i := range dst.Stars {
		a := e.d.Acc[i]
		vOld := src.Stars[i].Vel
		vNew := vOld.Add(a.Scale(dt))

		avg := vOld.Add(vNew).Scale(0.5)
		dst.Stars[i].Pos = src.Stars[i].Pos.Add(avg.Scale(dt))
		dst.Stars[i].Vel = vNew
	}
	dst.Time = src.Time + dt
}
