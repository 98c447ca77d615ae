package integrators

import (
	"math"
	"testing"

	"github.com/oranellis/universe-simulation/internal/genesis"
	"github.com/oranellis/universe-simulation/internal/gravity"
	"github.com/oranellis/universe-simulation/internal/stars"
)

// springSystem is an analytic fixture: every star oscillates
// independently with acceleration -pos, so position follows cos(t).
type springSystem struct{}

func (springSystem) Derive(dst *stars.Derivative, s *stars.State) {
	dst.Resize(s.N())
	for i := range s.Stars {
		dst.Vel[i] = s.Stars[i].Vel
		dst.Acc[i] = s.Stars[i].Pos.Scale(-1)
	}
}

func springStart() *stars.State {
	return &stars.State{Stars: []stars.Star{
		{ID: 1, Pos: stars.Vec2{X: 1}, Mass: 1},
	}}
}

func TestRK4Accuracy(t *testing.T) {
	integ := NewRK4()

	cur := springStart()
	next := cur.Clone()
	dt := 0.01
	steps := 100

	for i := 0; i < steps; i++ {
		integ.Step(next, cur, springSystem{}, dt)
		cur, next = next, cur
	}

	expectedX := math.Cos(float64(steps) * dt)
	expectedV := -math.Sin(float64(steps) * dt)

	if math.Abs(cur.Stars[0].Pos.X-expectedX) > 1e-8 {
		t.Errorf("position error too large: got %.10f, expected %.10f", cur.Stars[0].Pos.X, expectedX)
	}
	if math.Abs(cur.Stars[0].Vel.X-expectedV) > 1e-8 {
		t.Errorf("velocity error too large: got %.10f, expected %.10f", cur.Stars[0].Vel.X, expectedV)
	}
}

func TestRK4FourthOrder(t *testing.T) {
	finalError := func(dt float64, steps int) float64 {
		integ := NewRK4()
		cur := springStart()
		next := cur.Clone()
		for i := 0; i < steps; i++ {
			integ.Step(next, cur, springSystem{}, dt)
			cur, next = next, cur
		}
		return math.Abs(cur.Stars[0].Pos.X - math.Cos(float64(steps)*dt))
	}

	coarse := finalError(0.1, 10)
	fine := finalError(0.05, 20)

	// A 4th-order scheme gains ~16x per halving; allow slack for the
	// constant but catch any order regression.
	if coarse/fine < 8 {
		t.Errorf("error ratio %.2f too small for 4th order (coarse %.3e, fine %.3e)",
			coarse/fine, coarse, fine)
	}
}

func TestRK4TimeReversal(t *testing.T) {
	field := gravity.NewField(1, 0)
	integ := NewRK4()

	initial, err := stars.NewState(genesis.ThreeBody())
	if err != nil {
		t.Fatal(err)
	}

	cur := initial.Clone()
	next := cur.Clone()
	dt := 1e-3
	steps := 1000

	for i := 0; i < steps; i++ {
		integ.Step(next, cur, field, dt)
		cur, next = next, cur
	}

	// Flip velocities and run the same number of steps back.
	for i := range cur.Stars {
		cur.Stars[i].Vel = cur.Stars[i].Vel.Scale(-1)
	}
	for i := 0; i < steps; i++ {
		integ.Step(next, cur, field, dt)
		cur, next = next, cur
	}

	for i := range cur.Stars {
		dp := cur.Stars[i].Pos.Sub(initial.Stars[i].Pos).Norm()
		if dp > 1e-6 {
			t.Errorf("star %d: position off by %.3e after reversal", i, dp)
		}
		dv := cur.Stars[i].Vel.Add(initial.Stars[i].Vel).Norm()
		if dv > 1e-6 {
			t.Errorf("star %d: velocity off by %.3e after reversal", i, dv)
		}
	}
}
