package gravity

import (
	"math"
	"math/rand"
	"testing"

	"github.com/oranellis/universe-simulation/internal/stars"
)

func TestForceOn_MagnitudeAndDirection(t *testing.T) {
	f := NewField(6.674e-11, 0)

	a := stars.Star{ID: 1, Pos: stars.Vec2{0, 0}, Mass: 2e30}
	b := stars.Star{ID: 2, Pos: stars.Vec2{3e10, 4e10}, Mass: 5e29}

	got := f.ForceOn(a, b)

	r := 5e10
	wantMag := f.G * a.Mass * b.Mass / (r * r)
	if gotMag := got.Norm(); math.Abs(gotMag-wantMag)/wantMag > 1e-12 {
		t.Errorf("force magnitude = %v, want %v", gotMag, wantMag)
	}

	// Attractive: points from a toward b.
	dir := got.Normalize()
	if math.Abs(dir.X-0.6) > 1e-12 || math.Abs(dir.Y-0.8) > 1e-12 {
		t.Errorf("force direction = %v, want (0.6, 0.8)", dir)
	}
}

func TestForceOn_ThirdLaw(t *testing.T) {
	f := NewField(1, 0)

	a := stars.Star{ID: 1, Pos: stars.Vec2{-1, 0.5}, Mass: 3}
	b := stars.Star{ID: 2, Pos: stars.Vec2{2, -1}, Mass: 7}

	fab := f.ForceOn(a, b)
	fba := f.ForceOn(b, a)

	if math.Abs(fab.X+fba.X) > 1e-12 || math.Abs(fab.Y+fba.Y) > 1e-12 {
		t.Errorf("forces not equal and opposite: %v vs %v", fab, fba)
	}
}

func TestForceOn_SeparationFloor(t *testing.T) {
	a := stars.Star{ID: 1, Pos: stars.Vec2{0, 0}, Mass: 1}
	b := stars.Star{ID: 2, Pos: stars.Vec2{0, 0}, Mass: 1}

	// Zero floor: coincident pair contributes nothing rather than NaN.
	bare := NewField(1, 0)
	if got := bare.ForceOn(a, b); got.X != 0 || got.Y != 0 {
		t.Errorf("coincident pair with zero floor = %v, want zero", got)
	}

	// With a floor the force is finite and capped at G*m1*m2/floor².
	floored := NewField(1, 0.1)
	got := floored.ForceOn(a, b)
	if !got.IsFinite() {
		t.Fatalf("floored force not finite: %v", got)
	}
	if mag := got.Norm(); mag > 1/(0.1*0.1)+1e-9 {
		t.Errorf("floored magnitude %v exceeds cap", mag)
	}

	// Beyond the floor the law is exact.
	far := stars.Star{ID: 3, Pos: stars.Vec2{2, 0}, Mass: 1}
	exact := floored.ForceOn(a, far)
	if math.Abs(exact.Norm()-0.25) > 1e-12 {
		t.Errorf("force beyond floor = %v, want 0.25", exact.Norm())
	}
}

func TestAccelerationOn_SingleStar(t *testing.T) {
	f := NewField(1, 0)
	s := stars.Star{ID: 1, Pos: stars.Vec2{5, 5}, Mass: 10}

	a := f.AccelerationOn(s, []stars.Star{s})
	if a.X != 0 || a.Y != 0 {
		t.Errorf("single star acceleration = %v, want zero", a)
	}
}

func TestAccelerationOn_SkipsByID(t *testing.T) {
	f := NewField(1, 0)

	// Two distinct stars sharing coordinates: position-equality checks
	// would wrongly skip the pair (2,3) contribution for star 3.
	set := []stars.Star{
		{ID: 1, Pos: stars.Vec2{1, 0}, Mass: 1},
		{ID: 2, Pos: stars.Vec2{0, 0}, Mass: 1},
		{ID: 3, Pos: stars.Vec2{0, 0}, Mass: 1},
	}

	a := f.AccelerationOn(set[2], set)
	if !a.IsFinite() {
		t.Fatalf("acceleration not finite: %v", a)
	}
	// Only star 1 pulls (coincident star 2 contributes nothing at zero
	// floor): acceleration of magnitude 1 along +x.
	if math.Abs(a.X-1) > 1e-12 || math.Abs(a.Y) > 1e-12 {
		t.Errorf("acceleration = %v, want (1, 0)", a)
	}
}

func TestAccelerations_MatchesPerStarSum(t *testing.T) {
	f := NewField(1, 1e-3)
	rng := rand.New(rand.NewSource(7))

	set := make([]stars.Star, 20)
	for i := range set {
		set[i] = stars.Star{
			ID:   uint64(i + 1),
			Pos:  stars.Vec2{rng.NormFloat64(), rng.NormFloat64()},
			Mass: 1 + rng.Float64(),
		}
	}

	dst := make([]stars.Vec2, len(set))
	f.Accelerations(dst, set)

	for i := range set {
		want := f.AccelerationOn(set[i], set)
		if math.Abs(dst[i].X-want.X) > 1e-9 || math.Abs(dst[i].Y-want.Y) > 1e-9 {
			t.Errorf("star %d: sweep %v, per-star %v", i, dst[i], want)
		}
	}
}

func TestAccelerations_MomentumRateCancels(t *testing.T) {
	f := NewField(1, 1e-3)
	rng := rand.New(rand.NewSource(11))

	set := make([]stars.Star, 30)
	for i := range set {
		set[i] = stars.Star{
			ID:   uint64(i + 1),
			Pos:  stars.Vec2{rng.NormFloat64() * 3, rng.NormFloat64() * 3},
			Mass: 0.5 + rng.Float64(),
		}
	}

	dst := make([]stars.Vec2, len(set))
	f.Accelerations(dst, set)

	// Internal forces cancel pairwise: sum(m_i * a_i) must vanish.
	var px, py float64
	for i := range set {
		px += set[i].Mass * dst[i].X
		py += set[i].Mass * dst[i].Y
	}
	if math.Abs(px) > 1e-6 || math.Abs(py) > 1e-6 {
		t.Errorf("net internal force (%v, %v), want zero", px, py)
	}
}

func TestAccelerations_ParallelMatchesSerial(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	set := make([]stars.Star, 400)
	for i := range set {
		set[i] = stars.Star{
			ID:   uint64(i + 1),
			Pos:  stars.Vec2{rng.NormFloat64() * 10, rng.NormFloat64() * 10},
			Mass: 1 + rng.Float64(),
		}
	}

	serial := NewField(1, 1e-3)
	parallel := NewField(1, 1e-3)
	parallel.Workers = 4

	a1 := make([]stars.Vec2, len(set))
	a2 := make([]stars.Vec2, len(set))
	serial.Accelerations(a1, set)
	parallel.Accelerations(a2, set)

	for i := range set {
		// Summation order differs between the two paths, so compare
		// with a relative tolerance.
		tolX := 1e-9 * (1 + math.Abs(a1[i].X))
		tolY := 1e-9 * (1 + math.Abs(a1[i].Y))
		if math.Abs(a1[i].X-a2[i].X) > tolX || math.Abs(a1[i].Y-a2[i].Y) > tolY {
			t.Fatalf("star %d: serial %v, parallel %v", i, a1[i], a2[i])
		}
	}
}

func TestEnergy_TwoBody(t *testing.T) {
	f := NewField(2, 0)

	set := []stars.Star{
		{ID: 1, Pos: stars.Vec2{0, 0}, Vel: stars.Vec2{0, 1}, Mass: 3},
		{ID: 2, Pos: stars.Vec2{4, 0}, Vel: stars.Vec2{0, 0}, Mass: 5},
	}

	// KE = 0.5*3*1 = 1.5, PE = -2*3*5/4 = -7.5.
	if got := f.Energy(set); math.Abs(got-(-6.0)) > 1e-12 {
		t.Errorf("Energy = %v, want -6", got)
	}
}
