package analysis

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/oranellis/universe-simulation/internal/gravity"
	"github.com/oranellis/universe-simulation/internal/integrators"
	"github.com/oranellis/universe-simulation/internal/sim"
	"github.com/oranellis/universe-simulation/internal/stars"
)

func TestPowerSpectrum_SinePeak(t *testing.T) {
	const n = 256
	series := make([]float64, n)
	for i := range series {
		series[i] = 3 + math.Sin(2*math.Pi*8*float64(i)/n)
	}

	ps := PowerSpectrum(series)
	if len(ps) != n/2 {
		t.Fatalf("spectrum has %d bins, want %d", len(ps), n/2)
	}

	peak := 0
	for k := 1; k < len(ps); k++ {
		if ps[k] > ps[peak] {
			peak = k
		}
	}
	if peak != 8 {
		t.Errorf("peak at bin %d, want 8", peak)
	}
	// The constant offset must not leak into the zero bin.
	if ps[0] > 1e-9*ps[8] {
		t.Errorf("zero bin %v should be negligible against peak %v", ps[0], ps[8])
	}
}

func TestDominantPeriod(t *testing.T) {
	const n = 256
	dt := 0.01
	series := make([]float64, n)
	for i := range series {
		series[i] = math.Sin(2 * math.Pi * 8 * float64(i) / n)
	}

	got := DominantPeriod(series, dt)
	want := float64(n) * dt / 8
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("period = %v, want %v", got, want)
	}
}

func TestDominantPeriod_Degenerate(t *testing.T) {
	flat := []float64{5, 5, 5, 5, 5, 5, 5, 5}
	if got := DominantPeriod(flat, 0.1); got != 0 {
		t.Errorf("flat series period = %v, want 0", got)
	}
	if got := DominantPeriod([]float64{1, 2}, 0.1); got != 0 {
		t.Errorf("short series period = %v, want 0", got)
	}
	if got := DominantPeriod(flat, 0); got != 0 {
		t.Errorf("zero dt period = %v, want 0", got)
	}
}

func orbitSim(t *testing.T) *sim.Simulation {
	t.Helper()
	// Light star on a circular orbit around a heavy central body, G=1.
	initial := []stars.Star{
		{ID: 0, Mass: 1000},
		{ID: 1, Pos: stars.Vec2{X: 1}, Vel: stars.Vec2{Y: math.Sqrt(1000)}, Mass: 1e-3},
	}
	s, err := sim.New(initial, sim.Params{
		System:     gravity.NewField(1, 1e-9),
		Integrator: integrators.NewVerlet(),
		Dt:         1e-3,
	})
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestRecord_OrbitPeriod(t *testing.T) {
	s := orbitSim(t)

	series, err := Record(s, 1, 1024)
	if err != nil {
		t.Fatal(err)
	}
	if len(series) != 1024 {
		t.Fatalf("recorded %d samples, want 1024", len(series))
	}

	got := DominantPeriod(series, s.Dt())
	want := 2 * math.Pi / math.Sqrt(1000)
	if math.Abs(got-want)/want > 0.1 {
		t.Errorf("orbital period = %v, want %v within 10%%", got, want)
	}
}

func TestRecord_BadIndex(t *testing.T) {
	s := orbitSim(t)
	if _, err := Record(s, 2, 10); !errors.Is(err, ErrStarIndex) {
		t.Errorf("error = %v, want ErrStarIndex", err)
	}
	if _, err := Record(s, -1, 10); !errors.Is(err, ErrStarIndex) {
		t.Errorf("error = %v, want ErrStarIndex", err)
	}
}

func TestPath_StaysOnOrbit(t *testing.T) {
	s := orbitSim(t)

	path, err := Path(s, 1, 1024)
	if err != nil {
		t.Fatal(err)
	}
	if len(path) != 1024 {
		t.Fatalf("recorded %d points, want 1024", len(path))
	}
	// A circular orbit of radius 1 should stay near radius 1 throughout.
	for i, p := range path {
		r := p.Norm()
		if r < 0.9 || r > 1.1 {
			t.Fatalf("point %d at radius %v, want within 10%% of 1", i, r)
		}
	}
}

func TestPathToASCII(t *testing.T) {
	// A unit square traced through the origin region draws both axes.
	points := []stars.Vec2{
		{X: -1, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 1}, {X: -1, Y: 1},
	}
	out := PathToASCII(points, 20, 10)
	if out == "" {
		t.Fatal("empty plot")
	}
	if got := strings.Count(out, "\n"); got != 10 {
		t.Errorf("plot has %d rows, want 10", got)
	}
	if !strings.ContainsRune(out, '•') {
		t.Error("plot has no points")
	}
	if !strings.ContainsRune(out, '│') || !strings.ContainsRune(out, '─') {
		t.Error("plot should draw both axes through the origin")
	}

	if got := PathToASCII(nil, 20, 10); got != "" {
		t.Errorf("empty path plot = %q, want empty", got)
	}
}

// linearSystem accelerates each star by k times its position. Negative
// k is a harmonic oscillator whose perturbation flow preserves norms;
// positive k blows nearby trajectories apart exponentially.
type linearSystem struct {
	k float64
}

func (l linearSystem) Derive(dst *stars.Derivative, s *stars.State) {
	dst.Resize(len(s.Stars))
	for i := range s.Stars {
		dst.Vel[i] = s.Stars[i].Vel
		dst.Acc[i] = s.Stars[i].Pos.Scale(l.k)
	}
}

func TestDivergence_SeparatesChaoticFromRegular(t *testing.T) {
	initial := []stars.Star{{ID: 1, Pos: stars.Vec2{X: 1}, Mass: 1}}
	integ := integrators.NewRK4()

	unstable, err := Divergence(initial, linearSystem{k: 1}, integ, 1e-3, 5000, 1e-8)
	if err != nil {
		t.Fatal(err)
	}
	regular, err := Divergence(initial, linearSystem{k: -1}, integ, 1e-3, 5000, 1e-8)
	if err != nil {
		t.Fatal(err)
	}

	if unstable <= 0 {
		t.Errorf("unstable flow divergence = %v, want positive", unstable)
	}
	if unstable < 10*math.Max(regular, 1) {
		t.Errorf("unstable %v should dwarf regular %v", unstable, regular)
	}
}

func TestDivergence_Degenerate(t *testing.T) {
	bad := []stars.Star{{ID: 1, Mass: -1}}
	if _, err := Divergence(bad, linearSystem{k: 1}, integrators.NewRK4(), 1e-3, 10, 1e-8); !errors.Is(err, stars.ErrMass) {
		t.Errorf("error = %v, want ErrMass", err)
	}

	ok := []stars.Star{{ID: 1, Mass: 1}}
	got, err := Divergence(ok, linearSystem{k: 1}, integrators.NewRK4(), 1e-3, 0, 1e-8)
	if err != nil || got != 0 {
		t.Errorf("zero steps = (%v, %v), want (0, nil)", got, err)
	}
}
