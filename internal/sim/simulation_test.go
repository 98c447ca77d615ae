package sim

import (
	"errors"
	"math"
	"testing"

	"github.com/oranellis/universe-simulation/internal/genesis"
	"github.com/oranellis/universe-simulation/internal/gravity"
	"github.com/oranellis/universe-simulation/internal/integrators"
	"github.com/oranellis/universe-simulation/internal/stars"
)

func testParams() Params {
	return Params{
		System:     gravity.NewField(1, 1e-6),
		Integrator: integrators.NewVerlet(),
		Dt:         1e-3,
		Domain:     stars.Domain{Width: 10, Height: 10, TargetW: 1000, TargetH: 1000},
	}
}

func TestNew_RejectsBadConfig(t *testing.T) {
	initial := genesis.Binary(2, 1)

	tests := []struct {
		name   string
		mutate func(*Params)
		want   error
	}{
		{"nil system", func(p *Params) { p.System = nil }, ErrNilSystem},
		{"nil integrator", func(p *Params) { p.Integrator = nil }, ErrNilIntegrator},
		{"zero dt", func(p *Params) { p.Dt = 0 }, ErrTimestep},
		{"negative dt", func(p *Params) { p.Dt = -1 }, ErrTimestep},
		{"nan dt", func(p *Params) { p.Dt = math.NaN() }, ErrTimestep},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testParams()
			tt.mutate(&p)
			if _, err := New(initial, p); !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := New(nil, testParams()); !errors.Is(err, stars.ErrEmptyState) {
		t.Errorf("empty initial error = %v, want ErrEmptyState", err)
	}

	bad := []stars.Star{{ID: 1, Mass: 0}}
	if _, err := New(bad, testParams()); !errors.Is(err, stars.ErrMass) {
		t.Errorf("zero-mass error = %v, want ErrMass", err)
	}
}

func TestNew_CopiesInitial(t *testing.T) {
	initial := genesis.Binary(2, 1)
	s, err := New(initial, testParams())
	if err != nil {
		t.Fatal(err)
	}

	initial[0].Pos.X = 999
	if s.View().Stars[0].Pos.X == 999 {
		t.Error("simulation aliases the caller's initial slice")
	}

	if s.Domain() != testParams().Domain {
		t.Errorf("Domain() = %+v, want the configured domain", s.Domain())
	}
}

func TestStep_AdvancesTimeAndFlipsBuffers(t *testing.T) {
	s, err := New(genesis.Binary(2, 1), testParams())
	if err != nil {
		t.Fatal(err)
	}

	v0 := s.View()
	s.Step()
	v1 := s.View()

	if v0 == v1 {
		t.Error("front buffer did not flip after Step")
	}
	if s.Steps() != 1 {
		t.Errorf("Steps() = %d, want 1", s.Steps())
	}
	if math.Abs(s.Time()-1e-3) > 1e-18 {
		t.Errorf("Time() = %v, want dt", s.Time())
	}

	s.Step()
	if s.View() == v1 {
		t.Error("front buffer did not flip on second Step")
	}
	if s.View() != v0 {
		t.Error("double buffer should rotate over exactly two states")
	}
}

func TestStep_MovesBodiesTogether(t *testing.T) {
	s, err := New(genesis.Binary(2, 1), testParams())
	if err != nil {
		t.Fatal(err)
	}

	gap0 := s.View().Stars[1].Pos.Sub(s.View().Stars[0].Pos).Norm()
	for i := 0; i < 100; i++ {
		s.Step()
	}
	gap1 := s.View().Stars[1].Pos.Sub(s.View().Stars[0].Pos).Norm()

	if gap1 >= gap0 {
		t.Errorf("resting binary should contract: gap %v -> %v", gap0, gap1)
	}
	if !s.Valid() {
		t.Error("state went non-finite")
	}
}

type countingMetric struct {
	observed int
	lastTime float64
}

func (c *countingMetric) Name() string { return "count" }
func (c *countingMetric) Observe(s *stars.State) {
	c.observed++
	c.lastTime = s.Time
}
func (c *countingMetric) Value() float64 { return float64(c.observed) }
func (c *countingMetric) Reset()         { c.observed = 0 }

func TestSimulation_ObservesMetrics(t *testing.T) {
	s, err := New(genesis.Binary(2, 1), testParams())
	if err != nil {
		t.Fatal(err)
	}

	m := &countingMetric{}
	s.AddMetric(m)
	if m.observed != 1 {
		t.Fatalf("baseline not observed: %d", m.observed)
	}

	for i := 0; i < 10; i++ {
		s.Step()
	}
	if m.observed != 11 {
		t.Errorf("observed %d states, want 11", m.observed)
	}
	if m.lastTime != s.Time() {
		t.Error("metric saw a stale state")
	}

	vals := s.Metrics()
	if vals["count"] != 11 {
		t.Errorf("Metrics()[count] = %v, want 11", vals["count"])
	}
}

func TestSnapshot_IsDetachedCopy(t *testing.T) {
	s, err := New(genesis.Binary(2, 1), testParams())
	if err != nil {
		t.Fatal(err)
	}

	snap := s.Snapshot(nil)
	if len(snap) != 2 {
		t.Fatalf("snapshot has %d stars, want 2", len(snap))
	}

	before := snap[0].Pos
	for i := 0; i < 50; i++ {
		s.Step()
	}
	if snap[0].Pos != before {
		t.Error("snapshot changed as the simulation advanced")
	}

	// Reuse: same backing array, fresh contents.
	again := s.Snapshot(snap)
	if &again[0] != &snap[0] {
		t.Error("snapshot did not reuse the provided buffer")
	}
	if again[0].Pos == before {
		t.Error("reused snapshot still holds stale positions")
	}
}
