package optim

import (
	"context"
	"errors"
	"math"
	"testing"
)

func TestSweepDt_FindsMinimum(t *testing.T) {
	// Parabola in log dt with its minimum at dt = 1e-2.
	eval := func(dt float64) (float64, error) {
		d := math.Log10(dt) + 2
		return d * d, nil
	}

	out, best, err := SweepDt(context.Background(), 1e-4, 1, 9, eval)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 9 {
		t.Fatalf("got %d points, want 9", len(out))
	}
	if math.Abs(math.Log10(best.Dt)+2) > 1e-9 {
		t.Errorf("best dt = %v, want 1e-2", best.Dt)
	}

	// Geometric spacing covers both endpoints.
	if math.Abs(out[0].Dt-1e-4)/1e-4 > 1e-9 {
		t.Errorf("first point dt = %v, want 1e-4", out[0].Dt)
	}
	if math.Abs(out[len(out)-1].Dt-1)/1 > 1e-9 {
		t.Errorf("last point dt = %v, want 1", out[len(out)-1].Dt)
	}
}

func TestSweepDt_NaNNeverWins(t *testing.T) {
	eval := func(dt float64) (float64, error) {
		if dt < 0.5 {
			return math.NaN(), nil
		}
		return dt, nil
	}

	_, best, err := SweepDt(context.Background(), 0.1, 1, 5, eval)
	if err != nil {
		t.Fatal(err)
	}
	if math.IsNaN(best.Score) {
		t.Error("a NaN score must not be selected as best")
	}
}

func TestSweepDt_BadRange(t *testing.T) {
	eval := func(dt float64) (float64, error) { return dt, nil }
	cases := []struct {
		from, to float64
		points   int
	}{
		{0, 1, 5},
		{-1, 1, 5},
		{2, 1, 5},
		{1e-3, 1, 1},
	}
	for _, tc := range cases {
		if _, _, err := SweepDt(context.Background(), tc.from, tc.to, tc.points, eval); !errors.Is(err, ErrSweepRange) {
			t.Errorf("SweepDt(%v, %v, %d) error = %v, want ErrSweepRange", tc.from, tc.to, tc.points, err)
		}
	}
}

func TestSweepDt_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	eval := func(dt float64) (float64, error) {
		calls++
		if calls == 2 {
			cancel()
		}
		return dt, nil
	}

	out, _, err := SweepDt(ctx, 1e-3, 1, 10, eval)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
	if len(out) != 2 {
		t.Errorf("evaluated %d points after cancel, want 2", len(out))
	}
}

func TestSweepDt_EvalError(t *testing.T) {
	boom := errors.New("boom")
	eval := func(dt float64) (float64, error) { return 0, boom }
	if _, _, err := SweepDt(context.Background(), 1e-3, 1, 4, eval); !errors.Is(err, boom) {
		t.Errorf("error = %v, want the eval error", err)
	}
}
