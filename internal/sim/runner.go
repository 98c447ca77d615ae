package sim

import (
	"context"
	"time"
)

// Runner steps a Simulation at a fixed rate on the calling goroutine,
// publishing every completed step into a Shared cell. Pacing is
// sleep-the-remainder: each iteration measures its own cost and sleeps
// whatever is left of the period; an overrunning iteration is not an
// error, the next one just starts late.
type Runner struct {
	sim    *Simulation
	out    *Shared
	period time.Duration
}

// NewRunner builds a runner stepping at rate steps per second.
func NewRunner(s *Simulation, out *Shared, rate float64) (*Runner, error) {
	if rate <= 0 {
		return nil, ErrRate
	}
	return &Runner{
		sim:    s,
		out:    out,
		period: time.Duration(float64(time.Second) / rate),
	}, nil
}

// Run steps until ctx is canceled. It blocks; callers wanting the
// two-thread shape start it with go and cancel the context when the
// render loop quits.
func (r *Runner) Run(ctx context.Context) {
	r.out.Publish(r.sim.View().Stars, r.sim.Steps(), r.sim.Time())

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		start := time.Now()

		r.sim.Step()
		r.out.Publish(r.sim.View().Stars, r.sim.Steps(), r.sim.Time())

		if rem := r.period - time.Since(start); rem > 0 {
			time.Sleep(rem)
		}
	}
}
