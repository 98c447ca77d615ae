package sim

import "errors"

// Construction errors. Configuration is rejected before the step loop
// can start; there is no recovery path from a half-built simulation.
var (
	// ErrTimestep indicates a zero, negative, or non-finite dt.
	ErrTimestep = errors.New("sim: timestep must be positive and finite")

	// ErrNilSystem indicates a missing force system.
	ErrNilSystem = errors.New("sim: system must not be nil")

	// ErrNilIntegrator indicates a missing integration scheme.
	ErrNilIntegrator = errors.New("sim: integrator must not be nil")

	// ErrRate indicates a non-positive loop rate.
	ErrRate = errors.New("sim: loop rate must be positive")
)
