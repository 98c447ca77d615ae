// Package stars provides the core data model for gravitational simulation.
//
// The package defines the fundamental types shared by every other layer:
//
//   - [Vec2]: 2D vector arithmetic underlying all physics
//   - [Star]: a point mass with position, velocity, and display attributes
//   - [State]: the ordered set of stars at one instant of simulation time
//   - [Derivative]: per-star (velocity, acceleration) pairs for stage blending
//   - [System]: interface evaluating d(state)/dt for a whole state
//   - [Domain]: the simulation-space extent used for display mapping
//
// # Example
//
//	st, _ := stars.NewState(genesis.Cloud(cfg, rng))
//	field := gravity.NewField(cfg.G, cfg.MinSeparation)
//	integ := integrators.NewVerlet()
//	integ.Step(next, st, field, cfg.Dt)
//
// # Thread Safety
//
// States are plain data and NOT thread-safe. Cross-thread publication
// goes through the sim package's snapshot cell.
package stars
