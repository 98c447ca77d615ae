// Package integrators provides the numerical schemes advancing a star
// state through one timestep.
//
// Three schemes are available, trading accuracy against force-sweep
// cost per step:
//
//   - [Euler]: average-velocity semi-implicit update, 1 sweep
//   - [Verlet]: explicit velocity-Verlet update, 1 sweep
//   - [RK4]: classical 4th-order Runge-Kutta, 4 sweeps
//
// Every Step writes the advanced state into a caller-owned destination
// buffer and never mutates the source, so a body's update can only read
// pre-step values of every other body. Integrators keep internal
// scratch sized to the state and are cheap to reuse; they are not safe
// for concurrent use.
package integrators
