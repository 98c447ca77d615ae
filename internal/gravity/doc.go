// Package gravity implements the Newtonian pairwise force law and the
// O(N²) acceleration sweeps that dominate a timestep.
//
// [Field] carries the gravitational constant and the minimum-separation
// floor, and implements [stars.System] so integrators can evaluate
// derivatives against it:
//
//	field := gravity.NewField(6.674e-11, 1e8)
//	field.Derive(&d, state)
//
// The sweep is exact: every pair contributes, with no spatial
// approximation. The serial path halves the work through Newton's third
// law; the parallel path splits rows across workers.
package gravity
