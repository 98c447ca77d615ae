// Package analysis provides spectral and chaos analysis of simulated
// trajectories.
//
// The package includes tools for characterizing a configuration:
//
//   - [Path], [Record]: per-step position series of one star
//   - [PathToASCII]: scatter portrait of a recorded path
//   - [PowerSpectrum]: magnitude spectrum of a recorded series
//   - [DominantPeriod]: strongest oscillation period in a series
//   - [Divergence]: chaos estimate via trajectory separation
//
// # Chaos Detection
//
// A clearly positive divergence estimate indicates sensitive dependence
// on initial conditions:
//
//	lambda, err := analysis.Divergence(initial, field, integ, 1e-3, 20000, 1e-8)
//	if err == nil && lambda > 0 {
//	    // Nearby trajectories separate exponentially
//	}
package analysis
