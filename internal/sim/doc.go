// Package sim owns the stepping of a star state through time and the
// handoff of completed states to renderers.
//
//   - [Simulation]: double-buffered state advanced by an integrator
//   - [Shared]: mutex-guarded latest-snapshot cell between threads
//   - [Runner]: fixed-rate stepping loop publishing into a Shared
//
// Two execution shapes are supported. Single-threaded: call Step and
// read View/Snapshot from the same goroutine. Two-threaded: a Runner
// goroutine steps at its own fixed rate while a render loop snapshots
// the Shared cell at another; the renderer always sees the most recent
// fully-completed step, never a partial one.
//
// # Thread Safety
//
// Simulation instances are NOT thread-safe. All cross-thread traffic
// goes through [Shared], whose critical sections only copy.
package sim
