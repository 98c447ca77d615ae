// Package viz provides the terminal star-field view.
//
// The package implements a Bubble Tea TUI that consumes snapshots from
// a shared state cell while a Runner goroutine keeps stepping:
//
//   - [Live]: star-field view with energy/momentum readouts
//   - [Picker]: preset menu shown when no preset is given
//   - [Canvas]: braille dot canvas the star field plots onto
//   - Theme selection with 4 built-in color schemes
//
// # Key Bindings
//
//	Space - Pause/Resume the view
//	S     - Save an SVG snapshot
//	G     - Toggle GIF recording
//	T     - Cycle color themes
//	?     - Show help overlay
//	Q     - Quit
//
// # Recording
//
// The G key records frames and writes a GIF animation to the current
// directory when toggled off; S writes a vector snapshot of the current
// frame.
package viz
