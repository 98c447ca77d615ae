// Package screen converts simulation-space positions into display
// coordinates.
//
// Display space runs from -1 to 1 on both axes regardless of the actual
// pixel dimensions. The domain carries a target resolution; when the
// live display differs, positions rescale by target/actual per axis so
// the simulation keeps its aspect ratio instead of stretching.
package screen

import (
	"github.com/oranellis/universe-simulation/internal/stars"
)

// Map normalizes a simulation-space position into the [-1, 1] display
// square. The boolean is false when the point falls outside the frame;
// callers skip drawing that body for the frame rather than treating it
// as an error.
func Map(pos stars.Vec2, screenW, screenH int, d stars.Domain) (stars.Vec2, bool) {
	if screenW <= 0 || screenH <= 0 {
		return stars.Vec2{}, false
	}

	n := stars.Vec2{
		X: 2 * pos.X / d.Width * (float64(d.TargetW) / float64(screenW)),
		Y: 2 * pos.Y / d.Height * (float64(d.TargetH) / float64(screenH)),
	}
	if !n.IsFinite() || n.X > 1 || n.X < -1 || n.Y > 1 || n.Y < -1 {
		return stars.Vec2{}, false
	}
	return n, true
}

// Pixel converts a normalized display coordinate into integer pixel
// indices with the origin at the top left. The y axis flips because
// simulation y grows upward while raster rows grow downward.
func Pixel(norm stars.Vec2, w, h int) (int, int) {
	px := int((norm.X + 1) * 0.5 * float64(w))
	py := int((1 - norm.Y) * 0.5 * float64(h))
	if px >= w {
		px = w - 1
	}
	if py >= h {
		py = h - 1
	}
	return px, py
}
