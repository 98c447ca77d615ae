// Package export renders simulation snapshots to vector images and
// writes machine-readable run reports.
package export

import (
	"fmt"
	"strings"

	"github.com/oranellis/universe-simulation/internal/screen"
	"github.com/oranellis/universe-simulation/internal/stars"
)

// StarsToSVG renders a snapshot as a vector image. Each star becomes a
// circle whose radius follows luminosity and whose fill follows the
// blackbody temperature ramp; dark bodies render as an outlined disc.
// Out-of-frame stars are dropped, same as on every other renderer.
func StarsToSVG(ss []stars.Star, d stars.Domain, width, height int) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#000008"/>
`, width, height, width, height))

	for i := range ss {
		norm, ok := screen.Map(ss[i].Pos, width, height, d)
		if !ok {
			continue
		}
		px, py := screen.Pixel(norm, width, height)

		if ss[i].Luminosity <= 0 {
			sb.WriteString(fmt.Sprintf("<circle cx=\"%d\" cy=\"%d\" r=\"6\" fill=\"#111122\" stroke=\"#333355\"/>\n", px, py))
			continue
		}

		r, g, b := screen.BlackbodyRGB(ss[i].Temperature)
		radius := screen.PointSize(ss[i].Luminosity)
		sb.WriteString(fmt.Sprintf("<circle cx=\"%d\" cy=\"%d\" r=\"%.1f\" fill=\"#%02x%02x%02x\"/>\n", px, py, radius, r, g, b))
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

// TrajectoryToSVG draws a recorded path as a polyline, auto-scaled to
// the point bounds with a 10% margin. Returns "" when there are fewer
// than two points to connect.
func TrajectoryToSVG(points []stars.Vec2, width, height int, strokeColor string) string {
	if len(points) < 2 {
		return ""
	}

	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#000008"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i, p := range points {
		x := (p.X - minX) / rangeX * float64(width)
		y := float64(height) - (p.Y-minY)/rangeY*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString("\"/>\n</svg>\n")
	return sb.String()
}
