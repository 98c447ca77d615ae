package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/oranellis/universe-simulation/internal/screen"
)

func (a *App) drawStars() {
	w, h := int(a.winW), int(a.winH)

	for i := range a.buf {
		norm, ok := screen.Map(a.buf[i].Pos, w, h, a.domain)
		if !ok {
			continue
		}
		px, py := screen.Pixel(norm, w, h)

		// Non-luminous bodies occlude rather than shine.
		if a.buf[i].Luminosity <= 0 {
			rl.DrawCircle(int32(px), int32(py), anchorRadius, colAnchor)
			rl.DrawCircleLines(int32(px), int32(py), anchorRadius, colAnchorRim)
			continue
		}

		r, g, b := screen.BlackbodyRGB(a.buf[i].Temperature)
		size := float32(screen.PointSize(a.buf[i].Luminosity))

		glow := size * 8
		rl.DrawTexturePro(a.glowTex,
			rl.NewRectangle(0, 0, glowTexSize, glowTexSize),
			rl.NewRectangle(float32(px)-glow/2, float32(py)-glow/2, glow, glow),
			rl.NewVector2(0, 0), 0, rl.NewColor(r, g, b, 110))
		rl.DrawCircle(int32(px), int32(py), size, rl.NewColor(r, g, b, 255))
	}
}

func (a *App) drawHUD() {
	a.drawText("universe", 30, 30, 24, colBright)
	a.drawText(fmt.Sprintf(":: %s", a.preset), 160, 34, 16, colText)

	status := "RUNNING"
	col := colBright
	if a.paused {
		status = "PAUSED"
		col = colTextDim
	}
	a.drawText(status, int(a.winW)-130, 30, 16, col)

	y := 70
	a.drawText(fmt.Sprintf("STARS  %d", len(a.buf)), 30, y, 14, colText)
	y += 20
	a.drawText(fmt.Sprintf("STEP   %d", a.step), 30, y, 14, colText)
	y += 20
	a.drawText(fmt.Sprintf("TIME   %.3e s", a.simTime), 30, y, 14, colText)
	y += 20
	a.drawText(fmt.Sprintf("E      %.3e", a.energy), 30, y, 14, colText)
	y += 20
	a.drawText(fmt.Sprintf("|P|    %.3e", a.momentum), 30, y, 14, colText)
	y += 20

	if a.sound.Active {
		a.drawText(fmt.Sprintf("AUDIO  %4.0f Hz", a.sound.Centroid()), 30, y, 14, colAccent)
	} else {
		a.drawText("AUDIO  OFF", 30, y, 14, colTextDim)
	}

	if a.note != "" {
		a.drawText(a.note, 30, int(a.winH)-70, 14, colAccent)
	}

	a.drawText("[SPACE] PAUSE  [M] AUDIO  [P] SCREENSHOT  [Q] QUIT",
		int(a.winW)-480, int(a.winH)-40, 14, colTextDim)
	a.drawText(fmt.Sprintf("%d FPS", rl.GetFPS()), 30, int(a.winH)-40, 14, colTextDim)
}

// drawEnergyStrip plots the recent total-energy history in a small
// strip, normalized to its own min/max so drift is visible at any
// preset's scale.
func (a *App) drawEnergyStrip() {
	if len(a.energyHist) < 2 {
		return
	}

	rectX, rectY := 30, int(a.winH)-160
	width, height := 300, 60

	minVal, maxVal := a.energyHist[0], a.energyHist[0]
	for _, v := range a.energyHist {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal == minVal {
		maxVal = minVal + 1
	}

	points := make([]rl.Vector2, len(a.energyHist))
	for i, val := range a.energyHist {
		px := float32(rectX) + (float32(i)/float32(len(a.energyHist)))*float32(width)
		frac := (val - minVal) / (maxVal - minVal)
		py := float32(rectY+height) - float32(frac)*float32(height)
		points[i] = rl.NewVector2(px, py)
	}

	rl.DrawLineStrip(points, colAccent)
	a.drawText(fmt.Sprintf("E %.2e", a.energyHist[len(a.energyHist)-1]),
		rectX+width+10, rectY+height-12, 14, colText)
}

func (a *App) drawText(text string, x, y int, size int, color rl.Color) {
	rl.DrawTextEx(a.font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
}
