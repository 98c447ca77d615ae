// Package gui is the raylib front-end. It opens a window sized to the
// domain's target display, snapshots the shared cell once per frame and
// draws the star field with temperature-ramped glow sprites, a HUD and
// an optional sonification stream.
package gui

import (
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/oranellis/universe-simulation/internal/audio"
	"github.com/oranellis/universe-simulation/internal/gravity"
	"github.com/oranellis/universe-simulation/internal/sim"
	"github.com/oranellis/universe-simulation/internal/stars"
)

const (
	glowTexSize    = 64
	anchorRadius   = 10
	historyCap     = 600
	screenshotFile = "universe.png"
)

var (
	colBg        = rl.NewColor(0, 0, 8, 255)
	colBright    = rl.NewColor(240, 245, 255, 255)
	colAccent    = rl.NewColor(180, 190, 210, 255)
	colText      = rl.NewColor(140, 150, 170, 255)
	colTextDim   = rl.NewColor(60, 65, 80, 255)
	colAnchor    = rl.NewColor(17, 17, 34, 255)
	colAnchorRim = rl.NewColor(51, 51, 85, 255)
)

type App struct {
	shared *sim.Shared
	field  *gravity.Field
	domain stars.Domain
	stop   func()
	preset string

	winW, winH int32

	buf      []stars.Star
	step     uint64
	simTime  float64
	energy   float64
	kinetic  float64
	momentum float64

	energyHist []float64

	paused bool
	quit   bool
	note   string

	font       rl.Font
	fontLoaded bool
	glowTex    rl.Texture2D

	sound *audio.Sonifier
}

// Run opens the window and blocks until the user quits. stop cancels
// the stepping goroutine on the way out.
func Run(shared *sim.Shared, field *gravity.Field, domain stars.Domain, preset string, frameRate float64, stop func()) {
	w, h := int32(domain.TargetW), int32(domain.TargetH)
	if w <= 0 {
		w = 1000
	}
	if h <= 0 {
		h = 1000
	}
	if frameRate <= 0 {
		frameRate = 60
	}

	rl.InitWindow(w, h, "universe")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(frameRate))
	rl.SetExitKey(0)

	app := NewApp(shared, field, domain, preset, stop)
	app.winW, app.winH = w, h
	defer app.close()

	app.RunLoop()
}

func NewApp(shared *sim.Shared, field *gravity.Field, domain stars.Domain, preset string, stop func()) *App {
	app := &App{
		shared:     shared,
		field:      field,
		domain:     domain,
		stop:       stop,
		preset:     preset,
		energyHist: make([]float64, 0, historyCap),
		sound:      audio.NewSonifier(),
	}

	app.font, app.fontLoaded = loadFont()

	// A radial gradient drawn under the bright core reads as glow
	// without needing a bloom shader.
	img := rl.GenImageGradientRadial(glowTexSize, glowTexSize, 0.0, rl.White, rl.NewColor(0, 0, 0, 0))
	app.glowTex = rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)

	return app
}

// loadFont tries a few common monospace font paths and falls back to
// raylib's built-in font.
func loadFont() (rl.Font, bool) {
	candidates := []string{
		"/usr/share/fonts/liberation/LiberationMono-Regular.ttf",
		"/usr/share/fonts/truetype/liberation/LiberationMono-Regular.ttf",
		"/usr/share/fonts/TTF/DejaVuSansMono.ttf",
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			font := rl.LoadFontEx(path, 32, nil, 0)
			rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
			return font, true
		}
	}
	return rl.GetFontDefault(), false
}

func (a *App) close() {
	rl.UnloadTexture(a.glowTex)
	if a.fontLoaded {
		rl.UnloadFont(a.font)
	}
	if a.sound.Active {
		a.sound.Stop()
	}
	if a.stop != nil {
		a.stop()
	}
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() && !a.quit {
		a.Update()
		a.Draw()
	}
}

func (a *App) Update() {
	if rl.IsKeyPressed(rl.KeyQ) || rl.IsKeyPressed(rl.KeyEscape) {
		a.quit = true
		return
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		a.paused = !a.paused
	}
	if rl.IsKeyPressed(rl.KeyP) {
		rl.TakeScreenshot(screenshotFile)
		a.note = "saved " + screenshotFile
	}
	if rl.IsKeyPressed(rl.KeyM) {
		a.toggleAudio()
	}

	// Paused freezes the view only; the stepping goroutine keeps its
	// own pace and the next unpause snaps to the present.
	if a.paused {
		return
	}

	a.buf, a.step, a.simTime = a.shared.Snapshot(a.buf)
	if len(a.buf) == 0 {
		return
	}

	a.kinetic = stars.KineticEnergy(a.buf)
	a.energy = a.field.Energy(a.buf)
	a.momentum = stars.Momentum(a.buf).Norm()

	a.energyHist = append(a.energyHist, a.energy)
	if len(a.energyHist) > historyCap {
		a.energyHist = a.energyHist[1:]
	}

	if a.sound.Active {
		a.sound.UpdatePhysics(a.kinetic, a.momentum)
	}
}

func (a *App) toggleAudio() {
	if a.sound.Active {
		a.sound.Stop()
		a.note = "audio off"
		return
	}
	if err := a.sound.Start(); err != nil {
		a.note = "audio unavailable"
		return
	}
	a.note = "audio on"
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(colBg)

	a.drawStars()
	a.drawEnergyStrip()
	a.drawHUD()

	rl.EndDrawing()
}
