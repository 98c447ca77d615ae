package viz

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/oranellis/universe-simulation/internal/export"
	"github.com/oranellis/universe-simulation/internal/gravity"
	"github.com/oranellis/universe-simulation/internal/screen"
	"github.com/oranellis/universe-simulation/internal/sim"
	"github.com/oranellis/universe-simulation/internal/stars"
)

const (
	canvasWidth     = 80
	canvasHeight    = 36
	historyCapacity = 600

	gifFile = "universe.gif"
	svgFile = "universe.svg"
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(42)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(2)
)

type TickMsg time.Time

// Live renders the star field in the terminal. A Runner goroutine keeps
// stepping the simulation at its own rate; Live only snapshots the
// shared cell once per frame, so stepping never waits on drawing.
type Live struct {
	shared *sim.Shared
	field  *gravity.Field
	domain stars.Domain
	stop   func()
	period time.Duration

	canvas    *Canvas
	buf       []stars.Star
	step      uint64
	simTime   float64
	contained int

	paused    bool
	showHelp  bool
	recording bool
	frames    []*image.Paletted

	energyHist   []float64
	momentumHist []float64
	note         string
}

// NewLive builds the terminal view. stop is invoked once when the user
// quits, and is how the stepping goroutine gets cancelled.
func NewLive(shared *sim.Shared, field *gravity.Field, domain stars.Domain, frameRate float64, stop func()) Live {
	if frameRate <= 0 {
		frameRate = 60
	}
	return Live{
		shared:       shared,
		field:        field,
		domain:       domain,
		stop:         stop,
		period:       time.Duration(float64(time.Second) / frameRate),
		canvas:       NewCanvas(canvasWidth, canvasHeight),
		energyHist:   make([]float64, 0, historyCapacity),
		momentumHist: make([]float64, 0, historyCapacity),
	}
}

func (l Live) Init() tea.Cmd {
	return tea.Tick(l.period, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and per-frame snapshots.
func (l Live) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			if l.stop != nil {
				l.stop()
			}
			return l, tea.Quit
		case " ":
			l.paused = !l.paused
		case "g":
			if l.recording {
				l.saveGIF()
				l.recording = false
				l.frames = nil
			} else {
				l.recording = true
				l.frames = make([]*image.Paletted, 0)
			}
		case "s":
			l.saveSVG()
		case "t":
			names := ThemeNames()
			for i, name := range names {
				if name == CurrentTheme.Name {
					SetTheme(names[(i+1)%len(names)])
					break
				}
			}
		case "?":
			l.showHelp = !l.showHelp
		}
	case TickMsg:
		if !l.paused {
			l.snap()
		}
		l.draw()
		if l.recording {
			l.captureFrame()
		}
		return l, tea.Tick(l.period, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return l, nil
}

// snap copies the latest published state out of the shared cell and
// refreshes the derived histories.
func (l *Live) snap() {
	l.buf, l.step, l.simTime = l.shared.Snapshot(l.buf)
	if len(l.buf) == 0 {
		return
	}

	l.energyHist = append(l.energyHist, l.field.Energy(l.buf))
	if len(l.energyHist) > historyCapacity {
		l.energyHist = l.energyHist[1:]
	}
	l.momentumHist = append(l.momentumHist, stars.Momentum(l.buf).Norm())
	if len(l.momentumHist) > historyCapacity {
		l.momentumHist = l.momentumHist[1:]
	}
}

// draw replots the star field from the current snapshot.
func (l *Live) draw() {
	l.canvas.Clear()
	l.contained = 0
	dw, dh := l.canvas.Dots()
	for i := range l.buf {
		norm, ok := screen.Map(l.buf[i].Pos, l.domain.TargetW, l.domain.TargetH, l.domain)
		if !ok {
			continue
		}
		l.contained++
		px, py := screen.Pixel(norm, dw, dh)
		if l.buf[i].Luminosity == 0 {
			// Dark-body anchor renders as a disc so it reads as mass,
			// not as another star.
			l.canvas.SetDisc(px, py, 2)
		} else {
			l.canvas.Set(px, py)
		}
	}
}

func (l *Live) saveSVG() {
	svg := export.StarsToSVG(l.buf, l.domain, l.domain.TargetW, l.domain.TargetH)
	if err := os.WriteFile(svgFile, []byte(svg), 0644); err != nil {
		l.note = "svg export failed: " + err.Error()
		return
	}
	l.note = "wrote " + svgFile
}

// View renders the TUI interface.
func (l Live) View() string {
	theme := CurrentTheme

	status := StatusRunning.Render("RUNNING")
	if l.paused {
		status = StatusPaused.Render("PAUSED")
	}
	if l.recording {
		status += " " + StatusRecording.Render("● REC")
	}

	var s strings.Builder
	s.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("UNIVERSE") + "\n")
	s.WriteString(status + "\n")

	if len(l.energyHist) > 1 {
		chart := asciigraph.Plot(l.energyHist, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Energy"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	s.WriteString(labelStyle.Render("Stars") + valueStyle.Render(fmt.Sprintf("%d", len(l.buf))) + "\n")
	s.WriteString(labelStyle.Render("Step") + valueStyle.Render(fmt.Sprintf("%d", l.step)) + "\n")
	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.3e s", l.simTime)) + "\n")
	if len(l.energyHist) > 0 {
		s.WriteString(labelStyle.Render("Energy") + MetricValue.Render(fmt.Sprintf("%.3e", l.energyHist[len(l.energyHist)-1])) + "\n")
	}
	if len(l.momentumHist) > 0 {
		s.WriteString(labelStyle.Render("Momentum") + valueStyle.Render(fmt.Sprintf("%.3e", l.momentumHist[len(l.momentumHist)-1])) + "\n")
		s.WriteString(labelStyle.Render("") + MetricLabel.Render(SparklineChart(l.momentumHist, 28)) + "\n")
	}
	if n := len(l.buf); n > 0 {
		frac := float64(l.contained) / float64(n)
		s.WriteString(labelStyle.Render("In frame") + valueStyle.Render(fmt.Sprintf("%3.0f%% ", frac*100)) + ProgressBar(frac, 18) + "\n")
	}
	if l.note != "" {
		s.WriteString("\n" + KeyHint.Render(l.note) + "\n")
	}

	s.WriteString(helpStyle.Render("\n─────────────────────\nSP:Pause S:Snapshot Q:Quit\nT:Theme  G:Record  ?:Help"))

	canvasView := canvasStyle.Foreground(theme.Primary).Render(l.canvas.String())
	statsView := statsStyle.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)

	if l.showHelp {
		return `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume the view    ║
║  S        - Save an SVG snapshot     ║
║  G        - Toggle GIF recording     ║
║  T        - Cycle themes             ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}

// captureFrame rasterizes the braille canvas into a paletted image for
// the GIF recorder.
func (l *Live) captureFrame() {
	charW, charH := 8, 16
	imgW, imgH := l.canvas.Width*charW, l.canvas.Height*charH

	br, bg, bb := parseHex(CurrentTheme.Background)
	fr, fg, fb := parseHex(CurrentTheme.Foreground)
	palette := color.Palette{
		color.RGBA{uint8(br), uint8(bg), uint8(bb), 255},
		color.RGBA{uint8(fr), uint8(fg), uint8(fb), 255},
	}

	img := image.NewPaletted(image.Rect(0, 0, imgW, imgH), palette)
	for row := 0; row < l.canvas.Height; row++ {
		for col := 0; col < l.canvas.Width; col++ {
			r := l.canvas.Grid[row][col]
			if r <= 0x2800 {
				continue
			}
			pattern := int(r - 0x2800)
			dotW, dotH := charW/2, charH/4
			baseX, baseY := col*charW, row*charH
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] == 0 {
						continue
					}
					for py := 0; py < dotH; py++ {
						for px := 0; px < dotW; px++ {
							img.SetColorIndex(baseX+dx*dotW+px, baseY+dy*dotH+py, 1)
						}
					}
				}
			}
		}
	}
	l.frames = append(l.frames, img)
}

func (l *Live) saveGIF() {
	if len(l.frames) == 0 {
		return
	}
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range l.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, 2)
	}
	f, err := os.Create(gifFile)
	if err != nil {
		l.note = "gif export failed: " + err.Error()
		return
	}
	defer f.Close()
	gif.EncodeAll(f, &anim)
	l.note = "wrote " + gifFile
}
