package viz

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	pickerTitle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	pickerItem   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	pickerActive = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	pickerDim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

var presetInfo = map[string]string{
	"galaxy":    "star cloud around a central black hole",
	"cloud":     "drifting cloud with uniform random velocities",
	"orbital":   "stars launched on circular orbits",
	"threebody": "periodic three-body choreography",
	"binary":    "symmetric two-star system",
}

// Picker is a minimal menu for choosing a preset before the live view
// starts. Read Choice from the final model after the program exits; it
// stays empty when the user backs out.
type Picker struct {
	names  []string
	cursor int
	Choice string
}

func NewPicker(names []string) Picker {
	return Picker{names: names}
}

func (p Picker) Init() tea.Cmd { return nil }

func (p Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return p, tea.Quit
		case "up", "k":
			if p.cursor > 0 {
				p.cursor--
			}
		case "down", "j":
			if p.cursor < len(p.names)-1 {
				p.cursor++
			}
		case "enter":
			if len(p.names) > 0 {
				p.Choice = p.names[p.cursor]
			}
			return p, tea.Quit
		}
	}
	return p, nil
}

func (p Picker) View() string {
	var s strings.Builder
	s.WriteString(pickerTitle.Render("UNIVERSE :: choose a preset") + "\n\n")
	for i, name := range p.names {
		line := "  " + name
		if i == p.cursor {
			line = pickerActive.Render("▸ " + name)
		} else {
			line = pickerItem.Render(line)
		}
		if info := presetInfo[name]; info != "" {
			line += pickerDim.Render("  " + info)
		}
		s.WriteString(line + "\n")
	}
	s.WriteString(pickerDim.Render("\n↑/↓ move · enter select · q quit") + "\n")
	return s.String()
}
