package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme for the TUI.
type Theme struct {
	Name       string
	Primary    lipgloss.Color // star field and title
	Secondary  lipgloss.Color // charts
	Accent     lipgloss.Color // highlighted values
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
	Background string // hex, used by the GIF recorder
	Foreground string
}

// Available themes
var (
	ThemeVoid = Theme{
		Name:       "void",
		Primary:    lipgloss.Color("#ffffff"),
		Secondary:  lipgloss.Color("#8888aa"),
		Accent:     lipgloss.Color("#00ccff"),
		Text:       lipgloss.Color("#e8e8f0"),
		Muted:      lipgloss.Color("#555566"),
		Success:    lipgloss.Color("#00ff88"),
		Warning:    lipgloss.Color("#ffaa00"),
		Error:      lipgloss.Color("#ff4444"),
		Background: "#000008",
		Foreground: "#ffffff",
	}

	ThemePhosphor = Theme{
		Name:       "phosphor",
		Primary:    lipgloss.Color("#00ff00"),
		Secondary:  lipgloss.Color("#00cc00"),
		Accent:     lipgloss.Color("#88ff88"),
		Text:       lipgloss.Color("#00ff00"),
		Muted:      lipgloss.Color("#005500"),
		Success:    lipgloss.Color("#88ff88"),
		Warning:    lipgloss.Color("#ffff00"),
		Error:      lipgloss.Color("#ff0000"),
		Background: "#001100",
		Foreground: "#00ff00",
	}

	ThemeNebula = Theme{
		Name:       "nebula",
		Primary:    lipgloss.Color("#ff00ff"),
		Secondary:  lipgloss.Color("#00ffff"),
		Accent:     lipgloss.Color("#ffff00"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#666666"),
		Success:    lipgloss.Color("#00ff00"),
		Warning:    lipgloss.Color("#ff8800"),
		Error:      lipgloss.Color("#ff0000"),
		Background: "#0a0a14",
		Foreground: "#ff00ff",
	}

	ThemeSolar = Theme{
		Name:       "solar",
		Primary:    lipgloss.Color("#ffd700"),
		Secondary:  lipgloss.Color("#ff9944"),
		Accent:     lipgloss.Color("#ff6b6b"),
		Text:       lipgloss.Color("#fff5e0"),
		Muted:      lipgloss.Color("#8b7355"),
		Success:    lipgloss.Color("#5fd068"),
		Warning:    lipgloss.Color("#ffc048"),
		Error:      lipgloss.Color("#ff4757"),
		Background: "#140a00",
		Foreground: "#ffd700",
	}

	// Default theme
	CurrentTheme = ThemeVoid

	// All available themes
	Themes = []Theme{
		ThemeVoid,
		ThemePhosphor,
		ThemeNebula,
		ThemeSolar,
	}
)

// GetTheme returns a theme by name, falling back to the default.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeVoid
}

// SetTheme changes the current theme.
func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

// ThemeNames returns the list of available theme names.
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
