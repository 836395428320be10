package compositor

import "github.com/charmbracelet/lipgloss"

// Theme holds the two colours the compositor actually needs: the ordinary
// border colour and the colour used for the focused pane's border. Trimmed
// from the full chrome palette down to what a raw-CSI compositor draws.
type Theme struct {
	Name      string
	Border    lipgloss.Style
	Highlight lipgloss.Style
}

// Themes is the registry of border colour palettes selectable from config.
var Themes = map[string]Theme{
	"dark": {
		Name:      "dark",
		Border:    lipgloss.NewStyle().Foreground(lipgloss.Color("#45475A")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("#F5C2E7")),
	},
	"light": {
		Name:      "light",
		Border:    lipgloss.NewStyle().Foreground(lipgloss.Color("#CBD5E1")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("#A855F7")),
	},
	"dracula": {
		Name:      "dracula",
		Border:    lipgloss.NewStyle().Foreground(lipgloss.Color("#6272A4")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("#FF79C6")),
	},
}

// ThemeByName returns the named theme, falling back to "dark" the way
// config.Load clamps an unknown theme name rather than erroring.
func ThemeByName(name string) Theme {
	if t, ok := Themes[name]; ok {
		return t
	}
	return Themes["dark"]
}
