package tui

import "github.com/charmbracelet/lipgloss"

// Theme is a named accent palette a room can pick for its focus view.
type Theme struct {
	Name   string
	Label  string
	Accent lipgloss.Color
	Dim    lipgloss.Color
}

var themes = map[string]Theme{
	"indigo":  {Name: "indigo", Label: "Deep Focus", Accent: lipgloss.Color("#818CF8"), Dim: lipgloss.Color("#3730A3")},
	"cyber":   {Name: "cyber", Label: "Cyberpunk", Accent: lipgloss.Color("#E879F9"), Dim: lipgloss.Color("#86198F")},
	"ocean":   {Name: "ocean", Label: "Ocean", Accent: lipgloss.Color("#22D3EE"), Dim: lipgloss.Color("#155E75")},
	"forest":  {Name: "forest", Label: "Forest", Accent: lipgloss.Color("#34D399"), Dim: lipgloss.Color("#065F46")},
	"sunset":  {Name: "sunset", Label: "Sunset", Accent: lipgloss.Color("#FB923C"), Dim: lipgloss.Color("#9A3412")},
	"minimal": {Name: "minimal", Label: "Minimal", Accent: lipgloss.Color("#94A3B8"), Dim: lipgloss.Color("#475569")},
}

// ThemeNamed resolves a room's theme key, falling back to indigo for
// unknown or empty keys.
func ThemeNamed(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes["indigo"]
}

// ThemeNames lists the valid theme keys in a stable order.
func ThemeNames() []string {
	return []string{"indigo", "cyber", "ocean", "forest", "sunset", "minimal"}
}
