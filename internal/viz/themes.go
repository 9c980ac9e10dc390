package viz

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/mazelab/internal/grid"
)

// Theme defines color scheme for the TUI
type Theme struct {
	Name      string
	Wall      lipgloss.Color
	Path      lipgloss.Color
	Start     lipgloss.Color
	End       lipgloss.Color
	Visited   lipgloss.Color
	PathFound lipgloss.Color
	Accent    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
}

// Available themes
var (
	ThemeClassic = Theme{
		Name:      "classic",
		Wall:      lipgloss.Color("#3a3a5a"),
		Path:      lipgloss.Color("#0a0a0a"),
		Start:     lipgloss.Color("#00ff88"),
		End:       lipgloss.Color("#ff4444"),
		Visited:   lipgloss.Color("#0077be"),
		PathFound: lipgloss.Color("#ffd700"),
		Accent:    lipgloss.Color("#00ffff"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#666688"),
		Success:   lipgloss.Color("#00ff88"),
		Warning:   lipgloss.Color("#ffaa00"),
		Error:     lipgloss.Color("#ff4444"),
	}

	ThemeCyberpunk = Theme{
		Name:      "cyberpunk",
		Wall:      lipgloss.Color("#ff00ff"), // Magenta
		Path:      lipgloss.Color("#0a0a0a"),
		Start:     lipgloss.Color("#00ff00"),
		End:       lipgloss.Color("#ff0000"),
		Visited:   lipgloss.Color("#00ffff"), // Cyan
		PathFound: lipgloss.Color("#ffff00"), // Yellow
		Accent:    lipgloss.Color("#ffff00"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#666666"),
		Success:   lipgloss.Color("#00ff00"),
		Warning:   lipgloss.Color("#ff8800"),
		Error:     lipgloss.Color("#ff0000"),
	}

	ThemeRetroGreen = Theme{
		Name:      "retro",
		Wall:      lipgloss.Color("#00ff00"), // Green phosphor
		Path:      lipgloss.Color("#001100"),
		Start:     lipgloss.Color("#88ff88"),
		End:       lipgloss.Color("#88ff88"),
		Visited:   lipgloss.Color("#005500"),
		PathFound: lipgloss.Color("#ffff00"),
		Accent:    lipgloss.Color("#88ff88"),
		Text:      lipgloss.Color("#00ff00"),
		Muted:     lipgloss.Color("#005500"),
		Success:   lipgloss.Color("#88ff88"),
		Warning:   lipgloss.Color("#ffff00"),
		Error:     lipgloss.Color("#ff0000"),
	}

	ThemeMinimal = Theme{
		Name:      "minimal",
		Wall:      lipgloss.Color("#ffffff"),
		Path:      lipgloss.Color("#000000"),
		Start:     lipgloss.Color("#0088ff"),
		End:       lipgloss.Color("#0088ff"),
		Visited:   lipgloss.Color("#888888"),
		PathFound: lipgloss.Color("#0088ff"),
		Accent:    lipgloss.Color("#0088ff"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#888888"),
		Success:   lipgloss.Color("#00ff00"),
		Warning:   lipgloss.Color("#ffaa00"),
		Error:     lipgloss.Color("#ff0000"),
	}

	ThemeOcean = Theme{
		Name:      "ocean",
		Wall:      lipgloss.Color("#0077be"), // Ocean blue
		Path:      lipgloss.Color("#001a33"),
		Start:     lipgloss.Color("#00ff88"),
		End:       lipgloss.Color("#ff4444"),
		Visited:   lipgloss.Color("#00a8cc"),
		PathFound: lipgloss.Color("#ffd700"),
		Accent:    lipgloss.Color("#ffd700"),
		Text:      lipgloss.Color("#e0f0ff"),
		Muted:     lipgloss.Color("#4488aa"),
		Success:   lipgloss.Color("#00ff88"),
		Warning:   lipgloss.Color("#ffcc00"),
		Error:     lipgloss.Color("#ff4444"),
	}

	ThemeSunset = Theme{
		Name:      "sunset",
		Wall:      lipgloss.Color("#ff6b6b"), // Coral
		Path:      lipgloss.Color("#2d1b2e"),
		Start:     lipgloss.Color("#5fd068"),
		End:       lipgloss.Color("#ff4757"),
		Visited:   lipgloss.Color("#8b6b8c"),
		PathFound: lipgloss.Color("#feca57"),
		Accent:    lipgloss.Color("#ff9ff3"),
		Text:      lipgloss.Color("#fff5f5"),
		Muted:     lipgloss.Color("#8b6b8c"),
		Success:   lipgloss.Color("#5fd068"),
		Warning:   lipgloss.Color("#ffc048"),
		Error:     lipgloss.Color("#ff4757"),
	}

	// Default theme
	CurrentTheme = ThemeClassic

	// All available themes
	Themes = []Theme{
		ThemeClassic,
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to classic.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClassic
}

// SetTheme changes the current theme
func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

// NextTheme switches to the theme after the current one.
func NextTheme() {
	names := ThemeNames()
	for i, name := range names {
		if name == CurrentTheme.Name {
			SetTheme(names[(i+1)%len(names)])
			return
		}
	}
	CurrentTheme = ThemeClassic
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// Color returns the theme color for a cell state.
func (t Theme) Color(c grid.Cell) lipgloss.Color {
	switch c {
	case grid.Wall:
		return t.Wall
	case grid.Start:
		return t.Start
	case grid.End:
		return t.End
	case grid.Visited:
		return t.Visited
	case grid.PathFound:
		return t.PathFound
	}
	return t.Path
}
