package themes

import "github.com/charmbracelet/lipgloss"

// Theme defines the visual style for the TUI.
type Theme struct {
	Rarity        map[string]lipgloss.Color
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Normal        lipgloss.Style
	Bold          lipgloss.Style
	Code          lipgloss.Style
	Card          lipgloss.Style
	Checked       lipgloss.Style
	Unchecked     lipgloss.Style
	ProgressFull  lipgloss.Style
	ProgressEmpty lipgloss.Style
	StatusSuccess lipgloss.Style
	StatusError   lipgloss.Style
	StatusPending lipgloss.Style
	Primary       lipgloss.Color
	Muted         lipgloss.Color
	Border        lipgloss.Color
	Flash         lipgloss.Color
}

// RarityColor returns the card color for a rarity id.
func (t Theme) RarityColor(id string) lipgloss.Color {
	if c, ok := t.Rarity[id]; ok {
		return c
	}
	return t.Border
}

// Default is the default theme.
var Default = Theme{
	Primary: lipgloss.Color("#ff8c42"),
	Muted:   lipgloss.Color("#737373"),
	Border:  lipgloss.Color("#404040"),
	Flash:   lipgloss.Color("#fafafa"),

	Rarity: map[string]lipgloss.Color{
		"common":    lipgloss.Color("#9d9d9d"),
		"magic":     lipgloss.Color("#4169e1"),
		"rare":      lipgloss.Color("#ffd700"),
		"epic":      lipgloss.Color("#a335ee"),
		"legendary": lipgloss.Color("#ff8000"),
		"ancient":   lipgloss.Color("#e6cc80"),
	},

	// Text styles
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#ff8c42")).
		MarginBottom(1),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a3a3a3")),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#fafafa")),
	Bold: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#fafafa")),
	Code: lipgloss.NewStyle().
		Background(lipgloss.Color("#262626")).
		Foreground(lipgloss.Color("#e5e5e5")).
		Padding(0, 1),

	// Component styles
	Card: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 3),
	Checked: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#10b981")).
		Bold(true),
	Unchecked: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#737373")),
	ProgressFull: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ff8c42")),
	ProgressEmpty: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#404040")),

	// Status styles
	StatusSuccess: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#10b981")).
		Bold(true),
	StatusError: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ef4444")).
		Bold(true),
	StatusPending: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#737373")).
		Italic(true),
}

// CatppuccinMocha is the Catppuccin Mocha theme.
var CatppuccinMocha = Theme{
	Primary: lipgloss.Color("#fab387"),
	Muted:   lipgloss.Color("#6c7086"),
	Border:  lipgloss.Color("#45475a"),
	Flash:   lipgloss.Color("#cdd6f4"),

	Rarity: map[string]lipgloss.Color{
		"common":    lipgloss.Color("#9399b2"),
		"magic":     lipgloss.Color("#89b4fa"),
		"rare":      lipgloss.Color("#f9e2af"),
		"epic":      lipgloss.Color("#cba6f7"),
		"legendary": lipgloss.Color("#fab387"),
		"ancient":   lipgloss.Color("#f5e0dc"),
	},

	// Text styles
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#fab387")).
		MarginBottom(1),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a6adc8")),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#cdd6f4")),
	Bold: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#cdd6f4")),
	Code: lipgloss.NewStyle().
		Background(lipgloss.Color("#313244")).
		Foreground(lipgloss.Color("#cdd6f4")).
		Padding(0, 1),

	// Component styles
	Card: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 3),
	Checked: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a6e3a1")).
		Bold(true),
	Unchecked: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#6c7086")),
	ProgressFull: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#fab387")),
	ProgressEmpty: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#45475a")),

	// Status styles
	StatusSuccess: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a6e3a1")).
		Bold(true),
	StatusError: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#f38ba8")).
		Bold(true),
	StatusPending: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#6c7086")).
		Italic(true),
}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	switch name {
	case "catppuccin-mocha":
		return CatppuccinMocha
	default:
		return Default
	}
}
