package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme represents a color scheme for the application
type Theme struct {
	Name string

	Foreground    lipgloss.Color
	ForegroundDim lipgloss.Color

	Primary lipgloss.Color

	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color

	Border      lipgloss.Color
	BorderFocus lipgloss.Color
	Selection   lipgloss.Color
}

// Dark is the default color theme
var Dark = Theme{
	Name: "Dark",

	Foreground:    lipgloss.Color("#c0caf5"),
	ForegroundDim: lipgloss.Color("#565f89"),

	Primary: lipgloss.Color("#7aa2f7"),

	Success: lipgloss.Color("#9ece6a"),
	Warning: lipgloss.Color("#e0af68"),
	Error:   lipgloss.Color("#f7768e"),

	Border:      lipgloss.Color("#3b4261"),
	BorderFocus: lipgloss.Color("#7aa2f7"),
	Selection:   lipgloss.Color("#33467c"),
}

// Light is used when the account has dark mode switched off
var Light = Theme{
	Name: "Light",

	Foreground:    lipgloss.Color("#343b58"),
	ForegroundDim: lipgloss.Color("#9699a3"),

	Primary: lipgloss.Color("#34548a"),

	Success: lipgloss.Color("#485e30"),
	Warning: lipgloss.Color("#8f5e15"),
	Error:   lipgloss.Color("#8c4351"),

	Border:      lipgloss.Color("#c8c9cc"),
	BorderFocus: lipgloss.Color("#34548a"),
	Selection:   lipgloss.Color("#dfe3f0"),
}

// Current holds the active theme
var Current = Dark

// Styles holds the pre-computed styles for the UI
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style

	ListItem     lipgloss.Style
	ListSelected lipgloss.Style

	Form  lipgloss.Style
	Label lipgloss.Style

	Success lipgloss.Style
	Error   lipgloss.Style
	Help    lipgloss.Style
}

// NewStyles builds the style set for the current theme
func NewStyles() *Styles {
	t := Current
	return &Styles{
		Title: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true).
			Padding(0, 1),
		Subtitle: lipgloss.NewStyle().
			Foreground(t.ForegroundDim).
			Padding(0, 1),

		ListItem: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Padding(0, 1),
		ListSelected: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Background(t.Selection).
			Padding(0, 1),

		Form: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderFocus).
			Padding(1, 2),
		Label: lipgloss.NewStyle().
			Foreground(t.ForegroundDim),

		Success: lipgloss.NewStyle().Foreground(t.Success),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Help: lipgloss.NewStyle().
			Foreground(t.ForegroundDim).
			Padding(1, 1, 0, 1),
	}
}
