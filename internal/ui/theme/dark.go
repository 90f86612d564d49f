package theme

import "github.com/charmbracelet/lipgloss"

// Palette lifted from the app's dark mode: window grey, near-black fields,
// white text, with a few accents for state.
var (
	Window  = lipgloss.Color("#353535")
	Field   = lipgloss.Color("#191919")
	Text    = lipgloss.Color("#ffffff")
	Subtext = lipgloss.Color("#a0a0a0")
	Accent  = lipgloss.Color("#6aa9ff")
	Good    = lipgloss.Color("#77cc77")
	Bad     = lipgloss.Color("#e06c6c")

	App = lipgloss.NewStyle().
		Background(Window).
		Foreground(Text).
		Padding(1, 2)

	Pane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Subtext).
		Background(Window).
		Foreground(Text).
		Padding(1, 2)

	PaneActive = Pane.BorderForeground(Accent)

	Title  = lipgloss.NewStyle().Foreground(Accent).Bold(true)
	Muted  = lipgloss.NewStyle().Foreground(Subtext)
	Match  = lipgloss.NewStyle().Foreground(Good).Bold(true)
	Miss   = lipgloss.NewStyle().Foreground(Bad).Bold(true)
	Notice = lipgloss.NewStyle().Foreground(Accent)
)
