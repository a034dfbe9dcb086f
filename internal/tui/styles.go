package tui

import "github.com/charmbracelet/lipgloss"

// Colors defines the color palette for the TUI.
var Colors = struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Muted     lipgloss.Color
	Error     lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color

	TitleNormal   lipgloss.Color
	TitleSelected lipgloss.Color
}{
	Primary:   lipgloss.Color("#6C5CE7"), // Purple
	Secondary: lipgloss.Color("#A29BFE"), // Lavender
	Muted:     lipgloss.Color("#636E72"), // Gray
	Error:     lipgloss.Color("#D63031"), // Red
	Success:   lipgloss.Color("#00B894"), // Green
	Warning:   lipgloss.Color("#FDCB6E"), // Yellow

	TitleNormal:   lipgloss.Color("#DFE6E9"), // Light gray
	TitleSelected: lipgloss.Color("#FFEAA7"), // Yellow (selected)
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	App lipgloss.Style

	Header lipgloss.Style

	MenuItem         lipgloss.Style
	MenuItemSelected lipgloss.Style
	MenuNumber       lipgloss.Style

	InputPrompt lipgloss.Style
	Answered    lipgloss.Style

	OutputTitle lipgloss.Style
	OutputLine  lipgloss.Style
	Overdue     lipgloss.Style
	Done        lipgloss.Style

	ErrorMsg lipgloss.Style
	Footer   lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().Padding(1, 2),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary).
			MarginBottom(1),

		MenuItem: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal).
			PaddingLeft(2),
		MenuItemSelected: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected).
			Bold(true).
			PaddingLeft(1).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(Colors.Primary),
		MenuNumber: lipgloss.NewStyle().
			Foreground(Colors.Secondary),

		InputPrompt: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),
		Answered: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		OutputTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Secondary),
		OutputLine: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal),
		Overdue: lipgloss.NewStyle().
			Foreground(Colors.Warning),
		Done: lipgloss.NewStyle().
			Foreground(Colors.Success),

		ErrorMsg: lipgloss.NewStyle().
			Foreground(Colors.Error),
		Footer: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			MarginTop(1),
	}
}
