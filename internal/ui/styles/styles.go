// Package styles defines the visual styling for the stats dashboard.
package styles

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// Color definitions for the voe theme.
var (
	Primary = lipgloss.Color("205") // Pink
	Subtle  = lipgloss.Color("240") // Gray
	Error   = lipgloss.Color("196") // Red

	TextPrimary   = lipgloss.Color("252")
	TextSecondary = lipgloss.Color("245")
)

// editorPalette maps editor identifiers onto stable colors. The
// renderer tags output with the editor id as a style hook; unknown
// ids cycle through the palette.
var editorPalette = []lipgloss.Color{
	lipgloss.Color("70"),  // green (vim)
	lipgloss.Color("99"),  // purple (emacs)
	lipgloss.Color("39"),  // blue
	lipgloss.Color("214"), // orange
}

// ForEditor returns the style for an editor identifier hook.
// An empty hook gets the neutral text style.
func ForEditor(key string) lipgloss.Style {
	if key == "" {
		return lipgloss.NewStyle().Foreground(TextPrimary)
	}
	id, err := strconv.Atoi(key)
	if err != nil || id < 1 {
		return lipgloss.NewStyle().Foreground(TextSecondary)
	}
	color := editorPalette[(id-1)%len(editorPalette)]
	return lipgloss.NewStyle().Foreground(color)
}

// TitleStyle is used for the dashboard heading.
var TitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(Primary).
	MarginBottom(1)

// CardStyle creates a bordered card container.
var CardStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Subtle).
	Padding(0, 2).
	MarginBottom(1)

// CardTitleStyle styles card headers.
var CardTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(Primary)

// LabelStyle styles field labels.
var LabelStyle = lipgloss.NewStyle().
	Foreground(TextSecondary)

// ErrorStyle styles inline error indicators.
var ErrorStyle = lipgloss.NewStyle().
	Foreground(Error)

// HelpStyle styles the key hint footer.
var HelpStyle = lipgloss.NewStyle().
	Foreground(Subtle)
