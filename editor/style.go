package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the rendering of panels and the cursor.
type Style struct {
	Border      lipgloss.Style
	BorderFocus lipgloss.Style
	Title       lipgloss.Style
	Text        lipgloss.Style
	Cursor      lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Border:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		BorderFocus: lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Title:       lipgloss.NewStyle().Bold(true),
		Text:        lipgloss.NewStyle(),
		Cursor:      lipgloss.NewStyle().Reverse(true),
	}
}
