package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/iw2rmb/rextest/internal/grapheme"
)

const (
	titlePattern = "regex"
	titleBody    = "text"
	titleMatches = "matches"
)

// renderPanel draws lines inside a titled one-cell border that exactly fills
// r. Lines are cut at the inner width; missing lines are blank.
func renderPanel(st Style, focused bool, title string, lines []string, r Rect) []string {
	if r.Height <= 0 {
		return nil
	}
	if r.Width < 2 || r.Height < 2 {
		out := make([]string, r.Height)
		for i := range out {
			out[i] = strings.Repeat(" ", maxInt(r.Width, 0))
		}
		return out
	}

	border := st.Border
	if focused {
		border = st.BorderFocus
	}
	b := lipgloss.NormalBorder()
	inner := r.Width - 2

	t := grapheme.Truncate(title, inner)
	top := border.Render(b.TopLeft) +
		st.Title.Render(t) +
		border.Render(strings.Repeat(b.Top, inner-grapheme.StringWidth(t))+b.TopRight)

	out := make([]string, 0, r.Height)
	out = append(out, top)
	for i := 0; i < r.Height-2; i++ {
		line := ""
		if i < len(lines) {
			line = grapheme.Truncate(lines[i], inner)
		}
		pad := inner - grapheme.StringWidth(line)
		out = append(out, border.Render(b.Left)+st.Text.Render(line+strings.Repeat(" ", pad))+border.Render(b.Right))
	}
	out = append(out, border.Render(b.BottomLeft+strings.Repeat(b.Bottom, inner)+b.BottomRight))
	return out
}

// truncateLines cuts every line of text at width cells.
func truncateLines(text string, width int) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = grapheme.Truncate(line, width)
	}
	return strings.Join(lines, "\n")
}

// overlayCursor draws the cursor cell over view at the focused field's
// screen cursor position. Positions outside the field's inner area are not
// drawn.
func (m Model) overlayCursor(view string, l Layout) string {
	x, y := m.cursorScreenPos(l)

	panel := l.Body
	if m.state.Focus() == FocusPattern {
		panel = l.Pattern
	}
	if !panel.Inner().Contains(x, y) {
		return view
	}

	cur := m.state.Cursor()
	clusters := m.state.focused().Clusters(cur.Row)
	cell := " "
	if cur.Col < len(clusters) {
		cell = clusters[cur.Col]
	}

	return overlay.Composite(m.cfg.Style.Cursor.Render(cell), view, overlay.Left, overlay.Top, x, y)
}
