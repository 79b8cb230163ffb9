package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/rextest/buffer"
	"github.com/iw2rmb/rextest/internal/grapheme"
)

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	l := m.layout()

	if l.Matches.Contains(msg.X, msg.Y) {
		var cmd tea.Cmd
		m.matches, cmd = m.matches.Update(msg)
		return m, cmd
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	if f, p, ok := m.screenToField(msg.X, msg.Y, l); ok {
		m.state.FocusAt(f, p)
		m.followCursor()
	}
	return m, nil
}

// screenToField maps a screen cell inside the pattern or text panel to a
// field position. Clicks on borders or other panels report ok=false.
func (m Model) screenToField(x, y int, l Layout) (Focus, buffer.Pos, bool) {
	if in := l.Pattern.Inner(); in.Contains(x, y) {
		col := grapheme.ColAtCell(m.state.pattern.Clusters(0), x-in.X)
		return FocusPattern, buffer.Pos{Row: 0, Col: col}, true
	}
	if in := l.Body.Inner(); in.Contains(x, y) {
		row := m.bodyOffset + (y - in.Y)
		if last := m.state.body.LineCount() - 1; row > last {
			row = last
		}
		col := grapheme.ColAtCell(m.state.body.Clusters(row), x-in.X)
		return FocusBody, buffer.Pos{Row: row, Col: col}, true
	}
	return FocusBody, buffer.Pos{}, false
}
