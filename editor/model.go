package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/rextest/internal/grapheme"
)

// Model is a Bubble Tea component that renders and drives a State.
type Model struct {
	cfg   Config
	state *State

	width, height int

	// bodyOffset is the first body row shown in the text panel.
	bodyOffset int

	matches viewport.Model
	help    help.Model
}

func New(cfg Config) Model {
	cfg.KeyMap = cfg.keyMap()
	m := Model{
		cfg:     cfg,
		state:   NewState(cfg),
		matches: viewport.New(0, 0),
		help:    help.New(),
	}
	m.followCursor()
	m.syncMatches()
	return m
}

// State returns the underlying state machine.
func (m Model) State() *State { return m.state }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	m.width = maxInt(width, 0)
	m.height = maxInt(height, 0)

	inner := m.layout().Matches.Inner()
	m.matches.Width = inner.Width
	m.matches.Height = inner.Height
	m.help.Width = m.width

	m.followCursor()
	m.syncMatches()
	return m
}

func (m Model) layout() Layout { return computeLayout(m.width, m.height) }

// Update applies a message. Key messages are translated and applied to the
// State; the returned command is tea.Quit once the State stops running.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.MouseMsg:
		return m.updateMouse(msg)
	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	km := m.cfg.KeyMap

	switch {
	case key.Matches(msg, km.Interrupt):
		return m, tea.Quit
	case key.Matches(msg, km.PageUp):
		m.matches.SetYOffset(m.matches.YOffset - maxInt(m.matches.Height, 1))
		return m, nil
	case key.Matches(msg, km.PageDown):
		m.matches.SetYOffset(m.matches.YOffset + maxInt(m.matches.Height, 1))
		return m, nil
	}

	for _, ev := range km.Translate(msg) {
		m.state.Apply(ev)
		if !m.state.Running() {
			return m, tea.Quit
		}
	}

	m.followCursor()
	m.syncMatches()
	return m, nil
}

// followCursor scrolls the text panel so the body cursor row stays visible.
func (m *Model) followCursor() {
	h := m.layout().Body.Inner().Height
	if h <= 0 {
		return
	}
	row := m.state.body.Cursor().Row
	if row < m.bodyOffset {
		m.bodyOffset = row
	}
	if row >= m.bodyOffset+h {
		m.bodyOffset = row - h + 1
	}
	maxOffset := maxInt(m.state.body.LineCount()-h, 0)
	if m.bodyOffset > maxOffset {
		m.bodyOffset = maxOffset
	}
}

func (m *Model) syncMatches() {
	m.matches.SetContent(truncateLines(m.state.Output(), m.matches.Width))
}

// CursorScreenPos returns the terminal cell where the cursor is drawn.
//
// Pattern: panel origin + (cells before cursor + 1, 1).
// Body: panel origin + (cells before cursor + 1, visible row + 1).
// For single-width text the cell count equals the cursor column.
func (m Model) CursorScreenPos() (x, y int) {
	return m.cursorScreenPos(m.layout())
}

func (m Model) cursorScreenPos(l Layout) (x, y int) {
	cur := m.state.Cursor()
	if m.state.Focus() == FocusPattern {
		cells := grapheme.CellsBefore(m.state.pattern.Clusters(0), cur.Col)
		return l.Pattern.X + cells + 1, l.Pattern.Y + 1
	}
	cells := grapheme.CellsBefore(m.state.body.Clusters(cur.Row), cur.Col)
	return l.Body.X + cells + 1, l.Body.Y + (cur.Row - m.bodyOffset) + 1
}

func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	l := m.layout()
	st := m.cfg.Style
	focus := m.state.Focus()

	bodyLines := m.state.Body()
	if m.bodyOffset < len(bodyLines) {
		bodyLines = bodyLines[m.bodyOffset:]
	} else {
		bodyLines = nil
	}

	var rows []string
	rows = append(rows, renderPanel(st, focus == FocusPattern, titlePattern, []string{m.state.Pattern()}, l.Pattern)...)
	rows = append(rows, renderPanel(st, focus == FocusBody, titleBody, bodyLines, l.Body)...)
	rows = append(rows, renderPanel(st, false, titleMatches, strings.Split(m.matches.View(), "\n"), l.Matches)...)
	if l.Help.Height > 0 {
		rows = append(rows, lipgloss.NewStyle().MaxWidth(m.width).Render(m.help.View(m.cfg.KeyMap)))
	}

	return m.overlayCursor(strings.Join(rows, "\n"), l)
}
