package editor

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/rextest/internal/grapheme"
)

// KeyMap defines the key bindings Translate maps onto KeyEvents, plus the
// Model-level bindings that never reach the state machine.
type KeyMap struct {
	Left, Right, Up, Down key.Binding

	Backspace key.Binding
	Enter     key.Binding
	Tab       key.Binding
	ClearLine key.Binding
	Quit      key.Binding

	// Handled by Model, not State.
	PageUp, PageDown key.Binding
	Interrupt        key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "line up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "line down")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "new line")),
		Tab:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch field")),
		ClearLine: key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "clear line")),
		Quit:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "quit")),

		PageUp:    key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "scroll matches up")),
		PageDown:  key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "scroll matches down")),
		Interrupt: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Tab, km.ClearLine, km.PageUp, km.PageDown, km.Quit}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Left, km.Right, km.Up, km.Down},
		{km.Backspace, km.Enter, km.Tab, km.ClearLine},
		{km.PageUp, km.PageDown, km.Quit},
	}
}

// Translate maps a Bubble Tea key message onto state machine events.
//
// Typed runes become one KeyChar event per grapheme cluster. Pasted text is
// split the same way, with line breaks turned into Enter events. Keys with no
// binding and no printable text translate to nothing.
func (km KeyMap) Translate(msg tea.KeyMsg) []KeyEvent {
	if msg.Type == tea.KeyRunes && msg.Paste {
		return pasteEvents(string(msg.Runes))
	}

	switch {
	case key.Matches(msg, km.Quit):
		return []KeyEvent{Key(KeyEsc)}
	case key.Matches(msg, km.ClearLine):
		return []KeyEvent{{Code: KeyChar, Text: "u", Mod: ModCtrl}}
	case key.Matches(msg, km.Enter):
		return []KeyEvent{Key(KeyEnter)}
	case key.Matches(msg, km.Tab):
		return []KeyEvent{Key(KeyTab)}
	case key.Matches(msg, km.Backspace):
		return []KeyEvent{Key(KeyBackspace)}
	case key.Matches(msg, km.Up):
		return []KeyEvent{Key(KeyUp)}
	case key.Matches(msg, km.Down):
		return []KeyEvent{Key(KeyDown)}
	case key.Matches(msg, km.Left):
		return []KeyEvent{Key(KeyLeft)}
	case key.Matches(msg, km.Right):
		return []KeyEvent{Key(KeyRight)}
	}

	switch msg.Type {
	case tea.KeySpace:
		return []KeyEvent{Char(" ")}
	case tea.KeyRunes:
		var mod Modifiers
		if msg.Alt {
			mod |= ModAlt
		}
		return charEvents(string(msg.Runes), mod)
	default:
		return nil
	}
}

func charEvents(s string, mod Modifiers) []KeyEvent {
	var out []KeyEvent
	for _, c := range grapheme.Split(s) {
		if !printable(c) {
			continue
		}
		out = append(out, KeyEvent{Code: KeyChar, Text: c, Mod: mod})
	}
	return out
}

func pasteEvents(s string) []KeyEvent {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	var out []KeyEvent
	for i, line := range strings.Split(s, "\n") {
		if i > 0 {
			out = append(out, Key(KeyEnter))
		}
		out = append(out, charEvents(line, 0)...)
	}
	return out
}

// printable reports whether a cluster can be shown in a single panel row.
// Control characters (tabs included) are rejected.
func printable(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if unicode.IsControl(r) {
			return false
		}
	}
	return true
}
