package editor

import (
	"github.com/iw2rmb/rextest/buffer"
	"github.com/iw2rmb/rextest/match"
)

// State is the dual-field editing state machine.
//
// Each field owns its cursor; Cursor reports the focused one. The body keeps
// its row while the pattern is focused, so toggling focus twice returns to the
// same body line.
type State struct {
	pattern *buffer.Buffer
	body    *buffer.Buffer
	focus   Focus
	running bool

	engine   *match.Engine
	onChange func(ChangeEvent)
}

// NewState builds a State from cfg. Focus starts on the body with the cursor
// at the end of its last line. A non-empty initial pattern is matched once.
func NewState(cfg Config) *State {
	s := &State{
		pattern:  buffer.New(cfg.Pattern, buffer.Options{SingleLine: true}),
		body:     buffer.New(cfg.Text, buffer.Options{}),
		focus:    FocusBody,
		running:  true,
		engine:   match.NewEngine(cfg.Compiler),
		onChange: cfg.OnChange,
	}
	s.pattern.Move(buffer.DirEnd)
	last := s.body.LineCount() - 1
	s.body.SetCursor(buffer.Pos{Row: last, Col: s.body.LineLen(last)})

	if cfg.Pattern != "" {
		s.engine.Recompute(s.pattern.Text(), s.body.Lines())
	}
	return s
}

func (s *State) Focus() Focus { return s.focus }

// Cursor returns the focused field's cursor. Row is always 0 for the pattern.
func (s *State) Cursor() buffer.Pos { return s.focused().Cursor() }

func (s *State) Pattern() string { return s.pattern.Text() }

// Body returns the body lines.
func (s *State) Body() []string { return s.body.Lines() }

// Text returns the body lines joined with '\n': the match subject.
func (s *State) Text() string { return s.body.Text() }

// Output returns the rendered matches or the last error message.
func (s *State) Output() string { return s.engine.Output() }

// Compiled returns the last successfully compiled pattern, or nil.
func (s *State) Compiled() match.Pattern { return s.engine.Compiled() }

// Running is false once the quit key has been pressed.
func (s *State) Running() bool { return s.running }

func (s *State) focused() *buffer.Buffer {
	if s.focus == FocusPattern {
		return s.pattern
	}
	return s.body
}

// Apply runs one key event. It never fails; keys without a meaning in the
// current state are ignored.
//
// Ctrl+U clears the focused line. Ctrl with any other key is ignored rather
// than inserted as a plain character, so a KeyChar event carrying ModCtrl
// never edits text.
func (s *State) Apply(ev KeyEvent) {
	before := s.mark()
	s.apply(ev)
	s.notify(before)
}

func (s *State) apply(ev KeyEvent) {
	if ev.Mod&ModCtrl != 0 {
		if ev.Code == KeyChar && (ev.Text == "u" || ev.Text == "U") {
			s.focused().ClearLine()
		}
		return
	}

	switch ev.Code {
	case KeyEsc:
		s.running = false

	case KeyChar:
		if ev.Mod&ModAlt != 0 || ev.Text == "" {
			return
		}
		s.focused().InsertText(ev.Text)
		s.recompute()

	case KeyEnter:
		if s.focus == FocusBody {
			s.body.AppendLine()
		}
		s.recompute()

	case KeyTab:
		s.focus = s.focus.Toggle()
		s.focused().Move(buffer.DirEnd)

	case KeyBackspace:
		s.focused().DeleteBackward()
		s.recompute()

	case KeyUp:
		if s.focus == FocusBody {
			s.body.Move(buffer.DirUp)
		}
	case KeyDown:
		if s.focus == FocusBody {
			s.body.Move(buffer.DirDown)
		}
	case KeyLeft:
		s.focused().Move(buffer.DirLeft)
	case KeyRight:
		s.focused().Move(buffer.DirRight)
	}
}

// recompute refreshes the output. Only a focused pattern is recompiled; body
// edits rematch against the last pattern that compiled.
func (s *State) recompute() {
	if s.focus == FocusPattern {
		s.engine.Recompute(s.pattern.Text(), s.body.Lines())
		return
	}
	s.engine.Rematch(s.body.Lines())
}

// FocusAt focuses f and moves its cursor to p, clamped into the field.
// The output is not recomputed.
func (s *State) FocusAt(f Focus, p buffer.Pos) {
	before := s.mark()
	s.focus = f
	s.focused().SetCursor(p)
	s.notify(before)
}
