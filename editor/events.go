package editor

import "github.com/iw2rmb/rextest/buffer"

// ChangeEvent is a snapshot of State taken after an event that changed it.
type ChangeEvent struct {
	Focus   Focus
	Cursor  buffer.Pos
	Pattern string
	Text    string
	Output  string
	Running bool
}

func buildChangeEvent(s *State) ChangeEvent {
	return ChangeEvent{
		Focus:   s.focus,
		Cursor:  s.Cursor(),
		Pattern: s.Pattern(),
		Text:    s.Text(),
		Output:  s.Output(),
		Running: s.running,
	}
}

// stateMark identifies a State revision cheaply; two equal marks mean no
// observable change happened in between.
type stateMark struct {
	patternVersion uint64
	bodyVersion    uint64
	focus          Focus
	output         string
	running        bool
}

func (s *State) mark() stateMark {
	return stateMark{
		patternVersion: s.pattern.Version(),
		bodyVersion:    s.body.Version(),
		focus:          s.focus,
		output:         s.engine.Output(),
		running:        s.running,
	}
}

func (s *State) notify(before stateMark) {
	if s.onChange == nil || s.mark() == before {
		return
	}
	s.onChange(buildChangeEvent(s))
}
