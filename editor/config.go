package editor

import "github.com/iw2rmb/rextest/match"

// Config configures State and Model.
type Config struct {
	// Initial field contents. Text may contain '\n'; Pattern may not.
	Pattern string
	Text    string

	// Compiler used by the match engine. Nil means match.CompileRE2.
	Compiler match.Compiler

	// KeyMap defaults to DefaultKeyMap when it has no bindings.
	KeyMap KeyMap
	Style  Style

	// OnChange is called after any event that changed State.
	OnChange func(ChangeEvent)
}

func (c Config) keyMap() KeyMap {
	if len(c.KeyMap.Quit.Keys()) == 0 {
		return DefaultKeyMap()
	}
	return c.KeyMap
}
