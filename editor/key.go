package editor

// KeyCode is the closed set of keys the state machine understands.
type KeyCode uint8

const (
	KeyUnknown KeyCode = iota
	KeyChar
	KeyEsc
	KeyEnter
	KeyTab
	KeyBackspace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// Modifiers is a bit set of held modifier keys.
type Modifiers uint8

const (
	ModCtrl Modifiers = 1 << iota
	ModAlt
)

// KeyEvent is one discrete key press. Text holds the typed character(s) for
// KeyChar and is empty otherwise.
type KeyEvent struct {
	Code KeyCode
	Text string
	Mod  Modifiers
}

// Char returns a plain KeyChar event for s.
func Char(s string) KeyEvent { return KeyEvent{Code: KeyChar, Text: s} }

// Key returns a KeyEvent without text or modifiers.
func Key(code KeyCode) KeyEvent { return KeyEvent{Code: code} }
