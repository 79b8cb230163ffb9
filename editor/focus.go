package editor

// Focus selects which field receives edits.
type Focus uint8

const (
	FocusBody Focus = iota
	FocusPattern
)

// Toggle returns the other field.
func (f Focus) Toggle() Focus {
	if f == FocusPattern {
		return FocusBody
	}
	return FocusPattern
}

func (f Focus) String() string {
	switch f {
	case FocusPattern:
		return "pattern"
	case FocusBody:
		return "body"
	default:
		return "unknown"
	}
}
