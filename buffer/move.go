package buffer

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp   // end of the previous line
	DirDown // end of the next line
	DirEnd  // end of the current line
)

// Move moves the cursor one step in dir. Horizontal moves never cross line
// boundaries; vertical moves land at the end of the target line.
//
// It reports whether the cursor moved.
func (b *Buffer) Move(dir MoveDir) bool {
	next := b.clampPos(b.moveCursor(b.cursor, dir))
	if next == b.cursor {
		return false
	}
	b.cursor = next
	b.version++
	return true
}

func (b *Buffer) moveCursor(p Pos, dir MoveDir) Pos {
	row, col := p.Row, p.Col
	lastRow := len(b.lines) - 1

	switch dir {
	case DirLeft:
		if col == 0 {
			return p
		}
		return Pos{Row: row, Col: col - 1}
	case DirRight:
		if col >= len(b.lines[row]) {
			return p
		}
		return Pos{Row: row, Col: col + 1}
	case DirUp:
		if row == 0 {
			return p
		}
		nr := row - 1
		return Pos{Row: nr, Col: len(b.lines[nr])}
	case DirDown:
		if row >= lastRow {
			return p
		}
		nr := row + 1
		return Pos{Row: nr, Col: len(b.lines[nr])}
	case DirEnd:
		return Pos{Row: row, Col: len(b.lines[row])}
	default:
		return p
	}
}
