package buffer

import (
	"strings"

	"github.com/iw2rmb/rextest/internal/grapheme"
)

// InsertText inserts s at the cursor on the current line and advances the
// cursor past it. Line breaks are not text here: '\n' and '\r' are dropped,
// use AppendLine to add lines.
func (b *Buffer) InsertText(s string) {
	if strings.ContainsAny(s, "\r\n") {
		s = strings.NewReplacer("\r", "", "\n", "").Replace(s)
	}
	ins := grapheme.Split(s)
	if len(ins) == 0 {
		return
	}

	row, col := b.cursor.Row, b.cursor.Col
	line := b.lines[row]

	next := make([]string, 0, len(line)+len(ins))
	next = append(next, line[:col]...)
	next = append(next, ins...)
	next = append(next, line[col:]...)
	b.lines[row] = next

	b.cursor = Pos{Row: row, Col: col + len(ins)}
	b.markText()
}

// DeleteBackward applies backspace semantics:
//
//   - col > 0: the cluster before the cursor is removed.
//   - col == 0, row > 0: the current line is removed (its text is discarded)
//     and the cursor moves to the end of the previous line.
//   - col == 0, row == 0: no-op.
//
// It reports whether the text changed.
func (b *Buffer) DeleteBackward() bool {
	row, col := b.cursor.Row, b.cursor.Col

	if col > 0 {
		line := b.lines[row]
		next := make([]string, 0, len(line)-1)
		next = append(next, line[:col-1]...)
		next = append(next, line[col:]...)
		b.lines[row] = next
		b.cursor = Pos{Row: row, Col: col - 1}
		b.markText()
		return true
	}

	if row == 0 || b.opt.SingleLine {
		return false
	}

	return b.RemoveLine(row)
}

// RemoveLine drops row from the document and moves the cursor to the end of
// the line before it. The first line and the last remaining line cannot be
// removed.
func (b *Buffer) RemoveLine(row int) bool {
	if b.opt.SingleLine || row <= 0 || row >= len(b.lines) {
		return false
	}

	out := make([][]string, 0, len(b.lines)-1)
	out = append(out, b.lines[:row]...)
	out = append(out, b.lines[row+1:]...)
	b.lines = out

	prev := row - 1
	b.cursor = Pos{Row: prev, Col: len(b.lines[prev])}
	b.markText()
	return true
}

// AppendLine pushes an empty line onto the end of the document and moves the
// cursor one row down to column 0. The cursor row need not be the last one:
// the new line is never inserted after the cursor.
func (b *Buffer) AppendLine() bool {
	if b.opt.SingleLine {
		return false
	}
	b.lines = append(b.lines, nil)
	b.cursor = Pos{Row: b.cursor.Row + 1, Col: 0}
	b.markText()
	return true
}

// ClearLine empties the cursor's line and moves the cursor to column 0.
func (b *Buffer) ClearLine() {
	row := b.cursor.Row
	if len(b.lines[row]) == 0 {
		b.SetCursor(Pos{Row: row, Col: 0})
		return
	}
	b.lines[row] = nil
	b.cursor = Pos{Row: row, Col: 0}
	b.markText()
}
