package buffer

import (
	"strings"

	"github.com/iw2rmb/rextest/internal/grapheme"
)

type Options struct {
	// SingleLine keeps the buffer at exactly one line: newlines in the
	// initial text are dropped and line insertion/removal are no-ops.
	SingleLine bool
}

// Buffer is the pure field state: lines of grapheme clusters and a cursor.
//
// A Buffer always holds at least one line.
type Buffer struct {
	lines       [][]string
	version     uint64
	textVersion uint64

	cursor Pos

	opt Options
}

func New(text string, opt Options) *Buffer {
	if opt.SingleLine {
		text = strings.NewReplacer("\r\n", "", "\n", "", "\r", "").Replace(text)
	}
	return &Buffer{
		lines:  splitLines(text),
		cursor: Pos{Row: 0, Col: 0},
		opt:    opt,
	}
}

// Text returns all lines joined with '\n'.
func (b *Buffer) Text() string {
	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(grapheme.Join(line))
	}
	return sb.String()
}

// Lines returns a copy of the document as one string per line.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	for i, line := range b.lines {
		out[i] = grapheme.Join(line)
	}
	return out
}

// Line returns the text of row, or "" when row is out of range.
func (b *Buffer) Line(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return grapheme.Join(b.lines[row])
}

// Clusters returns a copy of row's grapheme clusters.
func (b *Buffer) Clusters(row int) []string {
	if row < 0 || row >= len(b.lines) {
		return nil
	}
	return append([]string(nil), b.lines[row]...)
}

func (b *Buffer) LineCount() int { return len(b.lines) }

// LineLen returns the grapheme length of row (0 when out of range).
func (b *Buffer) LineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len(b.lines[row])
}

// Version increments on every effective cursor or text change.
func (b *Buffer) Version() uint64 { return b.version }

// TextVersion increments only when the text changes.
func (b *Buffer) TextVersion() uint64 { return b.textVersion }

func (b *Buffer) Cursor() Pos { return b.cursor }

func (b *Buffer) SetCursor(p Pos) {
	next := b.clampPos(p)
	if next == b.cursor {
		return
	}
	b.cursor = next
	b.version++
}

// clampPos pulls p onto an existing line and caps Col at that line's length.
func (b *Buffer) clampPos(p Pos) Pos {
	row := min(max(p.Row, 0), len(b.lines)-1)
	col := min(max(p.Col, 0), len(b.lines[row]))
	return Pos{Row: row, Col: col}
}

func (b *Buffer) markText() {
	b.version++
	b.textVersion++
}

func splitLines(text string) [][]string {
	parts := strings.Split(text, "\n")
	lines := make([][]string, 0, len(parts))
	for _, s := range parts {
		lines = append(lines, grapheme.Split(s))
	}
	if len(lines) == 0 {
		lines = append(lines, nil)
	}
	return lines
}
