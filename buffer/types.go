package buffer

// Pos is a cursor position: a 0-based line index and a 0-based offset in
// grapheme clusters within that line.
type Pos struct {
	Row int
	Col int
}
