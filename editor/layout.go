package editor

// Rect is a screen rectangle in terminal cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Inner returns r without its one-cell border.
func (r Rect) Inner() Rect {
	in := Rect{X: r.X + 1, Y: r.Y + 1, Width: r.Width - 2, Height: r.Height - 2}
	if in.Width < 0 {
		in.Width = 0
	}
	if in.Height < 0 {
		in.Height = 0
	}
	return in
}

// Layout places the three panels and the help line, top to bottom.
type Layout struct {
	Pattern Rect
	Body    Rect
	Matches Rect
	Help    Rect
}

const (
	patternPanelHeight = 3
	helpHeight         = 1
)

// computeLayout gives the pattern panel three rows and the help line one, and
// splits what is left evenly between body and matches (matches take the odd
// row).
func computeLayout(width, height int) Layout {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	patternH := minInt(patternPanelHeight, height)
	helpH := minInt(helpHeight, height-patternH)
	rest := height - patternH - helpH
	bodyH := rest / 2
	matchesH := rest - bodyH

	y := 0
	l := Layout{}
	l.Pattern = Rect{X: 0, Y: y, Width: width, Height: patternH}
	y += patternH
	l.Body = Rect{X: 0, Y: y, Width: width, Height: bodyH}
	y += bodyH
	l.Matches = Rect{X: 0, Y: y, Width: width, Height: matchesH}
	y += matchesH
	l.Help = Rect{X: 0, Y: y, Width: width, Height: helpH}
	return l
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
