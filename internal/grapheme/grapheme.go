package grapheme

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	n := 0
	for g.Next() {
		n++
	}
	return n
}

// Join concatenates grapheme clusters into a single string.
func Join(clusters []string) string {
	if len(clusters) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, c := range clusters {
		sb.WriteString(c)
	}
	return sb.String()
}

// Width returns the terminal cell width of a single cluster.
// Zero-width clusters that uniseg considers visible fall back to its width.
func Width(cluster string) int {
	w := runewidth.StringWidth(cluster)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		if fallback := uniseg.StringWidth(cluster); fallback > w {
			w = fallback
		}
	}
	return w
}

// CellsBefore returns the cell width of clusters[:col].
func CellsBefore(clusters []string, col int) int {
	if col > len(clusters) {
		col = len(clusters)
	}
	cells := 0
	for i := 0; i < col; i++ {
		cells += Width(clusters[i])
	}
	return cells
}

// ColAtCell maps a cell offset back to a cluster index. A cell inside a wide
// cluster maps to that cluster; cells past the end map to len(clusters).
func ColAtCell(clusters []string, cell int) int {
	if cell <= 0 {
		return 0
	}
	used := 0
	for i, c := range clusters {
		used += Width(c)
		if used > cell {
			return i
		}
	}
	return len(clusters)
}

// StringWidth returns the cell width of text, measured cluster by cluster.
func StringWidth(text string) int {
	w := 0
	for _, c := range Split(text) {
		w += Width(c)
	}
	return w
}

// Truncate cuts text to at most width cells without splitting a cluster.
func Truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}
	var sb strings.Builder
	used := 0
	for _, c := range Split(text) {
		w := Width(c)
		if used+w > width {
			break
		}
		sb.WriteString(c)
		used += w
	}
	return sb.String()
}
