package match

import (
	"strconv"
	"strings"
)

// Format renders matches as the matches-panel report:
//
//	0.
//	  0: <whole match>
//	  1: <group 1>
//	  name: <named group>
//
// Groups that did not take part in an occurrence are left out.
func Format(matches []Match) string {
	var sb strings.Builder
	for i, m := range matches {
		sb.WriteString(strconv.Itoa(i))
		sb.WriteString(".\n")
		for _, g := range m.Groups {
			if !g.Matched {
				continue
			}
			label := g.Name
			if label == "" {
				label = strconv.Itoa(g.Index)
			}
			sb.WriteString("  ")
			sb.WriteString(label)
			sb.WriteString(": ")
			sb.WriteString(g.Text)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
