package match

import (
	"strconv"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
)

type regexp2Pattern struct {
	re *regexp2.Regexp
	// order lists regexp2 group numbers in declaration order, group 0 first.
	order []int
}

// Regexp2Compiler returns a Compiler backed by regexp2 in RE2-compatible
// mode, which adds lookaround and backreferences on top of the RE2 syntax.
//
// Groups are reported in declaration order like the RE2 backend, even though
// regexp2 numbers named groups after all positional ones. A non-zero timeout
// bounds each FindAll.
func Regexp2Compiler(timeout time.Duration) Compiler {
	return func(pattern string) (Pattern, error) {
		re, err := regexp2.Compile(pattern, regexp2.RE2)
		if err != nil {
			return nil, err
		}
		if timeout > 0 {
			re.MatchTimeout = timeout
		}
		return &regexp2Pattern{re: re, order: declarationOrder(re, pattern)}, nil
	}
}

func (p *regexp2Pattern) Source() string { return p.re.String() }

func (p *regexp2Pattern) FindAll(subject string) ([]Match, error) {
	var out []Match

	m, err := p.re.FindStringMatch(subject)
	for m != nil && err == nil {
		out = append(out, p.convert(m))
		m, err = p.re.FindNextMatch(m)
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (p *regexp2Pattern) convert(m *regexp2.Match) Match {
	groups := make([]Group, 0, len(p.order))
	for i, num := range p.order {
		out := Group{Index: i}
		// regexp2 names positional groups by their number.
		if name := p.re.GroupNameFromNumber(num); name != strconv.Itoa(num) {
			out.Name = name
		}
		if g := m.GroupByNumber(num); g != nil && len(g.Captures) > 0 {
			out.Text = g.String()
			out.Matched = true
		}
		groups = append(groups, out)
	}
	return Match{Groups: groups}
}

// declarationOrder maps declaration slots to regexp2 group numbers. When the
// source scan disagrees with the compiled group set (duplicate or numeric
// names), regexp2's own numbering is used.
func declarationOrder(re *regexp2.Regexp, pattern string) []int {
	numbers := re.GetGroupNumbers()

	names, ok := scanCaptures(pattern)
	if !ok || len(names)+1 != len(numbers) {
		return numbers
	}

	order := make([]int, 0, len(numbers))
	order = append(order, 0)
	seen := map[int]bool{0: true}
	positional := 0
	for _, name := range names {
		var num int
		if name == "" {
			positional++
			num = positional
		} else {
			num = re.GroupNumberFromName(name)
		}
		if num < 0 || seen[num] {
			return numbers
		}
		seen[num] = true
		order = append(order, num)
	}
	return order
}

// scanCaptures walks pattern source and returns one entry per capturing
// group in declaration order: the group name, or "" for a positional group.
// Escapes, character classes, comments and non-capturing or lookaround
// groups are skipped.
func scanCaptures(pattern string) ([]string, bool) {
	var names []string
	src := []rune(pattern)
	n := len(src)

	for i := 0; i < n; i++ {
		switch src[i] {
		case '\\':
			i++
		case '[':
			i = skipClass(src, i)
		case '(':
			if i+1 >= n || src[i+1] != '?' {
				names = append(names, "")
				continue
			}
			rest := string(src[i+2:])
			switch {
			case strings.HasPrefix(rest, "P<"):
				name, ok := groupName(rest[2:], '>')
				if !ok {
					return nil, false
				}
				names = append(names, name)
			case strings.HasPrefix(rest, "<=") || strings.HasPrefix(rest, "<!"):
			case strings.HasPrefix(rest, "<"):
				name, ok := groupName(rest[1:], '>')
				if !ok {
					return nil, false
				}
				names = append(names, name)
			case strings.HasPrefix(rest, "'"):
				name, ok := groupName(rest[1:], '\'')
				if !ok {
					return nil, false
				}
				names = append(names, name)
			case strings.HasPrefix(rest, "#"):
				for i < n && src[i] != ')' {
					i++
				}
			}
		}
	}
	return names, true
}

func groupName(s string, end rune) (string, bool) {
	idx := strings.IndexRune(s, end)
	if idx <= 0 {
		return "", false
	}
	return s[:idx], true
}

// skipClass returns the index of the ']' closing the class opened at i.
func skipClass(src []rune, i int) int {
	n := len(src)
	j := i + 1
	if j < n && src[j] == '^' {
		j++
	}
	// A leading ']' is a literal.
	if j < n && src[j] == ']' {
		j++
	}
	for ; j < n; j++ {
		switch src[j] {
		case '\\':
			j++
		case '[':
			// POSIX class such as [:alpha:].
			if j+1 < n && src[j+1] == ':' {
				for k := j + 2; k+1 < n; k++ {
					if src[k] == ':' && src[k+1] == ']' {
						j = k + 1
						break
					}
				}
			}
		case ']':
			return j
		}
	}
	return n
}
