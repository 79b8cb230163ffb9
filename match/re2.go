package match

import "regexp"

type re2Pattern struct {
	re    *regexp.Regexp
	names []string
}

// CompileRE2 compiles pattern with the standard library's RE2 engine.
// Groups are reported in declaration order.
func CompileRE2(pattern string) (Pattern, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return &re2Pattern{re: re, names: re.SubexpNames()}, nil
}

func (p *re2Pattern) Source() string { return p.re.String() }

func (p *re2Pattern) FindAll(subject string) ([]Match, error) {
	locs := p.re.FindAllStringSubmatchIndex(subject, -1)
	if len(locs) == 0 {
		return nil, nil
	}

	out := make([]Match, 0, len(locs))
	for _, loc := range locs {
		groups := make([]Group, 0, len(loc)/2)
		for i := 0; i*2+1 < len(loc); i++ {
			g := Group{Index: i, Name: p.names[i]}
			start, end := loc[i*2], loc[i*2+1]
			if start >= 0 && end >= 0 {
				g.Text = subject[start:end]
				g.Matched = true
			}
			groups = append(groups, g)
		}
		out = append(out, Match{Groups: groups})
	}
	return out, nil
}
