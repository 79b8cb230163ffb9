package match

import "testing"

func TestFormat(t *testing.T) {
	cases := []struct {
		name    string
		matches []Match
		want    string
	}{
		{name: "none", matches: nil, want: ""},
		{
			name: "positional and named",
			matches: []Match{
				{Groups: []Group{
					{Index: 0, Text: "k=v", Matched: true},
					{Index: 1, Text: "k", Matched: true},
					{Index: 2, Name: "val", Text: "v", Matched: true},
				}},
			},
			want: "0.\n  0: k=v\n  1: k\n  val: v\n",
		},
		{
			name: "skips groups that did not participate",
			matches: []Match{
				{Groups: []Group{{Index: 0, Text: "b", Matched: true}, {Index: 1}, {Index: 2, Text: "b", Matched: true}}},
				{Groups: []Group{{Index: 0, Text: "", Matched: true}, {Index: 1, Name: "x"}}},
			},
			want: "0.\n  0: b\n  2: b\n1.\n  0: \n",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Format(tc.matches); got != tc.want {
				t.Fatalf("Format: got %q, want %q", got, tc.want)
			}
		})
	}
}
