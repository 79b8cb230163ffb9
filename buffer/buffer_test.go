package buffer

import (
	"fmt"
	"testing"
)

func TestNew_SplitsLinesAndKeepsOneLine(t *testing.T) {
	cases := []struct {
		text string
		want []string
	}{
		{text: "", want: []string{""}},
		{text: "a", want: []string{"a"}},
		{text: "a\nb", want: []string{"a", "b"}},
		{text: "\n", want: []string{"", ""}},
	}
	for _, tc := range cases {
		b := New(tc.text, Options{})
		if got := b.Lines(); fmt.Sprintf("%q", got) != fmt.Sprintf("%q", tc.want) {
			t.Fatalf("New(%q).Lines()=%q, want %q", tc.text, got, tc.want)
		}
		if got := b.Text(); got != tc.text {
			t.Fatalf("New(%q).Text()=%q", tc.text, got)
		}
	}
}

func TestNew_SingleLineDropsNewlines(t *testing.T) {
	b := New("a\nb\r\nc", Options{SingleLine: true})
	if got, want := b.Text(), "abc"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got := b.LineCount(); got != 1 {
		t.Fatalf("line count=%d, want 1", got)
	}
}

func TestBuffer_SetCursor_ClampsAndVersions(t *testing.T) {
	b := New("a\nbc", Options{})
	if b.Version() != 0 {
		t.Fatalf("expected version 0, got %d", b.Version())
	}

	b.SetCursor(Pos{Row: 999, Col: 999})
	if got := b.Cursor(); got != (Pos{Row: 1, Col: 2}) {
		t.Fatalf("cursor=%v, want (1,2)", got)
	}
	if b.Version() != 1 {
		t.Fatalf("expected version 1, got %d", b.Version())
	}
	if b.TextVersion() != 0 {
		t.Fatalf("expected text version unchanged, got %d", b.TextVersion())
	}

	b.SetCursor(Pos{Row: 1, Col: 2})
	if b.Version() != 1 {
		t.Fatalf("expected version unchanged, got %d", b.Version())
	}
}

func TestBuffer_LineAccessors_OutOfRange(t *testing.T) {
	b := New("ab", Options{})
	if got := b.Line(5); got != "" {
		t.Fatalf("Line(5)=%q, want empty", got)
	}
	if got := b.LineLen(-1); got != 0 {
		t.Fatalf("LineLen(-1)=%d, want 0", got)
	}
	if got := b.Clusters(3); got != nil {
		t.Fatalf("Clusters(3)=%v, want nil", got)
	}
}

func TestBuffer_Clusters_ReturnsCopy(t *testing.T) {
	b := New("ab", Options{})
	c := b.Clusters(0)
	c[0] = "z"
	if got, want := b.Text(), "ab"; got != want {
		t.Fatalf("text after mutating copy=%q, want %q", got, want)
	}
}
