package grapheme

import "testing"

func TestSplitAndCount_MultiRuneGraphemes(t *testing.T) {
	text := "a" + "e\u0301" + "\U0001F468\u200d\U0001F469\u200d\U0001F467" + "b"
	got := Split(text)
	if len(got) != 4 {
		t.Fatalf("split len=%d, want %d", len(got), 4)
	}
	if got[1] != "e\u0301" {
		t.Fatalf("split[1]=%q, want %q", got[1], "e\u0301")
	}
	if c := Count(text); c != 4 {
		t.Fatalf("count=%d, want %d", c, 4)
	}
	if j := Join(got); j != text {
		t.Fatalf("join=%q, want %q", j, text)
	}
}

func TestSplit_Empty(t *testing.T) {
	if got := Split(""); got != nil {
		t.Fatalf("split empty=%v, want nil", got)
	}
	if got := Count(""); got != 0 {
		t.Fatalf("count empty=%d, want 0", got)
	}
}

func TestWidth_NarrowAndWide(t *testing.T) {
	cases := []struct {
		cluster string
		want    int
	}{
		{cluster: "a", want: 1},
		{cluster: "é", want: 1},
		{cluster: "テ", want: 2},
		{cluster: "中", want: 2},
	}
	for _, tc := range cases {
		if got := Width(tc.cluster); got != tc.want {
			t.Fatalf("Width(%q)=%d, want %d", tc.cluster, got, tc.want)
		}
	}
}

func TestCellsBeforeAndColAtCell(t *testing.T) {
	clusters := Split("aテb")

	if got := CellsBefore(clusters, 0); got != 0 {
		t.Fatalf("cells before 0=%d, want 0", got)
	}
	if got := CellsBefore(clusters, 2); got != 3 {
		t.Fatalf("cells before 2=%d, want 3", got)
	}
	if got := CellsBefore(clusters, 99); got != 4 {
		t.Fatalf("cells before past end=%d, want 4", got)
	}

	cases := []struct {
		cell int
		want int
	}{
		{cell: -1, want: 0},
		{cell: 0, want: 0},
		{cell: 1, want: 1},
		{cell: 2, want: 1},
		{cell: 3, want: 2},
		{cell: 4, want: 3},
		{cell: 40, want: 3},
	}
	for _, tc := range cases {
		if got := ColAtCell(clusters, tc.cell); got != tc.want {
			t.Fatalf("ColAtCell(%d)=%d, want %d", tc.cell, got, tc.want)
		}
	}
}

func TestTruncate_KeepsClustersWhole(t *testing.T) {
	if got, want := Truncate("abcdef", 3), "abc"; got != want {
		t.Fatalf("truncate=%q, want %q", got, want)
	}
	if got, want := Truncate("aテb", 2), "a"; got != want {
		t.Fatalf("truncate wide=%q, want %q", got, want)
	}
	if got := Truncate("abc", 0); got != "" {
		t.Fatalf("truncate zero=%q, want empty", got)
	}
}

func TestStringWidth(t *testing.T) {
	if got := StringWidth("aテb"); got != 4 {
		t.Fatalf("width=%d, want 4", got)
	}
	if got := StringWidth(""); got != 0 {
		t.Fatalf("width of empty=%d, want 0", got)
	}
}
