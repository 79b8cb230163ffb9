package match

import (
	"errors"
	"strings"
	"testing"
)

func TestEngine_EmptyPatternClearsState(t *testing.T) {
	e := NewEngine(nil)
	e.Recompute("a", []string{"abc"})
	if e.Compiled() == nil || e.Output() == "" {
		t.Fatalf("expected compiled pattern and output before clearing")
	}

	p, out := e.Recompute("", []string{"abc"})
	if p != nil || e.Compiled() != nil {
		t.Fatalf("compiled after empty pattern: got %v, want nil", e.Compiled())
	}
	if out != "" || e.Output() != "" {
		t.Fatalf("output after empty pattern: got %q, want empty", e.Output())
	}
}

func TestEngine_MatchOrdering(t *testing.T) {
	e := NewEngine(CompileRE2)
	_, out := e.Recompute("a", []string{"aaa"})
	want := "0.\n  0: a\n1.\n  0: a\n2.\n  0: a\n"
	if out != want {
		t.Fatalf("output: got %q, want %q", out, want)
	}
}

func TestEngine_NamedGroup(t *testing.T) {
	e := NewEngine(CompileRE2)
	_, out := e.Recompute(`(?P<num>\d+)`, []string{"x12y"})
	if !strings.Contains(out, "0.\n  0: 12\n  num: 12\n") {
		t.Fatalf("output: got %q, want named group report", out)
	}
}

func TestEngine_JoinsLinesWithNewline(t *testing.T) {
	e := NewEngine(CompileRE2)
	_, out := e.Recompute(`b\nc`, []string{"ab", "cd"})
	if want := "0.\n  0: b\nc\n"; out != want {
		t.Fatalf("output: got %q, want %q", out, want)
	}
}

func TestEngine_ZeroLengthMatchesAdvance(t *testing.T) {
	e := NewEngine(CompileRE2)
	_, out := e.Recompute("x*", []string{"ab"})
	if want := "0.\n  0: \n1.\n  0: \n2.\n  0: \n"; out != want {
		t.Fatalf("output: got %q, want %q", out, want)
	}
}

func TestEngine_CompileErrorKeepsLastPattern(t *testing.T) {
	e := NewEngine(CompileRE2)
	e.Recompute("b", []string{"abc"})

	p, out := e.Recompute("(", []string{"abc"})
	if out == "" {
		t.Fatalf("expected a compile error message")
	}
	if !strings.Contains(out, "missing closing )") {
		t.Fatalf("error message: got %q", out)
	}
	if p == nil || p.Source() != "b" {
		t.Fatalf("compiled after error: got %v, want pattern %q", p, "b")
	}

	// Body edits keep matching with the last valid pattern.
	if got, want := e.Rematch([]string{"bb"}), "0.\n  0: b\n1.\n  0: b\n"; got != want {
		t.Fatalf("rematch: got %q, want %q", got, want)
	}
}

func TestEngine_CompileErrorIsDeterministic(t *testing.T) {
	e := NewEngine(CompileRE2)
	_, first := e.Recompute("a[", nil)
	_, second := e.Recompute("a[", nil)
	if first == "" || first != second {
		t.Fatalf("error messages: got %q then %q", first, second)
	}
}

func TestEngine_RecomputeIsIdempotent(t *testing.T) {
	e := NewEngine(CompileRE2)
	lines := []string{"foo=1", "bar=22"}
	_, first := e.Recompute(`(\w+)=(?P<n>\d+)`, lines)
	_, second := e.Recompute(`(\w+)=(?P<n>\d+)`, lines)
	if first != second {
		t.Fatalf("outputs differ:\n%q\n%q", first, second)
	}
	want := "0.\n  0: foo=1\n  1: foo\n  n: 1\n1.\n  0: bar=22\n  1: bar\n  n: 22\n"
	if first != want {
		t.Fatalf("output: got %q, want %q", first, want)
	}
}

func TestEngine_RematchWithoutPatternKeepsOutput(t *testing.T) {
	e := NewEngine(CompileRE2)
	_, out := e.Recompute("(", nil)
	if got := e.Rematch([]string{"anything"}); got != out {
		t.Fatalf("rematch: got %q, want unchanged %q", got, out)
	}
}

func TestEngine_NonParticipatingGroupSkipped(t *testing.T) {
	e := NewEngine(CompileRE2)
	_, out := e.Recompute(`(a)|(b)`, []string{"b"})
	if want := "0.\n  0: b\n  2: b\n"; out != want {
		t.Fatalf("output: got %q, want %q", out, want)
	}
}

type failingPattern struct{}

func (failingPattern) Source() string { return "boom" }
func (failingPattern) FindAll(string) ([]Match, error) {
	return nil, errors.New("match timeout")
}

func TestEngine_MatchErrorRendersMessage(t *testing.T) {
	e := NewEngine(func(string) (Pattern, error) { return failingPattern{}, nil })
	p, out := e.Recompute("boom", []string{"x"})
	if out != "match timeout" {
		t.Fatalf("output: got %q, want %q", out, "match timeout")
	}
	if p == nil {
		t.Fatalf("expected compiled pattern to be kept on match error")
	}
}
