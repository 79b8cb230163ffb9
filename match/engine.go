package match

import "strings"

// Engine owns the compiled pattern and the rendered output.
//
// The compiled pattern is replaced only by a successful compilation and
// cleared only by an empty pattern; a compile error keeps the previous one.
type Engine struct {
	compile  Compiler
	compiled Pattern
	output   string
}

// NewEngine returns an Engine using c, or CompileRE2 when c is nil.
func NewEngine(c Compiler) *Engine {
	if c == nil {
		c = CompileRE2
	}
	return &Engine{compile: c}
}

// Compiled returns the last successfully compiled pattern, or nil.
func (e *Engine) Compiled() Pattern { return e.compiled }

// Output returns the current rendered output.
func (e *Engine) Output() string { return e.output }

// Recompute compiles pattern and renders all matches against lines joined
// with '\n'. On a compile error the output becomes the error message and the
// compiled pattern is left as it was.
func (e *Engine) Recompute(pattern string, lines []string) (Pattern, string) {
	if pattern == "" {
		e.compiled = nil
		e.output = ""
		return e.compiled, e.output
	}

	p, err := e.compile(pattern)
	if err != nil {
		e.output = err.Error()
		return e.compiled, e.output
	}
	e.compiled = p

	e.render(lines)
	return e.compiled, e.output
}

// Rematch renders lines against the stored pattern without recompiling.
// With no stored pattern the output is left untouched.
func (e *Engine) Rematch(lines []string) string {
	if e.compiled == nil {
		return e.output
	}
	e.render(lines)
	return e.output
}

func (e *Engine) render(lines []string) {
	matches, err := e.compiled.FindAll(strings.Join(lines, "\n"))
	if err != nil {
		e.output = err.Error()
		return
	}
	e.output = Format(matches)
}
