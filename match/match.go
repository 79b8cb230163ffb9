package match

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

// ErrUnknownEngine is returned by NewCompiler for an unregistered engine name.
var ErrUnknownEngine = errors.New("unknown regex engine")

// Group is one capture group of one match occurrence.
type Group struct {
	// Index is the group number as reported by the engine; 0 is the whole match.
	Index int
	// Name is empty for positional groups.
	Name string
	Text string
	// Matched is false when the group did not take part in this occurrence
	// (e.g. an alternation branch that was not taken).
	Matched bool
}

// Match is one occurrence with its groups in the engine's group order.
type Match struct {
	Groups []Group
}

// Pattern is a compiled regular expression.
type Pattern interface {
	// Source returns the text the pattern was compiled from.
	Source() string
	// FindAll returns all non-overlapping matches in subject, left to right.
	FindAll(subject string) ([]Match, error)
}

// Compiler compiles pattern source into a Pattern. The error message is shown
// to the user verbatim.
type Compiler func(pattern string) (Pattern, error)

// Options selects and configures a backend.
type Options struct {
	// Engine is one of Engines(); empty means DefaultEngine.
	Engine string
	// Timeout bounds a single FindAll for engines that support it
	// (regexp2). Zero means no limit.
	Timeout time.Duration
}

const (
	EngineRE2     = "re2"
	EngineRegexp2 = "regexp2"

	DefaultEngine = EngineRE2
)

var engines = map[string]func(Options) Compiler{
	EngineRE2:     func(Options) Compiler { return CompileRE2 },
	EngineRegexp2: func(o Options) Compiler { return Regexp2Compiler(o.Timeout) },
}

// Engines lists the registered engine names in sorted order.
func Engines() []string {
	names := make([]string, 0, len(engines))
	for name := range engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewCompiler returns the Compiler for opt.Engine.
func NewCompiler(opt Options) (Compiler, error) {
	name := opt.Engine
	if name == "" {
		name = DefaultEngine
	}
	mk, ok := engines[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (want one of %v)", ErrUnknownEngine, name, Engines())
	}
	return mk(opt), nil
}
