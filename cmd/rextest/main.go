package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/iw2rmb/rextest"
	"github.com/iw2rmb/rextest/editor"
	"github.com/iw2rmb/rextest/match"
)

type options struct {
	engine  string
	timeout time.Duration
	pattern string
	text    string
	logPath string
	mouse   bool
	version bool
}

func parseFlags(args []string, output io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("rextest", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&o.engine, "engine", match.DefaultEngine, "regex engine: "+strings.Join(match.Engines(), ", "))
	fs.DurationVar(&o.timeout, "timeout", 0, "match timeout for the regexp2 engine (0 = none)")
	fs.StringVar(&o.pattern, "pattern", "", "initial pattern")
	fs.StringVar(&o.text, "text", "", "initial text; may span several lines")
	fs.StringVar(&o.logPath, "log", "", "write debug log to this file")
	fs.BoolVar(&o.mouse, "mouse", true, "enable mouse support")
	fs.BoolVar(&o.version, "version", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if fs.NArg() > 0 {
		return o, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	o.pattern = strings.NewReplacer("\r", "", "\n", "").Replace(o.pattern)
	o.text = strings.ReplaceAll(o.text, "\r\n", "\n")
	return o, nil
}

// setupLogging routes the standard logger to path, or discards it when path
// is empty. The TUI owns the terminal, so logs never go to stderr.
func setupLogging(path string) (func() error, error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() error { return nil }, nil
	}
	f, err := tea.LogToFile(path, "rextest")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f.Close, nil
}

func logChange(ev editor.ChangeEvent) {
	log.Printf("change: focus=%s cursor=%d:%d pattern=%q text=%dB output=%dB running=%v",
		ev.Focus, ev.Cursor.Row, ev.Cursor.Col, ev.Pattern, len(ev.Text), len(ev.Output), ev.Running)
}

type model struct {
	editor editor.Model
}

func (m model) Init() tea.Cmd { return m.editor.Init() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m model) View() string { return m.editor.View() }

var isTerminal = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }

func run(args []string, stdout, stderr io.Writer) int {
	o, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "rextest: %v\n", err)
		return 2
	}

	if o.version {
		fmt.Fprintf(stdout, "rextest %s\n", rextest.Version())
		return 0
	}

	compile, err := match.NewCompiler(match.Options{Engine: o.engine, Timeout: o.timeout})
	if err != nil {
		fmt.Fprintf(stderr, "rextest: %v\n", err)
		return 2
	}

	if !isTerminal() {
		fmt.Fprintln(stderr, "rextest: stdin is not a terminal")
		return 1
	}

	closeLog, err := setupLogging(o.logPath)
	if err != nil {
		fmt.Fprintf(stderr, "rextest: %v\n", err)
		return 1
	}
	defer closeLog()

	cfg := editor.Config{
		Pattern:  o.pattern,
		Text:     o.text,
		Compiler: compile,
		Style:    editor.DefaultStyle(),
		OnChange: logChange,
	}

	popts := []tea.ProgramOption{tea.WithAltScreen()}
	if o.mouse {
		popts = append(popts, tea.WithMouseCellMotion())
	}

	log.Printf("start: version=%s engine=%s timeout=%s", rextest.Version(), o.engine, o.timeout)
	p := tea.NewProgram(model{editor: editor.New(cfg)}, popts...)
	if _, err := p.Run(); err != nil {
		log.Printf("stop: %v", err)
		fmt.Fprintf(stderr, "rextest: %v\n", err)
		return 1
	}
	log.Printf("stop")
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
