package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	lite "github.com/iw2rmb/lite"
	"github.com/iw2rmb/lite/editor"
	"github.com/iw2rmb/lite/script"
)

// scriptBudget bounds a single evaluation so a looping script cannot hang
// the input loop forever.
const scriptBudget = 50_000_000

func main() {
	expr := flag.String("e", "", "evaluate an expression, print the result, and exit")
	repl := flag.Bool("repl", false, "start an interactive REPL instead of the editor")
	logPath := flag.String("log", "", "append a debug log to this file")
	showVersion := flag.Bool("version", false, "print the version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("lite " + lite.VersionTag())
		return
	}

	logger := zap.NewNop()
	if *logPath != "" {
		cfg := zap.NewProductionConfig()
		cfg.OutputPaths = []string{*logPath}
		cfg.ErrorOutputPaths = []string{*logPath}
		l, err := cfg.Build()
		if err != nil {
			fatal(err)
		}
		logger = l
		defer func() { _ = logger.Sync() }()
	}

	opts := editor.Options{
		Logger:   logger,
		MaxSteps: scriptBudget,
	}
	if *expr != "" || *repl {
		opts.PrintTo = os.Stdout
	}
	ed := editor.New(opts)

	switch {
	case *expr != "":
		v, err := ed.Eval(*expr)
		if err != nil {
			fatal(err)
		}
		fmt.Println(script.Display(v))
		return
	case *repl:
		runREPL(ed)
		return
	}

	if path := flag.Arg(0); path != "" {
		if err := ed.OpenFile(path); err != nil {
			fatal(err)
		}
	}
	if path, ok := editor.LoadConfig(ed); ok {
		logger.Info("loaded config", zap.String("path", path))
	}
	if ed.Quitting() {
		return
	}

	m := editor.NewModel(ed, editor.DefaultConfig())
	p := tea.NewProgram(appModel{m}, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fatal(err)
	}
}

// appModel adapts editor.Model's concrete Update signature to tea.Model.
type appModel struct {
	editor editor.Model
}

func (a appModel) Init() tea.Cmd { return a.editor.Init() }

func (a appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	a.editor, cmd = a.editor.Update(msg)
	return a, cmd
}

func (a appModel) View() string { return a.editor.View() }

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "lite: "+err.Error())
	os.Exit(1)
}
