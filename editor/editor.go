package editor

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/iw2rmb/lite/buffer"
	"github.com/iw2rmb/lite/script"
)

// Editor is the scripting host: the buffer list, clipboard, status line, and
// global environment live here. It implements script.Host, so every editor
// builtin goes through its methods. All access is single-threaded from the
// Bubble Tea update loop (or the REPL/batch driver).
type Editor struct {
	buffers []*buffer.Buffer
	current int

	clipboard Clipboard
	status    string

	env    *script.Env
	interp *script.Interp

	bindings map[string]script.Value
	quitting bool

	historyLimit int
	printTo      io.Writer
	log          *zap.Logger
}

// Options configures a new Editor. The zero value is usable.
type Options struct {
	// Text and Name seed the initial buffer.
	Text string
	Name string

	// HistoryLimit is forwarded to buffer.Options.
	HistoryLimit int

	// MaxSteps bounds each script evaluation; zero means unlimited.
	MaxSteps int

	// Logger defaults to zap.NewNop; a TUI cannot log to stdout.
	Logger *zap.Logger

	// Clipboard defaults to an in-memory one.
	Clipboard Clipboard

	// PrintTo redirects script print output. Nil routes it to the status
	// line; batch and REPL drivers set it to stdout.
	PrintTo io.Writer
}

func New(opts Options) *Editor {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Clipboard == nil {
		opts.Clipboard = &MemClipboard{}
	}
	name := opts.Name
	if name == "" {
		name = "scratch"
	}

	e := &Editor{
		clipboard:    opts.Clipboard,
		bindings:     make(map[string]script.Value),
		historyLimit: opts.HistoryLimit,
		printTo:      opts.PrintTo,
		log:          opts.Logger,
	}

	buf := buffer.New(opts.Text, buffer.Options{HistoryLimit: opts.HistoryLimit})
	buf.SetName(name)
	e.buffers = []*buffer.Buffer{buf}

	e.env = script.NewEnv(nil)
	script.RegisterCore(e.env)
	RegisterEditorBuiltins(e.env)
	e.interp = script.New(e)
	if opts.MaxSteps > 0 {
		e.interp.SetMaxSteps(opts.MaxSteps)
	}
	return e
}

// Buffer returns the current buffer.
func (e *Editor) Buffer() *buffer.Buffer { return e.buffers[e.current] }

// Env returns the global script environment.
func (e *Editor) Env() *script.Env { return e.env }

// Status returns the transient status message.
func (e *Editor) Status() string { return e.status }

// Quitting reports whether a script asked the editor to exit.
func (e *Editor) Quitting() bool { return e.quitting }

// Eval parses and evaluates src in the global environment.
func (e *Editor) Eval(src string) (script.Value, error) {
	tree, err := script.Parse(src)
	if err != nil {
		return script.Nil, err
	}
	return e.interp.Eval(tree, e.env)
}

// RunScript evaluates src and maps any failure to the status line. Script
// errors are never fatal to the editor.
func (e *Editor) RunScript(src string) script.Value {
	v, err := e.Eval(src)
	if err != nil {
		e.log.Warn("script failed", zap.Error(err))
		e.SetStatus("error: " + err.Error())
		return script.Nil
	}
	return v
}

// Binding returns the script callable bound to a key chord, if any.
func (e *Editor) Binding(chord string) (script.Value, bool) {
	fn, ok := e.bindings[chord]
	return fn, ok
}

// RunBinding dispatches the script bound to chord. It reports false when no
// binding exists; script failures land in the status line.
func (e *Editor) RunBinding(chord string) bool {
	fn, ok := e.bindings[chord]
	if !ok {
		return false
	}
	call := script.Apply(script.Quote(fn), nil)
	if _, err := e.interp.Eval(call, e.env); err != nil {
		e.log.Warn("key binding failed", zap.String("chord", chord), zap.Error(err))
		e.SetStatus("error: " + err.Error())
	}
	return true
}

// OpenFile reads path into a fresh buffer and makes it current. A missing
// file opens an empty buffer under that name.
func (e *Editor) OpenFile(path string) error {
	text := ""
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		text = strings.ReplaceAll(string(data), "\r\n", "\n")
	case os.IsNotExist(err):
		// New file: start empty.
	default:
		return fmt.Errorf("open %s: %w", path, err)
	}

	buf := buffer.New(text, buffer.Options{HistoryLimit: e.historyLimit})
	buf.SetName(path)
	if e.Buffer().Text() == "" && !e.Buffer().Modified() {
		e.buffers[e.current] = buf
	} else {
		e.buffers = append(e.buffers, buf)
		e.current = len(e.buffers) - 1
	}
	e.log.Info("opened file", zap.String("path", path), zap.Int("bytes", len(text)))
	return nil
}

// SaveCurrent writes the current buffer back to its name.
func (e *Editor) SaveCurrent() error {
	buf := e.Buffer()
	if err := os.WriteFile(buf.Name(), []byte(buf.Text()), 0o644); err != nil {
		return fmt.Errorf("save %s: %w", buf.Name(), err)
	}
	buf.SetModified(false)
	e.SetStatus("saved " + buf.Name())
	return nil
}

// Copy puts the selected text on the clipboard.
func (e *Editor) Copy() {
	buf := e.Buffer()
	r, ok := buf.Selection()
	if !ok {
		return
	}
	if s := buf.TextInRange(r); s != "" {
		_ = e.clipboard.WriteText(s)
	}
}

// Cut copies the selection and deletes it.
func (e *Editor) Cut() {
	e.Copy()
	e.Buffer().DeleteSelection()
}

// Paste inserts the clipboard at the cursor.
func (e *Editor) Paste() {
	s, err := e.clipboard.ReadText()
	if err != nil || s == "" {
		return
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	e.Buffer().InsertText(s)
}

// script.Host implementation.

func (e *Editor) InsertText(text string) error {
	e.Buffer().InsertText(text)
	return nil
}

func (e *Editor) DeleteText(n int) error {
	buf := e.Buffer()
	if buf.SelectionActive() {
		buf.DeleteSelection()
		return nil
	}
	for ; n > 0; n-- {
		buf.DeleteBackward()
	}
	for ; n < 0; n++ {
		buf.DeleteForward()
	}
	return nil
}

// MoveCursor moves by rune steps. A selection started from script stays
// anchored: host moves extend it rather than clearing it.
func (e *Editor) MoveCursor(n int) error {
	buf := e.Buffer()
	extend := buf.SelectionActive()
	dir := buffer.DirRight
	if n < 0 {
		dir = buffer.DirLeft
		n = -n
	}
	for ; n > 0; n-- {
		buf.Move(buffer.Move{Unit: buffer.MoveRune, Dir: dir, Extend: extend})
	}
	return nil
}

func (e *Editor) MoveDir(dir string) error {
	mv, ok := moveForDir(dir)
	if !ok {
		return fmt.Errorf("unknown direction %q", dir)
	}
	mv.Extend = e.Buffer().SelectionActive()
	e.Buffer().Move(mv)
	return nil
}

func moveForDir(dir string) (buffer.Move, bool) {
	switch dir {
	case "left":
		return buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirLeft}, true
	case "right":
		return buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirRight}, true
	case "up":
		return buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirUp}, true
	case "down":
		return buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirDown}, true
	case "home":
		return buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirHome}, true
	case "end":
		return buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirEnd}, true
	case "word-left":
		return buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirLeft}, true
	case "word-right":
		return buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirRight}, true
	case "doc-home":
		return buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirHome}, true
	case "doc-end":
		return buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirEnd}, true
	}
	return buffer.Move{}, false
}

func (e *Editor) GotoPos(row, col int) error {
	e.Buffer().SetCursor(buffer.Pos{Row: row, Col: col})
	return nil
}

func (e *Editor) StartSelection() { e.Buffer().StartSelection() }
func (e *Editor) ClearSelection() { e.Buffer().ClearSelection() }

func (e *Editor) SelectionText() (string, bool) {
	buf := e.Buffer()
	r, ok := buf.Selection()
	if !ok {
		return "", false
	}
	return buf.TextInRange(r), true
}

func (e *Editor) NewBuffer(name string) int {
	buf := buffer.New("", buffer.Options{HistoryLimit: e.historyLimit})
	buf.SetName(name)
	e.buffers = append(e.buffers, buf)
	e.log.Info("new buffer", zap.String("name", name), zap.Int("index", len(e.buffers)-1))
	return len(e.buffers) - 1
}

func (e *Editor) SwitchBuffer(index int) error {
	if index < 0 || index >= len(e.buffers) {
		return fmt.Errorf("no buffer %d (have %d)", index, len(e.buffers))
	}
	e.current = index
	return nil
}

func (e *Editor) CurrentBuffer() int { return e.current }
func (e *Editor) BufferCount() int   { return len(e.buffers) }

func (e *Editor) SetStatus(msg string) { e.status = msg }

// Print lands on the status line (last line wins, matching the single-line
// status display) unless a PrintTo writer was configured.
func (e *Editor) Print(msg string) {
	if e.printTo != nil {
		fmt.Fprintln(e.printTo, msg)
		return
	}
	e.status = msg
}

func (e *Editor) BindKey(chord string, fn script.Value) error {
	if chord == "" {
		return fmt.Errorf("empty key chord")
	}
	e.bindings[chord] = fn
	e.log.Info("bound key", zap.String("chord", chord))
	return nil
}

func (e *Editor) Quit() { e.quitting = true }
