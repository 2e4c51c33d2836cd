package script

// Host is the editor surface reachable from scripts. Builtins are the only
// callers; every method is a direct, synchronous invocation on the editor's
// state. Implementations translate their own failures into plain errors,
// which builtins rewrap as runtime errors.
//
// The interface lives here rather than in the editor package so that both
// core and editor builtins can be registered without an import cycle.
type Host interface {
	// InsertText inserts at the cursor, replacing any active selection.
	InsertText(text string) error
	// DeleteText deletes n characters before the cursor; a negative n
	// deletes after it. An active selection is deleted instead, once.
	DeleteText(n int) error
	// MoveCursor moves the cursor n characters forward (negative backward),
	// crossing line boundaries.
	MoveCursor(n int) error
	// MoveDir moves one step in a named direction: left, right, up, down,
	// home, end, word-left, word-right, doc-home, doc-end.
	MoveDir(dir string) error
	// GotoPos places the cursor at a row and column, clamped to the text.
	GotoPos(row, col int) error

	StartSelection()
	ClearSelection()
	// SelectionText returns the selected text, or ok=false when no
	// selection is active.
	SelectionText() (text string, ok bool)

	// NewBuffer appends an empty named buffer and returns its index.
	NewBuffer(name string) int
	// SwitchBuffer makes the buffer at index current.
	SwitchBuffer(index int) error
	CurrentBuffer() int
	BufferCount() int

	// SetStatus replaces the transient status message.
	SetStatus(msg string)
	// Print emits a line of script output (status line in the editor,
	// stdout in batch and REPL modes).
	Print(msg string)
	// BindKey attaches a callable to a key chord, dispatched before the
	// default keymap.
	BindKey(key string, fn Value) error
	// Quit asks the host to shut down after the current script finishes.
	Quit()
}
