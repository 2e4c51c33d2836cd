package buffer

import "strings"

type Options struct {
	HistoryLimit int // default: 1000
}

type selectionState struct {
	active bool
	anchor Pos
	end    Pos
}

// Buffer is the pure document state: text, cursor, and selection.
type Buffer struct {
	lines   [][]rune
	version uint64

	cursor Pos
	sel    selectionState

	name     string
	modified bool

	opt  Options
	hist historyState
}

func New(text string, opt Options) *Buffer {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = 1000
	}
	return &Buffer{
		lines:  splitLines(text),
		cursor: Pos{Row: 0, Col: 0},
		opt:    opt,
	}
}

func (b *Buffer) Text() string {
	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(line))
	}
	return sb.String()
}

// Line returns the text of a single row, without the trailing newline.
func (b *Buffer) Line(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return string(b.lines[row])
}

func (b *Buffer) LineCount() int { return len(b.lines) }

func (b *Buffer) Version() uint64 { return b.version }

// Name is the display name of the buffer (usually a file path, may be empty).
func (b *Buffer) Name() string { return b.name }

func (b *Buffer) SetName(name string) { b.name = name }

// Modified reports whether the buffer has been edited since the last
// SetModified(false).
func (b *Buffer) Modified() bool { return b.modified }

func (b *Buffer) SetModified(v bool) { b.modified = v }

func (b *Buffer) Cursor() Pos { return b.cursor }

func (b *Buffer) SetCursor(p Pos) {
	next := b.clampPos(p)
	if next == b.cursor {
		return
	}
	b.cursor = next
	b.version++
}

func (b *Buffer) Selection() (Range, bool) {
	if !b.sel.active {
		return Range{}, false
	}
	r := NormalizeRange(Range{Start: b.sel.anchor, End: b.sel.end})
	if r.IsEmpty() {
		return Range{}, false
	}
	return r, true
}

// SelectionActive reports whether a selection anchor is set, even when the
// selection is still empty (anchor == cursor).
func (b *Buffer) SelectionActive() bool { return b.sel.active }

func (b *Buffer) SetSelection(r Range) {
	clamped := ClampRange(r, len(b.lines), b.lineLen)
	next := selectionState{active: true, anchor: clamped.Start, end: clamped.End}

	prevRange, prevOK := b.Selection()
	b.sel = next
	nextRange, nextOK := b.Selection()
	if prevOK == nextOK && (!prevOK || prevRange == nextRange) {
		return
	}
	b.version++
}

// StartSelection anchors a new selection at the cursor. The selection grows
// as the cursor moves with Move{Extend: true}.
func (b *Buffer) StartSelection() {
	b.sel = selectionState{active: true, anchor: b.cursor, end: b.cursor}
}

func (b *Buffer) ClearSelection() {
	if !b.sel.active {
		return
	}
	hadRange := false
	if r, ok := b.Selection(); ok && !r.IsEmpty() {
		hadRange = true
	}
	b.sel = selectionState{}
	if hadRange {
		b.version++
	}
}

// TextInRange returns the document text covered by r.
func (b *Buffer) TextInRange(r Range) string {
	r = NormalizeRange(ClampRange(r, len(b.lines), b.lineLen))
	if r.IsEmpty() {
		return ""
	}

	if r.Start.Row == r.End.Row {
		return string(b.lines[r.Start.Row][r.Start.Col:r.End.Col])
	}

	var sb strings.Builder
	for row := r.Start.Row; row <= r.End.Row; row++ {
		if row > r.Start.Row {
			sb.WriteByte('\n')
		}
		line := b.lines[row]
		start, end := 0, len(line)
		if row == r.Start.Row {
			start = r.Start.Col
		}
		if row == r.End.Row {
			end = r.End.Col
		}
		sb.WriteString(string(line[start:end]))
	}
	return sb.String()
}

func (b *Buffer) lineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len(b.lines[row])
}

func (b *Buffer) clampPos(p Pos) Pos {
	return ClampPos(p, len(b.lines), b.lineLen)
}

func splitLines(text string) [][]rune {
	parts := strings.Split(text, "\n")
	lines := make([][]rune, 0, len(parts))
	for _, s := range parts {
		lines = append(lines, []rune(s))
	}
	if len(lines) == 0 {
		lines = append(lines, nil)
	}
	return lines
}
