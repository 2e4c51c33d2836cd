package buffer

import "strings"

// InsertText inserts text at the cursor, or replaces the active selection.
func (b *Buffer) InsertText(s string) {
	if s == "" {
		if _, ok := b.Selection(); ok {
			b.DeleteSelection()
		}
		return
	}

	prev := b.snapshot()

	r, ok := b.Selection()
	if !ok {
		r = Range{Start: b.cursor, End: b.cursor}
	}

	nextCursor, changed := b.replaceRange(r, s)
	if !changed {
		return
	}

	b.cursor = nextCursor
	b.sel = selectionState{}
	b.version++
	b.modified = true
	b.recordUndo(prev)
}

// InsertRune inserts a single rune at the cursor, or replaces the active
// selection.
func (b *Buffer) InsertRune(r rune) {
	b.InsertText(string(r))
}

// InsertNewline inserts a line break at the cursor, or replaces the active
// selection.
func (b *Buffer) InsertNewline() {
	b.InsertText("\n")
}

// DeleteBackward applies backspace semantics.
func (b *Buffer) DeleteBackward() {
	if _, ok := b.Selection(); ok {
		b.DeleteSelection()
		return
	}

	row, col := b.cursor.Row, b.cursor.Col
	if row == 0 && col == 0 {
		return
	}

	var r Range
	if col > 0 {
		r = Range{Start: Pos{Row: row, Col: col - 1}, End: Pos{Row: row, Col: col}}
	} else {
		// Join with previous line (delete the newline).
		prevRow := row - 1
		r = Range{Start: Pos{Row: prevRow, Col: len(b.lines[prevRow])}, End: Pos{Row: row, Col: 0}}
	}
	b.deleteRange(r)
}

// DeleteForward applies delete-key semantics.
func (b *Buffer) DeleteForward() {
	if _, ok := b.Selection(); ok {
		b.DeleteSelection()
		return
	}

	row, col := b.cursor.Row, b.cursor.Col
	lastRow := len(b.lines) - 1
	if row == lastRow && col == len(b.lines[lastRow]) {
		return
	}

	var r Range
	if col < len(b.lines[row]) {
		r = Range{Start: Pos{Row: row, Col: col}, End: Pos{Row: row, Col: col + 1}}
	} else {
		// Join with next line (delete the newline).
		r = Range{Start: Pos{Row: row, Col: col}, End: Pos{Row: row + 1, Col: 0}}
	}
	b.deleteRange(r)
}

// DeleteSelection deletes the active selection, if any.
func (b *Buffer) DeleteSelection() {
	r, ok := b.Selection()
	if !ok {
		return
	}
	b.deleteRange(r)
}

func (b *Buffer) deleteRange(r Range) {
	prev := b.snapshot()
	nextCursor, changed := b.replaceRange(r, "")
	if !changed {
		return
	}
	b.cursor = nextCursor
	b.sel = selectionState{}
	b.version++
	b.modified = true
	b.recordUndo(prev)
}

func (b *Buffer) replaceRange(r Range, text string) (nextCursor Pos, changed bool) {
	r = NormalizeRange(ClampRange(r, len(b.lines), b.lineLen))
	if r.IsEmpty() && text == "" {
		return b.cursor, false
	}
	if b.TextInRange(r) == text {
		return b.cursor, false
	}

	startRow, startCol := r.Start.Row, r.Start.Col
	endRow, endCol := r.End.Row, r.End.Col

	prefix := append([]rune(nil), b.lines[startRow][:startCol]...)
	suffix := append([]rune(nil), b.lines[endRow][endCol:]...)

	parts := strings.Split(text, "\n")
	ins := make([][]rune, 0, len(parts))
	for _, p := range parts {
		ins = append(ins, []rune(p))
	}

	repl := make([][]rune, 0, len(ins))
	if len(ins) == 1 {
		line := make([]rune, 0, len(prefix)+len(ins[0])+len(suffix))
		line = append(line, prefix...)
		line = append(line, ins[0]...)
		line = append(line, suffix...)
		repl = append(repl, line)
		nextCursor = Pos{Row: startRow, Col: len(prefix) + len(ins[0])}
	} else {
		first := make([]rune, 0, len(prefix)+len(ins[0]))
		first = append(first, prefix...)
		first = append(first, ins[0]...)
		repl = append(repl, first)

		for i := 1; i < len(ins)-1; i++ {
			repl = append(repl, append([]rune(nil), ins[i]...))
		}

		lastPart := ins[len(ins)-1]
		last := make([]rune, 0, len(lastPart)+len(suffix))
		last = append(last, lastPart...)
		last = append(last, suffix...)
		repl = append(repl, last)

		nextCursor = Pos{Row: startRow + len(ins) - 1, Col: len(lastPart)}
	}

	before := b.lines[:startRow]
	after := b.lines[endRow+1:]
	out := make([][]rune, 0, len(before)+len(repl)+len(after))
	out = append(out, before...)
	out = append(out, repl...)
	out = append(out, after...)
	if len(out) == 0 {
		out = [][]rune{nil}
	}

	b.lines = out
	return nextCursor, true
}
