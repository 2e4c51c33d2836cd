package editor

import (
	"fmt"
	"strings"

	"github.com/iw2rmb/lite/buffer"
	graphemeutil "github.com/iw2rmb/lite/internal/grapheme"
)

func renderContent(ed *Editor, cfg Config, focused bool) string {
	buf := ed.Buffer()
	cursor := buf.Cursor()
	sel, selOK := buf.Selection()

	digits := 0
	if cfg.ShowLineNums {
		digits = gutterDigits(buf.LineCount())
	}

	out := make([]string, 0, buf.LineCount())
	for row := 0; row < buf.LineCount(); row++ {
		var sb strings.Builder
		if cfg.ShowLineNums {
			numStyle := cfg.Style.LineNum
			if focused && row == cursor.Row {
				numStyle = cfg.Style.LineNumActive
			}
			sb.WriteString(numStyle.Render(fmt.Sprintf("%*d", digits, row+1)))
			sb.WriteString(cfg.Style.Gutter.Render(" "))
		}
		sb.WriteString(renderLine(cfg.Style, buf.Line(row), row, cursor, sel, selOK, focused))
		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

// renderLine walks the line's grapheme clusters, styling the cursor cluster,
// the selected span, and plain text. The cursor at EOL renders as a 1-cell
// placeholder space.
func renderLine(st Style, line string, row int, cursor buffer.Pos, sel buffer.Range, selOK, focused bool) string {
	hasCursor := focused && row == cursor.Row
	selStart, selEnd, hasSel := selectionColsForRow(sel, selOK, row, len([]rune(line)))

	var sb strings.Builder
	runeIdx := 0
	for _, cluster := range graphemeutil.Split(line) {
		runes := len([]rune(cluster))
		switch {
		case hasCursor && cursor.Col >= runeIdx && cursor.Col < runeIdx+runes:
			sb.WriteString(st.Cursor.Render(cluster))
		case hasSel && runeIdx >= selStart && runeIdx < selEnd:
			sb.WriteString(st.Selection.Render(cluster))
		default:
			sb.WriteString(st.Text.Render(cluster))
		}
		runeIdx += runes
	}
	if hasCursor && cursor.Col >= runeIdx {
		sb.WriteString(st.Cursor.Render(" "))
	}
	return sb.String()
}

// selectionColsForRow reduces a multi-line selection to this row's rune span.
func selectionColsForRow(sel buffer.Range, selOK bool, row, lineLen int) (start, end int, ok bool) {
	if !selOK || row < sel.Start.Row || row > sel.End.Row {
		return 0, 0, false
	}
	start, end = 0, lineLen
	if row == sel.Start.Row {
		start = sel.Start.Col
	}
	if row == sel.End.Row {
		end = sel.End.Col
	}
	if start > lineLen {
		start = lineLen
	}
	if end > lineLen {
		end = lineLen
	}
	if start >= end {
		return 0, 0, false
	}
	return start, end, true
}

func gutterDigits(lineCount int) int {
	digits := 1
	for lineCount >= 10 {
		lineCount /= 10
		digits++
	}
	return digits
}
