package buffer

import "testing"

func TestBuffer_NewAndText_RoundTrip(t *testing.T) {
	cases := []string{"", "a", "ab\ncd", "\n", "a\n\nb"}
	for _, text := range cases {
		b := New(text, Options{})
		if got := b.Text(); got != text {
			t.Fatalf("Text()=%q, want %q", got, text)
		}
	}
}

func TestBuffer_LineAccessors(t *testing.T) {
	b := New("ab\ncd", Options{})
	if got, want := b.LineCount(), 2; got != want {
		t.Fatalf("LineCount=%d, want %d", got, want)
	}
	if got, want := b.Line(1), "cd"; got != want {
		t.Fatalf("Line(1)=%q, want %q", got, want)
	}
	if got := b.Line(7); got != "" {
		t.Fatalf("Line out of range=%q, want empty", got)
	}
}

func TestBuffer_SetCursor_ClampsAndBumpsVersion(t *testing.T) {
	b := New("ab\ncd", Options{})
	v := b.Version()

	b.SetCursor(Pos{Row: 9, Col: 9})
	if got, want := b.Cursor(), (Pos{Row: 1, Col: 2}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	if got := b.Version(); got != v+1 {
		t.Fatalf("version=%d, want %d", got, v+1)
	}

	// No-op move does not bump the version.
	b.SetCursor(Pos{Row: 1, Col: 2})
	if got := b.Version(); got != v+1 {
		t.Fatalf("version=%d, want %d", got, v+1)
	}
}

func TestBuffer_Selection_NormalizedAndCleared(t *testing.T) {
	b := New("hello", Options{})
	b.SetSelection(Range{Start: Pos{Row: 0, Col: 4}, End: Pos{Row: 0, Col: 1}})

	r, ok := b.Selection()
	if !ok {
		t.Fatalf("expected active selection")
	}
	if got, want := r, (Range{Start: Pos{Row: 0, Col: 1}, End: Pos{Row: 0, Col: 4}}); got != want {
		t.Fatalf("selection=%v, want %v", got, want)
	}

	b.ClearSelection()
	if _, ok := b.Selection(); ok {
		t.Fatalf("expected selection cleared")
	}
}

func TestBuffer_StartSelection_GrowsWithExtendMoves(t *testing.T) {
	b := New("hello", Options{})
	b.StartSelection()
	if _, ok := b.Selection(); ok {
		t.Fatalf("empty selection should report inactive")
	}
	if !b.SelectionActive() {
		t.Fatalf("anchor should be set")
	}

	b.Move(Move{Unit: MoveRune, Dir: DirRight, Extend: true})
	b.Move(Move{Unit: MoveRune, Dir: DirRight, Extend: true})

	r, ok := b.Selection()
	if !ok {
		t.Fatalf("expected active selection")
	}
	if got, want := b.TextInRange(r), "he"; got != want {
		t.Fatalf("selected text=%q, want %q", got, want)
	}
}

func TestBuffer_TextInRange_MultiLine(t *testing.T) {
	b := New("ab\ncd\nef", Options{})
	r := Range{Start: Pos{Row: 0, Col: 1}, End: Pos{Row: 2, Col: 1}}
	if got, want := b.TextInRange(r), "b\ncd\ne"; got != want {
		t.Fatalf("TextInRange=%q, want %q", got, want)
	}
}

func TestBuffer_ModifiedFlag(t *testing.T) {
	b := New("x", Options{})
	if b.Modified() {
		t.Fatalf("fresh buffer should not be modified")
	}
	b.InsertText("y")
	if !b.Modified() {
		t.Fatalf("edit should mark buffer modified")
	}
	b.SetModified(false)
	if b.Modified() {
		t.Fatalf("SetModified(false) should clear the flag")
	}
}
