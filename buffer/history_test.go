package buffer

import "testing"

func TestBuffer_UndoRedo_RoundTrip(t *testing.T) {
	b := New("ab", Options{})
	b.SetCursor(Pos{Row: 0, Col: 2})
	b.InsertText("c")
	if got, want := b.Text(), "abc"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}

	if !b.Undo() {
		t.Fatalf("undo should succeed")
	}
	if got, want := b.Text(), "ab"; got != want {
		t.Fatalf("after undo text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 0, Col: 2}); got != want {
		t.Fatalf("after undo cursor=%v, want %v", got, want)
	}

	if !b.Redo() {
		t.Fatalf("redo should succeed")
	}
	if got, want := b.Text(), "abc"; got != want {
		t.Fatalf("after redo text=%q, want %q", got, want)
	}
}

func TestBuffer_Undo_EmptyStack(t *testing.T) {
	b := New("ab", Options{})
	if b.Undo() {
		t.Fatalf("undo on fresh buffer should fail")
	}
	if b.Redo() {
		t.Fatalf("redo on fresh buffer should fail")
	}
}

func TestBuffer_NewEdit_ClearsRedo(t *testing.T) {
	b := New("", Options{})
	b.InsertText("a")
	b.InsertText("b")
	b.Undo()
	if !b.CanRedo() {
		t.Fatalf("expected redo available")
	}

	b.InsertText("X")
	if b.CanRedo() {
		t.Fatalf("new edit should clear redo stack")
	}
	if got, want := b.Text(), "aX"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestBuffer_HistoryLimit_DropsOldest(t *testing.T) {
	b := New("", Options{HistoryLimit: 2})
	b.InsertText("1")
	b.InsertText("2")
	b.InsertText("3")

	if !b.Undo() || !b.Undo() {
		t.Fatalf("expected two undos")
	}
	if b.Undo() {
		t.Fatalf("third undo should fail with limit 2")
	}
	if got, want := b.Text(), "1"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}
