package editor

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T, text string) Model {
	t.Helper()
	ed := New(Options{Text: text, MaxSteps: 1_000_000})
	m := NewModel(ed, DefaultConfig())
	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModelTypingInserts(t *testing.T) {
	m := newTestModel(t, "")
	for _, r := range "hi" {
		m, _ = m.Update(keyRunes(string(r)))
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = m.Update(keyRunes("!"))
	if got := m.Editor().Buffer().Text(); got != "hi\n!" {
		t.Fatalf("got %q", got)
	}
}

func TestModelBackspace(t *testing.T) {
	m := newTestModel(t, "ab")
	m.Editor().RunScript("move 'end")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if got := m.Editor().Buffer().Text(); got != "a" {
		t.Fatalf("got %q", got)
	}
}

func TestModelScriptBindingWinsOverKeymap(t *testing.T) {
	m := newTestModel(t, "")
	// Shadow undo with a script action.
	m.Editor().RunScript(`bind-key "ctrl+z" ([] -> insert "Z")`)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlZ})
	if got := m.Editor().Buffer().Text(); got != "Z" {
		t.Fatalf("got %q", got)
	}
}

func TestModelQuitKey(t *testing.T) {
	m := newTestModel(t, "")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlQ})
	if !isQuit(cmd) {
		t.Fatal("ctrl+q did not quit")
	}
}

func TestModelScriptQuit(t *testing.T) {
	m := newTestModel(t, "")
	m.Editor().RunScript(`bind-key "ctrl+d" ([] -> quit None)`)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	if !isQuit(cmd) {
		t.Fatal("quit builtin did not stop the program")
	}
}

func TestModelEvalPrompt(t *testing.T) {
	m := newTestModel(t, "")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlE})
	if !m.prompting {
		t.Fatal("prompt not open")
	}
	for _, r := range "1 + 2 * 3" {
		m, _ = m.Update(keyRunes(string(r)))
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.prompting {
		t.Fatal("prompt still open")
	}
	if got := m.Editor().Status(); got != "=> 7" {
		t.Fatalf("status %q", got)
	}
	// Prompt input never reached the buffer.
	if got := m.Editor().Buffer().Text(); got != "" {
		t.Fatalf("buffer %q", got)
	}
}

func TestModelEvalPromptError(t *testing.T) {
	m := newTestModel(t, "")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlE})
	for _, r := range "nope" {
		m, _ = m.Update(keyRunes(string(r)))
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !strings.Contains(m.Editor().Status(), "error:") {
		t.Fatalf("status %q", m.Editor().Status())
	}
}

func TestModelEvalPromptEscape(t *testing.T) {
	m := newTestModel(t, "")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlE})
	m, _ = m.Update(keyRunes("x"))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.prompting {
		t.Fatal("prompt still open after esc")
	}
	if got := m.Editor().Buffer().Text(); got != "" {
		t.Fatalf("buffer %q", got)
	}
}

func TestModelViewHasStatusBar(t *testing.T) {
	m := newTestModel(t, "hello")
	m.Editor().SetStatus("ready")
	m.rebuildContent()
	view := m.View()
	if !strings.Contains(view, "ready") {
		t.Fatalf("view missing status:\n%s", view)
	}
	if !strings.Contains(view, "scratch") {
		t.Fatalf("view missing buffer name:\n%s", view)
	}
}

func TestModelCopyPasteKeys(t *testing.T) {
	m := newTestModel(t, "abc")
	ed := m.Editor()
	ed.RunScript(`goto 0 0; select None; move 3`)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	ed.RunScript(`unselect None; move 'end`)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlV})
	if got := ed.Buffer().Text(); got != "abcabc" {
		t.Fatalf("got %q", got)
	}
}
