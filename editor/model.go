package editor

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/lite/buffer"
	"github.com/iw2rmb/lite/script"
)

// Model is the Bubble Tea component wrapping an Editor: viewport scrolling,
// the default keymap, script key-binding dispatch, the eval prompt, and the
// status bar.
type Model struct {
	cfg Config
	ed  *Editor

	viewport viewport.Model
	prompt   textinput.Model

	prompting bool
	width     int
	height    int
}

func NewModel(ed *Editor, cfg Config) Model {
	prompt := textinput.New()
	prompt.Prompt = "eval> "
	prompt.PromptStyle = cfg.Style.Prompt

	m := Model{
		cfg:      cfg,
		ed:       ed,
		viewport: viewport.New(0, 0),
		prompt:   prompt,
	}
	m.rebuildContent()
	return m
}

// Editor returns the wrapped host.
func (m Model) Editor() *Editor { return m.ed }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		// One row is reserved for the status bar / prompt.
		m.viewport.Height = maxInt(msg.Height-1, 0)
		m.rebuildContent()
		m.followCursor()
		return m, nil

	case tea.KeyMsg:
		if m.prompting {
			return m.updatePrompt(msg)
		}
		return m.updateKey(msg)
	}
	return m, nil
}

func (m Model) updatePrompt(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		src := m.prompt.Value()
		m.prompting = false
		m.prompt.Blur()
		m.prompt.SetValue("")
		m.evalToStatus(src)
		m.rebuildContent()
		m.followCursor()
		if m.ed.Quitting() {
			return m, tea.Quit
		}
		return m, nil
	case tea.KeyEsc:
		m.prompting = false
		m.prompt.Blur()
		m.prompt.SetValue("")
		return m, nil
	}
	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

// evalToStatus runs one prompt expression and puts its rendered result (or
// error) on the status line.
func (m *Model) evalToStatus(src string) {
	if src == "" {
		return
	}
	v, err := m.ed.Eval(src)
	if err != nil {
		m.ed.SetStatus("error: " + err.Error())
		return
	}
	m.ed.SetStatus("=> " + script.Display(v))
}

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	// Paste events insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		m.ed.Buffer().InsertText(string(msg.Runes))
		m.rebuildContent()
		m.followCursor()
		return m, nil
	}

	// Script bindings win over the default keymap.
	if m.ed.RunBinding(msg.String()) {
		m.rebuildContent()
		m.followCursor()
		if m.ed.Quitting() {
			return m, tea.Quit
		}
		return m, nil
	}

	km := m.cfg.KeyMap
	buf := m.ed.Buffer()

	switch {
	case key.Matches(msg, km.Quit):
		return m, tea.Quit
	case key.Matches(msg, km.EvalPrompt):
		m.prompting = true
		m.prompt.Focus()
		return m, textinput.Blink

	case key.Matches(msg, km.Left):
		buf.Move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirLeft})
	case key.Matches(msg, km.Right):
		buf.Move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirRight})
	case key.Matches(msg, km.Up):
		buf.Move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirUp})
	case key.Matches(msg, km.Down):
		buf.Move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirDown})

	case key.Matches(msg, km.ShiftLeft):
		buf.Move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirLeft, Extend: true})
	case key.Matches(msg, km.ShiftRight):
		buf.Move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirRight, Extend: true})
	case key.Matches(msg, km.ShiftUp):
		buf.Move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirUp, Extend: true})
	case key.Matches(msg, km.ShiftDown):
		buf.Move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirDown, Extend: true})

	case key.Matches(msg, km.WordLeft):
		buf.Move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirLeft})
	case key.Matches(msg, km.WordRight):
		buf.Move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirRight})

	case key.Matches(msg, km.Home):
		buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirHome})
	case key.Matches(msg, km.End):
		buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirEnd})

	case key.Matches(msg, km.Backspace):
		buf.DeleteBackward()
	case key.Matches(msg, km.Delete):
		buf.DeleteForward()
	case key.Matches(msg, km.Enter):
		buf.InsertNewline()

	case key.Matches(msg, km.Undo):
		_ = buf.Undo()
	case key.Matches(msg, km.Redo):
		_ = buf.Redo()

	case key.Matches(msg, km.Copy):
		m.ed.Copy()
	case key.Matches(msg, km.Cut):
		m.ed.Cut()
	case key.Matches(msg, km.Paste):
		m.ed.Paste()

	case key.Matches(msg, km.Save):
		if err := m.ed.SaveCurrent(); err != nil {
			m.ed.SetStatus("error: " + err.Error())
		}
	case key.Matches(msg, km.NextBuffer):
		next := (m.ed.CurrentBuffer() + 1) % m.ed.BufferCount()
		_ = m.ed.SwitchBuffer(next)

	default:
		if msg.Type == tea.KeyTab {
			buf.InsertRune('\t')
			break
		}
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
			buf.InsertText(string(msg.Runes))
		}
	}

	m.rebuildContent()
	m.followCursor()
	return m, nil
}

func (m Model) View() string {
	return m.viewport.View() + "\n" + m.bottomLine()
}

func (m Model) bottomLine() string {
	if m.prompting {
		return m.prompt.View()
	}
	buf := m.ed.Buffer()
	mark := ""
	if buf.Modified() {
		mark = " *"
	}
	cur := buf.Cursor()
	left := fmt.Sprintf(" %s%s  %d:%d  [%d/%d]",
		buf.Name(), mark, cur.Row+1, cur.Col+1,
		m.ed.CurrentBuffer()+1, m.ed.BufferCount())
	line := left
	if s := m.ed.Status(); s != "" {
		line += "  " + s
	}
	st := m.cfg.Style.StatusBar
	if m.width > 0 {
		st = st.Width(m.width)
	}
	return st.Render(line)
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(renderContent(m.ed, m.cfg, !m.prompting))
}

func (m *Model) followCursor() {
	cur := m.ed.Buffer().Cursor()
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}
	y := m.viewport.YOffset
	if cur.Row < y {
		m.viewport.SetYOffset(cur.Row)
		return
	}
	if cur.Row >= y+h {
		m.viewport.SetYOffset(cur.Row - h + 1)
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
