package editor

// Clipboard provides editor-level clipboard integration. System-clipboard
// bridging is out of scope; the default is process-local.
//
// Errors must not crash the UI; failures are ignored.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}

// MemClipboard is the default in-memory clipboard.
type MemClipboard struct {
	text string
}

func (c *MemClipboard) ReadText() (string, error) { return c.text, nil }

func (c *MemClipboard) WriteText(s string) error {
	c.text = s
	return nil
}
