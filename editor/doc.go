// Package editor provides a Bubble Tea text editor backed by the buffer
// package and scriptable through the script package.
//
// Editor is the host: it owns the buffer list, the internal clipboard, the
// status line, and the global script environment, and implements script.Host
// so that builtins can drive it. Model wraps an Editor as a Bubble Tea
// component with a default keymap, script key bindings, and an eval prompt.
package editor
