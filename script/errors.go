package script

import "fmt"

// SyntaxError reports a grammar violation at a byte offset in the source.
// Parsing aborts at the first one; no partial tree is returned.
type SyntaxError struct {
	Msg    string
	Offset int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at offset %d: %s", e.Offset, e.Msg)
}

// RuntimeError is the single evaluation-time failure kind: type mismatches,
// unresolved names, bad arity, host failures, and explicit raise. A raised
// error carries the raised value as Payload; try/catch binds it for the
// handler.
type RuntimeError struct {
	Msg        string
	Payload    Value
	HasPayload bool
}

func (e *RuntimeError) Error() string { return e.Msg }

func errf(format string, args ...any) *RuntimeError {
	return &RuntimeError{Msg: fmt.Sprintf(format, args...)}
}
