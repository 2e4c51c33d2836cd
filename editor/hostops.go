package editor

import (
	"github.com/iw2rmb/lite/script"
)

// RegisterEditorBuiltins installs the editor operations into env. They reach
// the editor only through script.Host, so any host implementation (the TUI
// editor, the batch driver, a test fake) works.
//
// The juxtaposition grammar has no zero-argument call form; builtins that
// take no operands ignore their arguments and are conventionally invoked
// with a dummy, e.g. `quit None`.
func RegisterEditorBuiltins(env *script.Env) {
	script.RegisterBuiltin(env, "insert", opInsert)
	script.RegisterBuiltin(env, "delete", opDelete)
	script.RegisterBuiltin(env, "move", opMove)
	script.RegisterBuiltin(env, "goto", opGoto)
	script.RegisterBuiltin(env, "select", opSelect)
	script.RegisterBuiltin(env, "unselect", opUnselect)
	script.RegisterBuiltin(env, "get-select", opGetSelect)
	script.RegisterBuiltin(env, "new-buf", opNewBuf)
	script.RegisterBuiltin(env, "set-buf", opSetBuf)
	script.RegisterBuiltin(env, "get-cur-buf", opGetCurBuf)
	script.RegisterBuiltin(env, "buf-count", opBufCount)
	script.RegisterBuiltin(env, "status", opStatus)
	script.RegisterBuiltin(env, "bind-key", opBindKey)
	script.RegisterBuiltin(env, "quit", opQuit)
}

func hostErr(name string, err error) error {
	return &script.RuntimeError{Msg: name + ": " + err.Error()}
}

func opInsert(ctx script.Context, args []script.Value) (script.Value, error) {
	if err := ctx.WantArgs("insert", args, 1); err != nil {
		return script.Nil, err
	}
	s, err := ctx.EvalString("insert", args[0])
	if err != nil {
		return script.Nil, err
	}
	if err := ctx.Host.InsertText(s); err != nil {
		return script.Nil, hostErr("insert", err)
	}
	return script.Nil, nil
}

// delete n removes n characters before the cursor; a negative n removes
// after it. With a selection active, the selection is removed instead.
func opDelete(ctx script.Context, args []script.Value) (script.Value, error) {
	if err := ctx.WantArgs("delete", args, 1); err != nil {
		return script.Nil, err
	}
	n, err := ctx.EvalInt("delete", args[0])
	if err != nil {
		return script.Nil, err
	}
	if err := ctx.Host.DeleteText(int(n)); err != nil {
		return script.Nil, hostErr("delete", err)
	}
	return script.Nil, nil
}

// move takes either an integer offset (characters forward, negative
// backward) or a direction name as a symbol or string.
func opMove(ctx script.Context, args []script.Value) (script.Value, error) {
	if err := ctx.WantArgs("move", args, 1); err != nil {
		return script.Nil, err
	}
	v, err := ctx.Eval(args[0])
	if err != nil {
		return script.Nil, err
	}
	switch v.Kind {
	case script.KindInt:
		if err := ctx.Host.MoveCursor(int(v.Int)); err != nil {
			return script.Nil, hostErr("move", err)
		}
		return script.Nil, nil
	case script.KindString, script.KindSymbol:
		if err := ctx.Host.MoveDir(v.Str); err != nil {
			return script.Nil, hostErr("move", err)
		}
		return script.Nil, nil
	}
	return script.Nil, &script.RuntimeError{Msg: "move: expected an offset or direction, got " + script.Display(v)}
}

func opGoto(ctx script.Context, args []script.Value) (script.Value, error) {
	if err := ctx.WantArgs("goto", args, 2); err != nil {
		return script.Nil, err
	}
	row, err := ctx.EvalInt("goto", args[0])
	if err != nil {
		return script.Nil, err
	}
	col, err := ctx.EvalInt("goto", args[1])
	if err != nil {
		return script.Nil, err
	}
	if err := ctx.Host.GotoPos(int(row), int(col)); err != nil {
		return script.Nil, hostErr("goto", err)
	}
	return script.Nil, nil
}

func opSelect(ctx script.Context, args []script.Value) (script.Value, error) {
	ctx.Host.StartSelection()
	return script.Nil, nil
}

func opUnselect(ctx script.Context, args []script.Value) (script.Value, error) {
	ctx.Host.ClearSelection()
	return script.Nil, nil
}

// get-select returns the selected text, or None without a selection.
func opGetSelect(ctx script.Context, args []script.Value) (script.Value, error) {
	s, ok := ctx.Host.SelectionText()
	if !ok {
		return script.Nil, nil
	}
	return script.Str(s), nil
}

func opNewBuf(ctx script.Context, args []script.Value) (script.Value, error) {
	if err := ctx.WantArgs("new-buf", args, 1); err != nil {
		return script.Nil, err
	}
	name, err := ctx.EvalString("new-buf", args[0])
	if err != nil {
		return script.Nil, err
	}
	return script.Int(int64(ctx.Host.NewBuffer(name))), nil
}

func opSetBuf(ctx script.Context, args []script.Value) (script.Value, error) {
	if err := ctx.WantArgs("set-buf", args, 1); err != nil {
		return script.Nil, err
	}
	idx, err := ctx.EvalInt("set-buf", args[0])
	if err != nil {
		return script.Nil, err
	}
	if err := ctx.Host.SwitchBuffer(int(idx)); err != nil {
		return script.Nil, hostErr("set-buf", err)
	}
	return script.Nil, nil
}

func opGetCurBuf(ctx script.Context, args []script.Value) (script.Value, error) {
	return script.Int(int64(ctx.Host.CurrentBuffer())), nil
}

func opBufCount(ctx script.Context, args []script.Value) (script.Value, error) {
	return script.Int(int64(ctx.Host.BufferCount())), nil
}

func opStatus(ctx script.Context, args []script.Value) (script.Value, error) {
	if err := ctx.WantArgs("status", args, 1); err != nil {
		return script.Nil, err
	}
	s, err := ctx.EvalString("status", args[0])
	if err != nil {
		return script.Nil, err
	}
	ctx.Host.SetStatus(s)
	return script.Nil, nil
}

// bind-key attaches a callable to a key chord. The callable is evaluated
// here (so a `-> ` closure captures its defining scope) and dispatched with
// no arguments when the chord is pressed.
func opBindKey(ctx script.Context, args []script.Value) (script.Value, error) {
	if err := ctx.WantArgs("bind-key", args, 2); err != nil {
		return script.Nil, err
	}
	chord, err := ctx.EvalString("bind-key", args[0])
	if err != nil {
		return script.Nil, err
	}
	fn, err := ctx.Eval(args[1])
	if err != nil {
		return script.Nil, err
	}
	switch fn.Kind {
	case script.KindClosure, script.KindProc, script.KindMacro, script.KindBuiltin:
	default:
		return script.Nil, &script.RuntimeError{Msg: "bind-key: expected a callable, got " + script.Display(fn)}
	}
	if err := ctx.Host.BindKey(chord, fn); err != nil {
		return script.Nil, hostErr("bind-key", err)
	}
	return script.Nil, nil
}

func opQuit(ctx script.Context, args []script.Value) (script.Value, error) {
	ctx.Host.Quit()
	return script.Nil, nil
}
