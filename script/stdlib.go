package script

import (
	"unicode/utf8"

	"golang.org/x/exp/slices"
)

// RegisterCore installs the language's own builtins into env. Editor
// operations are registered separately by the host.
func RegisterCore(env *Env) {
	RegisterBuiltin(env, "print", builtinPrint)
	RegisterBuiltin(env, "and", builtinAnd)
	RegisterBuiltin(env, "or", builtinOr)
	RegisterBuiltin(env, "eq?", builtinEq)
	RegisterBuiltin(env, "lt?", builtinLt)
	RegisterBuiltin(env, "len", builtinLen)
	RegisterBuiltin(env, "str", builtinStr)
	RegisterBuiltin(env, "list", builtinList)
	RegisterBuiltin(env, "get", builtinGet)
	RegisterBuiltin(env, "put", builtinPut)
	RegisterBuiltin(env, "dict", builtinDict)
	RegisterBuiltin(env, "keys", builtinKeys)
	RegisterBuiltin(env, "builtins", builtinBuiltins)
}

// displayRaw renders like Display except strings come out unquoted, which
// is what print and str want.
func displayRaw(v Value) string {
	if v.Kind == KindString {
		return v.Str
	}
	return Display(v)
}

func builtinPrint(ctx Context, args []Value) (Value, error) {
	if ctx.Host == nil {
		return Nil, errf("print: no host attached")
	}
	vals, err := ctx.EvalArgs(args)
	if err != nil {
		return Nil, err
	}
	out := ""
	for i, v := range vals {
		if i > 0 {
			out += " "
		}
		out += displayRaw(v)
	}
	ctx.Host.Print(out)
	return Nil, nil
}

// and evaluates arguments left to right and stops at the first falsy one,
// returning it; with all truthy it returns the last. The short-circuit is
// why and/or are builtins over raw expressions rather than functions.
func builtinAnd(ctx Context, args []Value) (Value, error) {
	result := Bool(true)
	for _, a := range args {
		v, err := ctx.Eval(a)
		if err != nil {
			return Nil, err
		}
		if !Truthy(v) {
			return v, nil
		}
		result = v
	}
	return result, nil
}

// or evaluates arguments left to right and returns the first truthy one;
// with none it returns the last (or False for no arguments).
func builtinOr(ctx Context, args []Value) (Value, error) {
	result := Bool(false)
	for _, a := range args {
		v, err := ctx.Eval(a)
		if err != nil {
			return Nil, err
		}
		if Truthy(v) {
			return v, nil
		}
		result = v
	}
	return result, nil
}

func builtinEq(ctx Context, args []Value) (Value, error) {
	if err := ctx.WantArgs("eq?", args, 2); err != nil {
		return Nil, err
	}
	vals, err := ctx.EvalArgs(args)
	if err != nil {
		return Nil, err
	}
	return Bool(Equal(vals[0], vals[1])), nil
}

func builtinLt(ctx Context, args []Value) (Value, error) {
	if err := ctx.WantArgs("lt?", args, 2); err != nil {
		return Nil, err
	}
	vals, err := ctx.EvalArgs(args)
	if err != nil {
		return Nil, err
	}
	return Bool(Compare(vals[0], vals[1]) < 0), nil
}

func builtinLen(ctx Context, args []Value) (Value, error) {
	if err := ctx.WantArgs("len", args, 1); err != nil {
		return Nil, err
	}
	v, err := ctx.Eval(args[0])
	if err != nil {
		return Nil, err
	}
	switch v.Kind {
	case KindString:
		return Int(int64(utf8.RuneCountInString(v.Str))), nil
	case KindList:
		return Int(int64(len(v.List.Items))), nil
	case KindDict:
		return Int(int64(v.Dict.Len())), nil
	}
	return Nil, errf("len: expected a string, list, or dict, got %s", Display(v))
}

func builtinStr(ctx Context, args []Value) (Value, error) {
	vals, err := ctx.EvalArgs(args)
	if err != nil {
		return Nil, err
	}
	out := ""
	for _, v := range vals {
		out += displayRaw(v)
	}
	return Str(out), nil
}

func builtinList(ctx Context, args []Value) (Value, error) {
	vals, err := ctx.EvalArgs(args)
	if err != nil {
		return Nil, err
	}
	return NewList(vals), nil
}

func builtinGet(ctx Context, args []Value) (Value, error) {
	if err := ctx.WantArgs("get", args, 2); err != nil {
		return Nil, err
	}
	vals, err := ctx.EvalArgs(args)
	if err != nil {
		return Nil, err
	}
	container, key := vals[0], vals[1]
	switch container.Kind {
	case KindList:
		if key.Kind != KindInt {
			return Nil, errf("get: list index must be an integer, got %s", Display(key))
		}
		if key.Int < 0 || key.Int >= int64(len(container.List.Items)) {
			return Nil, errf("get: index %d out of range (len %d)", key.Int, len(container.List.Items))
		}
		return container.List.Items[key.Int], nil
	case KindString:
		if key.Kind != KindInt {
			return Nil, errf("get: string index must be an integer, got %s", Display(key))
		}
		runes := []rune(container.Str)
		if key.Int < 0 || key.Int >= int64(len(runes)) {
			return Nil, errf("get: index %d out of range (len %d)", key.Int, len(runes))
		}
		return Str(string(runes[key.Int])), nil
	case KindDict:
		// A missing key is None, not an error.
		v, _ := container.Dict.Get(key)
		return v, nil
	}
	return Nil, errf("get: expected a list, string, or dict, got %s", Display(container))
}

// put returns a new container; the argument is never mutated.
func builtinPut(ctx Context, args []Value) (Value, error) {
	if err := ctx.WantArgs("put", args, 3); err != nil {
		return Nil, err
	}
	vals, err := ctx.EvalArgs(args)
	if err != nil {
		return Nil, err
	}
	container, key, val := vals[0], vals[1], vals[2]
	switch container.Kind {
	case KindList:
		if key.Kind != KindInt {
			return Nil, errf("put: list index must be an integer, got %s", Display(key))
		}
		if key.Int < 0 || key.Int >= int64(len(container.List.Items)) {
			return Nil, errf("put: index %d out of range (len %d)", key.Int, len(container.List.Items))
		}
		items := make([]Value, len(container.List.Items))
		copy(items, container.List.Items)
		items[key.Int] = val
		return NewList(items), nil
	case KindDict:
		return Value{Kind: KindDict, Dict: container.Dict.Put(key, val)}, nil
	}
	return Nil, errf("put: expected a list or dict, got %s", Display(container))
}

func builtinDict(ctx Context, args []Value) (Value, error) {
	if len(args)%2 != 0 {
		return Nil, errf("dict: expected key/value pairs, got %d arguments", len(args))
	}
	vals, err := ctx.EvalArgs(args)
	if err != nil {
		return Nil, err
	}
	pairs := make([]Pair, 0, len(vals)/2)
	for i := 0; i < len(vals); i += 2 {
		pairs = append(pairs, Pair{Key: vals[i], Val: vals[i+1]})
	}
	return NewDict(pairs), nil
}

func builtinKeys(ctx Context, args []Value) (Value, error) {
	if err := ctx.WantArgs("keys", args, 1); err != nil {
		return Nil, err
	}
	v, err := ctx.Eval(args[0])
	if err != nil {
		return Nil, err
	}
	if v.Kind != KindDict {
		return Nil, errf("keys: expected a dict, got %s", Display(v))
	}
	keys := make([]Value, 0, v.Dict.Len())
	for _, p := range v.Dict.Pairs() {
		keys = append(keys, p.Key)
	}
	return NewList(keys), nil
}

// builtins lists every builtin reachable from the calling scope, sorted by
// name, as a list of strings. Arguments are ignored: the juxtaposition
// grammar has no zero-argument call form, so it is invoked as
// `builtins None`.
func builtinBuiltins(ctx Context, args []Value) (Value, error) {
	seen := make(map[string]bool)
	var names []string
	for s := ctx.Env; s != nil; s = s.parent {
		for name, v := range s.vars {
			if v.Kind == KindBuiltin && !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	slices.Sort(names)
	items := make([]Value, len(names))
	for i, n := range names {
		items[i] = Str(n)
	}
	return NewList(items), nil
}
