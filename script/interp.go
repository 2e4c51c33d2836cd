package script

import (
	"errors"
	"math"
)

// Interp is a tree-walking evaluator. It is single-threaded: each Eval runs
// to completion on the caller's goroutine before returning, and nothing in
// the interpreter suspends mid-evaluation.
type Interp struct {
	host     Host
	maxSteps int
	steps    int
}

// New creates an interpreter bound to a host. The host may be nil when no
// editor builtins will be reached (pure expression evaluation).
func New(host Host) *Interp {
	return &Interp{host: host}
}

// SetMaxSteps installs a cooperative step budget: evaluating more than n
// nodes in a single Eval call fails with a RuntimeError instead of hanging
// the caller on a runaway script. Zero disables the budget.
func (in *Interp) SetMaxSteps(n int) { in.maxSteps = n }

// Eval reduces an expression tree to a value in env. Failures are always
// *RuntimeError; raised values carry their payload for try/catch.
func (in *Interp) Eval(v Value, env *Env) (Value, error) {
	in.steps = 0
	return in.eval(v, env)
}

func (in *Interp) eval(v Value, env *Env) (Value, error) {
	in.steps++
	if in.maxSteps > 0 && in.steps > in.maxSteps {
		return Nil, errf("script exceeded the evaluation budget of %d steps", in.maxSteps)
	}

	switch v.Kind {
	case KindNil, KindInt, KindFloat, KindBool, KindString, KindDict, KindBuiltin:
		return v, nil

	case KindSymbol:
		bound, ok := env.Lookup(v.Str)
		if !ok {
			return Nil, errf("unresolved symbol: %s", v.Str)
		}
		return bound, nil

	case KindList:
		// List literals evaluate their elements.
		items := make([]Value, len(v.List.Items))
		for i, it := range v.List.Items {
			ev, err := in.eval(it, env)
			if err != nil {
				return Nil, err
			}
			items[i] = ev
		}
		return NewList(items), nil

	case KindClosure:
		if v.Fn.Env != nil { // already captured
			return v, nil
		}
		return newFn(KindClosure, v.Fn.Params, v.Fn.Body, env), nil

	case KindProc, KindMacro:
		return v, nil

	case KindQuote:
		return v.Unary.X, nil

	case KindNegate:
		x, err := in.eval(v.Unary.X, env)
		if err != nil {
			return Nil, err
		}
		switch x.Kind {
		case KindInt:
			return Int(-x.Int), nil
		case KindFloat:
			return Float(-x.Float), nil
		}
		return Nil, errf("cannot negate %s", Display(x))

	case KindNot:
		x, err := in.eval(v.Unary.X, env)
		if err != nil {
			return Nil, err
		}
		return Bool(!Truthy(x)), nil

	case KindAdd, KindSub, KindMul, KindDiv, KindRem:
		l, err := in.eval(v.Binary.L, env)
		if err != nil {
			return Nil, err
		}
		r, err := in.eval(v.Binary.R, env)
		if err != nil {
			return Nil, err
		}
		return evalArith(v.Kind, l, r)

	case KindIf:
		cond, err := in.eval(v.If.Cond, env)
		if err != nil {
			return Nil, err
		}
		if Truthy(cond) {
			return in.eval(v.If.Then, env)
		}
		return in.eval(v.If.Else, env)

	case KindLet:
		val, err := in.eval(v.Let.Value, env)
		if err != nil {
			return Nil, err
		}
		if !v.Let.HasBody {
			// Bare form: bind in the enclosing block's scope.
			env.Define(v.Let.Name, val)
			return val, nil
		}
		scope := NewEnv(env)
		scope.Define(v.Let.Name, val)
		return in.eval(v.Let.Body, scope)

	case KindAssign:
		val, err := in.eval(v.Assign.Value, env)
		if err != nil {
			return Nil, err
		}
		if !env.Assign(v.Assign.Name, val) {
			return Nil, errf("assignment to undefined name: %s", v.Assign.Name)
		}
		return val, nil

	case KindDo:
		// Sequences run in the same scope; only let opens a child.
		result := Nil
		for _, e := range v.Do.Exprs {
			r, err := in.eval(e, env)
			if err != nil {
				return Nil, err
			}
			result = r
		}
		return result, nil

	case KindApply:
		return in.apply(v.Apply, env)

	case KindTry:
		result, err := in.eval(v.Try.Body, env)
		if err == nil {
			return result, nil
		}
		var re *RuntimeError
		if !errors.As(err, &re) {
			return Nil, err
		}
		scope := NewEnv(env)
		if re.HasPayload {
			scope.Define("err", re.Payload)
		} else {
			scope.Define("err", Str(re.Msg))
		}
		return in.eval(v.Try.Handler, scope)

	case KindRaise:
		val, err := in.eval(v.Unary.X, env)
		if err != nil {
			return Nil, err
		}
		return Nil, &RuntimeError{Msg: "raised: " + Display(val), Payload: val, HasPayload: true}

	default:
		return Nil, errf("cannot evaluate %s", Display(v))
	}
}

func (in *Interp) apply(node *ApplyNode, env *Env) (Value, error) {
	callee, err := in.eval(node.Callee, env)
	if err != nil {
		return Nil, err
	}

	switch callee.Kind {
	case KindClosure:
		// Parameters bind in a child of the captured defining scope.
		args, err := in.evalArgs(node.Args, env)
		if err != nil {
			return Nil, err
		}
		scope, err := bindParams(callee.Fn, callee.Fn.Env, args)
		if err != nil {
			return Nil, err
		}
		return in.eval(callee.Fn.Body, scope)

	case KindProc:
		// No captured scope: free names resolve in the caller's scope.
		args, err := in.evalArgs(node.Args, env)
		if err != nil {
			return Nil, err
		}
		scope, err := bindParams(callee.Fn, env, args)
		if err != nil {
			return Nil, err
		}
		return in.eval(callee.Fn.Body, scope)

	case KindMacro:
		// Arguments bind unevaluated; the expansion is evaluated again.
		scope, err := bindParams(callee.Fn, env, node.Args)
		if err != nil {
			return Nil, err
		}
		expansion, err := in.eval(callee.Fn.Body, scope)
		if err != nil {
			return Nil, err
		}
		return in.eval(expansion, env)

	case KindBuiltin:
		// Builtins receive the raw argument expressions and evaluate what
		// they need through the context, so short-circuit forms work.
		return callee.Builtin.Fn(Context{Interp: in, Host: in.host, Env: env}, node.Args)

	default:
		return Nil, errf("not callable: %s", Display(callee))
	}
}

func (in *Interp) evalArgs(args []Value, env *Env) ([]Value, error) {
	out := make([]Value, len(args))
	for i, a := range args {
		v, err := in.eval(a, env)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func bindParams(fn *Fn, parent *Env, args []Value) (*Env, error) {
	if len(args) != len(fn.Params) {
		return nil, errf("wrong argument count: got %d, want %d", len(args), len(fn.Params))
	}
	scope := NewEnv(parent)
	for i, name := range fn.Params {
		scope.Define(name, args[i])
	}
	return scope, nil
}

// evalArith dispatches on the pair of runtime types. Integers promote to
// float in mixed expressions; + additionally concatenates two strings or
// two lists. Everything else is a type error.
func evalArith(kind Kind, l, r Value) (Value, error) {
	if kind == KindAdd {
		switch {
		case l.Kind == KindString && r.Kind == KindString:
			return Str(l.Str + r.Str), nil
		case l.Kind == KindList && r.Kind == KindList:
			items := make([]Value, 0, len(l.List.Items)+len(r.List.Items))
			items = append(items, l.List.Items...)
			items = append(items, r.List.Items...)
			return NewList(items), nil
		}
	}

	if l.Kind == KindInt && r.Kind == KindInt {
		return intArith(kind, l.Int, r.Int)
	}
	lf, lok := asFloat(l)
	rf, rok := asFloat(r)
	if lok && rok {
		return floatArith(kind, lf, rf)
	}
	return Nil, errf("type mismatch: %s %s %s", Display(l), opToken(kind), Display(r))
}

func intArith(kind Kind, a, b int64) (Value, error) {
	switch kind {
	case KindAdd:
		return Int(a + b), nil
	case KindSub:
		return Int(a - b), nil
	case KindMul:
		return Int(a * b), nil
	case KindDiv:
		if b == 0 {
			return Nil, errf("division by zero")
		}
		return Int(a / b), nil
	case KindRem:
		if b == 0 {
			return Nil, errf("remainder by zero")
		}
		return Int(a % b), nil
	}
	return Nil, errf("not an arithmetic operator")
}

func floatArith(kind Kind, a, b float64) (Value, error) {
	switch kind {
	case KindAdd:
		return Float(a + b), nil
	case KindSub:
		return Float(a - b), nil
	case KindMul:
		return Float(a * b), nil
	case KindDiv:
		return Float(a / b), nil
	case KindRem:
		return Float(math.Mod(a, b)), nil
	}
	return Nil, errf("not an arithmetic operator")
}

func asFloat(v Value) (float64, bool) {
	switch v.Kind {
	case KindInt:
		return float64(v.Int), true
	case KindFloat:
		return v.Float, true
	}
	return 0, false
}

func opToken(kind Kind) string {
	switch kind {
	case KindAdd:
		return "+"
	case KindSub:
		return "-"
	case KindMul:
		return "*"
	case KindDiv:
		return "/"
	case KindRem:
		return "%"
	}
	return "?"
}
