package script

// BuiltinFunc is a host-provided function exposed as a callable value.
// It receives the raw, unevaluated argument expressions and a context
// carrying the evaluate capability, the host handle, and the calling
// scope. Evaluating arguments is the builtin's job; that is what lets
// forms like `and`/`or` short-circuit.
type BuiltinFunc func(ctx Context, args []Value) (Value, error)

// Builtin pairs a name with its host function. The name is also the
// identity used when builtins are compared or displayed.
type Builtin struct {
	Name string
	Fn   BuiltinFunc
}

// NewBuiltin wraps a host function as a callable value.
func NewBuiltin(name string, fn BuiltinFunc) Value {
	return Value{Kind: KindBuiltin, Builtin: &Builtin{Name: name, Fn: fn}}
}

// RegisterBuiltin binds a builtin into env under its name.
func RegisterBuiltin(env *Env, name string, fn BuiltinFunc) {
	env.Define(name, NewBuiltin(name, fn))
}

// Context is what a builtin gets to work with during one call.
type Context struct {
	Interp *Interp
	Host   Host
	Env    *Env
}

// Eval evaluates one expression in the calling scope. The call shares the
// step budget of the evaluation that reached the builtin.
func (c Context) Eval(v Value) (Value, error) {
	return c.Interp.eval(v, c.Env)
}

// EvalArgs evaluates every argument expression in order.
func (c Context) EvalArgs(args []Value) ([]Value, error) {
	return c.Interp.evalArgs(args, c.Env)
}

// WantArgs fails unless exactly n arguments were passed.
func (c Context) WantArgs(name string, args []Value, n int) error {
	if len(args) != n {
		return errf("%s: wrong argument count: got %d, want %d", name, len(args), n)
	}
	return nil
}

// EvalInt evaluates one argument and requires an integer.
func (c Context) EvalInt(name string, arg Value) (int64, error) {
	v, err := c.Eval(arg)
	if err != nil {
		return 0, err
	}
	if v.Kind != KindInt {
		return 0, errf("%s: expected an integer, got %s", name, Display(v))
	}
	return v.Int, nil
}

// EvalString evaluates one argument and requires a string.
func (c Context) EvalString(name string, arg Value) (string, error) {
	v, err := c.Eval(arg)
	if err != nil {
		return "", err
	}
	if v.Kind != KindString {
		return "", errf("%s: expected a string, got %s", name, Display(v))
	}
	return v.Str, nil
}
