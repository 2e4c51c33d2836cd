package script

import "sync/atomic"

// Kind tags the closed set of value and expression variants.
//
// The first block are runtime values; the second are AST-only kinds produced
// by the parser. Keep switches over Kind exhaustive: new kinds must be
// handled in Compare, Display, Truthy, and Interp.eval.
type Kind int

const (
	KindNil Kind = iota
	KindInt
	KindFloat
	KindBool
	KindString
	KindSymbol
	KindList
	KindDict
	KindClosure
	KindProc
	KindMacro
	KindBuiltin

	// AST-only kinds.
	KindNegate
	KindNot
	KindAdd
	KindSub
	KindMul
	KindDiv
	KindRem
	KindIf
	KindLet
	KindAssign
	KindDo
	KindApply
	KindQuote
	KindTry
	KindRaise
)

// Value is the tagged union at the heart of the language. Exactly one
// payload field is meaningful for a given Kind; the zero Value is Nil.
type Value struct {
	Kind Kind

	Int   int64
	Float float64
	Bool  bool
	Str   string // String payload, Symbol name

	List    *List
	Dict    *Dict
	Fn      *Fn
	Builtin *Builtin

	Unary  *Unary
	Binary *Binary
	If     *IfNode
	Let    *LetNode
	Assign *AssignNode
	Do     *DoNode
	Apply  *ApplyNode
	Try    *TryNode
}

// allocSeq numbers List/Dict/Fn allocations so identity comparison is a
// deterministic total order within a run.
var allocSeq atomic.Uint64

// List is an ordered, immutable sequence of values.
type List struct {
	id    uint64
	Items []Value
}

// Pair is one dict entry.
type Pair struct {
	Key Value
	Val Value
}

// Dict maps values to values. Pairs are kept sorted by Compare on the key,
// which is also the iteration order.
type Dict struct {
	id    uint64
	pairs []Pair
}

// Fn is the shared payload of closures, procs, and macros. Env is non-nil
// only for closures that have been evaluated (capturing their defining
// scope); procs and macros never carry one.
type Fn struct {
	id     uint64
	Params []string
	Body   Value
	Env    *Env
}

// Unary is the payload of Negate, Not, Quote, and Raise nodes.
type Unary struct{ X Value }

// Binary is the payload of the arithmetic nodes.
type Binary struct{ L, R Value }

type IfNode struct{ Cond, Then, Else Value }

// LetNode with HasBody is `let NAME = V in BODY` (scoped); without it is the
// bare form that defines NAME in the enclosing block's scope.
type LetNode struct {
	Name    string
	Value   Value
	Body    Value
	HasBody bool
}

type AssignNode struct {
	Name  string
	Value Value
}

type DoNode struct{ Exprs []Value }

type ApplyNode struct {
	Callee Value
	Args   []Value
}

type TryNode struct{ Body, Handler Value }

// Nil is the nil value. The zero Value is identical to it.
var Nil = Value{Kind: KindNil}

func Int(v int64) Value     { return Value{Kind: KindInt, Int: v} }
func Float(v float64) Value { return Value{Kind: KindFloat, Float: v} }
func Bool(v bool) Value     { return Value{Kind: KindBool, Bool: v} }
func Str(s string) Value    { return Value{Kind: KindString, Str: s} }
func Symbol(name string) Value {
	return Value{Kind: KindSymbol, Str: name}
}

func NewList(items []Value) Value {
	return Value{Kind: KindList, List: &List{id: allocSeq.Add(1), Items: items}}
}

// NewDict builds a dict from pairs. Later duplicates of a key win.
func NewDict(pairs []Pair) Value {
	d := &Dict{id: allocSeq.Add(1)}
	for _, p := range pairs {
		d.pairs = put(d.pairs, p.Key, p.Val)
	}
	return Value{Kind: KindDict, Dict: d}
}

// Get returns the value bound to key.
func (d *Dict) Get(key Value) (Value, bool) {
	for _, p := range d.pairs {
		c := Compare(p.Key, key)
		if c == 0 {
			return p.Val, true
		}
		if c > 0 {
			break
		}
	}
	return Nil, false
}

// Put returns a new dict with key bound to val. The receiver is unchanged.
func (d *Dict) Put(key, val Value) *Dict {
	pairs := make([]Pair, len(d.pairs))
	copy(pairs, d.pairs)
	return &Dict{id: allocSeq.Add(1), pairs: put(pairs, key, val)}
}

// Pairs returns the entries in key order. Callers must not mutate it.
func (d *Dict) Pairs() []Pair { return d.pairs }

func (d *Dict) Len() int { return len(d.pairs) }

func put(pairs []Pair, key, val Value) []Pair {
	for i, p := range pairs {
		c := Compare(p.Key, key)
		if c == 0 {
			pairs[i].Val = val
			return pairs
		}
		if c > 0 {
			pairs = append(pairs, Pair{})
			copy(pairs[i+1:], pairs[i:])
			pairs[i] = Pair{Key: key, Val: val}
			return pairs
		}
	}
	return append(pairs, Pair{Key: key, Val: val})
}

func newFn(kind Kind, params []string, body Value, env *Env) Value {
	return Value{Kind: kind, Fn: &Fn{id: allocSeq.Add(1), Params: params, Body: body, Env: env}}
}

// NewClosure builds a closure expression. Env stays nil until the node is
// evaluated, at which point the interpreter captures the defining scope.
func NewClosure(params []string, body Value) Value {
	return newFn(KindClosure, params, body, nil)
}

func NewProc(params []string, body Value) Value {
	return newFn(KindProc, params, body, nil)
}

func NewMacro(params []string, body Value) Value {
	return newFn(KindMacro, params, body, nil)
}

func Negate(x Value) Value { return Value{Kind: KindNegate, Unary: &Unary{X: x}} }
func Not(x Value) Value    { return Value{Kind: KindNot, Unary: &Unary{X: x}} }
func Quote(x Value) Value  { return Value{Kind: KindQuote, Unary: &Unary{X: x}} }
func Raise(x Value) Value  { return Value{Kind: KindRaise, Unary: &Unary{X: x}} }

func Add(l, r Value) Value { return Value{Kind: KindAdd, Binary: &Binary{L: l, R: r}} }
func Sub(l, r Value) Value { return Value{Kind: KindSub, Binary: &Binary{L: l, R: r}} }
func Mul(l, r Value) Value { return Value{Kind: KindMul, Binary: &Binary{L: l, R: r}} }
func Div(l, r Value) Value { return Value{Kind: KindDiv, Binary: &Binary{L: l, R: r}} }
func Rem(l, r Value) Value { return Value{Kind: KindRem, Binary: &Binary{L: l, R: r}} }

func If(cond, then, els Value) Value {
	return Value{Kind: KindIf, If: &IfNode{Cond: cond, Then: then, Else: els}}
}

// Let is the bare form: defines name in the enclosing block's scope.
func Let(name string, value Value) Value {
	return Value{Kind: KindLet, Let: &LetNode{Name: name, Value: value}}
}

// LetIn is the scoped form: the binding is visible only inside body.
func LetIn(name string, value, body Value) Value {
	return Value{Kind: KindLet, Let: &LetNode{Name: name, Value: value, Body: body, HasBody: true}}
}

func Assign(name string, value Value) Value {
	return Value{Kind: KindAssign, Assign: &AssignNode{Name: name, Value: value}}
}

func Do(exprs []Value) Value {
	return Value{Kind: KindDo, Do: &DoNode{Exprs: exprs}}
}

func Apply(callee Value, args []Value) Value {
	return Value{Kind: KindApply, Apply: &ApplyNode{Callee: callee, Args: args}}
}

func Try(body, handler Value) Value {
	return Value{Kind: KindTry, Try: &TryNode{Body: body, Handler: handler}}
}

// Truthy reports the language's boolean coercion: exactly Nil and False are
// falsy. Zero, the empty string, and the empty list are truthy on purpose.
func Truthy(v Value) bool {
	switch v.Kind {
	case KindNil:
		return false
	case KindBool:
		return v.Bool
	default:
		return true
	}
}

// Equal reports value equality under the total order.
func Equal(a, b Value) bool { return Compare(a, b) == 0 }

// Compare is a total order over values: variant tag first, then per-type
// natural order. Lists, dicts, and functions compare by allocation identity;
// builtins by name; AST nodes by their display rendering.
func Compare(a, b Value) int {
	if a.Kind != b.Kind {
		if a.Kind < b.Kind {
			return -1
		}
		return 1
	}

	switch a.Kind {
	case KindNil:
		return 0
	case KindInt:
		return cmpInt64(a.Int, b.Int)
	case KindFloat:
		return cmpFloat64(a.Float, b.Float)
	case KindBool:
		return cmpBool(a.Bool, b.Bool)
	case KindString, KindSymbol:
		return cmpString(a.Str, b.Str)
	case KindList:
		return cmpUint64(a.List.id, b.List.id)
	case KindDict:
		return cmpUint64(a.Dict.id, b.Dict.id)
	case KindClosure, KindProc, KindMacro:
		return cmpUint64(a.Fn.id, b.Fn.id)
	case KindBuiltin:
		return cmpString(a.Builtin.Name, b.Builtin.Name)
	default:
		// AST nodes: the display form is deterministic and structural.
		return cmpString(Display(a), Display(b))
	}
}

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpFloat64(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}

func cmpString(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpUint64(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
