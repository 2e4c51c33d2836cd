package script

import "testing"

func TestTruthy(t *testing.T) {
	cases := []struct {
		v    Value
		want bool
	}{
		{Nil, false},
		{Bool(false), false},
		{Bool(true), true},
		{Int(0), true}, // zero is truthy on purpose
		{Float(0), true},
		{Str(""), true},
		{NewList(nil), true},
		{NewDict(nil), true},
	}
	for _, c := range cases {
		if got := Truthy(c.v); got != c.want {
			t.Fatalf("Truthy(%s): got %v, want %v", Display(c.v), got, c.want)
		}
	}
}

func TestCompareTotalOrder(t *testing.T) {
	cases := []struct {
		a, b Value
		want int
	}{
		{Int(1), Int(2), -1},
		{Int(2), Int(1), 1},
		{Int(1), Int(1), 0},
		{Float(1.5), Float(2.5), -1},
		{Str("a"), Str("b"), -1},
		{Symbol("x"), Symbol("x"), 0},
		{Bool(false), Bool(true), -1},
		{Nil, Nil, 0},
		// Different variants order by tag, never equal.
		{Int(1), Float(1), -1},
		{Nil, Int(0), -1},
	}
	for _, c := range cases {
		if got := Compare(c.a, c.b); got != c.want {
			t.Fatalf("Compare(%s, %s): got %d, want %d", Display(c.a), Display(c.b), got, c.want)
		}
	}
}

func TestCompareIdentity(t *testing.T) {
	a, b := NewList([]Value{Int(1)}), NewList([]Value{Int(1)})
	if Compare(a, a) != 0 {
		t.Fatal("list not equal to itself")
	}
	if Compare(a, b) == 0 {
		t.Fatal("structurally equal lists compared equal; identity expected")
	}
	// Allocation order gives a stable direction.
	if Compare(a, b) != -1 || Compare(b, a) != 1 {
		t.Fatal("identity order not antisymmetric")
	}
}

func TestDictKeyOrder(t *testing.T) {
	d := NewDict([]Pair{
		{Key: Int(3), Val: Str("c")},
		{Key: Int(1), Val: Str("a")},
		{Key: Int(2), Val: Str("b")},
		{Key: Int(1), Val: Str("z")}, // later duplicate wins
	})
	if got := Display(d); got != `{1: "z", 2: "b", 3: "c"}` {
		t.Fatalf("got %s", got)
	}
	v, ok := d.Dict.Get(Int(2))
	if !ok || v.Str != "b" {
		t.Fatalf("Get(2): %s, %v", Display(v), ok)
	}
	if _, ok := d.Dict.Get(Int(9)); ok {
		t.Fatal("Get(9) found a missing key")
	}
}

func TestDictPutIsFunctional(t *testing.T) {
	d := NewDict([]Pair{{Key: Int(1), Val: Str("a")}})
	d2 := d.Dict.Put(Int(1), Str("b"))
	if v, _ := d.Dict.Get(Int(1)); v.Str != "a" {
		t.Fatal("Put mutated the receiver")
	}
	if v, _ := d2.Get(Int(1)); v.Str != "b" {
		t.Fatal("Put result missing the new binding")
	}
}

func TestDisplay(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{Nil, "None"},
		{Bool(true), "True"},
		{Int(-3), "-3"},
		{Float(2.5), "2.5"},
		{Str("a\"b\nc"), `"a\"b\nc"`},
		{NewList([]Value{Int(1), Str("x")}), `[1, "x"]`},
		{NewClosure([]string{"a", "b"}, Symbol("a")), "<fn (a, b)>"},
		{NewProc([]string{"x"}, Symbol("x")), "<proc (x)>"},
		{NewMacro(nil, Int(1)), "<macro ()>"},
		{NewBuiltin("len", nil), "<builtin len>"},
		{Add(Int(1), Mul(Int(2), Int(3))), "(1 + (2 * 3))"},
		{Quote(Symbol("x")), "'x"},
	}
	for _, c := range cases {
		if got := Display(c.v); got != c.want {
			t.Fatalf("Display: got %s, want %s", got, c.want)
		}
	}
}

func TestDisplayStableAcrossCalls(t *testing.T) {
	tree, err := Parse("f (1 + 2) [3, 4]")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	first := Display(tree)
	for i := 0; i < 3; i++ {
		if got := Display(tree); got != first {
			t.Fatalf("rendering changed: %s vs %s", first, got)
		}
	}
}
