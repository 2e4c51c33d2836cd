package script

import (
	"errors"
	"testing"
)

func mustParse(t *testing.T, src string) Value {
	t.Helper()
	v, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", src, err)
	}
	return v
}

func TestParseShapes(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"42", "42"},
		{"-5", "-5"},
		{"3.25", "3.25"},
		{"True", "True"},
		{"False", "False"},
		{"None", "None"},
		{`"a\nb"`, `"a\nb"`},
		{"foo", "foo"},
		{"!x", "!x"},
		{"f x y", "(f x y)"},
		{"f x y z", "(f x y z)"},
		{"(f x) y", "((f x) y)"},
		{"1 + 2", "(1 + 2)"},
		{"3 + 4 * 2", "(3 + (4 * 2))"},
		{"3 * 4 + 2", "((3 * 4) + 2)"},
		{"10 - 2 - 3", "((10 - 2) - 3)"},
		{"10 % 3 / 2", "((10 % 3) / 2)"},
		{"(3 + 4) * 2", "((3 + 4) * 2)"},
		{"f x + g y", "((f x) + (g y))"},
		{"[1, 2, 3]", "[1, 2, 3]"},
		{"[1, 2,]", "[1, 2]"},
		{"[]", "[]"},
		{"{1; 2}", "{1; 2}"},
		{"{1; 2;}", "{1; 2}"},
		{"{}", "{}"},
		{"'x", "'x"},
		{"'(f x)", "'(f x)"},
		{"if a then b else c", "(if a then b else c)"},
		{"let x = 5 in x", "(let x = 5 in x)"},
		{"let x = 5", "(let x = 5)"},
		{"x = 1", "(x = 1)"},
		{"x = x + 1", "(x = (x + 1))"},
		{"try raise 42 catch 99", "(try (raise 42) catch 99)"},
		{"# comment\n1", "1"},
		{"1 # trailing", "1"},
	}
	for _, c := range cases {
		got := Display(mustParse(t, c.src))
		if got != c.want {
			t.Fatalf("Parse(%q): got %s, want %s", c.src, got, c.want)
		}
	}
}

func TestParseTopLevelWrapping(t *testing.T) {
	// Zero expressions give an empty sequence, one is unwrapped, more wrap.
	if got := Display(mustParse(t, "")); got != "{}" {
		t.Fatalf("empty source: got %s, want {}", got)
	}
	if v := mustParse(t, "1 + 2"); v.Kind != KindAdd {
		t.Fatalf("single expression wrapped: kind %d", v.Kind)
	}
	v := mustParse(t, "let x = 1; x = x + 1; x")
	if v.Kind != KindDo {
		t.Fatalf("multi expression not wrapped: kind %d", v.Kind)
	}
	want := "{(let x = 1); (x = (x + 1)); x}"
	if got := Display(v); got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
	// Trailing separator is tolerated without adding an expression.
	if got := Display(mustParse(t, "1; 2;")); got != "{1; 2}" {
		t.Fatalf("trailing semicolon: got %s", got)
	}
}

func TestParseApplicationIsFlat(t *testing.T) {
	v := mustParse(t, "f x y z")
	if v.Kind != KindApply {
		t.Fatalf("kind %d, want apply", v.Kind)
	}
	if got := len(v.Apply.Args); got != 3 {
		t.Fatalf("got %d args, want 3 (not curried)", got)
	}
}

func TestParseArrows(t *testing.T) {
	cases := []struct {
		src        string
		kind       Kind
		params     []string
		wantedBody string
	}{
		{"n -> n + 1", KindClosure, []string{"n"}, "(n + 1)"},
		{"a b -> a", KindClosure, []string{"a", "b"}, "a"},
		{"a b => b", KindProc, []string{"a", "b"}, "b"},
		{"x ~> 'x", KindMacro, []string{"x"}, "'x"},
		{"[] -> 7", KindClosure, nil, "7"},
		{"[a, b] -> a", KindClosure, []string{"a", "b"}, "a"},
	}
	for _, c := range cases {
		v := mustParse(t, c.src)
		if v.Kind != c.kind {
			t.Fatalf("Parse(%q): kind %d, want %d", c.src, v.Kind, c.kind)
		}
		if len(v.Fn.Params) != len(c.params) {
			t.Fatalf("Parse(%q): params %v, want %v", c.src, v.Fn.Params, c.params)
		}
		for i, p := range c.params {
			if v.Fn.Params[i] != p {
				t.Fatalf("Parse(%q): params %v, want %v", c.src, v.Fn.Params, c.params)
			}
		}
		if got := Display(v.Fn.Body); got != c.wantedBody {
			t.Fatalf("Parse(%q): body %s, want %s", c.src, got, c.wantedBody)
		}
		if v.Fn.Env != nil {
			t.Fatalf("Parse(%q): environment captured at parse time", c.src)
		}
	}
}

func TestParseLetInDoesNotSwallowKeyword(t *testing.T) {
	// `5 in` must not parse as an application of 5.
	v := mustParse(t, "let x = 5 in x")
	if v.Kind != KindLet || !v.Let.HasBody {
		t.Fatalf("got %s, want scoped let", Display(v))
	}
	if got := Display(v.Let.Value); got != "5" {
		t.Fatalf("let value: got %s, want 5", got)
	}
}

func TestParseStringEscapes(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{`"a\"b"`, `a"b`},
		{`"a\\b"`, `a\b`},
		{`"a\nb"`, "a\nb"},
		{`"a\tb"`, "a\tb"},
		{`"a\qb"`, `a\qb`}, // unrecognized escapes pass through
	}
	for _, c := range cases {
		v := mustParse(t, c.src)
		if v.Kind != KindString || v.Str != c.want {
			t.Fatalf("Parse(%s): got %q, want %q", c.src, v.Str, c.want)
		}
	}
}

func TestParseSymbolCharset(t *testing.T) {
	for _, name := range []string{"empty?", "set-buf", "str+", "a_b2"} {
		v := mustParse(t, name)
		if v.Kind != KindSymbol || v.Str != name {
			t.Fatalf("Parse(%q): got %s", name, Display(v))
		}
	}
}

func TestParseErrors(t *testing.T) {
	cases := []string{
		`"unterminated`,
		"{1; 2",
		"[1, 2",
		"(1 + 2",
		"1 2 @",
		"let 5 = 1",
		"let x 5",
		"if a then b",
		"try 1",
		"5 = 1",
		"1 + f -> x",
		"99999999999999999999",
	}
	for _, src := range cases {
		_, err := Parse(src)
		if err == nil {
			t.Fatalf("Parse(%q): expected error", src)
		}
		var se *SyntaxError
		if !errors.As(err, &se) {
			t.Fatalf("Parse(%q): error %T, want *SyntaxError", src, err)
		}
		if se.Offset < 0 || se.Offset > len(src) {
			t.Fatalf("Parse(%q): offset %d out of range", src, se.Offset)
		}
	}
}
