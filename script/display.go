package script

import (
	"strconv"
	"strings"
)

// Display renders a value or expression for humans. The rendering is
// deterministic for a given tree: operator and control-flow nodes come out
// fully parenthesized, callables show their parameters but never their body.
// Display is diagnostic output, not serialization.
func Display(v Value) string {
	switch v.Kind {
	case KindNil:
		return "None"
	case KindInt:
		return strconv.FormatInt(v.Int, 10)
	case KindFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case KindBool:
		if v.Bool {
			return "True"
		}
		return "False"
	case KindString:
		return quoteString(v.Str)
	case KindSymbol:
		return v.Str
	case KindList:
		var sb strings.Builder
		sb.WriteByte('[')
		for i, it := range v.List.Items {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(Display(it))
		}
		sb.WriteByte(']')
		return sb.String()
	case KindDict:
		var sb strings.Builder
		sb.WriteByte('{')
		for i, p := range v.Dict.Pairs() {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(Display(p.Key))
			sb.WriteString(": ")
			sb.WriteString(Display(p.Val))
		}
		sb.WriteByte('}')
		return sb.String()
	case KindClosure:
		return displayFn("fn", v.Fn)
	case KindProc:
		return displayFn("proc", v.Fn)
	case KindMacro:
		return displayFn("macro", v.Fn)
	case KindBuiltin:
		return "<builtin " + v.Builtin.Name + ">"
	case KindNegate:
		return "-" + Display(v.Unary.X)
	case KindNot:
		return "!" + Display(v.Unary.X)
	case KindAdd:
		return displayBinary(v.Binary, "+")
	case KindSub:
		return displayBinary(v.Binary, "-")
	case KindMul:
		return displayBinary(v.Binary, "*")
	case KindDiv:
		return displayBinary(v.Binary, "/")
	case KindRem:
		return displayBinary(v.Binary, "%")
	case KindIf:
		return "(if " + Display(v.If.Cond) + " then " + Display(v.If.Then) + " else " + Display(v.If.Else) + ")"
	case KindLet:
		if v.Let.HasBody {
			return "(let " + v.Let.Name + " = " + Display(v.Let.Value) + " in " + Display(v.Let.Body) + ")"
		}
		return "(let " + v.Let.Name + " = " + Display(v.Let.Value) + ")"
	case KindAssign:
		return "(" + v.Assign.Name + " = " + Display(v.Assign.Value) + ")"
	case KindDo:
		var sb strings.Builder
		sb.WriteByte('{')
		for i, e := range v.Do.Exprs {
			if i > 0 {
				sb.WriteString("; ")
			}
			sb.WriteString(Display(e))
		}
		sb.WriteByte('}')
		return sb.String()
	case KindApply:
		var sb strings.Builder
		sb.WriteByte('(')
		sb.WriteString(Display(v.Apply.Callee))
		for _, a := range v.Apply.Args {
			sb.WriteByte(' ')
			sb.WriteString(Display(a))
		}
		sb.WriteByte(')')
		return sb.String()
	case KindQuote:
		return "'" + Display(v.Unary.X)
	case KindTry:
		return "(try " + Display(v.Try.Body) + " catch " + Display(v.Try.Handler) + ")"
	case KindRaise:
		return "(raise " + Display(v.Unary.X) + ")"
	default:
		return "<unknown>"
	}
}

func displayFn(kind string, fn *Fn) string {
	return "<" + kind + " (" + strings.Join(fn.Params, ", ") + ")>"
}

func displayBinary(b *Binary, op string) string {
	return "(" + Display(b.L) + " " + op + " " + Display(b.R) + ")"
}

func quoteString(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
