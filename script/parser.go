package script

import "strconv"

// Parse converts script source into an expression tree.
//
// Top-level expressions are separated by ';' (trailing separator optional).
// Zero expressions parse to an empty sequence node, exactly one parses to
// that expression directly, two or more wrap in a sequence node. Scripts
// rely on the single-expression shortcut, so the asymmetry is deliberate.
func Parse(src string) (v Value, err error) {
	p := &parser{src: src}
	defer func() {
		if r := recover(); r != nil {
			pe, ok := r.(*SyntaxError)
			if !ok {
				panic(r)
			}
			v, err = Nil, pe
		}
	}()

	var exprs []Value
	p.skipSpace()
	for !p.atEnd() {
		exprs = append(exprs, p.parseExpression())
		p.skipSpace()
		if p.atEnd() {
			break
		}
		if p.cur() == ';' {
			p.pos++
			p.skipSpace()
			continue
		}
		p.fail("expected ';' or end of input after expression")
	}

	switch len(exprs) {
	case 0:
		return Do(nil), nil
	case 1:
		return exprs[0], nil
	default:
		return Do(exprs), nil
	}
}

// Continuation keywords terminate juxtaposition argument lists so that
// `let x = 5 in x` does not parse `5 in` as an application.
var continuationWords = map[string]bool{
	"then":  true,
	"else":  true,
	"in":    true,
	"catch": true,
}

type parser struct {
	src string
	pos int
}

func (p *parser) fail(msg string) {
	panic(&SyntaxError{Msg: msg, Offset: p.pos})
}

func (p *parser) atEnd() bool { return p.pos >= len(p.src) }

func (p *parser) cur() byte {
	if p.atEnd() {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) peek() byte {
	if p.pos+1 >= len(p.src) {
		return 0
	}
	return p.src[p.pos+1]
}

// skipSpace skips whitespace and #-to-end-of-line comments.
func (p *parser) skipSpace() {
	for !p.atEnd() {
		c := p.cur()
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			p.pos++
		case c == '#':
			for !p.atEnd() && p.cur() != '\n' {
				p.pos++
			}
		default:
			return
		}
	}
}

// expression := binary, optionally completed by an arrow form or a bare
// assignment. `P -> B` builds a closure, `P => B` a proc, `P ~> B` a macro;
// `NAME = V` assigns.
func (p *parser) parseExpression() Value {
	lhs := p.parseBinary(1)
	p.skipSpace()

	switch {
	case p.cur() == '-' && p.peek() == '>':
		p.pos += 2
		return NewClosure(p.paramNames(lhs), p.parseExpression())
	case p.cur() == '=' && p.peek() == '>':
		p.pos += 2
		return NewProc(p.paramNames(lhs), p.parseExpression())
	case p.cur() == '~' && p.peek() == '>':
		p.pos += 2
		return NewMacro(p.paramNames(lhs), p.parseExpression())
	case p.cur() == '=':
		if lhs.Kind != KindSymbol {
			p.fail("assignment target must be a symbol")
		}
		p.pos++
		return Assign(lhs.Str, p.parseExpression())
	}
	return lhs
}

// paramNames turns the expression preceding an arrow into a parameter list:
// a lone symbol, a juxtaposition of symbols (`a b -> ...`), or a list of
// symbols (`[] -> ...` for a nullary function).
func (p *parser) paramNames(v Value) []string {
	switch v.Kind {
	case KindSymbol:
		return []string{v.Str}
	case KindApply:
		if v.Apply.Callee.Kind != KindSymbol {
			break
		}
		names := []string{v.Apply.Callee.Str}
		for _, a := range v.Apply.Args {
			if a.Kind != KindSymbol {
				p.fail("parameter list may contain only symbols")
			}
			names = append(names, a.Str)
		}
		return names
	case KindList:
		names := make([]string, 0, len(v.List.Items))
		for _, it := range v.List.Items {
			if it.Kind != KindSymbol {
				p.fail("parameter list may contain only symbols")
			}
			names = append(names, it.Str)
		}
		return names
	}
	p.fail("invalid parameter list before arrow")
	return nil
}

// Binary operator precedence: application binds tightest, then * / %,
// then + -. All operators are left-associative.
func (p *parser) parseBinary(minPrec int) Value {
	lhs := p.parseApplication()
	for {
		p.skipSpace()
		op, prec := p.peekBinaryOp()
		if op == 0 || prec < minPrec {
			return lhs
		}
		p.pos++
		rhs := p.parseBinary(prec + 1)
		switch op {
		case '+':
			lhs = Add(lhs, rhs)
		case '-':
			lhs = Sub(lhs, rhs)
		case '*':
			lhs = Mul(lhs, rhs)
		case '/':
			lhs = Div(lhs, rhs)
		case '%':
			lhs = Rem(lhs, rhs)
		}
	}
}

func (p *parser) peekBinaryOp() (op byte, prec int) {
	switch c := p.cur(); c {
	case '+':
		return c, 1
	case '-':
		if p.peek() == '>' { // arrow, not subtraction
			return 0, 0
		}
		return c, 1
	case '*', '/', '%':
		return c, 2
	default:
		return 0, 0
	}
}

// Juxtaposition is application: `f x y` is one Apply with callee f and two
// arguments. Any term-starting token after a complete factor extends the
// argument list.
func (p *parser) parseApplication() Value {
	lhs := p.parseFactor()
	p.skipSpace()
	if !p.atTermStart() {
		return lhs
	}
	var args []Value
	for p.atTermStart() {
		args = append(args, p.parseFactor())
		p.skipSpace()
	}
	return Apply(lhs, args)
}

func (p *parser) atTermStart() bool {
	c := p.cur()
	switch {
	case c == '(' || c == '[' || c == '{' || c == '\'' || c == '"':
		return true
	case isDigit(c):
		return true
	case isAlpha(c) || c == '_':
		return !continuationWords[p.peekWord()]
	default:
		return false
	}
}

// peekWord reads the symbol at the current position without consuming it.
func (p *parser) peekWord() string {
	i := p.pos
	for i < len(p.src) && isSymbolChar(p.src[i]) {
		i++
	}
	return p.src[p.pos:i]
}

// factor := ('-' | '!')? term
func (p *parser) parseFactor() Value {
	p.skipSpace()
	switch p.cur() {
	case '-':
		p.pos++
		return Negate(p.parseFactor())
	case '!':
		p.pos++
		return Not(p.parseFactor())
	}
	return p.parseAtom()
}

func (p *parser) parseAtom() Value {
	p.skipSpace()
	c := p.cur()
	switch {
	case isDigit(c):
		return p.parseNumber()
	case c == '"':
		p.pos++
		return Str(p.parseStringLiteral())
	case c == '[':
		return p.parseList()
	case c == '{':
		return p.parseBlock()
	case c == '(':
		return p.parseGroup()
	case c == '\'':
		p.pos++
		return Quote(p.parseExpression())
	case isAlpha(c) || c == '_':
		return p.parseSymbolOrKeyword()
	case c == 0:
		p.fail("unexpected end of input")
	}
	p.fail("unexpected character " + strconv.QuoteRune(rune(c)))
	return Nil
}

func (p *parser) parseNumber() Value {
	start := p.pos
	for !p.atEnd() && isDigit(p.cur()) {
		p.pos++
	}
	intPart := p.src[start:p.pos]

	// Floats are recognized by a '.' following digits.
	if p.cur() != '.' {
		n, err := strconv.ParseInt(intPart, 10, 64)
		if err != nil {
			p.fail("integer literal out of range: " + intPart)
		}
		return Int(n)
	}

	p.pos++
	fracStart := p.pos
	for !p.atEnd() && isDigit(p.cur()) {
		p.pos++
	}
	lit := intPart + "." + p.src[fracStart:p.pos]
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		p.fail("invalid float literal: " + lit)
	}
	return Float(f)
}

// parseStringLiteral assumes the opening '"' was consumed. Recognized
// escapes are \" \\ \n \t; unrecognized escapes pass through literally.
func (p *parser) parseStringLiteral() string {
	var out []byte
	for !p.atEnd() && p.cur() != '"' {
		c := p.cur()
		if c != '\\' {
			out = append(out, c)
			p.pos++
			continue
		}
		p.pos++
		if p.atEnd() {
			p.fail("unterminated escape sequence in string")
		}
		switch e := p.cur(); e {
		case '"':
			out = append(out, '"')
		case '\\':
			out = append(out, '\\')
		case 'n':
			out = append(out, '\n')
		case 't':
			out = append(out, '\t')
		default:
			out = append(out, '\\', e)
		}
		p.pos++
	}
	if p.atEnd() {
		p.fail("unterminated string literal")
	}
	p.pos++
	return string(out)
}

func (p *parser) parseList() Value {
	p.pos++ // '['
	var items []Value
	p.skipSpace()
	if p.cur() == ']' {
		p.pos++
		return NewList(nil)
	}
	for {
		items = append(items, p.parseExpression())
		p.skipSpace()
		switch p.cur() {
		case ']':
			p.pos++
			return NewList(items)
		case ',':
			p.pos++
			p.skipSpace()
			if p.cur() == ']' { // trailing comma
				p.pos++
				return NewList(items)
			}
		default:
			p.fail("expected ',' or ']' in list literal")
		}
	}
}

// parseBlock reads a `{...}` sequence. Blocks always produce a sequence
// node, even for a single expression; only the top level unwraps.
func (p *parser) parseBlock() Value {
	p.pos++ // '{'
	var exprs []Value
	for {
		p.skipSpace()
		if p.atEnd() {
			p.fail("unterminated block, missing '}'")
		}
		if p.cur() == '}' {
			p.pos++
			return Do(exprs)
		}
		exprs = append(exprs, p.parseExpression())
		p.skipSpace()
		if p.cur() == ';' {
			p.pos++
			continue
		}
		if p.cur() != '}' {
			p.fail("expected ';' or '}' after expression in block")
		}
	}
}

func (p *parser) parseGroup() Value {
	p.pos++ // '('
	e := p.parseExpression()
	p.skipSpace()
	if p.cur() != ')' {
		p.fail("expected ')' to close group expression")
	}
	p.pos++
	return e
}

func (p *parser) parseSymbolOrKeyword() Value {
	name := p.readSymbol()
	switch name {
	case "True":
		return Bool(true)
	case "False":
		return Bool(false)
	case "None":
		return Nil
	case "if":
		return p.parseIf()
	case "let":
		return p.parseLet()
	case "try":
		return p.parseTry()
	case "raise":
		return Raise(p.parseExpression())
	}
	return Symbol(name)
}

func (p *parser) parseIf() Value {
	cond := p.parseExpression()
	p.expectWord("then")
	then := p.parseExpression()
	p.expectWord("else")
	els := p.parseExpression()
	return If(cond, then, els)
}

// let NAME = VALUE [in BODY]
//
// With `in`, the binding is scoped to BODY. Without it, the bare form binds
// NAME in the enclosing block.
func (p *parser) parseLet() Value {
	p.skipSpace()
	c := p.cur()
	if !isAlpha(c) && c != '_' {
		p.fail("expected name after 'let'")
	}
	name := p.readSymbol()

	p.skipSpace()
	if p.cur() != '=' || p.peek() == '>' {
		p.fail("expected '=' after 'let " + name + "'")
	}
	p.pos++

	value := p.parseExpression()
	p.skipSpace()
	if p.peekWord() == "in" {
		p.pos += len("in")
		return LetIn(name, value, p.parseExpression())
	}
	return Let(name, value)
}

func (p *parser) parseTry() Value {
	body := p.parseExpression()
	p.expectWord("catch")
	handler := p.parseExpression()
	return Try(body, handler)
}

func (p *parser) expectWord(word string) {
	p.skipSpace()
	if p.peekWord() != word {
		p.fail("expected '" + word + "'")
	}
	p.pos += len(word)
}

func (p *parser) readSymbol() string {
	start := p.pos
	for !p.atEnd() && isSymbolChar(p.cur()) {
		p.pos++
	}
	return p.src[start:p.pos]
}

// Symbols are composed of alphanumerics plus - _ ? ! + * / and may not
// start with a digit.
func isSymbolChar(c byte) bool {
	return isAlpha(c) || isDigit(c) ||
		c == '-' || c == '_' || c == '?' || c == '!' || c == '+' || c == '*' || c == '/'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
