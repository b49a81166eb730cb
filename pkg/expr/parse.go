package expr

import (
	"fmt"
	"strconv"

	"github.com/mesh-intelligence/cowbox/pkg/cow"
	"github.com/mesh-intelligence/cowbox/pkg/types"
)

// Parser reads expressions written in the form Render produces:
//
//	expr := INT | NAME | "(" OP expr ")" | "(" expr OP expr ")"
//
// INT may start with '-'. "(-5)" is a negation while "(-5+3)" adds 3 to
// the constant -5. Whitespace between tokens is ignored.
type Parser struct {
	// Bindings resolves NAME tokens. A parsed name shares the bound node.
	Bindings map[string]*Expr
	// Options are applied to every node the parser allocates.
	Options []cow.Option
}

// Parse parses src without bindings.
func Parse(src string) (*Expr, error) {
	return (&Parser{}).Parse(src)
}

// Parse parses src into a new expression. Errors are *types.ParseError.
func (p *Parser) Parse(src string) (*Expr, error) {
	s := &scanner{src: src}
	e, err := p.parseExpr(s)
	if err != nil {
		return nil, err
	}
	s.skipSpace()
	if !s.eof() {
		e.Release()
		return nil, s.errorf("unexpected %q after expression", s.peek())
	}
	return e, nil
}

func (p *Parser) parseExpr(s *scanner) (*Expr, error) {
	s.skipSpace()
	switch c := s.peek(); {
	case s.eof():
		return nil, s.errorf("unexpected end of input")
	case c == '(':
		return p.parseGroup(s)
	case isDigit(c) || (c == '-' && isDigit(s.peekAt(1))):
		n, err := s.integer()
		if err != nil {
			return nil, err
		}
		return Const(n, p.Options...), nil
	case isNameStart(c):
		return p.parseName(s)
	default:
		return nil, s.errorf("unexpected %q", c)
	}
}

func (p *Parser) parseName(s *scanner) (*Expr, error) {
	col := s.col()
	name := s.name()
	bound, ok := p.Bindings[name]
	if !ok {
		return nil, &types.ParseError{Col: col, Msg: fmt.Sprintf("unknown name %q", name)}
	}
	return bound.Copy(), nil
}

// parseGroup parses a parenthesized unary or binary node.
func (p *Parser) parseGroup(s *scanner) (*Expr, error) {
	s.next() // '('
	s.skipSpace()

	var left *Expr
	switch c := s.peek(); {
	case c == '-' && isDigit(s.peekAt(1)):
		// Either "(-5)" or "(-5 op ...)"; the token after the digits decides.
		col := s.col()
		s.next()
		digits := s.digits()
		s.skipSpace()
		if s.peek() == ')' {
			s.next()
			n, err := atoi(digits, col)
			if err != nil {
				return nil, err
			}
			return p.unary(types.OpNeg, Const(n, p.Options...)), nil
		}
		n, err := atoi("-"+digits, col)
		if err != nil {
			return nil, err
		}
		left = Const(n, p.Options...)

	case isOperator(c):
		col := s.col()
		op := types.Operator(string(s.next()))
		if !op.ValidFor(types.KindUnary) {
			return nil, &types.ParseError{Col: col, Msg: fmt.Sprintf("operator %q cannot be unary", string(op))}
		}
		operand, err := p.parseExpr(s)
		if err != nil {
			return nil, err
		}
		if err := s.expect(')'); err != nil {
			operand.Release()
			return nil, err
		}
		return p.unary(op, operand), nil

	default:
		var err error
		left, err = p.parseExpr(s)
		if err != nil {
			return nil, err
		}
	}

	s.skipSpace()
	if !isOperator(s.peek()) {
		left.Release()
		if s.eof() {
			return nil, s.errorf("expected operator, got end of input")
		}
		return nil, s.errorf("expected operator, got %q", s.peek())
	}
	op := types.Operator(string(s.next()))
	right, err := p.parseExpr(s)
	if err != nil {
		left.Release()
		return nil, err
	}
	if err := s.expect(')'); err != nil {
		left.Release()
		right.Release()
		return nil, err
	}
	e := Binary(op, left, right, p.Options...)
	left.Release()
	right.Release()
	return e, nil
}

// unary wraps operand and hands its handle over to the new node.
func (p *Parser) unary(op types.Operator, operand *Expr) *Expr {
	e := Unary(op, operand, p.Options...)
	operand.Release()
	return e
}

// scanner walks an ASCII expression string by byte.
type scanner struct {
	src string
	pos int
}

func (s *scanner) eof() bool { return s.pos >= len(s.src) }

// col returns the 1-based column of the next byte.
func (s *scanner) col() int { return s.pos + 1 }

func (s *scanner) peek() byte { return s.peekAt(0) }

func (s *scanner) peekAt(off int) byte {
	if s.pos+off >= len(s.src) {
		return 0
	}
	return s.src[s.pos+off]
}

func (s *scanner) next() byte {
	c := s.peek()
	s.pos++
	return c
}

func (s *scanner) skipSpace() {
	for !s.eof() {
		switch s.peek() {
		case ' ', '\t', '\n', '\r':
			s.pos++
		default:
			return
		}
	}
}

func (s *scanner) expect(c byte) error {
	s.skipSpace()
	if s.eof() {
		return s.errorf("expected %q, got end of input", c)
	}
	if s.peek() != c {
		return s.errorf("expected %q, got %q", c, s.peek())
	}
	s.pos++
	return nil
}

func (s *scanner) digits() string {
	start := s.pos
	for isDigit(s.peek()) {
		s.pos++
	}
	return s.src[start:s.pos]
}

func (s *scanner) integer() (int, error) {
	col := s.col()
	start := s.pos
	if s.peek() == '-' {
		s.pos++
	}
	s.digits()
	return atoi(s.src[start:s.pos], col)
}

func (s *scanner) name() string {
	start := s.pos
	for isNameStart(s.peek()) || isDigit(s.peek()) {
		s.pos++
	}
	return s.src[start:s.pos]
}

func (s *scanner) errorf(format string, args ...any) error {
	return &types.ParseError{Col: s.col(), Msg: fmt.Sprintf(format, args...)}
}

func atoi(text string, col int) (int, error) {
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, &types.ParseError{Col: col, Msg: fmt.Sprintf("integer %s out of range", text)}
	}
	return n, nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isNameStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isOperator(c byte) bool {
	switch types.Operator(string(c)) {
	case types.OpAdd, types.OpSub, types.OpMul, types.OpDiv:
		return true
	}
	return false
}

// ValidName reports whether s can be used as a binding name.
func ValidName(s string) bool {
	if s == "" || !isNameStart(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isNameStart(s[i]) && !isDigit(s[i]) {
			return false
		}
	}
	return true
}
