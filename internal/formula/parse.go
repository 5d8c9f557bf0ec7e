// Package formula implements the worksheet cell language: decimal literals,
// cell references, contiguous ranges like I2:I4, the four arithmetic
// operators and parentheses. Anything else is rejected at parse time.
package formula

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Marker prefixes a raw cell value to put it in formula mode.
const Marker = "="

// Resolver supplies the numeric value of a referenced cell.
type Resolver func(cellID string) decimal.Decimal

// Expr is a parsed formula, evaluated against a Resolver.
type Expr interface {
	Eval(resolve Resolver) (decimal.Decimal, error)
}

type tokenKind int

const (
	tokNumber tokenKind = iota
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokColon
	tokLParen
	tokRParen
	tokEOF
)

type token struct {
	kind tokenKind
	text string
}

func lex(src string) ([]token, error) {
	var tokens []token
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == ' ' || c == '\t':
			i++
		case c >= '0' && c <= '9' || c == '.':
			start := i
			for i < len(src) && (src[i] >= '0' && src[i] <= '9' || src[i] == '.') {
				i++
			}
			tokens = append(tokens, token{tokNumber, src[start:i]})
		case isLetter(c):
			start := i
			for i < len(src) && (isLetter(src[i]) || src[i] >= '0' && src[i] <= '9' || src[i] == '_') {
				i++
			}
			tokens = append(tokens, token{tokIdent, src[start:i]})
		case c == '+':
			tokens = append(tokens, token{tokPlus, "+"})
			i++
		case c == '-':
			tokens = append(tokens, token{tokMinus, "-"})
			i++
		case c == '*':
			tokens = append(tokens, token{tokStar, "*"})
			i++
		case c == '/':
			tokens = append(tokens, token{tokSlash, "/"})
			i++
		case c == ':':
			tokens = append(tokens, token{tokColon, ":"})
			i++
		case c == '(':
			tokens = append(tokens, token{tokLParen, "("})
			i++
		case c == ')':
			tokens = append(tokens, token{tokRParen, ")"})
			i++
		default:
			return nil, fmt.Errorf("unexpected character %q", c)
		}
	}
	return append(tokens, token{tokEOF, ""}), nil
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

type parser struct {
	tokens []token
	pos    int
}

// Parse parses a formula body (after the Marker has been stripped).
func Parse(src string) (Expr, error) {
	tokens, err := lex(strings.TrimSpace(src))
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens}
	expr, err := p.expr()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokEOF {
		return nil, fmt.Errorf("unexpected token %q", p.peek().text)
	}
	return expr, nil
}

func (p *parser) peek() token {
	return p.tokens[p.pos]
}

func (p *parser) next() token {
	t := p.tokens[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

// expr := term { (+|-) term }
func (p *parser) expr() (Expr, error) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek().kind {
		case tokPlus:
			p.next()
			right, err := p.term()
			if err != nil {
				return nil, err
			}
			left = binary{'+', left, right}
		case tokMinus:
			p.next()
			right, err := p.term()
			if err != nil {
				return nil, err
			}
			left = binary{'-', left, right}
		default:
			return left, nil
		}
	}
}

// term := unary { (*|/) unary }
func (p *parser) term() (Expr, error) {
	left, err := p.unary()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek().kind {
		case tokStar:
			p.next()
			right, err := p.unary()
			if err != nil {
				return nil, err
			}
			left = binary{'*', left, right}
		case tokSlash:
			p.next()
			right, err := p.unary()
			if err != nil {
				return nil, err
			}
			left = binary{'/', left, right}
		default:
			return left, nil
		}
	}
}

// unary := [-] primary
func (p *parser) unary() (Expr, error) {
	if p.peek().kind == tokMinus {
		p.next()
		inner, err := p.unary()
		if err != nil {
			return nil, err
		}
		return negate{inner}, nil
	}
	return p.primary()
}

// primary := number | ident [: ident] | ( expr )
func (p *parser) primary() (Expr, error) {
	switch t := p.next(); t.kind {
	case tokNumber:
		v, err := decimal.NewFromString(t.text)
		if err != nil {
			return nil, fmt.Errorf("bad number %q: %w", t.text, err)
		}
		return literal{v}, nil
	case tokIdent:
		if p.peek().kind == tokColon {
			p.next()
			end := p.next()
			if end.kind != tokIdent {
				return nil, fmt.Errorf("expected cell after %q:", t.text)
			}
			return cellRange{t.text, end.text}, nil
		}
		return ref{t.text}, nil
	case tokLParen:
		inner, err := p.expr()
		if err != nil {
			return nil, err
		}
		if p.next().kind != tokRParen {
			return nil, fmt.Errorf("missing closing parenthesis")
		}
		return inner, nil
	default:
		return nil, fmt.Errorf("unexpected token %q", t.text)
	}
}
