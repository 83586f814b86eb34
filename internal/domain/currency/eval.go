package currency

import (
	"strconv"
	"strings"
)

// Evaluate computes a calculator expression over decimal literals and
// + - * / with standard precedence. Characters outside that alphabet
// are stripped first; whatever remains must parse completely or the
// whole expression is rejected. Nothing here ever reaches a generic
// code evaluator.
func Evaluate(expr string) (float64, error) {
	sanitized := sanitize(expr)
	if sanitized == "" {
		return 0, ErrEmptyExpression
	}

	tokens, err := tokenize(sanitized)
	if err != nil {
		return 0, err
	}

	p := &parser{tokens: tokens}
	result, err := p.expression()
	if err != nil {
		return 0, err
	}
	if !p.done() {
		return 0, ErrInvalidExpression
	}
	return result, nil
}

func sanitize(expr string) string {
	var b strings.Builder
	for _, r := range expr {
		if r >= '0' && r <= '9' || r == '.' || r == '+' || r == '-' || r == '*' || r == '/' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

type tokenKind int

const (
	tokenNumber tokenKind = iota
	tokenPlus
	tokenMinus
	tokenStar
	tokenSlash
)

type token struct {
	kind  tokenKind
	value float64
}

func tokenize(expr string) ([]token, error) {
	var tokens []token
	for i := 0; i < len(expr); {
		c := expr[i]
		switch c {
		case '+':
			tokens = append(tokens, token{kind: tokenPlus})
			i++
		case '-':
			tokens = append(tokens, token{kind: tokenMinus})
			i++
		case '*':
			tokens = append(tokens, token{kind: tokenStar})
			i++
		case '/':
			tokens = append(tokens, token{kind: tokenSlash})
			i++
		default:
			start := i
			for i < len(expr) && (expr[i] >= '0' && expr[i] <= '9' || expr[i] == '.') {
				i++
			}
			if i == start {
				return nil, ErrInvalidExpression
			}
			value, err := strconv.ParseFloat(expr[start:i], 64)
			if err != nil {
				// e.g. "1.2.3" or a lone "."
				return nil, ErrInvalidExpression
			}
			tokens = append(tokens, token{kind: tokenNumber, value: value})
		}
	}
	return tokens, nil
}

// parser is a recursive-descent evaluator:
//
//	expression = term { ("+"|"-") term }
//	term       = unary { ("*"|"/") unary }
//	unary      = [ "+" | "-" ] number
type parser struct {
	tokens []token
	pos    int
}

func (p *parser) done() bool {
	return p.pos >= len(p.tokens)
}

func (p *parser) peek() (token, bool) {
	if p.done() {
		return token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *parser) expression() (float64, error) {
	left, err := p.term()
	if err != nil {
		return 0, err
	}
	for {
		op, ok := p.peek()
		if !ok || (op.kind != tokenPlus && op.kind != tokenMinus) {
			return left, nil
		}
		p.pos++
		right, err := p.term()
		if err != nil {
			return 0, err
		}
		if op.kind == tokenPlus {
			left += right
		} else {
			left -= right
		}
	}
}

func (p *parser) term() (float64, error) {
	left, err := p.unary()
	if err != nil {
		return 0, err
	}
	for {
		op, ok := p.peek()
		if !ok || (op.kind != tokenStar && op.kind != tokenSlash) {
			return left, nil
		}
		p.pos++
		right, err := p.unary()
		if err != nil {
			return 0, err
		}
		if op.kind == tokenStar {
			left *= right
		} else {
			if right == 0 {
				return 0, ErrDivisionByZero
			}
			left /= right
		}
	}
}

func (p *parser) unary() (float64, error) {
	negative := false
	if op, ok := p.peek(); ok && (op.kind == tokenPlus || op.kind == tokenMinus) {
		negative = op.kind == tokenMinus
		p.pos++
	}

	number, ok := p.peek()
	if !ok || number.kind != tokenNumber {
		return 0, ErrInvalidExpression
	}
	p.pos++

	if negative {
		return -number.value, nil
	}
	return number.value, nil
}
