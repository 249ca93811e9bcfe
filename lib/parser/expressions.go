package parser

import (
	"fmt"
	"strconv"

	"github.com/gearlang/gear/lib/lexer"
)

// parseExpression parses a term and, if an operator follows, recurses for the
// whole right-hand side. There is a single precedence level and every
// operator is right-associative: a + b + c is a + (b + c).
func (p *Parser) parseExpression() (Expr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	if p.peek().Type == lexer.OPERATOR {
		op := p.advance().Value
		right, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return &EBinary{Left: left, Op: op, Right: right}, nil
	}
	return left, nil
}

func (p *Parser) parseTerm() (Expr, error) {
	token := p.peek()
	switch {
	case token.Type == lexer.NUMBER:
		p.advance()
		value, err := strconv.ParseInt(token.Value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number literal %q at %s: %w", token.Value, token.Location, err)
		}
		return &ENumber{Value: value}, nil
	case token.Type == lexer.IDENT:
		p.advance()
		return &EVar{Name: token.Value}, nil
	case token.Type == lexer.PUNCT && token.Value == "(":
		p.advance()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.PUNCT, ")"); err != nil {
			return nil, err
		}
		return expr, nil
	default:
		return nil, &UnexpectedTokenError{Token: token, Expected: "expression"}
	}
}
