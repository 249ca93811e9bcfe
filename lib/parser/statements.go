package parser

import (
	"github.com/gearlang/gear/lib/lexer"
)

func (p *Parser) parseStatement() (Stmt, error) {
	token := p.peek()
	switch {
	case token.Type == lexer.KEYWORD && token.Value == "function":
		return p.parseFunctionDeclaration()
	case token.Type == lexer.KEYWORD && token.Value == "if":
		return p.parseIfStatement()
	case token.Type == lexer.IDENT:
		return p.parseAssignment()
	default:
		return nil, &UnexpectedTokenError{Token: token, Expected: "statement"}
	}
}

func (p *Parser) parseFunctionDeclaration() (Stmt, error) {
	p.advance() // "function"
	// The name is whatever comes next; the grammar does not insist on an
	// identifier here.
	name := p.advance().Value
	if _, err := p.expect(lexer.PUNCT, "("); err != nil {
		return nil, err
	}
	params, err := p.parseParameterList()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.PUNCT, ")"); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.PUNCT, "{"); err != nil {
		return nil, err
	}
	body, err := p.parseStatementList()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.PUNCT, "}"); err != nil {
		return nil, err
	}
	return &SFunc{Name: name, Params: params, Body: body}, nil
}

func (p *Parser) parseParameterList() ([]string, error) {
	var params []string
	for {
		token := p.peek()
		switch {
		case token.Type == lexer.PUNCT && token.Value == ")":
			return params, nil
		case token.Type == lexer.IDENT:
			params = append(params, p.advance().Value)
		case token.Type == lexer.PUNCT && token.Value == ",":
			p.advance()
		default:
			return nil, &UnexpectedTokenError{Token: token, Expected: "parameter name, ',' or ')'"}
		}
	}
}

func (p *Parser) parseIfStatement() (Stmt, error) {
	p.advance() // "if"
	if _, err := p.expect(lexer.PUNCT, "("); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.PUNCT, ")"); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.PUNCT, "{"); err != nil {
		return nil, err
	}
	body, err := p.parseStatementList()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.PUNCT, "}"); err != nil {
		return nil, err
	}
	return &SIf{Cond: cond, Body: body}, nil
}

func (p *Parser) parseAssignment() (Stmt, error) {
	name := p.advance().Value
	if _, err := p.expect(lexer.OPERATOR, "="); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.PUNCT, ";"); err != nil {
		return nil, err
	}
	return &SAssign{Name: name, Value: value}, nil
}

// parseStatementList parses statements up to, but not including, a closing
// '}'. A premature EOF surfaces as an error from the statement dispatch.
func (p *Parser) parseStatementList() ([]Stmt, error) {
	var stmts []Stmt
	for {
		token := p.peek()
		if token.Type == lexer.PUNCT && token.Value == "}" {
			return stmts, nil
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
}
