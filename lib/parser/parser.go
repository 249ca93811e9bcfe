package parser

import (
	"github.com/gearlang/gear/lib/lexer"
)

// Parser walks a finalized token slice with a single forward cursor. One
// Parser parses one program; build a fresh one to parse again.
type Parser struct {
	Tokens []lexer.Token
	Pos    int
}

func New(tokens []lexer.Token) *Parser {
	return &Parser{Tokens: tokens}
}

// NewFromSource lexes src and builds a parser over the result.
func NewFromSource(src string) (*Parser, error) {
	tokens, err := lexer.New(src).Tokenize()
	if err != nil {
		return nil, err
	}
	return New(tokens), nil
}

// Parse consumes the token stream and returns the program's statements in
// source order. The first malformed token aborts the parse; no partial AST is
// returned with the error.
func (p *Parser) Parse() ([]Stmt, error) {
	var stmts []Stmt
	for p.peek().Type != lexer.EOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

// peek clamps to the trailing EOF token so rules never index past the slice.
func (p *Parser) peek() lexer.Token {
	if p.Pos >= len(p.Tokens) {
		return p.Tokens[len(p.Tokens)-1]
	}
	return p.Tokens[p.Pos]
}

func (p *Parser) advance() lexer.Token {
	tok := p.peek()
	if p.Pos < len(p.Tokens) {
		p.Pos++
	}
	return tok
}

// expect consumes the current token if it has the wanted type and text,
// and fails otherwise. An empty value matches any text.
func (p *Parser) expect(typ lexer.TokenType, value string) (lexer.Token, error) {
	tok := p.peek()
	if tok.Type != typ || (value != "" && tok.Value != value) {
		expected := string(typ)
		if value != "" {
			expected = "'" + value + "'"
		}
		return lexer.Token{}, &UnexpectedTokenError{Token: tok, Expected: expected}
	}
	return p.advance(), nil
}
