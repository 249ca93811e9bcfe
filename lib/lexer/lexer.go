package lexer

import (
	"fmt"
	"unicode"
)

type TokenType string

const (
	KEYWORD  TokenType = "KEYWORD"
	IDENT    TokenType = "IDENT"
	NUMBER   TokenType = "NUMBER"
	OPERATOR TokenType = "OPERATOR"
	PUNCT    TokenType = "PUNCT"
	EOF      TokenType = "EOF"
)

// Location is the 1-based line and column of a token's first character.
type Location struct {
	Line   int
	Column int
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

type Token struct {
	Type     TokenType
	Value    string
	Location Location
}

// UnexpectedCharError is returned when the input contains a character
// outside the language's alphabet. Lexing stops at the first one.
type UnexpectedCharError struct {
	Char     rune
	Location Location
}

func (e *UnexpectedCharError) Error() string {
	return fmt.Sprintf("unexpected character %q at %s", e.Char, e.Location)
}

type Lexer struct {
	input []rune
	pos   int
	line  int
	col   int
}

func New(input string) *Lexer {
	return &Lexer{
		input: []rune(input),
		line:  1,
		col:   1,
	}
}

// Tokenize scans the whole input in one left-to-right pass and returns the
// token slice. The slice always ends with a single EOF token. The first
// unclassifiable character aborts the scan; no tokens are returned with the
// error.
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token
	for l.pos < len(l.input) {
		c := l.input[l.pos]
		switch {
		case c == ' ' || c == '\t' || c == '\n':
			l.consume()
		case isDigit(c):
			tokens = append(tokens, l.lexNumber())
		case isLetter(c):
			tokens = append(tokens, l.lexIdentifier())
		case isOperator(c):
			tokens = append(tokens, l.lexSingle(OPERATOR))
		case isDelimiter(c):
			tokens = append(tokens, l.lexSingle(PUNCT))
		default:
			return nil, &UnexpectedCharError{Char: c, Location: l.location()}
		}
	}
	tokens = append(tokens, Token{Type: EOF, Location: l.location()})
	return tokens, nil
}

func (l *Lexer) location() Location {
	return Location{Line: l.line, Column: l.col}
}

func (l *Lexer) consume() {
	if l.input[l.pos] == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	l.pos++
}

func (l *Lexer) lexNumber() Token {
	loc := l.location()
	start := l.pos
	for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
		l.consume()
	}
	return Token{Type: NUMBER, Value: string(l.input[start:l.pos]), Location: loc}
}

func (l *Lexer) lexIdentifier() Token {
	loc := l.location()
	start := l.pos
	for l.pos < len(l.input) && isAlphanumeric(l.input[l.pos]) {
		l.consume()
	}
	value := string(l.input[start:l.pos])
	if value == "function" || value == "if" {
		return Token{Type: KEYWORD, Value: value, Location: loc}
	}
	return Token{Type: IDENT, Value: value, Location: loc}
}

func (l *Lexer) lexSingle(typ TokenType) Token {
	loc := l.location()
	value := string(l.input[l.pos])
	l.consume()
	return Token{Type: typ, Value: value, Location: loc}
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// Identifier tails follow the lexer's historical rule: any letter or digit,
// not just ASCII.
func isAlphanumeric(c rune) bool {
	return unicode.IsLetter(c) || unicode.IsDigit(c)
}

func isOperator(c rune) bool {
	switch c {
	case '+', '-', '*', '/', '=', '<', '>':
		return true
	}
	return false
}

func isDelimiter(c rune) bool {
	switch c {
	case '(', ')', '{', '}', ',', ';':
		return true
	}
	return false
}
