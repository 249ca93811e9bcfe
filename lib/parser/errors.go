package parser

import (
	"fmt"

	"github.com/gearlang/gear/lib/lexer"
)

// UnexpectedTokenError is returned when the current token fits no grammar
// rule. The parse stops at the first one; there is no recovery.
type UnexpectedTokenError struct {
	Token    lexer.Token
	Expected string
}

func (e *UnexpectedTokenError) Error() string {
	if e.Token.Type == lexer.EOF {
		return fmt.Sprintf("unexpected end of input at %s, expected %s", e.Token.Location, e.Expected)
	}
	return fmt.Sprintf("unexpected token %q at %s, expected %s", e.Token.Value, e.Token.Location, e.Expected)
}
