package arith

import "fmt"

// Token groups a character from the input with additional information that
// was obtained during the scanning phase.
type Token struct {
	Typ     TokenType
	Lexeme  string
	Literal interface{}
	Pos     int
}

// NewToken creates a new token
func NewToken(typ TokenType, lexeme string, literal interface{}, pos int) *Token {
	t := new(Token)
	t.Typ = typ
	t.Lexeme = lexeme
	t.Literal = literal
	t.Pos = pos
	return t
}

func (t *Token) String() string {
	return fmt.Sprintf("%s %s %v", t.Typ.String(), t.Lexeme, t.Literal)
}

const (
	// Single-character tokens
	LEFT_PAREN TokenType = iota
	RIGHT_PAREN
	PLUS
	MINUS
	STAR
	SLASH

	// Literals
	DIGIT

	EOF
)

// TokenType identifies the kind of lexeme a token was scanned from.
type TokenType uint

func (tt TokenType) String() string {
	switch tt {
	case LEFT_PAREN:
		return "("
	case RIGHT_PAREN:
		return ")"
	case PLUS:
		return "+"
	case MINUS:
		return "-"
	case STAR:
		return "*"
	case SLASH:
		return "/"
	case DIGIT:
		return "DIGIT"
	case EOF:
		return "EOF"
	}
	return ""
}
