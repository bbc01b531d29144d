package arith

import "fmt"

// ScanError is returned when the scanner meets a character that is not part
// of the recognized input alphabet. It carries the offending character and
// its position in the input.
type ScanError struct {
	Pos  int
	Char rune
}

// NewScanError creates a new scanner error
func NewScanError(pos int, char rune) error {
	return &ScanError{pos, char}
}

func (err *ScanError) Error() string {
	return fmt.Sprintf(
		"[pos %d] Error: Unexpected character '%c'.",
		err.Pos,
		err.Char,
	)
}

// ParseError wraps the error message returned by the parser with additional
// information on where the error occurred.
type ParseError struct {
	token   *Token
	message string
}

// NewParseError creates a new parser error
func NewParseError(token *Token, message string) error {
	return &ParseError{token, message}
}

func (err *ParseError) Error() string {
	if err.token.Typ == EOF {
		return fmt.Sprintf(
			"[pos %d] Error at end: %s",
			err.token.Pos,
			err.message,
		)
	}
	return fmt.Sprintf(
		"[pos %d] Error at '%s': %s",
		err.token.Pos,
		err.token.Lexeme,
		err.message,
	)
}

// RuntimeError wraps the error message returned by the interpreter with
// additional information on where the error occurred.
type RuntimeError struct {
	token   *Token
	message string
}

// NewRuntimeError creates a new interpreter error
func NewRuntimeError(token *Token, message string) error {
	return &RuntimeError{token, message}
}

func (err *RuntimeError) Error() string {
	return fmt.Sprintf(
		"[pos %d] Error at '%s': %s",
		err.token.Pos,
		err.token.Lexeme,
		err.message,
	)
}
