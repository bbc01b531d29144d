package arith

// Scanner reads the input expression and collects all the tokens that can be
// found. Scanning is fail-fast; the first unrecognized character aborts the
// scan and no partial token sequence is returned.
type Scanner struct {
	start   int
	current int
	source  []rune
	tokens  []*Token
}

// NewScanner creates a new token scanner for the given expression
func NewScanner(source []rune) *Scanner {
	scanner := new(Scanner)
	scanner.start = 0
	scanner.current = 0
	scanner.source = source
	scanner.tokens = make([]*Token, 0)
	return scanner
}

// Scan reads the expression and collects all the tokens that were found from
// it. The returned sequence always ends with an EOF token so the parser can
// look ahead without indexing out of range.
func (scanner *Scanner) Scan() ([]*Token, error) {
	for scanner.hasNext() {
		scanner.start = scanner.current
		switch r := scanner.advance(); r {
		// Whitespaces
		case ' ', '\r', '\t', '\n':
		// Single character tokens
		case '(':
			scanner.addToken(LEFT_PAREN, nil)
		case ')':
			scanner.addToken(RIGHT_PAREN, nil)
		case '+':
			scanner.addToken(PLUS, nil)
		case '-':
			scanner.addToken(MINUS, nil)
		case '*':
			scanner.addToken(STAR, nil)
		case '/':
			scanner.addToken(SLASH, nil)
		default:
			// Only the ASCII digits are part of the input alphabet; other
			// Unicode decimal digits are rejected like any unrecognized
			// character.
			if r >= '0' && r <= '9' {
				// Each digit character is an independent token; multi-digit
				// numbers are not part of the grammar, so "12" scans as two
				// DIGIT tokens.
				scanner.addToken(DIGIT, int(r-'0'))
			} else {
				return nil, NewScanError(scanner.start, r)
			}
		}
	}
	scanner.tokens = append(
		scanner.tokens,
		NewToken(EOF, "", nil, len(scanner.source)),
	)
	return scanner.tokens, nil
}

// addToken appends the lexeme from `start` to `current` as a token of the
// given type carrying the given literal
func (scanner *Scanner) addToken(typ TokenType, literal interface{}) {
	lexeme := string(scanner.source[scanner.start:scanner.current])
	tok := NewToken(typ, lexeme, literal, scanner.start)
	scanner.tokens = append(scanner.tokens, tok)
}

// hasNext returns true if the scanner has not read past the source length
func (scanner *Scanner) hasNext() bool {
	return scanner.current < len(scanner.source)
}

// advance consumes and returns the rune at the current position
func (scanner *Scanner) advance() rune {
	r := scanner.source[scanner.current]
	scanner.current++
	return r
}
