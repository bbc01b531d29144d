package arith

// maxGroupingDepth bounds how deeply parentheses can nest. Parser and
// interpreter recursion both scale with nesting depth, so capping it here
// keeps pathological inputs from exhausting the stack in either stage.
const maxGroupingDepth = 512

// Parser composes the syntax tree for an arithmetic expression from the
// sequence of valid tokens that follow the following grammar rule.
//
// Grammar
//
//	expression --> term ;
//	term       --> factor ( ( "-" | "+" ) factor )* ;
//	factor     --> unary ( ( "/" | "*" ) unary )* ;
//	unary      --> "-" primary
//	             | primary ;
//	primary    --> DIGIT | "(" expression ")" ;
//
// The operand of a unary "-" is a primary, not another unary, so negations
// can not be chained without parentheses; "--3" is rejected while "-(-3)"
// is accepted.
type Parser struct {
	current int
	depth   int
	tokens  []*Token
}

// NewParser creates a new parser for the given token sequence. The sequence
// must end with an EOF token, as produced by Scanner.Scan; the cursor helpers
// rely on the sentinel to stop before running off the slice.
func NewParser(tokens []*Token) *Parser {
	return &Parser{0, 0, tokens}
}

// Parse builds the syntax tree for a single complete expression. Tokens left
// over after the expression has been consumed are treated as an error.
func (parser *Parser) Parse() (Expr, error) {
	expr, err := parser.expression()
	if err != nil {
		return nil, err
	}
	if !parser.isEOF() {
		return nil, NewParseError(parser.peek(), "Expect end of expression.")
	}
	return expr, nil
}

// expression --> term ;
func (parser *Parser) expression() (Expr, error) {
	return parser.term()
}

// Creates a left-associative nested tree of sum/difference nodes. Hands
// control back to the caller once the next token is neither "-" nor "+",
// without consuming it.
//
// term --> factor ( ( "-" | "+" ) factor )* ;
func (parser *Parser) term() (Expr, error) {
	expr, err := parser.factor()
	if err != nil {
		return nil, err
	}
	for parser.match(MINUS, PLUS) {
		op := parser.prev()
		right, err := parser.factor()
		if err != nil {
			return nil, err
		}
		if op.Typ == PLUS {
			expr = NewSumExpr(op, expr, right)
		} else {
			expr = NewDiffExpr(op, expr, right)
		}
	}
	return expr, nil
}

// factor --> unary ( ( "/" | "*" ) unary )* ;
func (parser *Parser) factor() (Expr, error) {
	expr, err := parser.unary()
	if err != nil {
		return nil, err
	}
	for parser.match(SLASH, STAR) {
		op := parser.prev()
		right, err := parser.unary()
		if err != nil {
			return nil, err
		}
		if op.Typ == STAR {
			expr = NewProdExpr(op, expr, right)
		} else {
			expr = NewDivExpr(op, expr, right)
		}
	}
	return expr, nil
}

// unary --> "-" primary | primary ;
func (parser *Parser) unary() (Expr, error) {
	if parser.match(MINUS) {
		op := parser.prev()
		expr, err := parser.primary()
		if err != nil {
			return nil, err
		}
		return NewNegativeExpr(op, expr), nil
	}
	return parser.primary()
}

// primary --> DIGIT | "(" expression ")" ;
func (parser *Parser) primary() (Expr, error) {
	if parser.match(DIGIT) {
		return NewDigitExpr(parser.prev().Literal.(int)), nil
	}
	if parser.match(LEFT_PAREN) {
		parser.depth++
		if parser.depth > maxGroupingDepth {
			return nil, NewParseError(parser.prev(), "Expression is too deeply nested.")
		}
		expr, err := parser.expression()
		if err != nil {
			return nil, err
		}
		if err := parser.consume(
			RIGHT_PAREN,
			"Expect ')' after expression.",
		); err != nil {
			return nil, err
		}
		parser.depth--
		return expr, nil
	}
	return nil, NewParseError(parser.peek(), "Expect expression.")
}

func (parser *Parser) match(types ...TokenType) bool {
	for _, tt := range types {
		if parser.check(tt) {
			parser.advance()
			return true
		}
	}
	return false
}

func (parser *Parser) consume(typ TokenType, message string) error {
	if parser.check(typ) {
		parser.advance()
		return nil
	}
	return NewParseError(parser.peek(), message)
}

func (parser *Parser) check(tt TokenType) bool {
	if parser.isEOF() {
		return false
	}
	return parser.peek().Typ == tt
}

func (parser *Parser) advance() *Token {
	if !parser.isEOF() {
		parser.current++
	}
	return parser.prev()
}

func (parser *Parser) isEOF() bool {
	return parser.peek().Typ == EOF
}

func (parser *Parser) peek() *Token {
	return parser.tokens[parser.current]
}

func (parser *Parser) prev() *Token {
	return parser.tokens[parser.current-1]
}
