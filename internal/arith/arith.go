package arith

// Parse scans then parses the given expression, returning its syntax tree.
func Parse(src string) (Expr, error) {
	tokens, err := NewScanner([]rune(src)).Scan()
	if err != nil {
		return nil, err
	}
	return NewParser(tokens).Parse()
}

// Evaluate runs the given expression through the whole pipeline and returns
// the integer it reduces to. The first stage that fails short-circuits the
// remaining ones.
func Evaluate(src string) (int, error) {
	expr, err := Parse(src)
	if err != nil {
		return 0, err
	}
	return NewInterpreter().Interpret(expr)
}
