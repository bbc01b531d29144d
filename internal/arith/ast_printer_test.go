package arith

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAstPrinter(t *testing.T) {
	testCases := []struct {
		src     string
		printed string
	}{
		{"5", "5"},
		{"-3", "(- 3)"},
		{"2+3*5", "(+ 2 (* 3 5))"},
		{"8-3-2", "(- (- 8 3) 2)"},
		{"(2+3)*5", "(* (+ 2 3) 5)"},
		{"-(3+4)", "(- (+ 3 4))"},
		{"-3 + 4 * 5", "(+ (- 3) (* 4 5))"},
	}

	assert := assert.New(t)
	printer := AstPrinter{}
	for _, tc := range testCases {
		expr, err := Parse(tc.src)

		assert.NoError(err)
		assert.Equal(tc.printed, printer.Print(expr))
	}
}
