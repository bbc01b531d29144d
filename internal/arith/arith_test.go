package arith

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	testCases := []struct {
		src string
		val int
	}{
		// precedence
		{"2+3*5", 17},
		// left-associativity
		{"8-3-2", 3},
		// grouping overrides precedence
		{"(2+3)*5", 25},
		// unary negation binds tighter than binary operators
		{"-3+4", 1},
		{"-(3+4)", -7},
		// integer division truncates
		{"9/2", 4},
		{"-3 + 4 * 5 / 2 - (3 + 2)", 2},
		{"-3 + 4 * 5 - (3 + 2) * ( 7 - 5 )", 7},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		val, err := Evaluate(tc.src)

		assert.NoError(err)
		assert.Equal(tc.val, val)
	}
}

// Whitespace only separates tokens; it changes neither the shape of the tree
// nor the result.
func TestEvaluateIgnoresWhitespace(t *testing.T) {
	assert := assert.New(t)
	printer := AstPrinter{}

	bare, err := Parse("1+2")
	assert.NoError(err)
	spaced, err := Parse("1 + 2")
	assert.NoError(err)
	assert.Equal(printer.Print(bare), printer.Print(spaced))

	bareVal, err := Evaluate("1+2")
	assert.NoError(err)
	spacedVal, err := Evaluate("1 + 2")
	assert.NoError(err)
	assert.Equal(bareVal, spacedVal)
}

// Each stage fails on its own kind of error and short-circuits the stages
// after it.
func TestEvaluateWithErrors(t *testing.T) {
	testCases := []struct {
		src string
		err error
	}{
		{"2+a", &ScanError{}},
		{"٣+٣", &ScanError{}},
		{"(2+3", &ParseError{}},
		{"5/0", &RuntimeError{}},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		val, err := Evaluate(tc.src)

		assert.Zero(val)
		assert.IsType(tc.err, err)
	}
}

func TestEvaluateErrorMessages(t *testing.T) {
	testCases := []struct {
		src string
		msg string
	}{
		{"2+a", "[pos 2] Error: Unexpected character 'a'."},
		{"(2+3", "[pos 4] Error at end: Expect ')' after expression."},
		{"2 2", "[pos 2] Error at '2': Expect end of expression."},
		{"5/0", "[pos 1] Error at '/': Division by zero."},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		_, err := Evaluate(tc.src)

		assert.EqualError(err, tc.msg)
	}
}
