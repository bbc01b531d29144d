package arith

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterpretDigitExpr(t *testing.T) {
	assert := assert.New(t)
	for v := 0; v <= 9; v++ {
		val, err := NewInterpreter().Interpret(NewDigitExpr(v))

		assert.NoError(err)
		assert.Equal(v, val)
	}
}

func TestInterpretBinaryExpr(t *testing.T) {
	testCases := []struct {
		expr Expr
		val  int
	}{
		{
			NewSumExpr(
				NewToken(PLUS, "+", nil, 1),
				NewDigitExpr(2),
				NewDigitExpr(3)),
			5,
		},
		{
			NewDiffExpr(
				NewToken(MINUS, "-", nil, 1),
				NewDigitExpr(2),
				NewDigitExpr(3)),
			-1,
		},
		{
			NewProdExpr(
				NewToken(STAR, "*", nil, 1),
				NewDigitExpr(2),
				NewDigitExpr(3)),
			6,
		},
		{
			NewDivExpr(
				NewToken(SLASH, "/", nil, 1),
				NewDigitExpr(6),
				NewDigitExpr(3)),
			2,
		},
		// integer division truncates
		{
			NewDivExpr(
				NewToken(SLASH, "/", nil, 1),
				NewDigitExpr(9),
				NewDigitExpr(2)),
			4,
		},
		// nested operands evaluate before the outer node
		{
			NewDiffExpr(
				NewToken(MINUS, "-", nil, 3),
				NewDiffExpr(
					NewToken(MINUS, "-", nil, 1),
					NewDigitExpr(8),
					NewDigitExpr(3)),
				NewDigitExpr(2)),
			3,
		},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		val, err := NewInterpreter().Interpret(tc.expr)

		assert.NoError(err)
		assert.Equal(tc.val, val)
	}
}

func TestInterpretNegativeExpr(t *testing.T) {
	testCases := []struct {
		expr Expr
		val  int
	}{
		{
			NewNegativeExpr(
				NewToken(MINUS, "-", nil, 0),
				NewDigitExpr(3)),
			-3,
		},
		{
			NewNegativeExpr(
				NewToken(MINUS, "-", nil, 0),
				NewNegativeExpr(
					NewToken(MINUS, "-", nil, 2),
					NewDigitExpr(3))),
			3,
		},
		{
			NewNegativeExpr(
				NewToken(MINUS, "-", nil, 0),
				NewSumExpr(
					NewToken(PLUS, "+", nil, 3),
					NewDigitExpr(3),
					NewDigitExpr(4))),
			-7,
		},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		val, err := NewInterpreter().Interpret(tc.expr)

		assert.NoError(err)
		assert.Equal(tc.val, val)
	}
}

func TestInterpretDivisionByZero(t *testing.T) {
	assert := assert.New(t)

	slash := NewToken(SLASH, "/", nil, 1)
	_, err := NewInterpreter().Interpret(
		NewDivExpr(slash, NewDigitExpr(5), NewDigitExpr(0)),
	)

	assert.Equal(NewRuntimeError(slash, "Division by zero."), err)

	// the zero only matters on the right hand side
	val, err := NewInterpreter().Interpret(
		NewDivExpr(slash, NewDigitExpr(0), NewDigitExpr(5)),
	)
	assert.NoError(err)
	assert.Equal(0, val)
}

func TestInterpretIsDeterministic(t *testing.T) {
	assert := assert.New(t)

	expr, err := Parse("-3 + 4 * 5 - (3 + 2) * ( 7 - 5 )")
	assert.NoError(err)

	first, err := NewInterpreter().Interpret(expr)
	assert.NoError(err)
	second, err := NewInterpreter().Interpret(expr)
	assert.NoError(err)

	assert.Equal(first, second)
	assert.Equal(7, first)
}
