package arith

import (
	"fmt"
	"strconv"
)

// AstPrinter renders a syntax tree in prefix notation, e.g. "(+ 2 (* 3 5))".
type AstPrinter struct{}

func (printer *AstPrinter) Print(expr Expr) string {
	s, _ := expr.Accept(printer)
	return fmt.Sprintf("%v", s)
}

func (printer *AstPrinter) VisitDigitExpr(expr *DigitExpr) (interface{}, error) {
	return strconv.Itoa(expr.Value), nil
}

func (printer *AstPrinter) VisitSumExpr(expr *SumExpr) (interface{}, error) {
	return printer.parenthesize(expr.Op.Lexeme, expr.Left, expr.Right), nil
}

func (printer *AstPrinter) VisitDiffExpr(expr *DiffExpr) (interface{}, error) {
	return printer.parenthesize(expr.Op.Lexeme, expr.Left, expr.Right), nil
}

func (printer *AstPrinter) VisitProdExpr(expr *ProdExpr) (interface{}, error) {
	return printer.parenthesize(expr.Op.Lexeme, expr.Left, expr.Right), nil
}

func (printer *AstPrinter) VisitDivExpr(expr *DivExpr) (interface{}, error) {
	return printer.parenthesize(expr.Op.Lexeme, expr.Left, expr.Right), nil
}

func (printer *AstPrinter) VisitNegativeExpr(expr *NegativeExpr) (interface{}, error) {
	operand, _ := expr.Expr.Accept(printer)
	return fmt.Sprintf("(%s %s)", expr.Op.Lexeme, operand), nil
}

func (printer *AstPrinter) parenthesize(op string, left Expr, right Expr) string {
	leftStr, _ := left.Accept(printer)
	rightStr, _ := right.Accept(printer)
	return fmt.Sprintf("(%s %s %s)", op, leftStr, rightStr)
}
