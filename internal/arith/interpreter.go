package arith

// Interpreter exposes methods for evaluating a given syntax tree. This
// struct implements ExprVisitor
type Interpreter struct{}

// NewInterpreter creates a new syntax tree evaluator
func NewInterpreter() *Interpreter {
	return new(Interpreter)
}

// Interpret reduces the given syntax tree to a single integer. Sums and
// products wrap around on overflow; division truncates toward zero.
func (in *Interpreter) Interpret(expr Expr) (int, error) {
	return in.eval(expr)
}

func (in *Interpreter) VisitDigitExpr(expr *DigitExpr) (interface{}, error) {
	return expr.Value, nil
}

func (in *Interpreter) VisitSumExpr(expr *SumExpr) (interface{}, error) {
	left, right, err := in.evalOperands(expr.Left, expr.Right)
	if err != nil {
		return nil, err
	}
	return left + right, nil
}

func (in *Interpreter) VisitDiffExpr(expr *DiffExpr) (interface{}, error) {
	left, right, err := in.evalOperands(expr.Left, expr.Right)
	if err != nil {
		return nil, err
	}
	return left - right, nil
}

func (in *Interpreter) VisitProdExpr(expr *ProdExpr) (interface{}, error) {
	left, right, err := in.evalOperands(expr.Left, expr.Right)
	if err != nil {
		return nil, err
	}
	return left * right, nil
}

func (in *Interpreter) VisitDivExpr(expr *DivExpr) (interface{}, error) {
	left, right, err := in.evalOperands(expr.Left, expr.Right)
	if err != nil {
		return nil, err
	}
	if right == 0 {
		return nil, NewRuntimeError(expr.Op, "Division by zero.")
	}
	return left / right, nil
}

func (in *Interpreter) VisitNegativeExpr(expr *NegativeExpr) (interface{}, error) {
	val, err := in.eval(expr.Expr)
	if err != nil {
		return nil, err
	}
	return -val, nil
}

func (in *Interpreter) evalOperands(left Expr, right Expr) (int, int, error) {
	leftVal, err := in.eval(left)
	if err != nil {
		return 0, 0, err
	}
	rightVal, err := in.eval(right)
	if err != nil {
		return 0, 0, err
	}
	return leftVal, rightVal, nil
}

func (in *Interpreter) eval(expr Expr) (int, error) {
	val, err := expr.Accept(in)
	if err != nil {
		return 0, err
	}
	return val.(int), nil
}
