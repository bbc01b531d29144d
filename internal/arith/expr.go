package arith
type Expr interface {
	Accept(visitor ExprVisitor) (interface{}, error)
}
type ExprVisitor interface {
	VisitDigitExpr(expr *DigitExpr) (interface{}, error)
	VisitSumExpr(expr *SumExpr) (interface{}, error)
	VisitDiffExpr(expr *DiffExpr) (interface{}, error)
	VisitProdExpr(expr *ProdExpr) (interface{}, error)
	VisitDivExpr(expr *DivExpr) (interface{}, error)
	VisitNegativeExpr(expr *NegativeExpr) (interface{}, error)
}
type DigitExpr struct {
	Value int
}
func NewDigitExpr(Value int) *DigitExpr {
	return &DigitExpr{Value}
}
func (expr *DigitExpr) Accept(visitor ExprVisitor) (interface{}, error) {
	return visitor.VisitDigitExpr(expr)
}
type SumExpr struct {
	Op *Token
	Left Expr
	Right Expr
}
func NewSumExpr(Op *Token, Left Expr, Right Expr) *SumExpr {
	return &SumExpr{Op,Left,Right}
}
func (expr *SumExpr) Accept(visitor ExprVisitor) (interface{}, error) {
	return visitor.VisitSumExpr(expr)
}
type DiffExpr struct {
	Op *Token
	Left Expr
	Right Expr
}
func NewDiffExpr(Op *Token, Left Expr, Right Expr) *DiffExpr {
	return &DiffExpr{Op,Left,Right}
}
func (expr *DiffExpr) Accept(visitor ExprVisitor) (interface{}, error) {
	return visitor.VisitDiffExpr(expr)
}
type ProdExpr struct {
	Op *Token
	Left Expr
	Right Expr
}
func NewProdExpr(Op *Token, Left Expr, Right Expr) *ProdExpr {
	return &ProdExpr{Op,Left,Right}
}
func (expr *ProdExpr) Accept(visitor ExprVisitor) (interface{}, error) {
	return visitor.VisitProdExpr(expr)
}
type DivExpr struct {
	Op *Token
	Left Expr
	Right Expr
}
func NewDivExpr(Op *Token, Left Expr, Right Expr) *DivExpr {
	return &DivExpr{Op,Left,Right}
}
func (expr *DivExpr) Accept(visitor ExprVisitor) (interface{}, error) {
	return visitor.VisitDivExpr(expr)
}
type NegativeExpr struct {
	Op *Token
	Expr Expr
}
func NewNegativeExpr(Op *Token, Expr Expr) *NegativeExpr {
	return &NegativeExpr{Op,Expr}
}
func (expr *NegativeExpr) Accept(visitor ExprVisitor) (interface{}, error) {
	return visitor.VisitNegativeExpr(expr)
}
