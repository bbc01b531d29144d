/*
Package arith evaluates arithmetic expressions over single-digit operands.

An expression goes through a three-stage pipeline: a scanner turns the input
characters into a token sequence, a recursive-descent parser builds a syntax
tree from the tokens, and a tree-walk interpreter reduces the tree to an
integer. Any stage failing aborts the pipeline.

Grammar

	expression --> term ;
	term       --> factor ( ( "-" | "+" ) factor )* ;
	factor     --> unary ( ( "/" | "*" ) unary )* ;
	unary      --> "-" primary
	             | primary ;
	primary    --> DIGIT | "(" expression ")" ;

The binary levels are left-associative. Operands are single decimal digits;
multi-digit numbers are not part of the grammar.
*/
package arith
