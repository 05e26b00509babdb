// Package boolexpr reduces a Boolean expression over single-letter
// variables to its truth table and a minimized sum-of-products form.
//
// The pipeline is strictly forward: lexical validation, implicit-AND
// insertion, postfix conversion, tree construction, exhaustive
// enumeration, Quine-McCluskey prime-implicant generation, and a greedy
// cover selection.
package boolexpr

// Expr AST

type Expr interface{ isExpr() }

type ExprConst struct{ Bit uint8 }

func (ExprConst) isExpr() {}

type ExprVar struct{ Name byte }

func (ExprVar) isExpr() {}

type ExprNot struct{ X Expr }

func (ExprNot) isExpr() {}

type ExprAnd struct{ A, B Expr }

func (ExprAnd) isExpr() {}

type ExprXor struct{ A, B Expr }

func (ExprXor) isExpr() {}

type ExprOr struct{ A, B Expr }

func (ExprOr) isExpr() {}

// Assignment maps a variable symbol to a bit for one evaluation pass.
type Assignment map[byte]uint8

func eval(e Expr, a Assignment) uint8 {
	switch n := e.(type) {
	case ExprConst:
		return n.Bit
	case ExprVar:
		return a[n.Name]
	case ExprNot:
		return eval(n.X, a) ^ 1
	case ExprAnd:
		return eval(n.A, a) & eval(n.B, a)
	case ExprXor:
		return eval(n.A, a) ^ eval(n.B, a)
	case ExprOr:
		return eval(n.A, a) | eval(n.B, a)
	}
	return 0
}

// Expression is a parsed Boolean expression together with its ordered
// variable set. The variable order (ascending by symbol) fixes the bit
// position of each variable everywhere downstream: the first symbol is
// the most significant bit of a minterm index.
type Expression struct {
	root Expr
	vars []byte
}

// Vars returns the ordered variable set. The slice is owned by the
// Expression; callers must not modify it.
func (e *Expression) Vars() []byte { return e.vars }

// Eval evaluates the expression under the given assignment. Variables
// absent from the assignment read as 0.
func (e *Expression) Eval(a Assignment) uint8 { return eval(e.root, a) }

// Constant reports the expression's value when it uses no variables.
// ok is false for any expression with at least one variable.
func (e *Expression) Constant() (bit uint8, ok bool) {
	if len(e.vars) > 0 {
		return 0, false
	}
	return eval(e.root, nil), true
}
