package boolexpr

import "fmt"

// Parse validates src, converts it to postfix, and builds the expression
// tree. The expression must be a single whitespace-free token over the
// alphabet {A-Z 0 1 ( ) + ' ^}; juxtaposition means AND.
func Parse(src string) (*Expression, error) {
	vars, err := scanVars(src)
	if err != nil {
		return nil, err
	}
	postfix, err := toPostfix(insertAnd(src))
	if err != nil {
		return nil, err
	}
	root, err := buildTree(postfix)
	if err != nil {
		return nil, err
	}
	return &Expression{root: root, vars: vars}, nil
}

// buildTree consumes postfix tokens left to right over an operand stack.
// Exactly one node must remain at the end; it becomes the root.
func buildTree(postfix string) (Expr, error) {
	var stk []Expr
	pop2 := func(underflow error) (Expr, Expr, error) {
		if len(stk) < 2 {
			return nil, nil, underflow
		}
		b := stk[len(stk)-1]
		a := stk[len(stk)-2]
		stk = stk[:len(stk)-2]
		return a, b, nil
	}
	for i := 0; i < len(postfix); i++ {
		c := postfix[i]
		switch {
		case isVariable(c):
			stk = append(stk, ExprVar{Name: c})
		case isBit(c):
			stk = append(stk, ExprConst{Bit: c - '0'})
		case c == tokNot:
			if len(stk) < 1 {
				return nil, ErrInvalidNotOperand
			}
			stk[len(stk)-1] = ExprNot{X: stk[len(stk)-1]}
		case c == tokAnd:
			a, b, err := pop2(ErrInvalidAndOperands)
			if err != nil {
				return nil, err
			}
			stk = append(stk, ExprAnd{A: a, B: b})
		case c == tokXor:
			a, b, err := pop2(ErrInvalidXorOperands)
			if err != nil {
				return nil, err
			}
			stk = append(stk, ExprXor{A: a, B: b})
		case c == tokOr:
			a, b, err := pop2(ErrInvalidOrOperands)
			if err != nil {
				return nil, err
			}
			stk = append(stk, ExprOr{A: a, B: b})
		default:
			return nil, fmt.Errorf("%w %q", ErrInvalidToken, string(c))
		}
	}
	if len(stk) != 1 {
		return nil, ErrInvalidExpression
	}
	return stk[0], nil
}
