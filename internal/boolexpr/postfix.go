package boolexpr

// Stack-admission priority, highest binds tightest: NOT > AND > XOR > OR.
// '(' admits everything on top of it, ')' forces a full pop.
func priority(c byte) int {
	switch c {
	case '(':
		return 1
	case tokOr:
		return 2
	case tokXor:
		return 3
	case tokAnd:
		return 4
	case tokNot:
		return 5
	case ')':
		return 6
	}
	return 0
}

// toPostfix converts an explicit-AND infix expression to postfix with a
// single operator stack. NOT comes out as a postfix unary marker; runs of
// NOT are collapsed modulo 2 afterwards.
func toPostfix(expr string) (string, error) {
	out := make([]byte, 0, len(expr))
	var stk []byte
	for i := 0; i < len(expr); i++ {
		c := expr[i]
		switch {
		case isVariable(c) || isBit(c):
			out = append(out, c)
		case c == ')':
			for len(stk) > 0 && stk[len(stk)-1] != '(' {
				out = append(out, stk[len(stk)-1])
				stk = stk[:len(stk)-1]
			}
			if len(stk) == 0 {
				return "", ErrInvalidExpression
			}
			stk = stk[:len(stk)-1]
		case len(stk) == 0 || c == '(':
			stk = append(stk, c)
		case priority(stk[len(stk)-1]) < priority(c):
			stk = append(stk, c)
		default:
			for len(stk) > 0 && priority(stk[len(stk)-1]) > priority(c) {
				out = append(out, stk[len(stk)-1])
				stk = stk[:len(stk)-1]
			}
			stk = append(stk, c)
		}
	}
	for len(stk) > 0 {
		top := stk[len(stk)-1]
		if top == '(' {
			return "", ErrInvalidExpression
		}
		out = append(out, top)
		stk = stk[:len(stk)-1]
	}
	return collapseNot(out), nil
}

// collapseNot folds each maximal contiguous run of NOT markers to its
// parity: odd runs become a single NOT, even runs vanish.
func collapseNot(postfix []byte) string {
	out := make([]byte, 0, len(postfix))
	run := 0
	for _, c := range postfix {
		if c == tokNot {
			run++
			continue
		}
		if run%2 == 1 {
			out = append(out, tokNot)
		}
		run = 0
		out = append(out, c)
	}
	if run%2 == 1 {
		out = append(out, tokNot)
	}
	return string(out)
}
