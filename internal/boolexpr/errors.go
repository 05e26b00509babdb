package boolexpr

import "errors"

// The pipeline fails fast: every error below is terminal for the current
// run, and callers discriminate kinds with errors.Is.
var (
	// ErrInvalidCharacter reports a byte outside {A-Z 0 1 ( ) + ' ^}.
	ErrInvalidCharacter = errors.New("invalid character")

	// ErrInvalidExpression reports a structural failure: unbalanced
	// parentheses, or leftover/missing operands after tree construction.
	ErrInvalidExpression = errors.New("invalid expression")

	// Operand-underflow errors, one per operator.
	ErrInvalidNotOperand  = errors.New("missing operand for NOT")
	ErrInvalidAndOperands = errors.New("missing operands for AND")
	ErrInvalidXorOperands = errors.New("missing operands for XOR")
	ErrInvalidOrOperands  = errors.New("missing operands for OR")

	// ErrInvalidToken reports an unrecognized postfix symbol.
	ErrInvalidToken = errors.New("invalid token")
)
