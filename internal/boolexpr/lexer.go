package boolexpr

import (
	"fmt"
	"strings"
)

// Internal operator markers. AND has no surface token (juxtaposition);
// insertAnd makes it explicit before conversion.
const (
	tokAnd = '*'
	tokNot = '\''
	tokXor = '^'
	tokOr  = '+'
)

func isVariable(c byte) bool { return c >= 'A' && c <= 'Z' }

func isBit(c byte) bool { return c == '0' || c == '1' }

// scanVars checks the character set of src and collects its variable
// symbols in ascending order. Structural problems (parenthesis balance,
// operator placement) are not its concern.
func scanVars(src string) ([]byte, error) {
	var seen [26]bool
	for i := 0; i < len(src); i++ {
		c := src[i]
		switch {
		case isVariable(c):
			seen[c-'A'] = true
		case isBit(c), c == '(', c == ')', c == tokOr, c == tokNot, c == tokXor:
		default:
			return nil, fmt.Errorf("%w %q at offset %d", ErrInvalidCharacter, string(c), i)
		}
	}
	var vars []byte
	for i, ok := range seen {
		if ok {
			vars = append(vars, 'A'+byte(i))
		}
	}
	return vars, nil
}

// insertAnd makes juxtaposition explicit: an AND marker goes before any
// variable, digit, or '(' whose predecessor is not '(', '+', or '^'.
func insertAnd(src string) string {
	if src == "" {
		return src
	}
	var b strings.Builder
	b.Grow(2 * len(src))
	b.WriteByte(src[0])
	for i := 1; i < len(src); i++ {
		c, prev := src[i], src[i-1]
		if (isVariable(c) || isBit(c) || c == '(') &&
			prev != '(' && prev != tokOr && prev != tokXor {
			b.WriteByte(tokAnd)
		}
		b.WriteByte(c)
	}
	return b.String()
}
