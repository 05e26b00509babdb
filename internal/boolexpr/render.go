package boolexpr

import (
	"fmt"
	"sort"
	"strings"
)

// Term renders the implicant as a product term: a 0 position becomes a
// negated literal, a 1 a plain literal, a don't-care is omitted.
func (im Implicant) Term(vars []byte) string {
	var b strings.Builder
	for k := 0; k < len(im.Pattern) && k < len(vars); k++ {
		switch im.Pattern[k] {
		case '0':
			b.WriteByte(vars[k])
			b.WriteByte(tokNot)
		case '1':
			b.WriteByte(vars[k])
		}
	}
	return b.String()
}

// SumOfProducts joins the selected implicants' product terms with '+',
// terms sorted lexicographically by their literal string.
func SumOfProducts(selected []Implicant, vars []byte) string {
	terms := make([]string, len(selected))
	for i, im := range selected {
		terms[i] = im.Term(vars)
	}
	sort.Strings(terms)
	return strings.Join(terms, "+")
}

// MintermList renders the minterm set as "m(i1, i2, ...)".
func MintermList(minterms []int) string {
	parts := make([]string, len(minterms))
	for i, m := range minterms {
		parts[i] = fmt.Sprintf("%d", m)
	}
	return "m(" + strings.Join(parts, ", ") + ")"
}

// TableString renders the full truth table: a header row of variable
// symbols and Y, then one row per assignment in ascending index order.
func TableString(vars []byte, minterms []int) string {
	var b strings.Builder
	for _, v := range vars {
		b.WriteByte(v)
		b.WriteByte(' ')
	}
	b.WriteString("| Y\n")

	n := len(vars)
	next := 0
	for i := 0; i < 1<<n; i++ {
		for k := 0; k < n; k++ {
			b.WriteByte('0' + byte(i>>(n-1-k))&1)
			b.WriteByte(' ')
		}
		y := byte('0')
		if next < len(minterms) && minterms[next] == i {
			y = '1'
			next++
		}
		b.WriteString("| ")
		b.WriteByte(y)
		b.WriteByte('\n')
	}
	return b.String()
}
