package boolexpr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// End-to-end cases: expression in, minterms and simplified form out.
func TestPipelineGolden(t *testing.T) {
	cases := []struct {
		expr       string
		vars       string
		minterms   []int
		simplified string
	}{
		{"A", "A", []int{1}, "A"},
		{"A'", "A", []int{0}, "A'"},
		{"AB'+A'B", "AB", []int{1, 2}, "A'B+AB'"},
		{"AB+AB'", "AB", []int{2, 3}, "A"},
		{"A+BC", "ABC", []int{3, 4, 5, 6, 7}, "A+BC"},
		{"(AB'+A'B)'^C", "ABC", []int{0, 3, 5, 6}, "A'B'C'+A'BC+AB'C+ABC'"},
		{"AB+BC+CA", "ABC", []int{3, 5, 6, 7}, "AB+AC+BC"},
		{"(A+B)(A+C)", "ABC", []int{3, 4, 5, 6, 7}, "A+BC"},
	}
	for _, tc := range cases {
		t.Run(tc.expr, func(t *testing.T) {
			e, err := Parse(tc.expr)
			require.NoError(t, err)
			require.Equal(t, tc.vars, string(e.Vars()))

			minterms := e.Minterms()
			require.Equal(t, tc.minterms, minterms)

			selected := Minimize(minterms, len(e.Vars()))
			assert.Equal(t, tc.simplified, SumOfProducts(selected, e.Vars()))
		})
	}
}

func TestPipelineConstants(t *testing.T) {
	for src, want := range map[string]uint8{"0": 0, "1": 1, "1^1": 0, "(0+1)'": 0} {
		e, err := Parse(src)
		require.NoError(t, err)
		bit, ok := e.Constant()
		require.True(t, ok, src)
		assert.Equal(t, want, bit, src)
	}
}

// Every assignment consistent with a selected pattern must evaluate the
// original tree to 1, and the union of coverage sets must equal the
// minterm set exactly.
func TestPipelineImplicantSoundness(t *testing.T) {
	exprs := []string{
		"AB'+A'B",
		"A+BC",
		"(AB'+A'B)'^C",
		"AB+BC+CA",
		"(A+B')^(C+D')",
		"A(B+C)'+D",
	}
	for _, src := range exprs {
		t.Run(src, func(t *testing.T) {
			e, err := Parse(src)
			require.NoError(t, err)
			n := len(e.Vars())
			minterms := e.Minterms()
			mintermSet := make(map[int]bool, len(minterms))
			for _, m := range minterms {
				mintermSet[m] = true
			}

			selected := Minimize(minterms, n)
			covered := make(map[int]bool)
			a := make(Assignment, n)
			for _, p := range selected {
				for i := 0; i < 1<<n; i++ {
					if !consistent(p.Pattern, i, n) {
						continue
					}
					require.Equal(t, uint8(1), e.evalIndex(i, a),
						"pattern %s admits zero-minterm %d", p.Pattern, i)
				}
				for _, m := range p.Covers {
					covered[m] = true
				}
			}
			assert.Equal(t, mintermSet, covered)
		})
	}
}

// Re-parsing the rendered simplified expression must reproduce the
// original function under every assignment.
func TestPipelineSemanticRoundTrip(t *testing.T) {
	exprs := []string{
		"A",
		"AB'+A'B",
		"AB+AB'",
		"A+BC",
		"(AB'+A'B)'^C",
		"AB+BC+CA",
		"(A+B')^(C+D')",
		"A(B+C)'+D",
		"(A^B)(C^D)",
	}
	for _, src := range exprs {
		t.Run(src, func(t *testing.T) {
			e, err := Parse(src)
			require.NoError(t, err)
			n := len(e.Vars())
			minterms := e.Minterms()
			require.NotEmpty(t, minterms)
			require.Less(t, len(minterms), 1<<n)

			sop := SumOfProducts(Minimize(minterms, n), e.Vars())
			re, err := Parse(sop)
			require.NoError(t, err, "re-parse %q", sop)

			a := make(Assignment, n)
			for i := 0; i < 1<<n; i++ {
				for k, v := range e.Vars() {
					a[v] = uint8(i>>(n-1-k)) & 1
				}
				assert.Equal(t, eval(e.root, a), eval(re.root, a),
					"disagree at row %d of %q vs %q", i, src, sop)
			}
		})
	}
}

// consistent reports whether minterm index i matches the fixed bits of
// pattern (don't-care positions are free).
func consistent(pattern string, i, n int) bool {
	for k := 0; k < n; k++ {
		bit := byte('0' + (i>>(n-1-k))&1)
		if pattern[k] != '-' && pattern[k] != bit {
			return false
		}
	}
	return true
}
