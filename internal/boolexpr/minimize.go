package boolexpr

import (
	"math/bits"
	"sort"
)

// Implicant is a cube over the variable set: Pattern is a fixed-length
// string over {0,1,-} in variable order (first variable first), Covers
// the ascending minterm indices it accounts for.
type Implicant struct {
	Pattern string
	Covers  []int
}

// implicant is the working representation during the merge phase.
// value holds the bits for care positions; mask has 1=care, 0=don't-care.
// Bit N-1-k belongs to the k-th variable, so a full-mask implicant's
// value equals its minterm index.
type implicant struct {
	value uint32
	mask  uint32
}

// tryMerge combines two implicants with identical don't-care positions
// that differ in exactly one care bit, clearing that bit to don't-care.
func tryMerge(a, b implicant) (implicant, bool) {
	if a.mask != b.mask {
		return implicant{}, false
	}
	diff := (a.value ^ b.value) & a.mask
	if diff == 0 || diff&(diff-1) != 0 {
		return implicant{}, false
	}
	return implicant{value: a.value &^ diff, mask: a.mask &^ diff}, true
}

// PrimeImplicants runs the Quine-McCluskey merge phase over the minterm
// set. Each round groups the working set by count of 1 bits and merges
// pairs from adjacent groups; a merged pair is consumed, its coverage
// sets union into the new pattern. Patterns untouched by a round stay in
// the working set. A round with no merges ends the phase; the surviving
// patterns are the prime implicants, in first-created order.
func PrimeImplicants(minterms []int, numVars int) []Implicant {
	if len(minterms) == 0 {
		return nil
	}
	full := uint32(1)<<numVars - 1
	cover := make(map[implicant]map[int]bool)
	list := make([]implicant, 0, len(minterms))
	for _, m := range minterms {
		imp := implicant{value: uint32(m), mask: full}
		list = append(list, imp)
		cover[imp] = map[int]bool{m: true}
	}

	for {
		groups := make([][]implicant, numVars+1)
		for _, imp := range list {
			ones := bits.OnesCount32(imp.value & imp.mask)
			groups[ones] = append(groups[ones], imp)
		}

		used := make(map[implicant]bool)
		var created []implicant
		merged := false
		for ones := 1; ones <= numVars; ones++ {
			for _, hi := range groups[ones] {
				for _, lo := range groups[ones-1] {
					m, ok := tryMerge(hi, lo)
					if !ok {
						continue
					}
					if _, seen := cover[m]; !seen {
						u := make(map[int]bool, len(cover[hi])+len(cover[lo]))
						for i := range cover[hi] {
							u[i] = true
						}
						for i := range cover[lo] {
							u[i] = true
						}
						cover[m] = u
						created = append(created, m)
					}
					used[hi] = true
					used[lo] = true
					merged = true
				}
			}
		}
		if !merged {
			break
		}

		next := make([]implicant, 0, len(list)+len(created))
		for _, imp := range list {
			if !used[imp] {
				next = append(next, imp)
			}
		}
		list = append(next, created...)
	}

	primes := make([]Implicant, len(list))
	for i, imp := range list {
		primes[i] = Implicant{
			Pattern: patternOf(imp, numVars),
			Covers:  sortedCovers(cover[imp]),
		}
	}
	return primes
}

// SelectCover picks prime implicants until every minterm is covered:
// take the uncovered minterm with the fewest remaining coverers (ties:
// lowest index), then the implicant covering it with the largest
// remaining coverage (ties: first in candidate order), and retire every
// minterm that implicant covers. Greedy, not provably minimal.
func SelectCover(primes []Implicant, minterms []int) []Implicant {
	rem := make([]map[int]bool, len(primes))
	for i, p := range primes {
		rem[i] = make(map[int]bool, len(p.Covers))
		for _, m := range p.Covers {
			rem[i][m] = true
		}
	}
	covered := make(map[int]bool, len(minterms))

	var selected []Implicant
	for {
		target, targetCnt := -1, 0
		for _, m := range minterms {
			if covered[m] {
				continue
			}
			cnt := 0
			for i := range rem {
				if rem[i] != nil && rem[i][m] {
					cnt++
				}
			}
			if cnt == 0 {
				continue
			}
			if target < 0 || cnt < targetCnt {
				target, targetCnt = m, cnt
			}
		}
		if target < 0 {
			break
		}

		pick, width := -1, 0
		for i := range rem {
			if rem[i] == nil || !rem[i][target] {
				continue
			}
			if len(rem[i]) > width {
				pick, width = i, len(rem[i])
			}
		}

		selected = append(selected, primes[pick])
		for m := range rem[pick] {
			covered[m] = true
			for i := range rem {
				if i != pick && rem[i] != nil {
					delete(rem[i], m)
				}
			}
		}
		rem[pick] = nil
	}
	return selected
}

// Minimize is the full prime-implicant search plus cover selection.
// Callers handle the empty and full minterm sets (constant 0/1) first.
func Minimize(minterms []int, numVars int) []Implicant {
	return SelectCover(PrimeImplicants(minterms, numVars), minterms)
}

func patternOf(imp implicant, numVars int) string {
	b := make([]byte, numVars)
	for k := 0; k < numVars; k++ {
		p := uint(numVars - 1 - k)
		switch {
		case imp.mask&(1<<p) == 0:
			b[k] = '-'
		case imp.value&(1<<p) != 0:
			b[k] = '1'
		default:
			b[k] = '0'
		}
	}
	return string(b)
}

func sortedCovers(set map[int]bool) []int {
	out := make([]int, 0, len(set))
	for m := range set {
		out = append(out, m)
	}
	sort.Ints(out)
	return out
}
