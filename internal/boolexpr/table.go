package boolexpr

import "sync"

// Minterms enumerates every assignment over the variable set in ascending
// index order and returns the indices for which the expression evaluates
// to 1. The k-th variable (in the fixed order) maps to bit (i >> (N-1-k))
// & 1, so the first variable is the most significant bit. Expressions
// with no variables return nil; use Constant for those.
func (e *Expression) Minterms() []int {
	n := len(e.vars)
	if n == 0 {
		return nil
	}
	var minterms []int
	a := make(Assignment, n)
	for i := 0; i < 1<<n; i++ {
		if e.evalIndex(i, a) == 1 {
			minterms = append(minterms, i)
		}
	}
	return minterms
}

// MintermsParallel is Minterms with the 2^N evaluations fanned out over
// the given number of workers. Each worker owns a disjoint contiguous
// index range and writes into a preallocated slot, so no locking is
// needed; results are collected ascending afterwards. workers <= 1 takes
// the serial path.
func (e *Expression) MintermsParallel(workers int) []int {
	n := len(e.vars)
	if n == 0 {
		return nil
	}
	rows := 1 << n
	if workers <= 1 || rows < workers {
		return e.Minterms()
	}

	results := make([]uint8, rows)
	chunk := (rows + workers - 1) / workers
	var wg sync.WaitGroup
	for lo := 0; lo < rows; lo += chunk {
		hi := lo + chunk
		if hi > rows {
			hi = rows
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			a := make(Assignment, n)
			for i := lo; i < hi; i++ {
				results[i] = e.evalIndex(i, a)
			}
		}(lo, hi)
	}
	wg.Wait()

	var minterms []int
	for i, bit := range results {
		if bit == 1 {
			minterms = append(minterms, i)
		}
	}
	return minterms
}

// evalIndex evaluates the expression under the assignment encoded by
// index i, reusing a as scratch space.
func (e *Expression) evalIndex(i int, a Assignment) uint8 {
	n := len(e.vars)
	for k, v := range e.vars {
		a[v] = uint8(i>>(n-1-k)) & 1
	}
	return eval(e.root, a)
}
