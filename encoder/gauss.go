package encoder

import "github.com/xtaci/ldpctoolbox/gf2"

// gaussReduce performs Gauss-Jordan elimination over GF(2) on the n x m
// matrix a (n <= m), reducing its leftmost n columns to the identity
// matrix, in place. It returns ErrSubmatrixNotInvertible if those n
// columns do not have full rank.
func gaussReduce(a [][]gf2.Elem) error {
	n := len(a)
	if n == 0 {
		return nil
	}
	m := len(a[0])

	for j := 0; j < n; j++ {
		pivot := -1
		for t := j; t < n; t++ {
			if a[t][j].IsOne() {
				pivot = t
				break
			}
		}
		if pivot < 0 {
			return ErrSubmatrixNotInvertible
		}
		if pivot != j {
			a[j], a[pivot] = a[pivot], a[j]
		}
		for t := j + 1; t < n; t++ {
			if a[t][j].IsOne() {
				for u := j; u < m; u++ {
					a[t][u] = a[t][u].Sub(a[j][u])
				}
			}
		}
	}

	for j := n - 1; j >= 0; j-- {
		for t := 0; t < j; t++ {
			if a[t][j].IsOne() {
				for u := j; u < m; u++ {
					a[t][u] = a[t][u].Sub(a[j][u])
				}
			}
		}
	}
	return nil
}
