// Package encoder implements a systematic encoder for LDPC (n, k) codes
// whose parity-check matrix H = [H0 H1] has maximum rank and whose square
// submatrix H1 (the last n-k columns) is invertible over GF(2).
//
// Two constructions are supported, mirroring the two shapes of H this
// toolbox's code generators produce: a staircase-type H1 (the repeat-
// accumulate structure used by DVB-S2 and this toolbox's own DVB-S2
// constructor) gets an O(n) running-sum encoder; anything else falls back
// to a dense generator matrix obtained by Gauss-Jordan reduction, encoded
// in O(n^2).
package encoder

import (
	"github.com/xtaci/ldpctoolbox/gf2"
	"github.com/xtaci/ldpctoolbox/graph"
)

// Encoder turns a k-bit message into an n-bit systematic codeword for the
// parity-check matrix it was built from.
type Encoder struct {
	k, n int

	// Exactly one of the following is set.
	genMatrix [][]gf2.Elem // dense case: (n-k) x k
	staircase [][]int      // staircase case: per parity row, the message columns it sums (before accumulation)
}

// K returns the number of systematic (message) bits.
func (e *Encoder) K() int { return e.k }

// N returns the codeword length.
func (e *Encoder) N() int { return e.n }

// FromGraph builds the systematic encoder for parity-check graph h. It
// returns ErrSubmatrixNotInvertible if the square submatrix formed by h's
// last NumRows columns has no inverse over GF(2).
func FromGraph(h *graph.Graph) (*Encoder, error) {
	n := h.NumRows()
	m := h.NumCols()
	k := m - n

	if isStaircase(h) {
		rows := make([][]int, n)
		for j := 0; j < n; j++ {
			for _, c := range h.Row(j) {
				if c < k {
					rows[j] = append(rows[j], c)
				}
			}
		}
		return &Encoder{k: k, n: m, staircase: rows}, nil
	}

	// General case: build A = [H1 H0] as an n x m dense GF(2) matrix (H1's
	// columns first), Gauss-reduce its first n columns to the identity,
	// and read the generator matrix off the remaining k columns.
	a := make([][]gf2.Elem, n)
	for j := range a {
		a[j] = make([]gf2.Elem, m)
	}
	h.Iterate(func(j, col int) {
		var t int
		if col < k {
			t = col + n
		} else {
			t = col - k
		}
		a[j][t] = gf2.One
	})

	if err := gaussReduce(a); err != nil {
		return nil, err
	}

	gen := make([][]gf2.Elem, n)
	for j := 0; j < n; j++ {
		gen[j] = append([]gf2.Elem(nil), a[j][n:]...)
	}
	return &Encoder{k: k, n: m, genMatrix: gen}, nil
}

// Encode returns the n-bit systematic codeword for message, a k-bit
// slice. The first k bits of the result are message itself; the remaining
// n-k are the computed parity bits.
func (e *Encoder) Encode(message []gf2.Elem) []gf2.Elem {
	if len(message) != e.k {
		panic("encoder: message has wrong length")
	}
	codeword := make([]gf2.Elem, e.n)
	copy(codeword, message)

	if e.staircase != nil {
		parity := codeword[e.k:]
		for j, cols := range e.staircase {
			var sum gf2.Elem
			for _, c := range cols {
				sum = sum.Add(message[c])
			}
			parity[j] = sum
		}
		for j := 1; j < len(parity); j++ {
			parity[j] = parity[j].Add(parity[j-1])
		}
		return codeword
	}

	parity := codeword[e.k:]
	for j, row := range e.genMatrix {
		var sum gf2.Elem
		for c, bit := range row {
			if bit.IsOne() {
				sum = sum.Add(message[c])
			}
		}
		parity[j] = sum
	}
	return codeword
}
