package simulation

import "github.com/xtaci/ldpctoolbox/gf2"

// Puncturer drops a fixed fraction of codeword bits before transmission
// (recovering them as erasures at the receiver), the way DVB-S2 and CCSDS
// both use puncturing to offer code rates finer than their base LDPC
// code's native rate.
type Puncturer struct {
	pattern  []bool
	numTrues int
}

// NewPuncturer builds a puncturer from a block pattern: true keeps a
// block, false drops it. It panics if pattern is empty.
func NewPuncturer(pattern []bool) *Puncturer {
	if len(pattern) == 0 {
		panic("simulation: puncturing pattern must not be empty")
	}
	n := 0
	for _, p := range pattern {
		if p {
			n++
		}
	}
	return &Puncturer{pattern: pattern, numTrues: n}
}

// Rate returns the puncturer's rate, len(pattern) / numTrues, i.e. the
// factor by which the codeword shrinks.
func (p *Puncturer) Rate() float64 {
	return float64(len(p.pattern)) / float64(p.numTrues)
}

// Puncture drops the blocks marked false in the pattern from codeword,
// which must be divisible into len(pattern) equal blocks.
func (p *Puncturer) Puncture(codeword []gf2.Elem) ([]gf2.Elem, error) {
	n := len(codeword)
	if n%len(p.pattern) != 0 {
		return nil, ErrCodewordSizeNotDivisible
	}
	blockSize := n / len(p.pattern)
	out := make([]gf2.Elem, 0, blockSize*p.numTrues)
	for i, keep := range p.pattern {
		if keep {
			out = append(out, codeword[i*blockSize:(i+1)*blockSize]...)
		}
	}
	return out, nil
}

// Depuncture reinserts zero-LLR (maximally uncertain) erasures for every
// block that Puncture dropped, restoring the original codeword length.
// llrs must have length blockSize*numTrues for some integer blockSize.
func (p *Puncturer) Depuncture(llrs []float64) []float64 {
	blockSize := len(llrs) / p.numTrues
	out := make([]float64, blockSize*len(p.pattern))
	src := 0
	for i, keep := range p.pattern {
		if !keep {
			continue
		}
		copy(out[i*blockSize:(i+1)*blockSize], llrs[src:src+blockSize])
		src += blockSize
	}
	return out
}
