package simulation

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xtaci/ldpctoolbox/gf2"
)

func gf2s(vals ...int) []gf2.Elem {
	out := make([]gf2.Elem, len(vals))
	for i, v := range vals {
		out[i] = gf2.FromBit(byte(v))
	}
	return out
}

func TestInterleaver3(t *testing.T) {
	il := NewInterleaver(3, false)
	got := il.Interleave(gf2s(0, 1, 2, 3, 4, 5))
	require.Equal(t, gf2s(0, 2, 4, 1, 3, 5), got)

	back := il.Deinterleave(got)
	require.Equal(t, gf2s(0, 1, 2, 3, 4, 5), back)
}

func TestInterleaver3Backwards(t *testing.T) {
	il := NewInterleaver(3, true)
	got := il.Interleave(gf2s(0, 1, 2, 3, 4, 5))
	require.Equal(t, gf2s(4, 2, 0, 5, 3, 1), got)

	back := il.Deinterleave(got)
	require.Equal(t, gf2s(0, 1, 2, 3, 4, 5), back)
}

func TestPuncturerPattern(t *testing.T) {
	p := NewPuncturer([]bool{true, true, false, true, false})
	codeword := gf2s(0, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	punctured, err := p.Puncture(codeword)
	require.NoError(t, err)
	require.Equal(t, gf2s(0, 1, 2, 3, 6, 7), punctured)

	llrs := []float64{1, 2, 3, 4, 5, 6}
	depunctured := p.Depuncture(llrs)
	require.Equal(t, []float64{1, 2, 3, 4, 0, 0, 5, 6, 0, 0}, depunctured)
}
