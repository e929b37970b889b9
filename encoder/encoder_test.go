package encoder

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xtaci/ldpctoolbox/gf2"
	"github.com/xtaci/ldpctoolbox/graph"
)

func bits(s string) []gf2.Elem {
	out := make([]gf2.Elem, len(s))
	for i, c := range s {
		if c == '1' {
			out[i] = gf2.One
		}
	}
	return out
}

func TestEncodeDenseGenerator(t *testing.T) {
	const alist = `12 4
3 9
3 3 3 3 3 3 3 3 3 3 3 3
9 9 9 9
1 2 3
1 3 4
2 3 4
2 3 4
1 2 4
1 2 3
1 3 4
1 2 4
1 2 3
2 3 4
1 2 4
1 3 4
1 2 5 6 7 8 9 11 12
1 3 4 5 6 8 9 10 11
1 2 3 4 6 7 9 10 12
2 3 4 5 7 8 10 11 12
`
	h, err := graph.ReadAlist(strings.NewReader(alist))
	require.NoError(t, err)

	enc, err := FromGraph(h)
	require.NoError(t, err)
	require.Nil(t, enc.staircase, "expected a dense generator matrix encoder")

	cw := enc.Encode(bits("10110010"))
	require.Equal(t, bits("101100101001"), cw)

	cw = enc.Encode(bits("01001110"))
	require.Equal(t, bits("010011101010"), cw)
}

func TestEncodeStaircase(t *testing.T) {
	const alist = `5 3
2 4
2 2 2 2 1
2 3 4
1 3
2 3
1 2
2 3
3
1 3
2 3 4
1 2 4 5
`
	h, err := graph.ReadAlist(strings.NewReader(alist))
	require.NoError(t, err)

	enc, err := FromGraph(h)
	require.NoError(t, err)
	require.NotNil(t, enc.staircase, "expected a staircase encoder")

	require.Equal(t, bits("10110"), enc.Encode(bits("10")))
	require.Equal(t, bits("01010"), enc.Encode(bits("01")))
}

func TestFromGraphRejectsNonInvertible(t *testing.T) {
	h := graph.New(2, 4)
	h.InsertRow(0, []int{0, 1})
	h.InsertRow(1, []int{0, 1})
	_, err := FromGraph(h)
	require.ErrorIs(t, err, ErrSubmatrixNotInvertible)
}
