package filter

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/princess-elisabeth/FiLIP/cipher"
	"github.com/princess-elisabeth/FiLIP/prng"
)

func testGen(t *testing.T, seed uint64) *prng.KeyedPRNG {
	g, err := prng.NewFromSeed(seed)
	require.NoError(t, err)
	return g
}

func clearMuxes(bits []bool) []cipher.Mux {
	out := make([]cipher.Mux, len(bits))
	for i, b := range bits {
		out[i] = cipher.NewClearMux(b)
	}
	return out
}

func TestDSMMatchesDirectComputation(t *testing.T) {
	// Two monomials: bits[0]&bits[1] (degree 2) and bits[2] (degree 1).
	f := &DSM{n: 3, monomials: [][]int{{0, 1}, {2}}}
	bf := cipher.ClearBitFactory{}

	cases := []struct {
		bits []bool
		want bool
	}{
		{[]bool{false, false, false}, false},
		{[]bool{true, true, false}, true},
		{[]bool{true, false, true}, true},
		{[]bool{true, true, true}, false}, // (1&1) xor 1 = 0
	}
	for _, tc := range cases {
		got := f.Evaluate(clearMuxes(tc.bits), bf).(*cipher.ClearBit)
		require.Equal(t, tc.want, got.Value(), "bits=%v", tc.bits)
	}
}

func TestDSMPartitionsDisjointBlocks(t *testing.T) {
	f := NewDSM(testGen(t, 1), 20, []int{1, 1, 3, 5})
	seen := map[int]bool{}
	for _, m := range f.monomials {
		for _, idx := range m {
			require.False(t, seen[idx], "index %d reused across monomials", idx)
			seen[idx] = true
		}
	}
	require.Equal(t, 10, len(seen)) // 1+1+3+5 positions consumed
	require.Equal(t, 20, f.N())
}

func TestXorThrMatchesDirectComputation(t *testing.T) {
	f := NewXorThr(2, 3, 2) // k=2 linear bits, threshold >=2 of 3
	bf := cipher.ClearBitFactory{}

	cases := []struct {
		bits []bool
		want bool
	}{
		{[]bool{false, false, false, false, false}, false},
		{[]bool{true, false, false, false, false}, true},               // linear part only
		{[]bool{false, false, true, true, false}, true},                // threshold part only (2 of 3)
		{[]bool{true, false, true, true, false}, false},                // 1 xor 1
		{[]bool{false, false, true, false, false}, false},              // only 1 of 3, below threshold
	}
	for _, tc := range cases {
		got := f.Evaluate(clearMuxes(tc.bits), bf).(*cipher.ClearBit)
		require.Equal(t, tc.want, got.Value(), "bits=%v", tc.bits)
	}
}

func TestXorThrN(t *testing.T) {
	f := NewXorThr(8, 136, 16)
	require.Equal(t, 144, f.N())
}
