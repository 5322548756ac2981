package prng

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSameSeedSameStream(t *testing.T) {
	g1, err := NewFromSeed(42)
	require.NoError(t, err)
	g2, err := NewFromSeed(42)
	require.NoError(t, err)

	for i := 0; i < 64; i++ {
		require.Equal(t, g1.Uint64(), g2.Uint64())
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	g1, err := NewFromSeed(1)
	require.NoError(t, err)
	g2, err := NewFromSeed(2)
	require.NoError(t, err)

	var same int
	for i := 0; i < 32; i++ {
		if g1.Uint64() == g2.Uint64() {
			same++
		}
	}
	require.Less(t, same, 2)
}

func TestResetReplaysStream(t *testing.T) {
	g, err := NewFromSeed(7)
	require.NoError(t, err)

	first := make([]uint64, 16)
	for i := range first {
		first[i] = g.Uint64()
	}

	require.NoError(t, g.Reset())
	for i := range first {
		require.Equal(t, first[i], g.Uint64())
	}
}

func TestFloat64Range(t *testing.T) {
	g, err := NewFromSeed(9)
	require.NoError(t, err)
	for i := 0; i < 256; i++ {
		f := g.Float64()
		require.GreaterOrEqual(t, f, 0.0)
		require.Less(t, f, 1.0)
	}
}

func TestIntNRange(t *testing.T) {
	g, err := NewFromSeed(11)
	require.NoError(t, err)
	for i := 0; i < 256; i++ {
		v := g.IntN(13)
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 13)
	}
}

func TestNewKeyedPRNGArbitraryLengthKey(t *testing.T) {
	g1, err := NewKeyedPRNG([]byte("a symmetric seed of any length at all"))
	require.NoError(t, err)
	g2, err := NewKeyedPRNG([]byte("a symmetric seed of any length at all"))
	require.NoError(t, err)
	require.Equal(t, g1.Uint64(), g2.Uint64())
}
