package symmetrickey

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/princess-elisabeth/FiLIP/cipher"
)

func clearKey(kappa int) []cipher.Mux {
	key := make([]cipher.Mux, kappa)
	for i := range key {
		key[i] = cipher.NewClearMux(i%3 == 0)
	}
	return key
}

func TestRandomWhitenedSubsetLength(t *testing.T) {
	sk, err := New(clearKey(64), 10, 123)
	require.NoError(t, err)
	subset := sk.RandomWhitenedSubset()
	require.Len(t, subset, 10)
}

func TestSameSeedSameSubsetSequence(t *testing.T) {
	key := clearKey(64)
	sk1, err := New(key, 10, 77)
	require.NoError(t, err)
	sk2, err := New(key, 10, 77)
	require.NoError(t, err)

	one, zero := cipher.NewClearBit(true), cipher.NewClearBit(false)
	for round := 0; round < 5; round++ {
		s1, s2 := sk1.RandomWhitenedSubset(), sk2.RandomWhitenedSubset()
		for i := range s1 {
			require.Equal(t,
				s1[i].Select(one, zero).(*cipher.ClearBit).Value(),
				s2[i].Select(one, zero).(*cipher.ClearBit).Value(),
			)
		}
	}
}

func TestDifferentSeedsDivergeEventually(t *testing.T) {
	key := clearKey(64)
	sk1, err := New(key, 10, 1)
	require.NoError(t, err)
	sk2, err := New(key, 10, 2)
	require.NoError(t, err)

	one, zero := cipher.NewClearBit(true), cipher.NewClearBit(false)
	differed := false
	for round := 0; round < 20 && !differed; round++ {
		s1, s2 := sk1.RandomWhitenedSubset(), sk2.RandomWhitenedSubset()
		for i := range s1 {
			if s1[i].Select(one, zero).(*cipher.ClearBit).Value() != s2[i].Select(one, zero).(*cipher.ClearBit).Value() {
				differed = true
				break
			}
		}
	}
	require.True(t, differed)
}
